package repository

import (
	"context"

	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/store"
)

// AnnouncementRepository handles announcement data access.
type AnnouncementRepository struct {
	store *store.Store
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(s *store.Store) *AnnouncementRepository {
	return &AnnouncementRepository{store: s}
}

// List retrieves all announcements in insertion order.
func (r *AnnouncementRepository) List(ctx context.Context) []model.Announcement {
	return r.store.Announcements.All()
}
