package repository

import (
	"context"

	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/store"
)

// ParentRepository handles parent data access. Parents are read-only
// reference data.
type ParentRepository struct {
	store *store.Store
}

// NewParentRepository creates a new ParentRepository.
func NewParentRepository(s *store.Store) *ParentRepository {
	return &ParentRepository{store: s}
}

// GetByID retrieves a parent by ID.
func (r *ParentRepository) GetByID(ctx context.Context, id int) (*model.Parent, error) {
	p, ok := r.store.Parents.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}
