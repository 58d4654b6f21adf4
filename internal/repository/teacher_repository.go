package repository

import (
	"context"

	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/store"
)

// TeacherRepository handles teacher data access. Teachers are read-only
// reference data.
type TeacherRepository struct {
	store *store.Store
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(s *store.Store) *TeacherRepository {
	return &TeacherRepository{store: s}
}

// GetByID retrieves a teacher by ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	t, ok := r.store.Teachers.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

// List retrieves all teachers.
func (r *TeacherRepository) List(ctx context.Context) []model.Teacher {
	return r.store.Teachers.All()
}

// Count returns the number of teachers.
func (r *TeacherRepository) Count(ctx context.Context) int {
	return r.store.Teachers.Len()
}
