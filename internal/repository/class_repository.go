package repository

import (
	"context"

	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/store"
)

// ClassRepository handles class data access. Classes are read-only
// reference data.
type ClassRepository struct {
	store *store.Store
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(s *store.Store) *ClassRepository {
	return &ClassRepository{store: s}
}

// GetByID retrieves a class by ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int) (*model.Class, error) {
	c, ok := r.store.Classes.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// List retrieves all classes.
func (r *ClassRepository) List(ctx context.Context) []model.Class {
	return r.store.Classes.All()
}

// ListByTeacher retrieves the classes taught by the given teacher.
func (r *ClassRepository) ListByTeacher(ctx context.Context, teacherID int) []model.Class {
	return r.store.Classes.Filter(func(c model.Class) bool {
		return c.TeacherID == teacherID
	})
}

// ListByStudent retrieves the classes the given student is enrolled in.
func (r *ClassRepository) ListByStudent(ctx context.Context, studentID int) []model.Class {
	return r.store.Classes.Filter(func(c model.Class) bool {
		for _, id := range c.Students {
			if id == studentID {
				return true
			}
		}
		return false
	})
}

// Count returns the number of classes.
func (r *ClassRepository) Count(ctx context.Context) int {
	return r.store.Classes.Len()
}
