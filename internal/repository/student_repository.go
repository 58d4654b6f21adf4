package repository

import (
	"context"
	"strings"

	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/store"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	store *store.Store
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(s *store.Store) *StudentRepository {
	return &StudentRepository{store: s}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s, ok := r.store.Students.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

// List retrieves all students in insertion order, optionally filtered by
// a case-insensitive name query and/or an exact grade level.
func (r *StudentRepository) List(ctx context.Context, query, gradeLevel string) []model.Student {
	q := strings.ToLower(query)
	return r.store.Students.Filter(func(s model.Student) bool {
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) {
			return false
		}
		if gradeLevel != "" && s.GradeLevel != gradeLevel {
			return false
		}
		return true
	})
}

// ListByIDs retrieves the students whose id appears in ids, preserving
// store order. Missing ids are skipped.
func (r *StudentRepository) ListByIDs(ctx context.Context, ids []int) []model.Student {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return r.store.Students.Filter(func(s model.Student) bool {
		_, ok := want[s.ID]
		return ok
	})
}

// Create inserts a new student, assigning its id.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	s.ID = r.store.Students.Insert(*s)
	return nil
}

// Update modifies a student's basic info. Enrollment links are untouched.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	ok := r.store.Students.Update(s.ID, func(cur *model.Student) {
		cur.Name = s.Name
		cur.GradeLevel = s.GradeLevel
		cur.Email = s.Email
		cur.EnrollmentDate = s.EnrollmentDate
	})
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student by ID. Grades and class membership referring
// to the student are intentionally left in place (no cascade).
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	if !r.store.Students.Delete(id) {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of students.
func (r *StudentRepository) Count(ctx context.Context) int {
	return r.store.Students.Len()
}
