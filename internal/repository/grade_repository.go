package repository

import (
	"context"

	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/store"
)

// GradeRepository handles grade data access, including the natural-key
// lookup the upsert policy depends on.
type GradeRepository struct {
	store *store.Store
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(s *store.Store) *GradeRepository {
	return &GradeRepository{store: s}
}

// GetByID retrieves a grade by ID.
func (r *GradeRepository) GetByID(ctx context.Context, id int) (*model.Grade, error) {
	g, ok := r.store.Grades.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

// FindByKey retrieves the unique grade for a (student, class, assignment)
// triple. Assignment comparison is exact and case-sensitive.
func (r *GradeRepository) FindByKey(ctx context.Context, studentID, classID int, assignment string) (*model.Grade, error) {
	matches := r.store.Grades.Filter(func(g model.Grade) bool {
		return g.StudentID == studentID && g.ClassID == classID && g.Assignment == assignment
	})
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return &matches[0], nil
}

// FirstForStudentClass returns the first recorded grade for a student in
// a class regardless of assignment. Used to prefill the grade-entry form.
func (r *GradeRepository) FirstForStudentClass(ctx context.Context, studentID, classID int) (*model.Grade, error) {
	matches := r.store.Grades.Filter(func(g model.Grade) bool {
		return g.StudentID == studentID && g.ClassID == classID
	})
	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	return &matches[0], nil
}

// ListByStudent retrieves all grades recorded for a student.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID int) []model.Grade {
	return r.store.Grades.Filter(func(g model.Grade) bool {
		return g.StudentID == studentID
	})
}

// ListByStudentClass retrieves a student's grades within one class.
func (r *GradeRepository) ListByStudentClass(ctx context.Context, studentID, classID int) []model.Grade {
	return r.store.Grades.Filter(func(g model.Grade) bool {
		return g.StudentID == studentID && g.ClassID == classID
	})
}

// ListByClass retrieves all grades recorded in a class.
func (r *GradeRepository) ListByClass(ctx context.Context, classID int) []model.Grade {
	return r.store.Grades.Filter(func(g model.Grade) bool {
		return g.ClassID == classID
	})
}

// Create inserts a new grade, assigning its id.
func (r *GradeRepository) Create(ctx context.Context, g *model.Grade) error {
	g.ID = r.store.Grades.Insert(*g)
	return nil
}

// UpdateScore overwrites the score and date of an existing grade in
// place, keeping its id.
func (r *GradeRepository) UpdateScore(ctx context.Context, id, score int, date string) error {
	ok := r.store.Grades.Update(id, func(g *model.Grade) {
		g.Score = score
		g.Date = date
	})
	if !ok {
		return ErrNotFound
	}
	return nil
}
