package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/repository"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, log zerolog.Logger) *StudentService {
	return &StudentService{studentRepo: studentRepo, log: log}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// List retrieves students, optionally filtered by name query and grade
// level.
func (s *StudentService) List(ctx context.Context, query, gradeLevel string) []model.Student {
	return s.studentRepo.List(ctx, query, gradeLevel)
}

// Create inserts a new student from the request fields. New students
// start without class enrollments; the enrollment date defaults to
// today when absent.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	enrolled := req.EnrollmentDate
	if enrolled == "" {
		enrolled = time.Now().Format("2006-01-02")
	}

	student := &model.Student{
		Name:           req.Name,
		GradeLevel:     req.GradeLevel,
		Email:          req.Email,
		EnrollmentDate: enrolled,
		Classes:        []int{},
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.log.Info().Int("student_id", student.ID).Str("name", student.Name).Msg("student added")
	return student, nil
}

// Update modifies an existing student's details.
func (s *StudentService) Update(ctx context.Context, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		ID:             id,
		Name:           req.Name,
		GradeLevel:     req.GradeLevel,
		Email:          req.Email,
		EnrollmentDate: req.EnrollmentDate,
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByID(ctx, id)
}

// Delete removes a student by ID. Grades and class rosters referencing
// the student are left untouched; downstream joins tolerate the dangling
// ids. There is deliberately no cascade.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Warn().Int("student_id", id).Msg("student deleted (grades and rosters not cascaded)")
	return nil
}
