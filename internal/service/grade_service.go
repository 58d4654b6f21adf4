package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/repository"
)

// Grade entry errors.
var (
	ErrInvalidScore          = errors.New("score must be an integer between 0 and 100")
	ErrMissingAssignmentName = errors.New("assignment name is required")
)

// GradeService implements the grade upsert policy. A grade is keyed by
// the (student, class, assignment) triple: saving against an existing
// key overwrites score and date in place, otherwise a new record is
// inserted. Entering the same assignment twice is therefore idempotent.
type GradeService struct {
	gradeRepo *repository.GradeRepository
	classRepo *repository.ClassRepository
	log       zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(gradeRepo *repository.GradeRepository, classRepo *repository.ClassRepository, log zerolog.Logger) *GradeService {
	return &GradeService{gradeRepo: gradeRepo, classRepo: classRepo, log: log}
}

// SaveGrade upserts one grade and returns the id of the record written.
// Assignment matching is exact and case-sensitive. Invalid input is
// rejected before any mutation.
func (s *GradeService) SaveGrade(ctx context.Context, studentID, classID int, assignment string, score int, date string) (int, error) {
	if assignment == "" {
		return 0, ErrMissingAssignmentName
	}
	if score < 0 || score > 100 {
		return 0, ErrInvalidScore
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	existing, err := s.gradeRepo.FindByKey(ctx, studentID, classID, assignment)
	if err == nil {
		if err := s.gradeRepo.UpdateScore(ctx, existing.ID, score, date); err != nil {
			return 0, err
		}
		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	grade := &model.Grade{
		StudentID:  studentID,
		ClassID:    classID,
		Assignment: assignment,
		Score:      score,
		Date:       date,
	}
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return 0, err
	}

	s.log.Debug().
		Int("student_id", studentID).
		Int("class_id", classID).
		Str("assignment", assignment).
		Msg("grade recorded")
	return grade.ID, nil
}

// SaveAllGrades applies the upsert rule for one assignment across a
// class. scores maps student id to score; enrolled students without an
// entry are skipped — partial submission is allowed and not an error.
// Students in scores but not enrolled in the class are ignored. All
// provided scores are validated before anything is written.
func (s *GradeService) SaveAllGrades(ctx context.Context, classID int, assignment, date string, scores map[int]int) (int, error) {
	if assignment == "" {
		return 0, ErrMissingAssignmentName
	}
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return 0, err
	}
	for _, score := range scores {
		if score < 0 || score > 100 {
			return 0, ErrInvalidScore
		}
	}

	saved := 0
	for _, studentID := range class.Students {
		score, ok := scores[studentID]
		if !ok {
			continue
		}
		if _, err := s.SaveGrade(ctx, studentID, classID, assignment, score, date); err != nil {
			return saved, err
		}
		saved++
	}

	s.log.Info().Int("class_id", classID).Str("assignment", assignment).Int("saved", saved).Msg("grades saved")
	return saved, nil
}
