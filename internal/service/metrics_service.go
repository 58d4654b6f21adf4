package service

import (
	"context"
	"math"
	"strings"

	"github.com/stemsi/schoolms-backend/internal/config"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/repository"
)

// MetricsService computes derived figures from the current store state.
// Nothing is cached; every call recomputes from live data.
type MetricsService struct {
	cfg         *config.Config
	studentRepo *repository.StudentRepository
	classRepo   *repository.ClassRepository
	gradeRepo   *repository.GradeRepository
	parentRepo  *repository.ParentRepository
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(
	cfg *config.Config,
	studentRepo *repository.StudentRepository,
	classRepo *repository.ClassRepository,
	gradeRepo *repository.GradeRepository,
	parentRepo *repository.ParentRepository,
) *MetricsService {
	return &MetricsService{
		cfg:         cfg,
		studentRepo: studentRepo,
		classRepo:   classRepo,
		gradeRepo:   gradeRepo,
		parentRepo:  parentRepo,
	}
}

// StudentAverage returns the rounded mean of every grade the student
// has, across all classes. ok is false when the student has no grades;
// callers decide whether that renders as 0% or N/A.
func (s *MetricsService) StudentAverage(ctx context.Context, studentID int) (avg int, ok bool) {
	return meanScore(s.gradeRepo.ListByStudent(ctx, studentID))
}

// StudentClassAverage returns the rounded mean of the student's grades
// within one class only.
func (s *MetricsService) StudentClassAverage(ctx context.Context, studentID, classID int) (avg int, ok bool) {
	return meanScore(s.gradeRepo.ListByStudentClass(ctx, studentID, classID))
}

// ClassAggregates summarizes one class: enrolled head count and each
// enrolled student's class-scoped average (nil when the student has no
// grades in the class).
type ClassAggregates struct {
	StudentCount      int          `json:"student_count"`
	AveragePerStudent map[int]*int `json:"average_per_student"`
}

// ClassAggregates computes the aggregates for classID.
func (s *MetricsService) ClassAggregates(ctx context.Context, classID int) (*ClassAggregates, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}

	averages := make(map[int]*int, len(class.Students))
	for _, studentID := range class.Students {
		if avg, ok := s.StudentClassAverage(ctx, studentID, classID); ok {
			v := avg
			averages[studentID] = &v
		} else {
			averages[studentID] = nil
		}
	}

	return &ClassAggregates{
		StudentCount:      len(class.Students),
		AveragePerStudent: averages,
	}, nil
}

// TeacherLoad summarizes one teacher's workload.
type TeacherLoad struct {
	ClassCount         int `json:"class_count"`
	UniqueStudentCount int `json:"unique_student_count"`
	PendingGradeCount  int `json:"pending_grade_count"`
	TodayClassCount    int `json:"today_class_count"`
}

// TeacherLoad computes class count, the deduplicated student set size
// across the teacher's classes, and the number of classes whose recorded
// grades fall short of enrolled students × GradesPerStudent.
func (s *MetricsService) TeacherLoad(ctx context.Context, teacherID int) *TeacherLoad {
	classes := s.classRepo.ListByTeacher(ctx, teacherID)

	unique := make(map[int]struct{})
	pending := 0
	today := 0
	for _, c := range classes {
		for _, id := range c.Students {
			unique[id] = struct{}{}
		}
		if len(s.gradeRepo.ListByClass(ctx, c.ID)) < len(c.Students)*s.cfg.GradesPerStudent {
			pending++
		}
		if scheduledToday(c.Schedule) {
			today++
		}
	}

	return &TeacherLoad{
		ClassCount:         len(classes),
		UniqueStudentCount: len(unique),
		PendingGradeCount:  pending,
		TodayClassCount:    today,
	}
}

// ParentSummary summarizes a parent's children. The average is computed
// over the flattened set of all grades belonging to any child, so a
// child with more grades weighs more — it is not an average of
// per-child averages.
type ParentSummary struct {
	ChildCount            int `json:"child_count"`
	AverageAcrossChildren int `json:"average_across_children"`
}

// ParentSummary computes the summary for parentID.
func (s *MetricsService) ParentSummary(ctx context.Context, parentID int) (*ParentSummary, error) {
	parent, err := s.parentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	var all []model.Grade
	for _, childID := range parent.Children {
		all = append(all, s.gradeRepo.ListByStudent(ctx, childID)...)
	}
	avg, _ := meanScore(all) // no grades renders as 0%

	return &ParentSummary{
		ChildCount:            len(parent.Children),
		AverageAcrossChildren: avg,
	}, nil
}

// GradeLetter maps a percentage score to its letter grade.
func GradeLetter(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// meanScore returns the rounded arithmetic mean of the grades' scores.
// Half values round up (scores are never negative).
func meanScore(grades []model.Grade) (int, bool) {
	if len(grades) == 0 {
		return 0, false
	}
	sum := 0
	for _, g := range grades {
		sum += g.Score
	}
	return int(math.Round(float64(sum) / float64(len(grades)))), true
}

// scheduledToday mirrors the dashboard's fixed heuristic: a class meets
// "today" when its schedule names Mon or Wed.
func scheduledToday(schedule string) bool {
	return strings.Contains(schedule, "Mon") || strings.Contains(schedule, "Wed")
}
