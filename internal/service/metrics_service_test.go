package service

import (
	"context"
	"testing"

	"github.com/stemsi/schoolms-backend/internal/config"
	"github.com/stemsi/schoolms-backend/internal/repository"
	"github.com/stemsi/schoolms-backend/internal/store"
)

func newMetricsService(st *store.Store) *MetricsService {
	return NewMetricsService(
		&config.Config{GradesPerStudent: 3},
		repository.NewStudentRepository(st),
		repository.NewClassRepository(st),
		repository.NewGradeRepository(st),
		repository.NewParentRepository(st),
	)
}

func TestStudentAverageRoundsHalfUp(t *testing.T) {
	svc := newMetricsService(store.NewSeeded())

	// Student 1 has scores 85 and 92: mean 88.5 rounds to 89.
	avg, ok := svc.StudentAverage(context.Background(), 1)
	if !ok {
		t.Fatal("expected grades for student 1")
	}
	if avg != 89 {
		t.Fatalf("expected average 89, got %d", avg)
	}
}

func TestStudentAverageNoGrades(t *testing.T) {
	// Student 3 has one grade; delete it to leave none.
	st := store.NewSeeded()
	st.Grades.Delete(4)
	svc := newMetricsService(st)

	if _, ok := svc.StudentAverage(context.Background(), 3); ok {
		t.Fatal("expected ok=false for a student with no grades")
	}
}

func TestStudentClassAverageIsClassScoped(t *testing.T) {
	svc := newMetricsService(store.NewSeeded())

	avg, ok := svc.StudentClassAverage(context.Background(), 1, 101)
	if !ok || avg != 85 {
		t.Fatalf("expected class average 85, got %d (ok=%v)", avg, ok)
	}
	avg, ok = svc.StudentClassAverage(context.Background(), 1, 103)
	if !ok || avg != 92 {
		t.Fatalf("expected class average 92, got %d (ok=%v)", avg, ok)
	}
}

func TestClassAggregates(t *testing.T) {
	svc := newMetricsService(store.NewSeeded())

	agg, err := svc.ClassAggregates(context.Background(), 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.StudentCount != 2 {
		t.Fatalf("expected 2 enrolled students, got %d", agg.StudentCount)
	}
	if got := agg.AveragePerStudent[1]; got == nil || *got != 85 {
		t.Fatalf("expected student 1 average 85, got %v", got)
	}
	if got := agg.AveragePerStudent[3]; got == nil || *got != 78 {
		t.Fatalf("expected student 3 average 78, got %v", got)
	}
}

func TestClassAggregatesNilForUngraded(t *testing.T) {
	st := store.NewSeeded()
	st.Grades.Delete(4) // student 3's only grade in class 101
	svc := newMetricsService(st)

	agg, err := svc.ClassAggregates(context.Background(), 101)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agg.AveragePerStudent[3] != nil {
		t.Fatal("expected nil average for a student with no grades in the class")
	}
}

func TestTeacherLoad(t *testing.T) {
	svc := newMetricsService(store.NewSeeded())

	// Teacher 1 runs classes 101 (students 1, 3) and 102 (students 2, 4):
	// four distinct students, both classes short of 2x3 grades, and only
	// 101 meets on Mon/Wed.
	load := svc.TeacherLoad(context.Background(), 1)
	if load.ClassCount != 2 {
		t.Errorf("expected 2 classes, got %d", load.ClassCount)
	}
	if load.UniqueStudentCount != 4 {
		t.Errorf("expected 4 unique students, got %d", load.UniqueStudentCount)
	}
	if load.PendingGradeCount != 2 {
		t.Errorf("expected 2 pending classes, got %d", load.PendingGradeCount)
	}
	if load.TodayClassCount != 1 {
		t.Errorf("expected 1 class today, got %d", load.TodayClassCount)
	}
}

func TestTeacherLoadDeduplicatesSharedStudents(t *testing.T) {
	st := store.NewSeeded()
	st.EnrollStudent(1, 102) // student 1 now in both of teacher 1's classes
	svc := newMetricsService(st)

	load := svc.TeacherLoad(context.Background(), 1)
	if load.UniqueStudentCount != 4 {
		t.Fatalf("expected shared student counted once, got %d", load.UniqueStudentCount)
	}
}

func TestParentSummaryFlattensGrades(t *testing.T) {
	svc := newMetricsService(store.NewSeeded())

	// Children 1 and 2 hold scores 85, 92 and 88: mean 88.33 rounds to 88.
	summary, err := svc.ParentSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ChildCount != 2 {
		t.Errorf("expected 2 children, got %d", summary.ChildCount)
	}
	if summary.AverageAcrossChildren != 88 {
		t.Errorf("expected average 88, got %d", summary.AverageAcrossChildren)
	}
}

func TestParentSummaryUnknownParent(t *testing.T) {
	svc := newMetricsService(store.NewSeeded())

	if _, err := svc.ParentSummary(context.Background(), 999); err == nil {
		t.Fatal("expected error for unknown parent")
	}
}

func TestGradeLetter(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{70, "C"},
		{69, "D"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := GradeLetter(tt.score); got != tt.want {
			t.Errorf("GradeLetter(%d): expected %q, got %q", tt.score, tt.want, got)
		}
	}
}
