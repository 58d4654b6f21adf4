package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/repository"
	"github.com/stemsi/schoolms-backend/internal/session"
	"github.com/stemsi/schoolms-backend/internal/store"
)

func newViewService(st *store.Store, sessions *session.Manager) *ViewService {
	return NewViewService(
		sessions,
		newMetricsService(st),
		repository.NewStudentRepository(st),
		repository.NewTeacherRepository(st),
		repository.NewClassRepository(st),
		repository.NewGradeRepository(st),
		repository.NewParentRepository(st),
		repository.NewAnnouncementRepository(st),
		zerolog.Nop(),
	)
}

func adminIdentity() *model.Identity {
	return &model.Identity{ID: 1, Role: model.RoleAdmin, Name: "Admin User"}
}

func TestNavigateUnknownViewFallsBackToDashboard(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	for _, name := range []string{"mystudents", "schedule", "no-such-view", ""} {
		payload := svc.Navigate(context.Background(), adminIdentity(), name, nil)
		if payload.View != ViewDashboard {
			t.Errorf("%q: expected dashboard fallback, got %q", name, payload.View)
		}
		if payload.Error != nil {
			t.Errorf("%q: fallback must not be an error view", name)
		}
	}
}

func TestNavigateRecordsHistory(t *testing.T) {
	sessions := session.NewManager()
	svc := newViewService(store.NewSeeded(), sessions)

	svc.Navigate(context.Background(), adminIdentity(), ViewStudentList, nil)
	svc.Navigate(context.Background(), adminIdentity(), ViewStudentDetails, map[string]string{"id": "1"})

	history := sessions.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].View != ViewStudentList || history[1].View != ViewStudentDetails {
		t.Fatalf("unexpected history order: %+v", history)
	}
}

func TestAdminAndPrincipalShareDashboard(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	for _, role := range []model.Role{model.RoleAdmin, model.RolePrincipal} {
		payload := svc.ResolveDashboard(context.Background(), &model.Identity{ID: 1, Role: role})
		data, ok := payload.Data.(*AdminDashboard)
		if !ok {
			t.Fatalf("%s: expected AdminDashboard payload, got %T", role, payload.Data)
		}
		if data.TotalStudents != 4 || data.TotalTeachers != 2 || data.TotalClasses != 3 {
			t.Errorf("%s: unexpected totals: %+v", role, data)
		}
		if data.MonthlyRevenue != "$45,000" {
			t.Errorf("%s: unexpected revenue %q", role, data.MonthlyRevenue)
		}
	}
}

func TestTeacherDashboard(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.ResolveDashboard(context.Background(), &model.Identity{ID: 3, Role: model.RoleTeacher, TeacherID: 1})
	data, ok := payload.Data.(*TeacherDashboard)
	if !ok {
		t.Fatalf("expected TeacherDashboard payload, got %T", payload.Data)
	}
	if len(data.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(data.Classes))
	}
	if data.Load == nil || data.Load.UniqueStudentCount != 4 {
		t.Fatalf("unexpected load: %+v", data.Load)
	}
	if len(data.RecentGrades) == 0 || len(data.RecentGrades) > 3 {
		t.Fatalf("expected up to 3 recent grades, got %d", len(data.RecentGrades))
	}
}

func TestParentDashboardChildAverages(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.ResolveDashboard(context.Background(), &model.Identity{ID: 4, Role: model.RoleParent, ParentID: 1})
	data, ok := payload.Data.(*ParentDashboard)
	if !ok {
		t.Fatalf("expected ParentDashboard payload, got %T", payload.Data)
	}
	if len(data.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(data.Children))
	}
	if data.Children[0].Average != 89 || data.Children[1].Average != 88 {
		t.Fatalf("unexpected child averages: %+v", data.Children)
	}
	if len(data.Announcements) != 2 {
		t.Fatalf("expected 2 announcements, got %d", len(data.Announcements))
	}
}

func TestStudentDashboardGroupsGradesByClass(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.ResolveDashboard(context.Background(), &model.Identity{ID: 5, Role: model.RoleStudent, StudentID: 1})
	data, ok := payload.Data.(*StudentDashboard)
	if !ok {
		t.Fatalf("expected StudentDashboard payload, got %T", payload.Data)
	}
	if data.Average != 89 {
		t.Errorf("expected average 89, got %d", data.Average)
	}
	if len(data.GradesByClass) != 2 {
		t.Fatalf("expected grades in 2 classes, got %d", len(data.GradesByClass))
	}
	if data.GradesByClass[0].ClassName != "Algebra I" || data.GradesByClass[1].ClassName != "Literature" {
		t.Fatalf("unexpected class grouping order: %+v", data.GradesByClass)
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.ResolveDashboard(context.Background(), &model.Identity{ID: 9, Role: "ghost"})
	if payload.Error == nil || payload.Error.Code != "INVALID_ROLE" {
		t.Fatalf("expected INVALID_ROLE error view, got %+v", payload)
	}
}

func TestStudentListViewFilters(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.Navigate(context.Background(), adminIdentity(), ViewStudentList, map[string]string{"q": "johnson"})
	data := payload.Data.(*StudentListView)
	if len(data.Students) != 2 {
		t.Fatalf("expected 2 Johnsons, got %d", len(data.Students))
	}

	payload = svc.Navigate(context.Background(), adminIdentity(), ViewStudentList, map[string]string{"grade": "12th"})
	data = payload.Data.(*StudentListView)
	if len(data.Students) != 1 || data.Students[0].Name != "Emily Davis" {
		t.Fatalf("unexpected grade filter result: %+v", data.Students)
	}
}

func TestStudentDetailsView(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.Navigate(context.Background(), adminIdentity(), ViewStudentDetails, map[string]string{"id": "1"})
	data, ok := payload.Data.(*StudentDetailsView)
	if !ok {
		t.Fatalf("expected StudentDetailsView payload, got %T", payload.Data)
	}
	if data.Average != 89 || data.Letter != "B" || !data.HasGrades {
		t.Fatalf("unexpected summary: avg=%d letter=%q has=%v", data.Average, data.Letter, data.HasGrades)
	}
	if len(data.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(data.Classes))
	}
	if data.Classes[0].TeacherName != "Mr. Smith" {
		t.Fatalf("expected teacher join, got %q", data.Classes[0].TeacherName)
	}
}

func TestStudentDetailsViewMissingStudent(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	for name, params := range map[string]map[string]string{
		"unknown id":     {"id": "999"},
		"non-numeric id": {"id": "abc"},
		"no id":          {},
	} {
		payload := svc.Navigate(context.Background(), adminIdentity(), ViewStudentDetails, params)
		if payload.Error == nil {
			t.Errorf("%s: expected inline error view", name)
			continue
		}
		if payload.Error.Code != "NOT_FOUND" || payload.Error.Recovery != ViewDashboard {
			t.Errorf("%s: unexpected error payload: %+v", name, payload.Error)
		}
	}
}

func TestGradeEntryViewPrefillsExistingScores(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.Navigate(context.Background(), adminIdentity(), ViewGradeEntry, map[string]string{"class_id": "103"})
	data, ok := payload.Data.(*GradeEntryView)
	if !ok {
		t.Fatalf("expected GradeEntryView payload, got %T", payload.Data)
	}
	if len(data.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(data.Rows))
	}
	// Students 1 and 4 each have one Essay grade in Literature.
	if data.Rows[0].ExistingScore == nil || *data.Rows[0].ExistingScore != 92 {
		t.Errorf("row 0: unexpected prefill %v", data.Rows[0].ExistingScore)
	}
	if data.Rows[1].ExistingScore == nil || *data.Rows[1].ExistingScore != 89 {
		t.Errorf("row 1: unexpected prefill %v", data.Rows[1].ExistingScore)
	}
}

func TestClassRosterViewClassScopedAverages(t *testing.T) {
	st := store.NewSeeded()
	st.Grades.Delete(4) // student 3 now has no grades in class 101
	svc := newViewService(st, session.NewManager())

	payload := svc.Navigate(context.Background(), adminIdentity(), ViewClassRoster, map[string]string{"id": "101"})
	data, ok := payload.Data.(*ClassRosterView)
	if !ok {
		t.Fatalf("expected ClassRosterView payload, got %T", payload.Data)
	}
	if data.TeacherName != "Mr. Smith" || data.StudentCount != 2 {
		t.Fatalf("unexpected roster header: %+v", data)
	}
	if data.Rows[0].Average == nil || *data.Rows[0].Average != 85 {
		t.Errorf("row 0: expected class average 85, got %v", data.Rows[0].Average)
	}
	if data.Rows[1].Average != nil {
		t.Errorf("row 1: expected nil average for ungraded student, got %v", data.Rows[1].Average)
	}
}

func TestEditStudentViewLoadsStudent(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.Navigate(context.Background(), adminIdentity(), ViewEditStudent, map[string]string{"id": "2"})
	data, ok := payload.Data.(*StudentFormView)
	if !ok {
		t.Fatalf("expected StudentFormView payload, got %T", payload.Data)
	}
	if data.Student == nil || data.Student.Name != "Sarah Johnson" {
		t.Fatalf("unexpected student: %+v", data.Student)
	}
}

func TestAddStudentViewHasBlankForm(t *testing.T) {
	svc := newViewService(store.NewSeeded(), session.NewManager())

	payload := svc.Navigate(context.Background(), adminIdentity(), ViewAddStudent, nil)
	data := payload.Data.(*StudentFormView)
	if data.Student != nil {
		t.Fatal("add form must not carry a student")
	}
	if len(data.GradeLevels) == 0 || data.DefaultDate == "" {
		t.Fatalf("expected form options, got %+v", data)
	}
}

func TestDeletedStudentLeavesDanglingGrades(t *testing.T) {
	st := store.NewSeeded()
	svc := newViewService(st, session.NewManager())
	st.Students.Delete(3)

	// The roster still lists the dangling id without a name; grades stay.
	payload := svc.Navigate(context.Background(), adminIdentity(), ViewClassRoster, map[string]string{"id": "101"})
	data := payload.Data.(*ClassRosterView)
	if data.StudentCount != 2 {
		t.Fatalf("expected roster head count unchanged, got %d", data.StudentCount)
	}
	if len(data.Rows) != 1 {
		t.Fatalf("expected only the surviving student joined, got %d rows", len(data.Rows))
	}
	if st.Grades.Len() != 6 {
		t.Fatalf("expected grades untouched, got %d", st.Grades.Len())
	}
}
