package session

import (
	"testing"

	"github.com/stemsi/schoolms-backend/internal/model"
)

func TestManagerStartsLoggedOut(t *testing.T) {
	m := NewManager()

	if m.Current() != nil {
		t.Fatal("expected no identity on a fresh manager")
	}
	view, params := m.CurrentView()
	if view != "dashboard" || params != nil {
		t.Fatalf("expected dashboard with no params, got %q %v", view, params)
	}
}

func TestLoginResetsNavigation(t *testing.T) {
	m := NewManager()
	m.RecordNavigation("student-list", map[string]string{"q": "john"})

	m.Login(&model.Identity{ID: 3, Role: model.RoleTeacher})

	view, params := m.CurrentView()
	if view != "dashboard" || params != nil {
		t.Fatalf("expected navigation reset to dashboard, got %q %v", view, params)
	}
	if m.Current() == nil || m.Current().Role != model.RoleTeacher {
		t.Fatal("expected the teacher identity to be active")
	}
}

func TestLoginReplacesPreviousIdentity(t *testing.T) {
	m := NewManager()
	m.Login(&model.Identity{ID: 1, Role: model.RoleAdmin})
	m.Login(&model.Identity{ID: 5, Role: model.RoleStudent})

	if got := m.Current().Role; got != model.RoleStudent {
		t.Fatalf("expected student identity, got %q", got)
	}
}

func TestHistoryIsAppendOnly(t *testing.T) {
	m := NewManager()
	m.Login(&model.Identity{ID: 1, Role: model.RoleAdmin})

	m.RecordNavigation("student-list", nil)
	m.RecordNavigation("student-details", map[string]string{"id": "1"})
	m.RecordNavigation("dashboard", nil)

	history := m.History()
	if len(history) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(history))
	}
	wantViews := []string{"student-list", "student-details", "dashboard"}
	for i, want := range wantViews {
		if history[i].View != want {
			t.Errorf("entry %d: expected view %q, got %q", i, want, history[i].View)
		}
	}
	if history[1].Params["id"] != "1" {
		t.Errorf("entry 1: expected params id=1, got %v", history[1].Params)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	m := NewManager()
	m.Login(&model.Identity{ID: 1, Role: model.RoleAdmin})
	m.RecordNavigation("student-list", nil)

	m.Logout()

	if m.Current() != nil {
		t.Fatal("expected no identity after logout")
	}
	if view, _ := m.CurrentView(); view != "dashboard" {
		t.Fatalf("expected dashboard after logout, got %q", view)
	}
	if len(m.History()) != 0 {
		t.Fatal("expected history cleared after logout")
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	m := NewManager()
	m.RecordNavigation("dashboard", nil)

	got := m.History()
	got[0].View = "mutated"

	if m.History()[0].View != "dashboard" {
		t.Fatal("mutating the returned slice changed internal history")
	}
}
