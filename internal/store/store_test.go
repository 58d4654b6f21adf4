package store

import (
	"testing"

	"github.com/stemsi/schoolms-backend/internal/model"
)

func TestCollectionInsertAssignsSequentialIDs(t *testing.T) {
	s := New()

	first := s.Students.Insert(model.Student{Name: "A"})
	second := s.Students.Insert(model.Student{Name: "B"})

	if first != 1 || second != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first, second)
	}
}

func TestCollectionInsertUsesMaxPlusOne(t *testing.T) {
	s := New()
	s.Classes.Seed(model.Class{ID: 101, Name: "Algebra I"})
	s.Classes.Seed(model.Class{ID: 103, Name: "Literature"})

	id := s.Classes.Insert(model.Class{Name: "Biology"})
	if id != 104 {
		t.Fatalf("expected id 104, got %d", id)
	}
}

func TestCollectionDeleteThenFind(t *testing.T) {
	s := New()
	s.Students.Insert(model.Student{Name: "A"})
	s.Students.Insert(model.Student{Name: "B"})

	if !s.Students.Delete(1) {
		t.Fatal("delete reported no record")
	}
	if _, ok := s.Students.Find(1); ok {
		t.Fatal("found student after delete")
	}
	if s.Students.Len() != 1 {
		t.Fatalf("expected 1 student left, got %d", s.Students.Len())
	}

	// A deleted middle id is not reused while a higher id exists.
	if id := s.Students.Insert(model.Student{Name: "C"}); id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
}

func TestCollectionFilterKeepsInsertionOrder(t *testing.T) {
	s := New()
	for _, name := range []string{"A", "B", "C"} {
		s.Students.Insert(model.Student{Name: name, GradeLevel: "10th"})
	}
	s.Students.Insert(model.Student{Name: "D", GradeLevel: "9th"})

	got := s.Students.Filter(func(st model.Student) bool { return st.GradeLevel == "10th" })
	if len(got) != 3 {
		t.Fatalf("expected 3 students, got %d", len(got))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got[i].Name != want {
			t.Errorf("position %d: expected %q, got %q", i, want, got[i].Name)
		}
	}
}

func TestCollectionUpdate(t *testing.T) {
	s := New()
	id := s.Students.Insert(model.Student{Name: "A", Email: "a@school.edu"})

	ok := s.Students.Update(id, func(st *model.Student) { st.Email = "new@school.edu" })
	if !ok {
		t.Fatal("update reported no record")
	}

	st, _ := s.Students.Find(id)
	if st.Email != "new@school.edu" {
		t.Fatalf("expected updated email, got %q", st.Email)
	}
}

func TestEnrollStudentLinksBothSides(t *testing.T) {
	s := New()
	s.Students.Seed(model.Student{ID: 1, Name: "A"})
	s.Classes.Seed(model.Class{ID: 101, Name: "Algebra I"})

	s.EnrollStudent(1, 101)
	s.EnrollStudent(1, 101) // idempotent

	st, _ := s.Students.Find(1)
	if len(st.Classes) != 1 || st.Classes[0] != 101 {
		t.Fatalf("expected student classes [101], got %v", st.Classes)
	}
	c, _ := s.Classes.Find(101)
	if len(c.Students) != 1 || c.Students[0] != 1 {
		t.Fatalf("expected class students [1], got %v", c.Students)
	}
}

func TestNewSeededDataset(t *testing.T) {
	s := NewSeeded()

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"users", s.Users.Len(), 5},
		{"students", s.Students.Len(), 4},
		{"teachers", s.Teachers.Len(), 2},
		{"classes", s.Classes.Len(), 3},
		{"grades", s.Grades.Len(), 6},
		{"parents", s.Parents.Len(), 1},
		{"announcements", s.Announcements.Len(), 2},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, c.got)
		}
	}

	// A fresh grade continues after the seeded ids.
	if id := s.Grades.Insert(model.Grade{StudentID: 1, ClassID: 101, Assignment: "Quiz 2", Score: 80}); id != 7 {
		t.Errorf("expected next grade id 7, got %d", id)
	}
}
