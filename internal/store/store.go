package store

import "github.com/stemsi/schoolms-backend/internal/model"

// Store owns the whole in-memory dataset for one running instance. It is
// passed explicitly to repositories rather than living in a package-level
// singleton so tests and sessions can run against isolated datasets.
// Nothing is ever persisted; the dataset lives and dies with the process.
type Store struct {
	Users         *Collection[model.User]
	Students      *Collection[model.Student]
	Teachers      *Collection[model.Teacher]
	Classes       *Collection[model.Class]
	Grades        *Collection[model.Grade]
	Parents       *Collection[model.Parent]
	Announcements *Collection[model.Announcement]
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Users: NewCollection(
			func(u model.User) int { return u.ID },
			func(u *model.User, id int) { u.ID = id },
		),
		Students: NewCollection(
			func(s model.Student) int { return s.ID },
			func(s *model.Student, id int) { s.ID = id },
		),
		Teachers: NewCollection(
			func(t model.Teacher) int { return t.ID },
			func(t *model.Teacher, id int) { t.ID = id },
		),
		Classes: NewCollection(
			func(c model.Class) int { return c.ID },
			func(c *model.Class, id int) { c.ID = id },
		),
		Grades: NewCollection(
			func(g model.Grade) int { return g.ID },
			func(g *model.Grade, id int) { g.ID = id },
		),
		Parents: NewCollection(
			func(p model.Parent) int { return p.ID },
			func(p *model.Parent, id int) { p.ID = id },
		),
		Announcements: NewCollection(
			func(a model.Announcement) int { return a.ID },
			func(a *model.Announcement, id int) { a.ID = id },
		),
	}
}

// EnrollStudent links a student and a class on both sides of the
// many-to-many relation. It is a no-op side for ids already linked.
func (s *Store) EnrollStudent(studentID, classID int) {
	s.Students.Update(studentID, func(st *model.Student) {
		for _, id := range st.Classes {
			if id == classID {
				return
			}
		}
		st.Classes = append(st.Classes, classID)
	})
	s.Classes.Update(classID, func(c *model.Class) {
		for _, id := range c.Students {
			if id == studentID {
				return
			}
		}
		c.Students = append(c.Students, studentID)
	})
}
