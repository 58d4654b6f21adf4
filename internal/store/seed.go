package store

import "github.com/stemsi/schoolms-backend/internal/model"

// NewSeeded returns a store loaded with the fixed demo dataset. The data
// is the complete relational sample the application starts from: user
// accounts (reference only), teachers, students, parents, classes,
// grades and announcements.
func NewSeeded() *Store {
	s := New()

	for _, u := range []model.User{
		{ID: 1, Email: "admin@school.edu", Password: "admin123", Name: "Admin User", Role: model.RoleAdmin},
		{ID: 2, Email: "principal@school.edu", Password: "principal123", Name: "Dr. Principal", Role: model.RolePrincipal},
		{ID: 3, Email: "teacher@school.edu", Password: "teacher123", Name: "Mr. Smith", Role: model.RoleTeacher, TeacherID: 1},
		{ID: 4, Email: "parent@school.edu", Password: "parent123", Name: "Mrs. Johnson", Role: model.RoleParent, ParentID: 1},
		{ID: 5, Email: "student@school.edu", Password: "student123", Name: "Johnny Johnson", Role: model.RoleStudent, StudentID: 1},
	} {
		s.Users.Seed(u)
	}

	for _, t := range []model.Teacher{
		{ID: 1, Name: "Mr. Smith", Subject: "Mathematics", Email: "smith@school.edu", Classes: []int{101, 102}},
		{ID: 2, Name: "Ms. Davis", Subject: "English", Email: "davis@school.edu", Classes: []int{103}},
	} {
		s.Teachers.Seed(t)
	}

	for _, st := range []model.Student{
		{ID: 1, Name: "Johnny Johnson", GradeLevel: "10th", Email: "johnny@school.edu", ParentID: 1, Classes: []int{101, 103}, EnrollmentDate: "2024-01-15"},
		{ID: 2, Name: "Sarah Johnson", GradeLevel: "8th", Email: "sarah@school.edu", ParentID: 1, Classes: []int{102}, EnrollmentDate: "2024-01-15"},
		{ID: 3, Name: "Mike Smith", GradeLevel: "9th", Email: "mike@school.edu", Classes: []int{101}, EnrollmentDate: "2024-01-16"},
		{ID: 4, Name: "Emily Davis", GradeLevel: "12th", Email: "emily@school.edu", Classes: []int{102, 103}, EnrollmentDate: "2024-01-16"},
	} {
		s.Students.Seed(st)
	}

	s.Parents.Seed(model.Parent{ID: 1, Name: "Mrs. Johnson", Email: "parent@school.edu", Children: []int{1, 2}})

	for _, c := range []model.Class{
		{ID: 101, Name: "Algebra I", TeacherID: 1, Students: []int{1, 3}, Schedule: "Mon/Wed 9:00 AM", Room: "101"},
		{ID: 102, Name: "Geometry", TeacherID: 1, Students: []int{2, 4}, Schedule: "Tue/Thu 10:00 AM", Room: "102"},
		{ID: 103, Name: "Literature", TeacherID: 2, Students: []int{1, 4}, Schedule: "Mon/Wed 11:00 AM", Room: "103"},
	} {
		s.Classes.Seed(c)
	}

	for _, g := range []model.Grade{
		{ID: 1, StudentID: 1, ClassID: 101, Assignment: "Quiz 1", Score: 85, Date: "2024-02-15"},
		{ID: 2, StudentID: 1, ClassID: 103, Assignment: "Essay", Score: 92, Date: "2024-02-16"},
		{ID: 3, StudentID: 2, ClassID: 102, Assignment: "Test 1", Score: 88, Date: "2024-02-15"},
		{ID: 4, StudentID: 3, ClassID: 101, Assignment: "Quiz 1", Score: 78, Date: "2024-02-15"},
		{ID: 5, StudentID: 4, ClassID: 102, Assignment: "Test 1", Score: 95, Date: "2024-02-15"},
		{ID: 6, StudentID: 4, ClassID: 103, Assignment: "Essay", Score: 89, Date: "2024-02-16"},
	} {
		s.Grades.Seed(g)
	}

	for _, a := range []model.Announcement{
		{ID: 1, Title: "Parent-Teacher Conference", Date: "2024-03-15", Content: "Schedule your meetings..."},
		{ID: 2, Title: "Spring Break", Date: "2024-03-20", Content: "School closed for spring break"},
	} {
		s.Announcements.Seed(a)
	}

	return s
}
