package model

// Student represents an enrolled student. Classes holds the ids of the
// classes the student attends; it is kept consistent with Class.Students.
// ParentID is zero when no parent account is linked.
type Student struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	GradeLevel     string `json:"grade"`
	Email          string `json:"email"`
	ParentID       int    `json:"parent_id,omitempty"`
	Classes        []int  `json:"classes"`
	EnrollmentDate string `json:"enrollment_date"`
}

// GradeLevels are the grade options offered on the add/edit forms.
// Free-text levels from seeded data (e.g. "8th") remain valid.
var GradeLevels = []string{"9th", "10th", "11th", "12th"}

// CreateStudentRequest is the payload for adding a student. New students
// start with no class enrollments.
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	GradeLevel     string `json:"grade" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	EnrollmentDate string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateStudentRequest is the payload for editing an existing student.
// Class enrollment is not editable through this operation.
type UpdateStudentRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	GradeLevel     string `json:"grade" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	EnrollmentDate string `json:"enrollment_date" binding:"omitempty,datetime=2006-01-02"`
}
