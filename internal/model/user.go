package model

// User is a seeded account record. Kept for reference only: login never
// consults it, identities are synthesized from the selected role.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	TeacherID int    `json:"teacher_id,omitempty"`
	ParentID  int    `json:"parent_id,omitempty"`
	StudentID int    `json:"student_id,omitempty"`
}
