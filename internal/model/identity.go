package model

// Identity is the synthetic user record attached to a session. It is
// derived from the selected role alone; credentials are never consulted.
// TeacherID/ParentID/StudentID scope queries for the matching roles and
// are zero for admin and principal.
type Identity struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	RoleLabel string `json:"role_label"`
	TeacherID int    `json:"teacher_id,omitempty"`
	ParentID  int    `json:"parent_id,omitempty"`
	StudentID int    `json:"student_id,omitempty"`
}

// LoginRequest is the payload for role-select login. The role field is
// deliberately not marked required: an absent role must surface as
// NO_ROLE_SELECTED, not a generic validation failure.
type LoginRequest struct {
	Role  Role   `json:"role" binding:"omitempty,oneof=admin principal teacher parent student"`
	Email string `json:"email" binding:"omitempty,email"`
	// Password is accepted and ignored, matching the role-select-only
	// login contract.
	Password string `json:"password"`
}
