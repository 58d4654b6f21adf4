package model

// Class represents a scheduled class group. Students lists enrolled
// student ids and mirrors Student.Classes.
type Class struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	TeacherID int   `json:"teacher_id"`
	Students []int  `json:"students"`
	Schedule string `json:"schedule"`
	Room     string `json:"room"`
}
