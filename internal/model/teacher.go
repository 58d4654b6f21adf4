package model

// Teacher represents a teaching staff member. Classes lists the ids of
// the classes they teach; each class has exactly one teacher.
type Teacher struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Email   string `json:"email"`
	Classes []int  `json:"classes"`
}
