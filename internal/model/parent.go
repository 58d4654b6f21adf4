package model

// Parent represents a guardian account. Children lists the ids of the
// students they are responsible for.
type Parent struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Children []int  `json:"children"`
}
