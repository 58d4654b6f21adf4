package model

// Grade is a recorded score for one assignment, joining a student and a
// class. At most one Grade exists per (student, class, assignment)
// triple; saving against an existing triple overwrites score and date.
type Grade struct {
	ID         int    `json:"id"`
	StudentID  int    `json:"student_id"`
	ClassID    int    `json:"class_id"`
	Assignment string `json:"assignment"`
	Score      int    `json:"score"`
	Date       string `json:"date"`
}

// SaveGradeRequest is the payload for recording a single grade. Score is
// a pointer so a missing score is distinguishable from zero.
type SaveGradeRequest struct {
	StudentID  int    `json:"student_id" binding:"required"`
	ClassID    int    `json:"class_id" binding:"required"`
	Assignment string `json:"assignment"`
	Score      *int   `json:"score" binding:"required"`
	Date       string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// SaveAllGradesRequest records one assignment's scores for a whole class.
// Scores maps student id to score; enrolled students absent from the map
// are skipped (partial submission is allowed).
type SaveAllGradesRequest struct {
	Assignment string      `json:"assignment"`
	Date       string      `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Scores     map[int]int `json:"scores" binding:"required"`
}
