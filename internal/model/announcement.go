package model

// Announcement is a school-wide notice. Announcements are read-only
// reference data; no mutation operations exist for them.
type Announcement struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
