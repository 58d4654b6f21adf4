package model

// Role identifies which of the five fixed user roles a session belongs to.
// The set is closed: every dashboard and data-scoping decision dispatches
// on it exhaustively.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePrincipal Role = "principal"
	RoleTeacher   Role = "teacher"
	RoleParent    Role = "parent"
	RoleStudent   Role = "student"
)

// AllRoles lists every valid role in display order.
var AllRoles = []Role{RoleAdmin, RolePrincipal, RoleTeacher, RoleParent, RoleStudent}

// Valid reports whether r is one of the five known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePrincipal, RoleTeacher, RoleParent, RoleStudent:
		return true
	}
	return false
}

// DisplayName returns the human-readable badge label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RolePrincipal:
		return "Principal"
	case RoleTeacher:
		return "Teacher"
	case RoleParent:
		return "Parent"
	case RoleStudent:
		return "Student"
	}
	return string(r)
}

// MenuItem is one entry of a role's sidebar menu.
type MenuItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
	Tab  string `json:"tab"`
}

// Menu returns the sidebar menu for the role. Tabs other than the deep
// views resolve back to the role dashboard.
func (r Role) Menu() []MenuItem {
	switch r {
	case RoleAdmin:
		return []MenuItem{
			{Icon: "tachometer-alt", Text: "Dashboard", Tab: "dashboard"},
			{Icon: "user-graduate", Text: "Students", Tab: "students"},
			{Icon: "chalkboard-teacher", Text: "Teachers", Tab: "teachers"},
			{Icon: "book", Text: "Classes", Tab: "classes"},
			{Icon: "star", Text: "Grades", Tab: "grades"},
			{Icon: "chart-line", Text: "Reports", Tab: "reports"},
			{Icon: "users", Text: "Parents", Tab: "parents"},
			{Icon: "cog", Text: "Settings", Tab: "settings"},
		}
	case RolePrincipal:
		return []MenuItem{
			{Icon: "tachometer-alt", Text: "Dashboard", Tab: "dashboard"},
			{Icon: "user-graduate", Text: "Students", Tab: "students"},
			{Icon: "chalkboard-teacher", Text: "Teachers", Tab: "teachers"},
			{Icon: "book", Text: "Classes", Tab: "classes"},
			{Icon: "chart-line", Text: "Reports", Tab: "reports"},
			{Icon: "calendar-alt", Text: "Schedule", Tab: "schedule"},
		}
	case RoleTeacher:
		return []MenuItem{
			{Icon: "tachometer-alt", Text: "Dashboard", Tab: "dashboard"},
			{Icon: "users", Text: "My Students", Tab: "mystudents"},
			{Icon: "book-open", Text: "My Classes", Tab: "myclasses"},
			{Icon: "star", Text: "Grade Entry", Tab: "gradeentry"},
			{Icon: "calendar-alt", Text: "Schedule", Tab: "schedule"},
			{Icon: "chart-line", Text: "Reports", Tab: "reports"},
		}
	case RoleParent:
		return []MenuItem{
			{Icon: "tachometer-alt", Text: "Dashboard", Tab: "dashboard"},
			{Icon: "child", Text: "My Children", Tab: "children"},
			{Icon: "star", Text: "Grades", Tab: "grades"},
			{Icon: "calendar-alt", Text: "Events", Tab: "events"},
			{Icon: "comment", Text: "Messages", Tab: "messages"},
		}
	case RoleStudent:
		return []MenuItem{
			{Icon: "tachometer-alt", Text: "Dashboard", Tab: "dashboard"},
			{Icon: "star", Text: "My Grades", Tab: "mygrades"},
			{Icon: "book", Text: "Classes", Tab: "classes"},
			{Icon: "tasks", Text: "Assignments", Tab: "assignments"},
			{Icon: "calendar-alt", Text: "Schedule", Tab: "schedule"},
		}
	}
	return nil
}

// TabDisplayName returns the page title for a navigation tab.
func TabDisplayName(tab string) string {
	names := map[string]string{
		"dashboard":  "Dashboard",
		"students":   "Student Management",
		"teachers":   "Teacher Management",
		"classes":    "Class Management",
		"grades":     "Grade Management",
		"reports":    "Reports",
		"mystudents": "My Students",
		"myclasses":  "My Classes",
		"gradeentry": "Grade Entry",
		"children":   "My Children",
		"mygrades":   "My Grades",
		"assignments": "Assignments",
		"schedule":   "Schedule",
		"events":     "Events",
		"messages":   "Messages",
		"parents":    "Parent Management",
		"settings":   "Settings",
	}
	if name, ok := names[tab]; ok {
		return name
	}
	return tab
}
