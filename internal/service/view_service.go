package service

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/schoolms-backend/internal/model"
	"github.com/stemsi/schoolms-backend/internal/repository"
	"github.com/stemsi/schoolms-backend/internal/session"
)

// View names the router resolves. Any other name — including the
// role-specific sidebar tabs (mystudents, myclasses, mygrades, children,
// schedule, ...) — falls back to the role dashboard, so navigation
// always renders something.
const (
	ViewDashboard      = "dashboard"
	ViewStudentList    = "student-list"
	ViewStudentDetails = "student-details"
	ViewAddStudent     = "add-student"
	ViewEditStudent    = "edit-student"
	ViewGradeEntry     = "grade-entry"
	ViewClassRoster    = "class-roster"
)

// ViewError is the inline error payload a view resolves to when a
// referenced record is missing. Recovery names the single recovery
// action the display layer offers.
type ViewError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Recovery string `json:"recovery"`
}

// ViewPayload is what every navigation resolves to: the view tag, its
// parameters and the role-scoped data a display layer renders. The core
// never formats markup.
type ViewPayload struct {
	View   string            `json:"view"`
	Title  string            `json:"title"`
	Params map[string]string `json:"params,omitempty"`
	Data   any               `json:"data,omitempty"`
	Error  *ViewError        `json:"error,omitempty"`
}

// ViewService resolves navigation requests against the current store
// state. It records every navigation in the session's history before
// resolving.
type ViewService struct {
	sessions         *session.Manager
	metrics          *MetricsService
	studentRepo      *repository.StudentRepository
	teacherRepo      *repository.TeacherRepository
	classRepo        *repository.ClassRepository
	gradeRepo        *repository.GradeRepository
	parentRepo       *repository.ParentRepository
	announcementRepo *repository.AnnouncementRepository
	log              zerolog.Logger
}

// NewViewService creates a new ViewService.
func NewViewService(
	sessions *session.Manager,
	metrics *MetricsService,
	studentRepo *repository.StudentRepository,
	teacherRepo *repository.TeacherRepository,
	classRepo *repository.ClassRepository,
	gradeRepo *repository.GradeRepository,
	parentRepo *repository.ParentRepository,
	announcementRepo *repository.AnnouncementRepository,
	log zerolog.Logger,
) *ViewService {
	return &ViewService{
		sessions:         sessions,
		metrics:          metrics,
		studentRepo:      studentRepo,
		teacherRepo:      teacherRepo,
		classRepo:        classRepo,
		gradeRepo:        gradeRepo,
		parentRepo:       parentRepo,
		announcementRepo: announcementRepo,
		log:              log,
	}
}

// Navigate records the navigation and resolves the named view. Missing
// records resolve to an inline error payload, never a hard failure.
func (s *ViewService) Navigate(ctx context.Context, identity *model.Identity, view string, params map[string]string) *ViewPayload {
	s.sessions.RecordNavigation(view, params)
	s.log.Debug().Str("view", view).Interface("params", params).Msg("navigating")

	switch view {
	case ViewStudentList:
		return s.studentListView(ctx, params)
	case ViewStudentDetails:
		return s.studentDetailsView(ctx, params)
	case ViewAddStudent:
		return s.addStudentView(params)
	case ViewEditStudent:
		return s.editStudentView(ctx, params)
	case ViewGradeEntry:
		return s.gradeEntryView(ctx, params)
	case ViewClassRoster:
		return s.classRosterView(ctx, params)
	default:
		return s.ResolveDashboard(ctx, identity)
	}
}

// ─── Dashboards ─────────────────────────────────────────────────────

// ActivityItem is one row of a dashboard activity or notice feed.
type ActivityItem struct {
	Icon   string `json:"icon"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// AdminDashboard is the payload shared by admin and principal.
type AdminDashboard struct {
	Menu             []model.MenuItem `json:"menu"`
	TotalStudents    int              `json:"total_students"`
	TotalTeachers    int              `json:"total_teachers"`
	TotalClasses     int              `json:"total_classes"`
	MonthlyRevenue   string           `json:"monthly_revenue"`
	PendingApprovals []ActivityItem   `json:"pending_approvals"`
	RecentActivity   []ActivityItem   `json:"recent_activity"`
}

// TeacherClassSummary is one class row on the teacher dashboard.
type TeacherClassSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Schedule     string `json:"schedule"`
	Room         string `json:"room"`
	StudentCount int    `json:"student_count"`
}

// RecentGrade is one recently recorded grade on the teacher dashboard.
type RecentGrade struct {
	StudentName string `json:"student_name"`
	Assignment  string `json:"assignment"`
	ClassName   string `json:"class_name"`
	Score       int    `json:"score"`
}

// TeacherDashboard is the teacher's dashboard payload.
type TeacherDashboard struct {
	Menu         []model.MenuItem      `json:"menu"`
	Teacher      *model.Teacher        `json:"teacher"`
	Load         *TeacherLoad          `json:"load"`
	Classes      []TeacherClassSummary `json:"classes"`
	RecentGrades []RecentGrade         `json:"recent_grades"`
}

// ChildProgress is one child row on the parent dashboard. Average is 0
// when the child has no grades (dashboard context renders 0%).
type ChildProgress struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	GradeLevel string `json:"grade"`
	Average    int    `json:"average"`
}

// ParentDashboard is the parent's dashboard payload.
type ParentDashboard struct {
	Menu              []model.MenuItem     `json:"menu"`
	Parent            *model.Parent        `json:"parent"`
	Summary           *ParentSummary       `json:"summary"`
	NotificationCount int                  `json:"notification_count"`
	UpcomingEvents    int                  `json:"upcoming_events"`
	Children          []ChildProgress      `json:"children"`
	Announcements     []model.Announcement `json:"announcements"`
}

// GradeLine is one graded assignment with its letter grade.
type GradeLine struct {
	Assignment string `json:"assignment"`
	Score      int    `json:"score"`
	Letter     string `json:"letter"`
	Date       string `json:"date,omitempty"`
}

// ClassGrades groups grade lines under the class name.
type ClassGrades struct {
	ClassName string      `json:"class_name"`
	Grades    []GradeLine `json:"grades"`
}

// StudentDashboard is the student's dashboard payload.
type StudentDashboard struct {
	Menu                []model.MenuItem `json:"menu"`
	Student             *model.Student   `json:"student"`
	Average             int              `json:"average"`
	ClassCount          int              `json:"class_count"`
	PendingAssignments  int              `json:"pending_assignments"`
	AttendanceRate      string           `json:"attendance_rate"`
	GradesByClass       []ClassGrades    `json:"grades_by_class"`
	UpcomingAssignments []ActivityItem   `json:"upcoming_assignments"`
}

// ResolveDashboard dispatches purely on the identity's role. Admin and
// principal share one builder; teacher, parent and student each have
// their own. An unknown role is unreachable through login but fails
// closed here anyway.
func (s *ViewService) ResolveDashboard(ctx context.Context, identity *model.Identity) *ViewPayload {
	switch identity.Role {
	case model.RoleAdmin, model.RolePrincipal:
		return s.adminDashboard(ctx, identity)
	case model.RoleTeacher:
		return s.teacherDashboard(ctx, identity)
	case model.RoleParent:
		return s.parentDashboard(ctx, identity)
	case model.RoleStudent:
		return s.studentDashboard(ctx, identity)
	default:
		return errorView(ViewDashboard, nil, "INVALID_ROLE", "Unknown role")
	}
}

func (s *ViewService) adminDashboard(ctx context.Context, identity *model.Identity) *ViewPayload {
	data := &AdminDashboard{
		Menu:           identity.Role.Menu(),
		TotalStudents:  s.studentRepo.Count(ctx),
		TotalTeachers:  s.teacherRepo.Count(ctx),
		TotalClasses:   s.classRepo.Count(ctx),
		MonthlyRevenue: "$45,000",
		PendingApprovals: []ActivityItem{
			{Icon: "user-plus", Title: "3 New parent applications"},
			{Icon: "file-alt", Title: "5 Grade change requests"},
		},
		RecentActivity: []ActivityItem{
			{Icon: "user-plus", Title: "New student enrolled: Sarah Johnson", Detail: "2 minutes ago"},
			{Icon: "edit", Title: "Grade change requested for Johnny Johnson", Detail: "1 hour ago"},
		},
	}
	return dashboardView(data)
}

func (s *ViewService) teacherDashboard(ctx context.Context, identity *model.Identity) *ViewPayload {
	teacher, err := s.teacherRepo.GetByID(ctx, identity.TeacherID)
	if err != nil {
		return notFoundView(ViewDashboard, nil, "Teacher not found")
	}

	classes := s.classRepo.ListByTeacher(ctx, teacher.ID)
	summaries := make([]TeacherClassSummary, 0, len(classes))
	var recorded []model.Grade
	for _, c := range classes {
		summaries = append(summaries, TeacherClassSummary{
			ID:           c.ID,
			Name:         c.Name,
			Schedule:     c.Schedule,
			Room:         c.Room,
			StudentCount: len(c.Students),
		})
		recorded = append(recorded, s.gradeRepo.ListByClass(ctx, c.ID)...)
	}

	// Last three grades recorded across the teacher's classes.
	if len(recorded) > 3 {
		recorded = recorded[len(recorded)-3:]
	}
	recent := make([]RecentGrade, 0, len(recorded))
	for _, g := range recorded {
		rg := RecentGrade{Assignment: g.Assignment, Score: g.Score}
		if st, err := s.studentRepo.GetByID(ctx, g.StudentID); err == nil {
			rg.StudentName = st.Name
		}
		if c, err := s.classRepo.GetByID(ctx, g.ClassID); err == nil {
			rg.ClassName = c.Name
		}
		recent = append(recent, rg)
	}

	data := &TeacherDashboard{
		Menu:         identity.Role.Menu(),
		Teacher:      teacher,
		Load:         s.metrics.TeacherLoad(ctx, teacher.ID),
		Classes:      summaries,
		RecentGrades: recent,
	}
	return dashboardView(data)
}

func (s *ViewService) parentDashboard(ctx context.Context, identity *model.Identity) *ViewPayload {
	parent, err := s.parentRepo.GetByID(ctx, identity.ParentID)
	if err != nil {
		return notFoundView(ViewDashboard, nil, "Parent not found")
	}
	summary, err := s.metrics.ParentSummary(ctx, parent.ID)
	if err != nil {
		return notFoundView(ViewDashboard, nil, "Parent not found")
	}

	children := s.studentRepo.ListByIDs(ctx, parent.Children)
	progress := make([]ChildProgress, 0, len(children))
	for _, child := range children {
		avg, _ := s.metrics.StudentAverage(ctx, child.ID)
		progress = append(progress, ChildProgress{
			ID:         child.ID,
			Name:       child.Name,
			GradeLevel: child.GradeLevel,
			Average:    avg,
		})
	}

	data := &ParentDashboard{
		Menu:              identity.Role.Menu(),
		Parent:            parent,
		Summary:           summary,
		NotificationCount: 2,
		UpcomingEvents:    3,
		Children:          progress,
		Announcements:     s.announcementRepo.List(ctx),
	}
	return dashboardView(data)
}

func (s *ViewService) studentDashboard(ctx context.Context, identity *model.Identity) *ViewPayload {
	student, err := s.studentRepo.GetByID(ctx, identity.StudentID)
	if err != nil {
		return notFoundView(ViewDashboard, nil, "Student not found")
	}

	avg, _ := s.metrics.StudentAverage(ctx, student.ID)
	data := &StudentDashboard{
		Menu:               identity.Role.Menu(),
		Student:            student,
		Average:            avg,
		ClassCount:         len(student.Classes),
		PendingAssignments: 3,
		AttendanceRate:     "95%",
		GradesByClass:      s.gradesGroupedByClass(ctx, student.ID, false),
		UpcomingAssignments: []ActivityItem{
			{Icon: "book", Title: "Math Homework - Due Friday", Detail: "Algebra I"},
			{Icon: "pen", Title: "Essay - Due Monday", Detail: "Literature"},
		},
	}
	return dashboardView(data)
}

// ─── Deep views ─────────────────────────────────────────────────────

// StudentListView is the student management list with its filter
// options.
type StudentListView struct {
	Students    []model.Student `json:"students"`
	GradeLevels []string        `json:"grade_levels"`
}

func (s *ViewService) studentListView(ctx context.Context, params map[string]string) *ViewPayload {
	data := &StudentListView{
		Students:    s.studentRepo.List(ctx, params["q"], params["grade"]),
		GradeLevels: model.GradeLevels,
	}
	return &ViewPayload{View: ViewStudentList, Title: "Student Management", Params: params, Data: data}
}

// StudentClassInfo is one enrolled class on the student-details view.
type StudentClassInfo struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	TeacherName string `json:"teacher_name"`
	Room        string `json:"room"`
	Schedule    string `json:"schedule"`
}

// StudentDetailsView is the full student profile.
type StudentDetailsView struct {
	Student   *model.Student     `json:"student"`
	Average   int                `json:"average"`
	Letter    string             `json:"letter"`
	HasGrades bool               `json:"has_grades"`
	Classes   []StudentClassInfo `json:"classes"`
	History   []ClassGrades      `json:"history"`
}

func (s *ViewService) studentDetailsView(ctx context.Context, params map[string]string) *ViewPayload {
	id, ok := paramInt(params, "id")
	if !ok {
		return notFoundView(ViewStudentDetails, params, "Student not found")
	}
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundView(ViewStudentDetails, params, "Student not found")
	}

	classes := s.classRepo.ListByStudent(ctx, student.ID)
	infos := make([]StudentClassInfo, 0, len(classes))
	for _, c := range classes {
		info := StudentClassInfo{ID: c.ID, Name: c.Name, Room: c.Room, Schedule: c.Schedule}
		if t, err := s.teacherRepo.GetByID(ctx, c.TeacherID); err == nil {
			info.TeacherName = t.Name
		} else {
			info.TeacherName = "Unknown"
		}
		infos = append(infos, info)
	}

	avg, has := s.metrics.StudentAverage(ctx, student.ID)
	data := &StudentDetailsView{
		Student:   student,
		Average:   avg,
		Letter:    GradeLetter(avg),
		HasGrades: has,
		Classes:   infos,
		History:   s.gradesGroupedByClass(ctx, student.ID, true),
	}
	return &ViewPayload{View: ViewStudentDetails, Title: "Student Details", Params: params, Data: data}
}

// StudentFormView backs the add-student and edit-student forms. Student
// is nil on the add form.
type StudentFormView struct {
	Student     *model.Student `json:"student,omitempty"`
	GradeLevels []string       `json:"grade_levels"`
	DefaultDate string         `json:"default_date"`
}

func (s *ViewService) addStudentView(params map[string]string) *ViewPayload {
	data := &StudentFormView{
		GradeLevels: model.GradeLevels,
		DefaultDate: time.Now().Format("2006-01-02"),
	}
	return &ViewPayload{View: ViewAddStudent, Title: "Add New Student", Params: params, Data: data}
}

func (s *ViewService) editStudentView(ctx context.Context, params map[string]string) *ViewPayload {
	id, ok := paramInt(params, "id")
	if !ok {
		return notFoundView(ViewEditStudent, params, "Student not found")
	}
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundView(ViewEditStudent, params, "Student not found")
	}
	data := &StudentFormView{
		Student:     student,
		GradeLevels: model.GradeLevels,
		DefaultDate: time.Now().Format("2006-01-02"),
	}
	return &ViewPayload{View: ViewEditStudent, Title: "Edit Student", Params: params, Data: data}
}

// GradeEntryRow is one student row on the grade-entry form.
// ExistingScore prefills the score input with the student's first
// recorded grade in the class, regardless of assignment; nil when none.
type GradeEntryRow struct {
	StudentID     int    `json:"student_id"`
	StudentName   string `json:"student_name"`
	ExistingScore *int   `json:"existing_score"`
}

// GradeEntryView backs the grade-entry form for one class.
type GradeEntryView struct {
	Class       *model.Class    `json:"class"`
	DefaultDate string          `json:"default_date"`
	Rows        []GradeEntryRow `json:"rows"`
}

func (s *ViewService) gradeEntryView(ctx context.Context, params map[string]string) *ViewPayload {
	id, ok := paramInt(params, "class_id", "id")
	if !ok {
		return notFoundView(ViewGradeEntry, params, "Class not found")
	}
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundView(ViewGradeEntry, params, "Class not found")
	}

	students := s.studentRepo.ListByIDs(ctx, class.Students)
	rows := make([]GradeEntryRow, 0, len(students))
	for _, st := range students {
		row := GradeEntryRow{StudentID: st.ID, StudentName: st.Name}
		if g, err := s.gradeRepo.FirstForStudentClass(ctx, st.ID, class.ID); err == nil {
			score := g.Score
			row.ExistingScore = &score
		}
		rows = append(rows, row)
	}

	data := &GradeEntryView{
		Class:       class,
		DefaultDate: time.Now().Format("2006-01-02"),
		Rows:        rows,
	}
	return &ViewPayload{View: ViewGradeEntry, Title: "Grade Entry", Params: params, Data: data}
}

// RosterRow is one student row on the class roster. Average is scoped to
// this class only and nil when the student has no grades in it.
type RosterRow struct {
	StudentID  int    `json:"student_id"`
	Name       string `json:"name"`
	GradeLevel string `json:"grade"`
	Email      string `json:"email"`
	Average    *int   `json:"average"`
}

// ClassRosterView is the class roster with per-student class averages.
type ClassRosterView struct {
	Class        *model.Class `json:"class"`
	TeacherName  string       `json:"teacher_name"`
	StudentCount int          `json:"student_count"`
	Rows         []RosterRow  `json:"rows"`
}

func (s *ViewService) classRosterView(ctx context.Context, params map[string]string) *ViewPayload {
	id, ok := paramInt(params, "id", "class_id")
	if !ok {
		return notFoundView(ViewClassRoster, params, "Class not found")
	}
	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundView(ViewClassRoster, params, "Class not found")
	}

	teacherName := "Unknown"
	if t, err := s.teacherRepo.GetByID(ctx, class.TeacherID); err == nil {
		teacherName = t.Name
	}

	students := s.studentRepo.ListByIDs(ctx, class.Students)
	rows := make([]RosterRow, 0, len(students))
	for _, st := range students {
		row := RosterRow{StudentID: st.ID, Name: st.Name, GradeLevel: st.GradeLevel, Email: st.Email}
		if avg, ok := s.metrics.StudentClassAverage(ctx, st.ID, class.ID); ok {
			v := avg
			row.Average = &v
		}
		rows = append(rows, row)
	}

	data := &ClassRosterView{
		Class:        class,
		TeacherName:  teacherName,
		StudentCount: len(class.Students),
		Rows:         rows,
	}
	return &ViewPayload{View: ViewClassRoster, Title: "Class Roster", Params: params, Data: data}
}

// ─── Helpers ────────────────────────────────────────────────────────

// gradesGroupedByClass groups a student's grades under class names,
// preserving first-seen order. Grades whose class no longer exists are
// grouped under "Unknown".
func (s *ViewService) gradesGroupedByClass(ctx context.Context, studentID int, withDates bool) []ClassGrades {
	grades := s.gradeRepo.ListByStudent(ctx, studentID)

	var order []string
	byClass := make(map[string][]GradeLine)
	for _, g := range grades {
		name := "Unknown"
		if c, err := s.classRepo.GetByID(ctx, g.ClassID); err == nil {
			name = c.Name
		}
		if _, seen := byClass[name]; !seen {
			order = append(order, name)
		}
		line := GradeLine{Assignment: g.Assignment, Score: g.Score, Letter: GradeLetter(g.Score)}
		if withDates {
			line.Date = g.Date
		}
		byClass[name] = append(byClass[name], line)
	}

	out := make([]ClassGrades, 0, len(order))
	for _, name := range order {
		out = append(out, ClassGrades{ClassName: name, Grades: byClass[name]})
	}
	return out
}

func dashboardView(data any) *ViewPayload {
	return &ViewPayload{View: ViewDashboard, Title: model.TabDisplayName(ViewDashboard), Data: data}
}

func notFoundView(view string, params map[string]string, msg string) *ViewPayload {
	return errorView(view, params, "NOT_FOUND", msg)
}

// errorView substitutes the generic inline error payload; navigation
// itself never fails hard.
func errorView(view string, params map[string]string, code, msg string) *ViewPayload {
	return &ViewPayload{
		View:   view,
		Title:  "Error",
		Params: params,
		Error:  &ViewError{Code: code, Message: msg, Recovery: ViewDashboard},
	}
}

// paramInt parses the first present key in params as an integer id.
func paramInt(params map[string]string, keys ...string) (int, bool) {
	for _, key := range keys {
		if raw, ok := params[key]; ok {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return 0, false
			}
			return id, true
		}
	}
	return 0, false
}
