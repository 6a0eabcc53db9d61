// Package domain holds DTOs for reports http and service contracts
package domain

// DateWindow optionally narrows a report to a date range
// dates are ISO8601 without timezone and the end is inclusive
type DateWindow struct {
	Start string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2021-01-01"`
	End   string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2021-06-30"`
}

// ForumReportInput asks for the merged per-day activity report for a course
type ForumReportInput struct {
	CourseKey string     `json:"course_key" validate:"required,min=1,max=200" example:"course-v1:OrgX+CS101+2021_T1"`
	Window    DateWindow `json:"window"`
}

// ForumRow is one merged per-day per-kind aggregate row
type ForumRow struct {
	Date      string `json:"date" example:"2021-03-01"`
	Type      string `json:"type" example:"thread"`
	Posts     int64  `json:"posts" example:"12"`
	NetPoints int64  `json:"net_points" example:"31"`
	UpVotes   int64  `json:"up_votes" example:"40"`
	DownVotes int64  `json:"down_votes" example:"9"`
}

// ForumReport is the merged course activity report
type ForumReport struct {
	ReportID        string     `json:"report_id" example:"0c9e1db2-47a1-4c59-9f4e-3a8b1f2d6c70"`
	CourseKey       string     `json:"course_key" example:"course-v1:OrgX+CS101+2021_T1"`
	CourseName      string     `json:"course_name,omitempty" example:"Intro to Computer Science"`
	GeneratedAtUnix int64      `json:"generated_at_unix" example:"1725731200"`
	Rows            []ForumRow `json:"rows"`
}

// StudentReportInput asks for per-student posting and voting totals
type StudentReportInput struct {
	CourseKey string     `json:"course_key" validate:"required,min=1,max=200" example:"course-v1:OrgX+CS101+2021_T1"`
	Window    DateWindow `json:"window"`
}

// StudentRow is one per-student aggregate row
type StudentRow struct {
	Username string `json:"username" example:"alice"`
	Posts    int64  `json:"posts" example:"17"`
	Votes    int64  `json:"votes" example:"25"`
}

// StudentReport is the per-student activity report
type StudentReport struct {
	ReportID        string       `json:"report_id" example:"7f3a2c1e-9b40-4f7d-a1c2-5d6e8f901234"`
	CourseKey       string       `json:"course_key" example:"course-v1:OrgX+CS101+2021_T1"`
	GeneratedAtUnix int64        `json:"generated_at_unix" example:"1725731200"`
	Rows            []StudentRow `json:"rows"`
}
