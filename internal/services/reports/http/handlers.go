// Package http provides http transport for reports
package http

import (
	"bytes"
	"fmt"
	stdhttp "net/http"

	"forumscope/internal/modkit/httpkit"
	perr "forumscope/internal/platform/errors"
	"forumscope/internal/services/reports/domain"
	"forumscope/internal/services/reports/render"
	svc "forumscope/internal/services/reports/service"
)

// Register mounts report endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ForumReportInput](r, "/forums", h.forums)
	httpkit.PostJSON[domain.StudentReportInput](r, "/students", h.students)

	// CSV downloads bypass the JSON envelope
	r.Get("/forums/csv", h.forumsCSV)
	r.Get("/students/csv", h.studentsCSV)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /reports/forums Reports forumReport
// @Summary Merged per-day forum activity report
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.ForumReportInput true "Query"
// @Success 200 {object} domain.ForumReport "ok"
// @Router /reports/forums [post]
func (h *handlers) forums(r *stdhttp.Request, in domain.ForumReportInput) (any, error) {
	return h.svc.ForumReport(r.Context(), in)
}

// swagger:route POST /reports/students Reports studentReport
// @Summary Per-student posts and votes report
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body domain.StudentReportInput true "Query"
// @Success 200 {object} domain.StudentReport "ok"
// @Router /reports/students [post]
func (h *handlers) students(r *stdhttp.Request, in domain.StudentReportInput) (any, error) {
	return h.svc.StudentReport(r.Context(), in)
}

// queryWindow reads the optional start and end query params
func queryWindow(r *stdhttp.Request) domain.DateWindow {
	q := r.URL.Query()
	return domain.DateWindow{Start: q.Get("start"), End: q.Get("end")}
}

// swagger:route GET /reports/forums/csv Reports forumReportCSV
// @Summary Merged forum activity report as a CSV download
// @Tags Reports
// @Produce text/csv
// @Param course query string true "Course key"
// @Param start query string false "Window start YYYY-MM-DD"
// @Param end query string false "Window end YYYY-MM-DD"
// @Success 200 {string} string "csv"
// @Router /reports/forums/csv [get]
func (h *handlers) forumsCSV(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	course := r.URL.Query().Get("course")
	if course == "" {
		httpkit.Fail(w, r, perr.InvalidArgf("course query param is required"))
		return
	}

	rep, err := h.svc.ForumReport(r.Context(), domain.ForumReportInput{
		CourseKey: course,
		Window:    queryWindow(r),
	})
	if err != nil {
		httpkit.Fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.ForumCSV(&buf, rep); err != nil {
		httpkit.Fail(w, r, perr.Wrap(err, perr.ErrorCodeUnknown, "render forum csv"))
		return
	}
	writeCSV(w, fmt.Sprintf("forum_activity_%s.csv", rep.ReportID), buf.Bytes())
}

// swagger:route GET /reports/students/csv Reports studentReportCSV
// @Summary Per-student report as a CSV download
// @Tags Reports
// @Produce text/csv
// @Param course query string true "Course key"
// @Param start query string false "Window start YYYY-MM-DD"
// @Param end query string false "Window end YYYY-MM-DD"
// @Success 200 {string} string "csv"
// @Router /reports/students/csv [get]
func (h *handlers) studentsCSV(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	course := r.URL.Query().Get("course")
	if course == "" {
		httpkit.Fail(w, r, perr.InvalidArgf("course query param is required"))
		return
	}

	rep, err := h.svc.StudentReport(r.Context(), domain.StudentReportInput{
		CourseKey: course,
		Window:    queryWindow(r),
	})
	if err != nil {
		httpkit.Fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.StudentCSV(&buf, rep); err != nil {
		httpkit.Fail(w, r, perr.Wrap(err, perr.ErrorCodeUnknown, "render student csv"))
		return
	}
	writeCSV(w, fmt.Sprintf("student_forums_%s.csv", rep.ReportID), buf.Bytes())
}

func writeCSV(w stdhttp.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(body)
}
