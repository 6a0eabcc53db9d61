package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "forumscope/internal/platform/errors"
	phttp "forumscope/internal/platform/net/http"
	"forumscope/internal/services/reports/domain"
	rhttp "forumscope/internal/services/reports/http"
)

type fakeSvc struct {
	forum   domain.ForumReport
	student domain.StudentReport
	err     error
}

func (f *fakeSvc) ForumReport(_ context.Context, in domain.ForumReportInput) (domain.ForumReport, error) {
	if f.err != nil {
		return domain.ForumReport{}, f.err
	}
	out := f.forum
	out.CourseKey = in.CourseKey
	return out, nil
}

func (f *fakeSvc) StudentReport(_ context.Context, in domain.StudentReportInput) (domain.StudentReport, error) {
	if f.err != nil {
		return domain.StudentReport{}, f.err
	}
	out := f.student
	out.CourseKey = in.CourseKey
	return out, nil
}

func newRouter(s *fakeSvc) http.Handler {
	mux := chi.NewMux()
	rhttp.Register(phttp.AdaptChi(mux), s)
	return mux
}

func TestForumsReturnsEnvelope(t *testing.T) {
	s := &fakeSvc{forum: domain.ForumReport{
		ReportID: "rid-1",
		Rows:     []domain.ForumRow{{Date: "2021-03-01", Type: "thread", Posts: 2}},
	}}
	srv := newRouter(s)

	body := `{"course_key":"course-v1:X+Y+Z"}`
	req := httptest.NewRequest(http.MethodPost, "/forums", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.StatusCode != http.StatusOK || env.Data == nil {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestForumsRejectsMissingCourseKey(t *testing.T) {
	srv := newRouter(&fakeSvc{})

	req := httptest.NewRequest(http.MethodPost, "/forums", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code < 400 || rec.Code >= 500 {
		t.Fatalf("status = %d, want a client error", rec.Code)
	}
}

func TestForumsMapsUpstreamDataFaults(t *testing.T) {
	srv := newRouter(&fakeSvc{err: perr.Orderf("thread stream out of order")})

	body := `{"course_key":"course-v1:X+Y+Z"}`
	req := httptest.NewRequest(http.MethodPost, "/forums", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for corrupt upstream aggregates", rec.Code)
	}
}

func TestForumsCSVDownload(t *testing.T) {
	s := &fakeSvc{forum: domain.ForumReport{
		ReportID: "rid-2",
		Rows:     []domain.ForumRow{{Date: "2021-03-01", Type: "thread", Posts: 2}},
	}}
	srv := newRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/forums/csv?course=course-v1:X%2BY%2BZ", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "forum_activity_rid-2.csv") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "Date,Type,Posts") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestForumsCSVRequiresCourse(t *testing.T) {
	srv := newRouter(&fakeSvc{})

	req := httptest.NewRequest(http.MethodGet, "/forums/csv", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Error == "" {
		t.Fatalf("envelope error empty: %+v", env)
	}
}

func TestStudentsCSVDownload(t *testing.T) {
	s := &fakeSvc{student: domain.StudentReport{
		ReportID: "rid-3",
		Rows:     []domain.StudentRow{{Username: "alice", Posts: 1, Votes: 2}},
	}}
	srv := newRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/students/csv?course=c1", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "student_forums_rid-3.csv") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !strings.Contains(rec.Body.String(), "alice,1,2") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}
