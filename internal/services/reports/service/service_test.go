package service

import (
	"context"
	"testing"

	"forumscope/internal/core/mergejoin"
	perr "forumscope/internal/platform/errors"
	"forumscope/internal/platform/testkit"
	cdom "forumscope/internal/services/catalog/domain"
	"forumscope/internal/services/reports/domain"
	"forumscope/internal/services/reports/repo"
)

type fakeRepo struct {
	byKind   map[mergejoin.Kind][]mergejoin.Record
	students []repo.StudentRow
	err      error
}

func (f *fakeRepo) DailyByKind(
	_ context.Context,
	kind mergejoin.Kind,
	_ string,
	_ repo.Window,
) ([]mergejoin.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byKind[kind], nil
}

func (f *fakeRepo) StudentActivity(_ context.Context, _ string, _ repo.Window) ([]repo.StudentRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.students, nil
}

type fakeResolver struct {
	course cdom.Course
	err    error
}

func (f fakeResolver) Resolve(_ context.Context, key string) (cdom.Course, error) {
	if f.err != nil {
		return cdom.Course{}, f.err
	}
	c := f.course
	c.Key = key
	return c, nil
}

func rec(k mergejoin.Kind, y, m, d int, posts int64) mergejoin.Record {
	return mergejoin.Record{Kind: k, Date: mergejoin.DateKey{Year: y, Month: m, Day: d}, Posts: posts}
}

func TestForumReportMergesStreams(t *testing.T) {
	fr := &fakeRepo{byKind: map[mergejoin.Kind][]mergejoin.Record{
		mergejoin.KindThread:   {rec(mergejoin.KindThread, 2021, 3, 2, 3)},
		mergejoin.KindResponse: {rec(mergejoin.KindResponse, 2021, 3, 1, 5)},
		mergejoin.KindComment:  {rec(mergejoin.KindComment, 2021, 3, 2, 7)},
	}}
	svc := New(fr, Options{Resolver: fakeResolver{course: cdom.Course{Name: "CS101"}}})

	rep, err := svc.ForumReport(context.Background(), domain.ForumReportInput{CourseKey: "course-v1:X+Y+Z"})
	if err != nil {
		t.Fatalf("ForumReport: %v", err)
	}

	if rep.ReportID == "" || rep.GeneratedAtUnix == 0 {
		t.Fatalf("report metadata missing: %+v", rep)
	}
	if rep.CourseKey != "course-v1:X+Y+Z" || rep.CourseName != "CS101" {
		t.Fatalf("course fields: %+v", rep)
	}

	want := []struct {
		date string
		typ  string
	}{
		{"2021-03-01", "response"},
		{"2021-03-02", "thread"},
		{"2021-03-02", "comment"},
	}
	if len(rep.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rep.Rows), len(want))
	}
	for i, w := range want {
		if rep.Rows[i].Date != w.date || rep.Rows[i].Type != w.typ {
			t.Fatalf("row %d = %+v, want %s %s", i, rep.Rows[i], w.date, w.typ)
		}
	}
}

func TestForumReportPropagatesResolverError(t *testing.T) {
	svc := New(&fakeRepo{}, Options{Resolver: fakeResolver{err: perr.NotFoundf("course not found")}})

	_, err := svc.ForumReport(context.Background(), domain.ForumReportInput{CourseKey: "nope"})
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}

func TestForumReportSurfacesMergeErrors(t *testing.T) {
	// one stream violates its sortedness contract
	fr := &fakeRepo{byKind: map[mergejoin.Kind][]mergejoin.Record{
		mergejoin.KindThread: {
			rec(mergejoin.KindThread, 2021, 3, 5, 1),
			rec(mergejoin.KindThread, 2021, 3, 1, 1),
		},
	}}
	svc := New(fr, Options{Resolver: fakeResolver{}})

	_, err := svc.ForumReport(context.Background(), domain.ForumReportInput{CourseKey: "c"})
	if perr.CodeOf(err) != perr.ErrorCodeOrder {
		t.Fatalf("code = %v, want order error", perr.CodeOf(err))
	}
}

func TestStudentReportFoldsAndSorts(t *testing.T) {
	fr := &fakeRepo{students: []repo.StudentRow{
		{Username: "Zoe", Posts: 1, Votes: 2},
		{Username: "  alice ", Posts: 3, Votes: 4},
		// fullwidth form of "alice", folds into the row above
		{Username: "ａｌｉｃｅ", Posts: 2, Votes: 1},
		{Username: "   ", Posts: 9, Votes: 9}, // unusable name, dropped
	}}
	svc := New(fr, Options{Resolver: fakeResolver{}})

	rep, err := svc.StudentReport(context.Background(), domain.StudentReportInput{CourseKey: "c"})
	if err != nil {
		t.Fatalf("StudentReport: %v", err)
	}
	if len(rep.Rows) != 2 {
		t.Fatalf("rows = %+v, want alice and Zoe", rep.Rows)
	}
	if rep.Rows[0].Username != "alice" || rep.Rows[0].Posts != 5 || rep.Rows[0].Votes != 5 {
		t.Fatalf("folded row = %+v", rep.Rows[0])
	}
	if rep.Rows[1].Username != "Zoe" {
		t.Fatalf("sort order = %+v", rep.Rows)
	}
}

func TestNewGuardsNilCollaborators(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil, Options{Resolver: fakeResolver{}}) })
	testkit.MustPanic(t, func() { New(&fakeRepo{}, Options{}) })
}
