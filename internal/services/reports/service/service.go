// Package service contains report workflows
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"forumscope/internal/core/mergejoin"
	"forumscope/internal/core/usernames"
	"forumscope/internal/platform/logger"
	cdom "forumscope/internal/services/catalog/domain"
	"forumscope/internal/services/reports/domain"
	"forumscope/internal/services/reports/repo"
)

// Service defines the reports service contract
type Service interface {
	domain.ServicePort
}

// Options carries collaborator ports for the reports service
type Options struct {
	// Resolver checks the course exists before a report runs
	Resolver cdom.ResolverPort
}

// Svc implements the reports service
type Svc struct {
	repo repo.Repo
	res  cdom.ResolverPort
	log  *logger.Logger
}

// New constructs a reports service
func New(r repo.Repo, opts Options) *Svc {
	if r == nil {
		panic("reports.Service requires a non nil repo")
	}
	if opts.Resolver == nil {
		panic("reports.Service requires a course resolver port")
	}
	return &Svc{repo: r, res: opts.Resolver, log: logger.Named("reports")}
}

// ForumReport builds the merged per-day activity report for a course
// the three kind streams are fetched in parallel and merged synchronously
func (s *Svc) ForumReport(ctx context.Context, in domain.ForumReportInput) (domain.ForumReport, error) {
	course, err := s.res.Resolve(ctx, in.CourseKey)
	if err != nil {
		return domain.ForumReport{}, err
	}
	w := repo.Window{Start: in.Window.Start, End: in.Window.End}

	var threads, responses, comments []mergejoin.Record
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		threads, err = s.repo.DailyByKind(gctx, mergejoin.KindThread, in.CourseKey, w)
		return err
	})
	g.Go(func() (err error) {
		responses, err = s.repo.DailyByKind(gctx, mergejoin.KindResponse, in.CourseKey, w)
		return err
	})
	g.Go(func() (err error) {
		comments, err = s.repo.DailyByKind(gctx, mergejoin.KindComment, in.CourseKey, w)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ForumReport{}, err
	}

	merged, err := mergejoin.Merge(threads, responses, comments)
	if err != nil {
		s.log.Warn().Err(err).Str("course_key", in.CourseKey).Msg("merge rejected upstream aggregates")
		return domain.ForumReport{}, err
	}

	rows := make([]domain.ForumRow, 0, len(merged))
	for _, r := range merged {
		rows = append(rows, domain.ForumRow{
			Date:      r.Date.String(),
			Type:      r.Kind.String(),
			Posts:     r.Posts,
			NetPoints: r.NetPoints,
			UpVotes:   r.UpVotes,
			DownVotes: r.DownVotes,
		})
	}
	return domain.ForumReport{
		ReportID:        uuid.NewString(),
		CourseKey:       course.Key,
		CourseName:      course.Name,
		GeneratedAtUnix: time.Now().Unix(),
		Rows:            rows,
	}, nil
}

// StudentReport builds per-student posting and voting totals for a course
// usernames are normalized and ordered case-insensitively so output is
// stable across stores
func (s *Svc) StudentReport(ctx context.Context, in domain.StudentReportInput) (domain.StudentReport, error) {
	course, err := s.res.Resolve(ctx, in.CourseKey)
	if err != nil {
		return domain.StudentReport{}, err
	}

	raw, err := s.repo.StudentActivity(ctx, in.CourseKey, repo.Window{Start: in.Window.Start, End: in.Window.End})
	if err != nil {
		return domain.StudentReport{}, err
	}

	// fold rows whose usernames normalize to the same canonical form
	byName := make(map[string]domain.StudentRow, len(raw))
	for _, r := range raw {
		name := usernames.Clean(r.Username)
		if name == "" {
			continue
		}
		agg := byName[name]
		agg.Username = name
		agg.Posts += r.Posts
		agg.Votes += r.Votes
		byName[name] = agg
	}

	rows := make([]domain.StudentRow, 0, len(byName))
	for _, r := range byName {
		rows = append(rows, r)
	}
	sorter := usernames.NewSorter()
	sort.Slice(rows, func(i, j int) bool { return sorter.Less(rows[i].Username, rows[j].Username) })

	return domain.StudentReport{
		ReportID:        uuid.NewString(),
		CourseKey:       course.Key,
		GeneratedAtUnix: time.Now().Unix(),
		Rows:            rows,
	}, nil
}
