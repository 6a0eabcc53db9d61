// Package repo provides clickhouse access for forum activity reports
package repo

import (
	"context"
	"strings"
	"time"

	"forumscope/internal/core/mergejoin"
	perr "forumscope/internal/platform/errors"
	"forumscope/internal/platform/store"
)

// Repo is the columnar read surface for reports
type Repo interface {
	DailyByKind(ctx context.Context, kind mergejoin.Kind, courseKey string, w Window) ([]mergejoin.Record, error)
	StudentActivity(ctx context.Context, courseKey string, w Window) ([]StudentRow, error)
}

// Window narrows queries to an inclusive date range, either side optional
type Window struct {
	Start string
	End   string
}

// StudentRow is the repo view of one per-author aggregate
type StudentRow struct {
	Username string
	Posts    int64
	Votes    int64
}

// CH reads from the forum_posts table over the clickhouse seam
type CH struct{ c store.Clickhouse }

// NewCH constructs a clickhouse backed repo
func NewCH(c store.Clickhouse) *CH {
	if c == nil {
		panic("reports repo requires a non nil clickhouse seam")
	}
	return &CH{c: c}
}

// kindFilter returns the WHERE fragment selecting one post kind
// threads are their own document type while responses and comments share
// one and differ only by having a parent
func kindFilter(k mergejoin.Kind) string {
	switch k {
	case mergejoin.KindThread:
		return "doc_type = 'CommentThread'"
	case mergejoin.KindResponse:
		return "doc_type = 'Comment' AND parent_id IS NULL"
	case mergejoin.KindComment:
		return "doc_type = 'Comment' AND parent_id IS NOT NULL"
	default:
		return "1 = 0"
	}
}

// windowFilter appends created_at bounds for a Window
// the end bound is inclusive so it becomes an exclusive next-day bound
func windowFilter(sb *strings.Builder, args []any, w Window) ([]any, error) {
	if w.Start != "" {
		start, err := time.Parse("2006-01-02", w.Start)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse window start")
		}
		sb.WriteString(" AND created_at >= ?")
		args = append(args, start)
	}
	if w.End != "" {
		end, err := time.Parse("2006-01-02", w.End)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "parse window end")
		}
		sb.WriteString(" AND created_at < ?")
		args = append(args, end.Add(24*time.Hour))
	}
	return args, nil
}

// DailyByKind returns per-day aggregates for one post kind sorted by date
func (r *CH) DailyByKind(
	ctx context.Context,
	kind mergejoin.Kind,
	courseKey string,
	w Window,
) ([]mergejoin.Record, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			toInt32(toYear(created_at)) AS y,
			toInt32(toMonth(created_at)) AS m,
			toInt32(toDayOfMonth(created_at)) AS d,
			toInt64(count()) AS posts,
			toInt64(sum(points)) AS net_points,
			toInt64(sum(up_count)) AS up_votes,
			toInt64(sum(down_count)) AS down_votes
		FROM forum_posts
		WHERE course_key = ? AND `)
	sb.WriteString(kindFilter(kind))

	args := []any{courseKey}
	args, err := windowFilter(&sb, args, w)
	if err != nil {
		return nil, err
	}
	sb.WriteString(`
		GROUP BY y, m, d
		ORDER BY y, m, d`)

	rows, err := r.c.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "query %s daily aggregates", kind)
	}
	defer rows.Close()

	var out []mergejoin.Record
	for rows.Next() {
		var y, m, d int32
		rec := mergejoin.Record{Kind: kind}
		if err := rows.Scan(&y, &m, &d, &rec.Posts, &rec.NetPoints, &rec.UpVotes, &rec.DownVotes); err != nil {
			return nil, perr.Schemaf("scan %s daily aggregate: %v", kind, err)
		}
		rec.Date = mergejoin.DateKey{Year: int(y), Month: int(m), Day: int(d)}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "iterate %s daily aggregates", kind)
	}
	return out, nil
}

// StudentActivity returns posting and net voting totals per author
// ordering is left to the caller
func (r *CH) StudentActivity(ctx context.Context, courseKey string, w Window) ([]StudentRow, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			author_username,
			toInt64(count()) AS posts,
			toInt64(sum(points)) AS votes
		FROM forum_posts
		WHERE course_key = ?`)

	args := []any{courseKey}
	args, err := windowFilter(&sb, args, w)
	if err != nil {
		return nil, err
	}
	sb.WriteString(`
		GROUP BY author_username`)

	rows, err := r.c.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "query student activity")
	}
	defer rows.Close()

	var out []StudentRow
	for rows.Next() {
		var sr StudentRow
		if err := rows.Scan(&sr.Username, &sr.Posts, &sr.Votes); err != nil {
			return nil, perr.Schemaf("scan student activity row: %v", err)
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDB, "iterate student activity")
	}
	return out, nil
}
