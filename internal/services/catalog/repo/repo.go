// Package repo provides postgres access for the course catalog
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"forumscope/internal/modkit/repokit"
	perr "forumscope/internal/platform/errors"
	"forumscope/internal/services/catalog/domain"
)

// Repo is the catalog persistence surface used by the service layer
type Repo interface {
	List(ctx context.Context) ([]domain.Course, error)
	GetByKey(ctx context.Context, key string) (domain.Course, error)
}

type (
	// PG is a Postgres implementation of the catalog repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// List returns all known courses ordered by key
func (r *queries) List(ctx context.Context) ([]domain.Course, error) {
	const sql = `
		SELECT course_key, display_name, org, run,
		       EXTRACT(EPOCH FROM created_at)::bigint
		FROM courses
		ORDER BY course_key
	`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "list courses")
	}
	defer rows.Close()

	var out []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.Key, &c.Name, &c.Org, &c.Run, &c.CreatedAtUnix); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan course row")
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "iterate courses")
	}
	return out, nil
}

// GetByKey returns one course by its key
func (r *queries) GetByKey(ctx context.Context, key string) (domain.Course, error) {
	const sql = `
		SELECT course_key, display_name, org, run,
		       EXTRACT(EPOCH FROM created_at)::bigint
		FROM courses
		WHERE course_key = $1
	`
	var c domain.Course
	row := r.q.QueryRow(ctx, sql, key)
	if err := row.Scan(&c.Key, &c.Name, &c.Org, &c.Run, &c.CreatedAtUnix); err != nil {
		// the store seam passes pgx scan errors through unmapped and
		// pgx.ErrNoRows does not wrap database/sql.ErrNoRows here
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, stdsql.ErrNoRows) {
			return domain.Course{}, perr.NotFoundf("course %q not found", key)
		}
		return domain.Course{}, perr.Wrap(err, perr.ErrorCodeDB, "get course")
	}
	return c, nil
}
