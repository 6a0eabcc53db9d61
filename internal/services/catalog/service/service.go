// Package service contains catalog workflows
package service

import (
	"context"
	"strings"

	"forumscope/internal/modkit/repokit"
	perr "forumscope/internal/platform/errors"
	"forumscope/internal/services/catalog/domain"
	"forumscope/internal/services/catalog/repo"
)

// Service defines the catalog service contract
type Service interface {
	domain.ServicePort
	domain.ResolverPort
}

// Svc implements the catalog service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a catalog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("catalog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List returns all known courses
func (s *Svc) List(ctx context.Context) ([]domain.Course, error) {
	return s.Repo.List(ctx)
}

// Get returns one course by key
func (s *Svc) Get(ctx context.Context, key string) (domain.Course, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.Course{}, perr.InvalidArgf("course key is required")
	}
	return s.Repo.GetByKey(ctx, key)
}

// Resolve implements the resolver port consumed by report modules
func (s *Svc) Resolve(ctx context.Context, key string) (domain.Course, error) {
	return s.Get(ctx, key)
}
