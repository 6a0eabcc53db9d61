package service

import (
	"context"
	"testing"

	"forumscope/internal/modkit/repokit"
	perr "forumscope/internal/platform/errors"
	"forumscope/internal/platform/store"
	"forumscope/internal/platform/testkit"
	"forumscope/internal/services/catalog/domain"
	"forumscope/internal/services/catalog/repo"
)

type fakeDB struct{}

func (fakeDB) Exec(_ context.Context, _ string, _ ...any) (store.CommandTag, error) { return nil, nil }
func (fakeDB) Query(_ context.Context, _ string, _ ...any) (store.Rows, error)      { return nil, nil }
func (fakeDB) QueryRow(_ context.Context, _ string, _ ...any) store.Row             { return nil }
func (f fakeDB) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error    { return fn(f) }

type fakeRepo struct {
	courses map[string]domain.Course
}

func (f *fakeRepo) List(_ context.Context) ([]domain.Course, error) {
	out := make([]domain.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) GetByKey(_ context.Context, key string) (domain.Course, error) {
	c, ok := f.courses[key]
	if !ok {
		return domain.Course{}, perr.NotFoundf("course %q not found", key)
	}
	return c, nil
}

func newSvc(fr *fakeRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fr })
	return New(fakeDB{}, binder)
}

func TestGetTrimsKey(t *testing.T) {
	svc := newSvc(&fakeRepo{courses: map[string]domain.Course{
		"course-v1:X+A+1": {Key: "course-v1:X+A+1", Name: "Algebra"},
	}})

	c, err := svc.Get(context.Background(), "  course-v1:X+A+1 ")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c.Name != "Algebra" {
		t.Fatalf("course = %+v", c)
	}
}

func TestGetRejectsEmptyKey(t *testing.T) {
	svc := newSvc(&fakeRepo{})

	_, err := svc.Get(context.Background(), "   ")
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("code = %v, want invalid argument", perr.CodeOf(err))
	}
}

func TestResolveDelegatesToGet(t *testing.T) {
	svc := newSvc(&fakeRepo{})

	_, err := svc.Resolve(context.Background(), "missing")
	if perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", perr.CodeOf(err))
	}
}

func TestNewGuardsNilCollaborators(t *testing.T) {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return &fakeRepo{} })
	testkit.MustPanic(t, func() { New(nil, binder) })
	testkit.MustPanic(t, func() { New(fakeDB{}, nil) })
}
