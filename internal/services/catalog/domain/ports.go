package domain

import "context"

// ServicePort is the interface implemented by the catalog service
type ServicePort interface {
	List(ctx context.Context) ([]Course, error)
	Get(ctx context.Context, key string) (Course, error)
}

// ResolverPort resolves a course key to its catalog entry
// consumed by report modules before a report runs
type ResolverPort interface {
	Resolve(ctx context.Context, key string) (Course, error)
}
