package module

import (
	"context"

	"forumscope/internal/services/catalog/domain"
	csvc "forumscope/internal/services/catalog/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCatalogPort exposes the resolver port for cross-module usage
type adaptCatalogPort struct{ svc csvc.Service }

func (a adaptCatalogPort) Resolve(ctx context.Context, key string) (domain.Course, error) {
	return a.svc.Resolve(ctx, key)
}
