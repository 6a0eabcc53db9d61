package module

import (
	"context"

	"forumscope/internal/services/reports/domain"
	rsvc "forumscope/internal/services/reports/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptReportsPort exposes service methods as module ports for cross-module usage
type adaptReportsPort struct{ svc rsvc.Service }

func (a adaptReportsPort) ForumReport(
	ctx context.Context,
	in domain.ForumReportInput,
) (domain.ForumReport, error) {
	return a.svc.ForumReport(ctx, in)
}

func (a adaptReportsPort) StudentReport(
	ctx context.Context,
	in domain.StudentReportInput,
) (domain.StudentReport, error) {
	return a.svc.StudentReport(ctx, in)
}
