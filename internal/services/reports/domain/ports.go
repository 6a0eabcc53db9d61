package domain

import "context"

// ServicePort is the interface implemented by the reports service
type ServicePort interface {
	ForumReport(ctx context.Context, in ForumReportInput) (ForumReport, error)
	StudentReport(ctx context.Context, in StudentReportInput) (StudentReport, error)
}
