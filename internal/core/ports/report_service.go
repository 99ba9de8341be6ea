package ports

import (
	"context"

	"github.com/swdsms/incident-api/internal/core/domain"
)

// CreateReportInput carries the normalized report-submission payload.
// Codename is optional and stays nil when the client omitted it.
type CreateReportInput struct {
	Name        string
	Codename    *string
	Grade       string
	Type        string
	Description string
	Date        string
}

// ReportService defines use-case operations for the report lifecycle.
type ReportService interface {
	// ListReports returns all reports ascending by id; an empty store
	// yields an empty slice, never an error.
	ListReports(ctx context.Context) ([]domain.Report, error)
	// CreateReport persists a new report with status forced to Pending
	// regardless of any client-supplied status.
	CreateReport(ctx context.Context, input CreateReportInput) (*domain.Report, error)
	// SolveReport transitions the report to Solved and returns it.
	SolveReport(ctx context.Context, id int64) (*domain.Report, error)
}

// UserService exposes the account directory used by the admin view.
type UserService interface {
	// ListUsers returns account projections ascending by id, passwords
	// excluded.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
