package ports

import (
	"context"

	"github.com/swdsms/incident-api/internal/core/domain"
)

// ReportRepository defines persistence operations for incident reports.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
	// List returns all reports ordered ascending by id.
	List(ctx context.Context) ([]domain.Report, error)
	// Solve sets the report's status to Solved and returns the updated row.
	// Unknown ids surface as domain.ErrReportNotFound. Already-solved
	// reports are updated again without error.
	Solve(ctx context.Context, id int64) (*domain.Report, error)
}
