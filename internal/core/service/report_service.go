package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/swdsms/incident-api/internal/core/domain"
	"github.com/swdsms/incident-api/internal/core/ports"
)

// ReportService implements the report lifecycle: submit, list, solve.
type ReportService struct {
	repo   ports.ReportRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) ListReports(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list reports")
		return nil, err
	}
	if reports == nil {
		reports = []domain.Report{}
	}
	return reports, nil
}

// CreateReport persists a new incident report. Status is forced to Pending
// here: whatever the client sent never reaches the store.
func (s *ReportService) CreateReport(ctx context.Context, input ports.CreateReportInput) (*domain.Report, error) {
	if input.Name == "" || input.Grade == "" || input.Type == "" ||
		input.Description == "" || input.Date == "" {
		return nil, domain.ErrMissingFields
	}

	report := &domain.Report{
		Name:        input.Name,
		Codename:    input.Codename,
		Grade:       input.Grade,
		Type:        input.Type,
		Description: input.Description,
		Status:      domain.StatusPending,
		Date:        input.Date,
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create report")
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Str("type", created.Type).Msg("report created")
	return created, nil
}

// SolveReport sets the report's status to Solved unconditionally. Solving an
// already-solved report is a no-op update that still succeeds, so the call is
// idempotent. Every failure from the store, not just a missing row, is
// collapsed into ErrReportNotFound; this path skips the schema/generic
// classification used elsewhere.
func (s *ReportService) SolveReport(ctx context.Context, id int64) (*domain.Report, error) {
	report, err := s.repo.Solve(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Int64("id", id).Msg("solve failed")
		return nil, domain.ErrReportNotFound
	}

	s.logger.Info().Int64("id", report.ID).Msg("report solved")
	return report, nil
}
