package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swdsms/incident-api/internal/core/domain"
)

const reportColumns = "id, name, codename, grade, type, description, status, date"

// ReportRepository persists incident reports in the reports table.
type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) (*domain.Report, error) {
	query := `INSERT INTO reports (name, codename, grade, type, description, status, date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + reportColumns

	var created domain.Report
	err := r.db.QueryRow(ctx, query,
		report.Name, report.Codename, report.Grade, report.Type,
		report.Description, report.Status, report.Date,
	).Scan(
		&created.ID, &created.Name, &created.Codename, &created.Grade,
		&created.Type, &created.Description, &created.Status, &created.Date,
	)
	if err != nil {
		return nil, classifyPersistenceFailure("insert report", err)
	}

	return &created, nil
}

func (r *ReportRepository) List(ctx context.Context) ([]domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, classifyPersistenceFailure("list reports", err)
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(
			&rep.ID, &rep.Name, &rep.Codename, &rep.Grade,
			&rep.Type, &rep.Description, &rep.Status, &rep.Date,
		); err != nil {
			return nil, classifyPersistenceFailure("scan report", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPersistenceFailure("list reports", err)
	}

	return reports, nil
}

// Solve updates the row unconditionally; re-solving an already-solved report
// just rewrites the same status and still returns the row.
func (r *ReportRepository) Solve(ctx context.Context, id int64) (*domain.Report, error) {
	query := `UPDATE reports SET status = $1 WHERE id = $2 RETURNING ` + reportColumns

	var updated domain.Report
	err := r.db.QueryRow(ctx, query, domain.StatusSolved, id).Scan(
		&updated.ID, &updated.Name, &updated.Codename, &updated.Grade,
		&updated.Type, &updated.Description, &updated.Status, &updated.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, classifyPersistenceFailure("update report", err)
	}

	return &updated, nil
}
