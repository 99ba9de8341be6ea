package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/swdsms/incident-api/internal/core/domain"
)

// SQLSTATE codes this package cares about. Kept as literals so the coupling
// to the store's error surface stays inside this file.
const (
	codeUndefinedTable  = "42P01"
	codeUniqueViolation = "23505"
)

// classifyPersistenceFailure translates a raw store error into a domain
// error. It is the single place that inspects PostgreSQL's error surface:
//
//   - undefined_table (42P01), or a "relation ... does not exist" message
//     from a driver that didn't preserve the code, means the schema was
//     never provisioned: domain.ErrSchemaMissing.
//   - unique_violation (23505) on the users table backstops the signup
//     check-then-insert race: domain.ErrDuplicateAccount.
//   - anything else is wrapped with the operation name and passed through.
func classifyPersistenceFailure(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUndefinedTable:
			return fmt.Errorf("%s: %w", op, domain.ErrSchemaMissing)
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicateAccount)
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "does not exist") && strings.Contains(msg, "relation") {
		return fmt.Errorf("%s: %w", op, domain.ErrSchemaMissing)
	}

	return fmt.Errorf("%s: %w", op, err)
}
