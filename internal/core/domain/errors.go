package domain

import "errors"

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrMissingFields      = errors.New("missing fields")
	ErrDuplicateAccount   = errors.New("username or email already exists")
	ErrReportNotFound     = errors.New("report not found")

	// ErrSchemaMissing marks persistence failures caused by the expected
	// tables not being provisioned yet. Handlers turn it into operator
	// guidance rather than echoing the raw store error.
	ErrSchemaMissing = errors.New("database schema missing")
)
