package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repositories care about.
const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

// AsPgError unwraps err into a *pgconn.PgError if one is in the chain.
func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsUniqueViolation reports whether err is a unique-constraint violation,
// optionally restricted to a named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	pe, ok := AsPgError(err)
	if !ok || pe.Code != UniqueViolationCode {
		return false
	}
	return constraint == "" || pe.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err is a foreign-key violation,
// optionally restricted to a named constraint.
func IsForeignKeyViolation(err error, constraint string) bool {
	pe, ok := AsPgError(err)
	if !ok || pe.Code != ForeignKeyViolationCode {
		return false
	}
	return constraint == "" || pe.ConstraintName == constraint
}
