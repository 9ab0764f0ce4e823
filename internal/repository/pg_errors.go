package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const noDoubleBookingConstraint = "no_double_booking"

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDoubleBookingViolation reports whether err is the Postgres exclusion
// constraint firing on an overlapping insert. 23P01 is exclusion_violation;
// 23505 covers a plain unique fallback.
func IsDoubleBookingViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23P01" && pgErr.Code != "23505" {
		return false
	}
	return pgErr.ConstraintName == noDoubleBookingConstraint
}
