package writerepo

import (
	"errors"

	"canchacontrol/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeExclusionViolation  = "23P01"
)

// wrapWriteErr maps PostgreSQL constraint violations onto repository error
// kinds. Exclusion violations come from the slot overlap guard on
// reservations and surface as conflicts.
func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
