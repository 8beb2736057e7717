package postgres

import (
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/errors"
	"dashkeep/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// uniqueConstraintErrors attributes a unique violation to the field it protects.
var uniqueConstraintErrors = map[string]*domainerrors.BaseError{
	model.ConstraintAccountEmail:      domainerrors.ErrDuplicateEmail,
	model.ConstraintProfileNationalID: domainerrors.ErrDuplicateNationalID,
}

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}

	return "", ""
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _ := pgErrorCode(err)

	return code == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _ := pgErrorCode(err)

	return code == pgCheckViolation
}

// translateWriteError maps a failed INSERT/UPDATE to a domain error.
// An unrecognized unique constraint becomes the generic conflict.
func translateWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		_, constraint := pgErrorCode(err)
		if mapped, ok := uniqueConstraintErrors[constraint]; ok {
			return mapped.WrapMessage(details)
		}

		return errors.Wrapf(domainerrors.ErrConflict, "%s: unique constraint %q", details, constraint)
	}
	if isNotNullConstraintViolation(err) || isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.NewDatabaseExecuteError(err, details+": constraint violated")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
