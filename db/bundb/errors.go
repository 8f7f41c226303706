package bundb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Black-And-White-Club/dxwager/app/shared/apperrors"
)

// integrityViolationClass is SQLSTATE class 23 (unique, foreign key, check, not null).
const integrityViolationClass = "23"

// ClassifyError maps a store error onto the application error taxonomy.
// Errors that already carry a kind pass through untouched.
func ClassifyError(op string, err error) error {
	if err == nil {
		return nil
	}

	if apperrors.IsValidation(err) || apperrors.IsConflict(err) ||
		apperrors.IsAuthorization(err) || apperrors.IsStore(err) ||
		errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	if code, constraint, detail, ok := sqlState(err); ok {
		if strings.HasPrefix(code, integrityViolationClass) {
			return &apperrors.ConflictError{Constraint: constraint, Detail: detail, Err: err}
		}
	}

	return &apperrors.StoreError{Op: op, Err: err}
}

// sqlState extracts SQLSTATE details from either driver the module runs on:
// pgdriver in production and pgx stdlib in integration tests.
func sqlState(err error) (code, constraint, detail string, ok bool) {
	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		return bunErr.Field('C'), bunErr.Field('n'), bunErr.Field('D'), true
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName, pgxErr.Detail, true
	}

	return "", "", "", false
}
