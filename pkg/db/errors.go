package db

import (
	"errors"
	"strings"

	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"
	// class 22 covers data exceptions: invalid text representation, bad json, out of range...
	pgDataExceptionClass = "22"
)

// IsUniqueViolation reports whether err is a unique constraint violation on either
// supported driver. When constraintName is provided it must also match.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	if code, constraint, ok := pgDiagnostics(err); ok {
		if code != pgUniqueViolation {
			return false
		}
		return constraintName == "" || constraint == constraintName
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		if liteErr.ExtendedCode != sqlite3.ErrConstraintUnique && liteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
			return false
		}
		return constraintName == "" || strings.Contains(liteErr.Error(), constraintName)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}

// MalformedValueCode returns the Postgres data-exception code carried by err, if any.
func MalformedValueCode(err error) (string, bool) {
	code, _, ok := pgDiagnostics(err)
	if !ok || !strings.HasPrefix(code, pgDataExceptionClass) {
		return "", false
	}
	return code, true
}

// IsNotFound reports whether err signals a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Translate maps a store error onto the typed taxonomy used by the HTTP layer:
// missing rows become NOT_FOUND, unique violations CONFLICT, malformed values
// VALIDATION_ERROR carrying the store code, and anything else INTERNAL_ERROR.
func Translate(err error, notFoundMsg, conflictMsg, internalMsg string) error {
	if err == nil {
		return nil
	}
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	switch {
	case IsNotFound(err):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, notFoundMsg)
	case IsUniqueViolation(err, ""):
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, conflictMsg)
	}
	if code, ok := MalformedValueCode(err); ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed value").
			WithDetails(map[string]any{"pg_code": code})
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, internalMsg)
}

func pgDiagnostics(err error) (code, constraint string, ok bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code, pgxErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}
