// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for registry operations.
var (
	ErrNotFound          = errors.New("tenant not found")
	ErrDuplicateTenant   = errors.New("admin identity already owns a tenant")
	ErrVersionConflict   = errors.New("tenant version conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCounterLimit      = errors.New("usage counter limit reached")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}
