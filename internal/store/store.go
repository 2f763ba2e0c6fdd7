// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all Blogicum
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Errors returned by store methods. They are wrapped with context and can
// be matched with errors.Is.
var (
	// ErrNotFound is returned by updates and deletes that match no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is a unique constraint violation (slug, username).
	ErrDuplicate = errors.New("duplicate value")
	// ErrInvalidReference is a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrInvalidValue is a value rejected by a check, type or length constraint.
	ErrInvalidValue = errors.New("invalid value")
)

// PostgreSQL SQLSTATE codes mapped by mapError.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeStringTooLong       = "22001"
	codeInvalidText         = "22P02"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// mapError translates PostgreSQL constraint errors into the store's
// sentinel errors. The original *pgconn.PgError stays in the chain. Other
// errors are returned unchanged.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	var kind error
	switch pgErr.Code {
	case codeUniqueViolation:
		kind = ErrDuplicate
	case codeForeignKeyViolation:
		kind = ErrInvalidReference
	case codeCheckViolation, codeNotNullViolation, codeStringTooLong, codeInvalidText:
		kind = ErrInvalidValue
	default:
		return err
	}

	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%w (%s): %w", kind, pgErr.ConstraintName, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
