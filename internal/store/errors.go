// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUniqueViolation is matched by every uniqueness failure reported by
	// the storage engine.
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrUsernameAlreadyExists is returned when a user cannot be created or
	// renamed because another user already holds the username.
	ErrUsernameAlreadyExists = fmt.Errorf("%w: username already exists", ErrUniqueViolation)

	// ErrEmailAlreadyExists is returned when a user cannot be created or
	// updated because another user already holds the email.
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrUniqueViolation)

	// ErrUserNotFound is returned when a query or a foreign key targets a
	// user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrMessageNotFound is returned when a message lookup matches no row.
	ErrMessageNotFound = errors.New("message was not found")

	// ErrConstraintViolation is returned for any other integrity failure
	// (check, not-null).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither postgres nor sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
