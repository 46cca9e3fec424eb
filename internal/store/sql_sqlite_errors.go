// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for sqlite3.
// sqlite reports the violated column only in the message text
// ("UNIQUE constraint failed: users.username"), so Translate inspects it.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Busy and locked databases are
// retryable; everything else is not.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// Translate implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Translate(err error, fallback error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.username"):
			return fmt.Errorf("%w: %w", ErrUsernameAlreadyExists, err)
		case strings.Contains(msg, "users.email"):
			return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
		default:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
	case sqlite3.ErrConstraintForeignKey:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
}
