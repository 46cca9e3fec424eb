// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Translate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "username unique violation by constraint",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_username_key"},
			wantErr: ErrUsernameAlreadyExists,
		},
		{
			name:    "email unique violation by detail",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (email)=(a@a.com) already exists."},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name:    "other unique violation",
			err:     &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "follows_pkey"},
			wantErr: ErrUniqueViolation,
		},
		{
			name:    "foreign key violation",
			err:     pgError(pgerrcode.ForeignKeyViolation),
			wantErr: ErrUserNotFound,
		},
		{
			name:    "check violation",
			err:     pgError(pgerrcode.CheckViolation),
			wantErr: ErrConstraintViolation,
		},
		{
			name:    "syntax error falls back",
			err:     pgError(pgerrcode.SyntaxError),
			wantErr: ErrExecutingQuery,
		},
		{
			name:    "non-postgres error falls back",
			err:     errors.New("network down"),
			wantErr: ErrExecutingQuery,
		},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Translate(tt.err, ErrExecutingQuery)
			assert.ErrorIs(t, got, tt.wantErr)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, c.Translate(nil, ErrExecutingQuery))
}

func TestUniqueSentinels(t *testing.T) {
	assert.ErrorIs(t, ErrUsernameAlreadyExists, ErrUniqueViolation)
	assert.ErrorIs(t, ErrEmailAlreadyExists, ErrUniqueViolation)
	assert.NotErrorIs(t, ErrUsernameAlreadyExists, ErrEmailAlreadyExists)
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	assert.ErrorIs(t, c.Translate(fk, ErrExecutingStatement), ErrUserNotFound)

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	assert.ErrorIs(t, c.Translate(unique, ErrExecutingStatement), ErrUniqueViolation)

	check := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}
	assert.ErrorIs(t, c.Translate(check, ErrExecutingStatement), ErrConstraintViolation)

	other := errors.New("disk I/O error")
	assert.ErrorIs(t, c.Translate(other, ErrExecutingStatement), ErrExecutingStatement)

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(other))
}
