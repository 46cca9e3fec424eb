// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/warbler/internal/config"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInTransaction_Commit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM follows").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.InTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		_, err := q.ExecContext(ctx, "DELETE FROM follows")
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransaction_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	fnErr := errors.New("fn failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.InTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTransaction_BeginError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := db.InTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestInTransaction_CommitError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := db.InTransaction(context.Background(), func(ctx context.Context, q Querier) error {
		return nil
	})

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "file:warbler.db", want: "file:warbler.db?_foreign_keys=on"},
		{in: "file::memory:?cache=shared", want: "file::memory:?cache=shared&_foreign_keys=on"},
		{in: "file:warbler.db?_foreign_keys=off", want: "file:warbler.db?_foreign_keys=off"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}
