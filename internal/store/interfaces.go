// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/warbler/models"
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Every repository method receives one explicitly, so the caller decides
// whether it runs inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Transactor runs fn inside a single database transaction. The transaction
// is committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context, q Querier) error) error
}

// Executor is a database handle usable both directly and transactionally.
type Executor interface {
	Querier
	Transactor
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// Translate maps integrity violations onto this package's sentinel
	// errors. Any other error is wrapped with fallback.
	Translate(err error, fallback error) error
}

// UserRepository persists Warbler accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID.
	// Duplicate username or email yields ErrUsernameAlreadyExists or
	// ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, q Querier, user models.User) (models.User, error)

	// GetUserByID returns ErrUserNotFound when no user has the given id.
	GetUserByID(ctx context.Context, q Querier, id int64) (models.User, error)

	// GetUserByUsername returns ErrUserNotFound when no user has the username.
	GetUserByUsername(ctx context.Context, q Querier, username string) (models.User, error)

	// SearchUsers performs a case-insensitive substring match on username.
	// An empty query lists all users. Results are ordered by username.
	SearchUsers(ctx context.Context, q Querier, query string, limit uint64) ([]models.User, error)

	// UpdateUser applies the non-nil fields of upd and returns the stored row.
	UpdateUser(ctx context.Context, q Querier, id int64, upd models.ProfileUpdate) (models.User, error)

	// DeleteUser removes the user. Messages and follow edges cascade.
	DeleteUser(ctx context.Context, q Querier, id int64) error

	// GetUserProfile returns the user together with message and follow counters.
	GetUserProfile(ctx context.Context, q Querier, id int64) (models.UserProfile, error)
}

// FollowRepository persists directed follow edges in the "follows" table.
type FollowRepository interface {
	// AddFollow inserts the edge; an existing edge is left untouched.
	// A missing user yields ErrUserNotFound.
	AddFollow(ctx context.Context, q Querier, followerID, followedID int64) error

	// RemoveFollow deletes the edge if present.
	RemoveFollow(ctx context.Context, q Querier, followerID, followedID int64) error

	IsFollowing(ctx context.Context, q Querier, followerID, followedID int64) (bool, error)

	// ListFollowers returns users following userID, ordered by username.
	ListFollowers(ctx context.Context, q Querier, userID int64) ([]models.User, error)

	// ListFollowing returns users followed by userID, ordered by username.
	ListFollowing(ctx context.Context, q Querier, userID int64) ([]models.User, error)
}

// MessageRepository persists messages in the "messages" table.
type MessageRepository interface {
	// CreateMessage inserts msg and returns it with the assigned ID.
	// A missing author yields ErrUserNotFound.
	CreateMessage(ctx context.Context, q Querier, msg models.Message) (models.Message, error)

	// GetMessage returns ErrMessageNotFound when no message has the id.
	GetMessage(ctx context.Context, q Querier, id int64) (models.Message, error)

	// DeleteOwnedMessage deletes the message only if it belongs to userID
	// and reports whether a row was removed.
	DeleteOwnedMessage(ctx context.Context, q Querier, id, userID int64) (bool, error)

	// ListByAuthor returns the author's messages, newest first.
	ListByAuthor(ctx context.Context, q Querier, userID int64, limit uint64) ([]models.Message, error)

	// ListFeed returns messages written by userID or by anyone userID
	// follows, newest first.
	ListFeed(ctx context.Context, q Querier, userID int64, limit uint64) ([]models.Message, error)
}
