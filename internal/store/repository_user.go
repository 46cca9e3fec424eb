// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation, lookup, update and removal against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	queries
	classifier ErrorClassificator
}

// NewUserRepository constructs a [UserRepository] using the dialect of db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		queries:    newQueries(db.builder),
		classifier: db.errorClassificator,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned ID.
//
// Error handling:
//   - unique violation on username/email → [ErrUsernameAlreadyExists] /
//     [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, q Querier, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.insertUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("username", user.Username).
			Stringer("classification", r.classifier.Classify(err)).
			Msg("error inserting user")
		return models.User{}, r.classifier.Translate(err, ErrExecutingStatement)
	}

	return user, nil
}

// GetUserByID returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByID(ctx context.Context, q Querier, id int64) (models.User, error) {
	query, args, err := r.selectUserByID(id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, q, "*userRepository.GetUserByID", query, args)
}

// GetUserByUsername returns [ErrUserNotFound] when no row matches.
func (r *userRepository) GetUserByUsername(ctx context.Context, q Querier, username string) (models.User, error) {
	query, args, err := r.selectUserByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, q, "*userRepository.GetUserByUsername", query, args)
}

func (r *userRepository) getOne(ctx context.Context, q Querier, fn, query string, args []any) (models.User, error) {
	user, err := scanUser(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error selecting user")
		return models.User{}, r.classifier.Translate(err, ErrExecutingQuery)
	}

	return user, nil
}

func (r *userRepository) SearchUsers(ctx context.Context, q Querier, search string, limit uint64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.searchUsers(search, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SearchUsers").Str("query", search).Msg("failed to search users")
		return nil, r.classifier.Translate(err, ErrExecutingQuery)
	}

	return collect(rows, scanUser)
}

// UpdateUser applies upd and re-reads the row.
func (r *userRepository) UpdateUser(ctx context.Context, q Querier, id int64, upd models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.updateUser(id, upd)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("failed to update user")
		return models.User{}, r.classifier.Translate(err, ErrExecutingStatement)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.GetUserByID(ctx, q, id)
}

func (r *userRepository) DeleteUser(ctx context.Context, q Querier, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.deleteUser(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("failed to delete user")
		return r.classifier.Translate(err, ErrExecutingStatement)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrUserNotFound
	}

	log.Debug().Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("user deleted")
	return nil
}

func (r *userRepository) GetUserProfile(ctx context.Context, q Querier, id int64) (models.UserProfile, error) {
	user, err := r.GetUserByID(ctx, q, id)
	if err != nil {
		return models.UserProfile{}, err
	}

	query, args, err := r.selectUserCounters(id)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	profile := models.UserProfile{User: user}
	err = q.QueryRowContext(ctx, query, args...).Scan(&profile.MessagesCount, &profile.FollowersCount, &profile.FollowingCount)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetUserProfile").Int64("user_id", id).Msg("failed to count")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return profile, nil
}
