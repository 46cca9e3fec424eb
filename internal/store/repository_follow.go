// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/models"
)

// followRepository is the SQL implementation of [FollowRepository]. The
// (follower_id, followed_id) primary key keeps at most one edge per pair.
type followRepository struct {
	queries
	classifier ErrorClassificator
}

func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("creating follow repository")
	return &followRepository{
		queries:    newQueries(db.builder),
		classifier: db.errorClassificator,
	}
}

func (r *followRepository) AddFollow(ctx context.Context, q Querier, followerID, followedID int64) error {
	query, args, err := r.insertFollow(followerID, followedID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, q, "*followRepository.AddFollow", followerID, followedID, query, args)
}

func (r *followRepository) RemoveFollow(ctx context.Context, q Querier, followerID, followedID int64) error {
	query, args, err := r.deleteFollow(followerID, followedID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, q, "*followRepository.RemoveFollow", followerID, followedID, query, args)
}

func (r *followRepository) exec(ctx context.Context, q Querier, fn string, followerID, followedID int64, query string, args []any) error {
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Int64("follower_id", followerID).
			Int64("followed_id", followedID).
			Msg("failed to execute statement")
		return r.classifier.Translate(err, ErrExecutingStatement)
	}
	return nil
}

func (r *followRepository) IsFollowing(ctx context.Context, q Querier, followerID, followedID int64) (bool, error) {
	query, args, err := r.countFollow(followerID, followedID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*followRepository.IsFollowing").Msg("failed to count follows")
		return false, r.classifier.Translate(err, ErrExecutingQuery)
	}

	return count > 0, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, q Querier, userID int64) ([]models.User, error) {
	query, args, err := r.selectFollowers(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listUsers(ctx, q, "*followRepository.ListFollowers", userID, query, args)
}

func (r *followRepository) ListFollowing(ctx context.Context, q Querier, userID int64) ([]models.User, error) {
	query, args, err := r.selectFollowing(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listUsers(ctx, q, "*followRepository.ListFollowing", userID, query, args)
}

func (r *followRepository) listUsers(ctx context.Context, q Querier, fn string, userID int64, query string, args []any) ([]models.User, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Int64("user_id", userID).Msg("failed to list users")
		return nil, r.classifier.Translate(err, ErrExecutingQuery)
	}

	return collect(rows, scanUser)
}
