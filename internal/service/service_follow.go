// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/internal/validators"
	"github.com/MKhiriev/warbler/models"
)

type followService struct {
	db               store.Executor
	followRepository store.FollowRepository

	logger *logger.Logger
}

func NewFollowService(storages *store.Storages, logger *logger.Logger) FollowService {
	return &followService{
		db:               storages.DB,
		followRepository: storages.FollowRepository,
		logger:           logger,
	}
}

// Follow adds the edge followerID → followedID.
//
// Returns:
//   - ErrUnauthorized if followerID is not a caller identity;
//   - a *validators.ValidationError wrapping validators.ErrSelfFollow when
//     both ids are equal;
//   - store.ErrUserNotFound if either user does not exist.
//
// Following the same user twice is a no-op.
func (s *followService) Follow(ctx context.Context, followerID, followedID int64) error {
	log := logger.FromContext(ctx)

	if followerID <= 0 {
		return ErrUnauthorized
	}
	if followerID == followedID {
		return validators.NewValidationError(validators.FieldFollowedID, validators.ErrSelfFollow)
	}

	err := s.db.InTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		return s.followRepository.AddFollow(ctx, q, followerID, followedID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*followService.Follow").
			Int64("follower_id", followerID).
			Int64("followed_id", followedID).
			Msg("follow failed")
		return fmt.Errorf("follow failed: %w", err)
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if followerID <= 0 {
		return ErrUnauthorized
	}

	err := s.db.InTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		return s.followRepository.RemoveFollow(ctx, q, followerID, followedID)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*followService.Unfollow").
			Int64("follower_id", followerID).
			Int64("followed_id", followedID).
			Msg("unfollow failed")
		return fmt.Errorf("unfollow failed: %w", err)
	}

	return nil
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]models.User, error) {
	users, err := s.followRepository.ListFollowers(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing followers: %w", err)
	}
	return users, nil
}

func (s *followService) Following(ctx context.Context, userID int64) ([]models.User, error) {
	users, err := s.followRepository.ListFollowing(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing followed users: %w", err)
	}
	return users, nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	ok, err := s.followRepository.IsFollowing(ctx, s.db, followerID, followedID)
	if err != nil {
		return false, fmt.Errorf("error checking follow edge: %w", err)
	}
	return ok, nil
}

func (s *followService) IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error) {
	return s.IsFollowing(ctx, otherID, userID)
}
