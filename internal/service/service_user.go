// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/warbler/internal/crypto"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/internal/validators"
	"github.com/MKhiriev/warbler/models"
)

// userService is the concrete implementation of UserService.
// Credentials are produced and checked only through the PasswordHasher;
// uniqueness of username and email is left to the storage engine.
type userService struct {
	db               store.Executor
	userRepository   store.UserRepository
	followRepository store.FollowRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// dummyCredential is verified against when the username is unknown so
	// both failed-login paths pay the same hashing cost.
	dummyCredential string

	logger *logger.Logger
}

const dummyPassword = "warbler-dummy-password"

// NewUserService constructs a UserService over the given storages.
func NewUserService(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	dummy, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewUserService").Msg("failed to hash dummy credential")
	}

	return &userService{
		db:               storages.DB,
		userRepository:   storages.UserRepository,
		followRepository: storages.FollowRepository,
		hasher:           hasher,
		validator:        validators.NewValidator(),
		dummyCredential:  dummy,
		logger:           logger,
	}
}

// Signup validates req, substitutes default images and persists the user
// with hash(req.Password) as the stored credential.
//
// Returns:
//   - a *validators.ValidationError for missing or malformed fields;
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists when the
//     unique constraint fires at insert time.
func (s *userService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*userService.Signup").Str("username", req.Username).Msg("invalid signup request")
		return models.User{}, err
	}

	credential, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrInputTooLarge) {
			return models.User{}, validators.NewValidationError(validators.FieldPassword, err)
		}
		log.Err(err).Str("func", "*userService.Signup").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		Password:       credential,
		ImageURL:       req.ImageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
		CreatedAt:      time.Now().UTC(),
	}
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultImageURL
	}

	err = s.db.InTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		created, err := s.userRepository.CreateUser(ctx, q, user)
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.Signup").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*userService.Signup").Int64("user_id", user.ID).Msg("user signed up")
	return user, nil
}

// Authenticate looks the user up by exact username and verifies password
// against the stored credential. An unknown username still runs one
// verification against the dummy credential.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, s.db, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyCredential)
			return nil, nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userService.Authenticate").Msg("user search by username failed")
		return nil, fmt.Errorf("user search by username failed: %w", err)
	}

	if !s.hasher.Verify(password, user.Password) {
		return nil, nil
	}

	return &user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return &user, nil
}

func (s *userService) GetProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	profile, err := s.userRepository.GetUserProfile(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user profile: %w", err)
	}

	return &profile, nil
}

func (s *userService) SearchUsers(ctx context.Context, query string, limit uint64) ([]models.User, error) {
	users, err := s.userRepository.SearchUsers(ctx, s.db, strings.TrimSpace(query), limit)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}

	return users, nil
}

// UpdateProfile re-checks the caller's current password before touching the
// row. A wrong password yields ErrUnauthorized.
func (s *userService) UpdateProfile(ctx context.Context, callerID int64, upd models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID <= 0 {
		return models.User{}, ErrUnauthorized
	}

	if upd.Username != nil {
		trimmed := strings.TrimSpace(*upd.Username)
		upd.Username = &trimmed
	}
	if upd.Email != nil {
		trimmed := strings.TrimSpace(*upd.Email)
		upd.Email = &trimmed
	}

	if err := s.validator.Validate(ctx, upd); err != nil {
		return models.User{}, err
	}

	var updated models.User
	err := s.db.InTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		current, err := s.userRepository.GetUserByID(ctx, q, callerID)
		if err != nil {
			return err
		}
		if !s.hasher.Verify(upd.Password, current.Password) {
			return ErrUnauthorized
		}

		updated, err = s.userRepository.UpdateUser(ctx, q, callerID, upd)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			log.Warn().Str("func", "*userService.UpdateProfile").Int64("user_id", callerID).Msg("wrong password")
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Str("func", "*userService.UpdateProfile").Int64("user_id", callerID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	log := logger.FromContext(ctx)

	if callerID <= 0 || callerID != userID {
		log.Warn().Str("func", "*userService.DeleteUser").Int64("caller_id", callerID).Int64("user_id", userID).Msg("delete of another user rejected")
		return ErrUnauthorized
	}

	err := s.db.InTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		return s.userRepository.DeleteUser(ctx, q, userID)
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	log.Info().Str("func", "*userService.DeleteUser").Int64("user_id", userID).Msg("user deleted")
	return nil
}

func (s *userService) IsFollowing(ctx context.Context, userID, otherID int64) (bool, error) {
	return s.followRepository.IsFollowing(ctx, s.db, userID, otherID)
}

// IsFollowedBy asks the same edge question as IsFollowing with the
// endpoints swapped, so the two can never disagree.
func (s *userService) IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error) {
	return s.IsFollowing(ctx, otherID, userID)
}
