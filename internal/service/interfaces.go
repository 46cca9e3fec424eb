// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/warbler/models"
)

// UserService is the user directory: account lifecycle and credential checks.
type UserService interface {
	// Signup validates req, hashes the password and persists the user.
	// Duplicate username or email fails with store.ErrUniqueViolation.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Authenticate returns nil, nil for an unknown username and for a wrong
	// password alike.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// GetUser returns nil, nil when the user does not exist.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// GetProfile returns nil, nil when the user does not exist.
	GetProfile(ctx context.Context, id int64) (*models.UserProfile, error)

	SearchUsers(ctx context.Context, query string, limit uint64) ([]models.User, error)

	// UpdateProfile applies upd to the caller's own account after checking
	// the current password carried in upd.
	UpdateProfile(ctx context.Context, callerID int64, upd models.ProfileUpdate) (models.User, error)

	// DeleteUser removes userID together with its messages and follow edges.
	// Only the user themself may do that.
	DeleteUser(ctx context.Context, callerID, userID int64) error

	IsFollowing(ctx context.Context, userID, otherID int64) (bool, error)
	IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error)
}

// FollowService manages the directed follow graph.
type FollowService interface {
	// Follow is idempotent. Following yourself is a validation error.
	Follow(ctx context.Context, followerID, followedID int64) error

	// Unfollow removes the edge if present.
	Unfollow(ctx context.Context, followerID, followedID int64) error

	Followers(ctx context.Context, userID int64) ([]models.User, error)
	Following(ctx context.Context, userID int64) ([]models.User, error)

	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)

	// IsFollowedBy reports whether otherID follows userID.
	IsFollowedBy(ctx context.Context, userID, otherID int64) (bool, error)
}

// MessageService is the message ledger.
type MessageService interface {
	// Post creates a message owned by authorID.
	Post(ctx context.Context, authorID int64, text string) (models.Message, error)

	// Delete removes the message when requesterID owns it and fails with
	// ErrUnauthorized otherwise, leaving the message in place.
	Delete(ctx context.Context, messageID, requesterID int64) error

	// Get returns nil, nil when the message does not exist.
	Get(ctx context.Context, id int64) (*models.Message, error)

	// ListForAuthor returns the author's messages, newest first.
	ListForAuthor(ctx context.Context, userID int64, limit uint64) ([]models.Message, error)

	// Feed returns messages by userID and everyone userID follows,
	// newest first.
	Feed(ctx context.Context, userID int64, limit uint64) ([]models.Message, error)
}

// AuthService issues and verifies session tokens.
type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService describes the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
