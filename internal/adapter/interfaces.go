// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the warbler HTTP API.
package adapter

import (
	"context"

	"github.com/MKhiriev/warbler/models"
)

// WarblerAPI mirrors the HTTP endpoints of a warbler server.
//
// Signup and Login store the session token returned by the server; every
// later call that needs a caller identity sends it as a bearer token.
type WarblerAPI interface {
	SetToken(token string)
	Token() string

	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)

	GetProfile(ctx context.Context, userID int64) (Profile, error)
	Follow(ctx context.Context, userID int64) error
	Unfollow(ctx context.Context, userID int64) error

	Post(ctx context.Context, text string) (models.Message, error)
	DeleteMessage(ctx context.Context, messageID int64) error
	Feed(ctx context.Context, limit uint64) ([]models.Message, error)

	Version(ctx context.Context) (models.VersionResponse, error)
}

// Profile is a user profile as seen by the current caller. IsFollowing is
// nil for anonymous callers and for the caller's own profile.
type Profile struct {
	models.UserProfile
	IsFollowing *bool `json:"is_following,omitempty"`
}
