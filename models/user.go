// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

const (
	// DefaultImageURL is stored when a user signs up without a profile image.
	DefaultImageURL = "/static/images/default-pic.png"

	// DefaultHeaderImageURL is stored when a user has no header image.
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User is a Warbler account.
//
// Password always holds the stored credential produced by the credential
// hasher. It is never serialized to JSON and never holds plaintext.
type User struct {
	// ID is the surrogate key assigned by the storage engine.
	ID int64 `json:"id"`

	// Username is unique across all users.
	Username string `json:"username"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Password is the hashed credential.
	Password string `json:"-"`

	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// String renders the user the way it shows up in logs and debug output.
func (u User) String() string {
	return fmt.Sprintf("<User #%d: %s, %s>", u.ID, u.Username, u.Email)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserProfile is the public view of a user together with the follow graph
// and message counters shown on a profile page.
type UserProfile struct {
	User

	MessagesCount  int `json:"messages_count"`
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
}
