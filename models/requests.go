// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest carries the fields accepted by the signup operation.
// Password is plaintext here and must be hashed before it reaches storage.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// ImageURL is optional; an empty value is replaced by DefaultImageURL.
	ImageURL string `json:"image_url"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdate describes a partial profile change. Nil fields are left
// untouched. Password is the current plaintext password and is required to
// confirm the change.
type ProfileUpdate struct {
	Username       *string `json:"username,omitempty"`
	Email          *string `json:"email,omitempty"`
	ImageURL       *string `json:"image_url,omitempty"`
	HeaderImageURL *string `json:"header_image_url,omitempty"`
	Bio            *string `json:"bio,omitempty"`

	Password string `json:"password"`
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Username == nil && p.Email == nil && p.ImageURL == nil &&
		p.HeaderImageURL == nil && p.Bio == nil
}

// NewMessageRequest is the body of a "post message" call.
type NewMessageRequest struct {
	Text string `json:"text"`
}
