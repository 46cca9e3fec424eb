// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// warbler HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// throughout the API.
package app

const (
	// MsgInvalidUsernamePassword is returned by login for an unknown
	// username and for a wrong password alike.
	MsgInvalidUsernamePassword = "invalid username/password"

	// MsgUsernameAlreadyExists is returned when signup or a profile update
	// collides with another user's username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgEmailAlreadyExists is returned when signup or a profile update
	// collides with another user's email.
	MsgEmailAlreadyExists = "email already exists"
)
