// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/warbler/internal/validators"
)

var (
	// ErrValidation matches every *validators.ValidationError returned by
	// the services.
	ErrValidation = validators.ErrValidation

	// ErrUnauthorized is returned when the caller identity does not own the
	// resource being changed, or no caller identity was supplied.
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
