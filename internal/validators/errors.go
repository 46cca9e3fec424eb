// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmailTooLong     = errors.New("email is too long")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordRequired = errors.New("current password is required")
	ErrURLTooLong       = errors.New("url is too long")
	ErrBioTooLong       = errors.New("bio is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptyText        = errors.New("message text is required")
	ErrTextTooLong      = errors.New("message text is too long")
	ErrSelfFollow       = errors.New("user cannot follow themself")
)

// ValidationError reports which field failed and why. Reason is one of the
// sentinel errors above and is reachable through errors.Is.
type ValidationError struct {
	Field  string
	Reason error
}

// NewValidationError wraps reason for field.
func NewValidationError(field string, reason error) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
