// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/warbler/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldImageURL        = "image_url"
	FieldHeaderImageURL  = "header_image_url"
	FieldBio             = "bio"
	FieldText            = "text"
	FieldFollowedID      = "followed_id"
)

// Length limits, in characters.
const (
	MaxUsernameLength = 50
	MaxEmailLength    = 254
	MinPasswordLength = 6
	MaxURLLength      = 2048
	MaxBioLength      = 500
)

// WarblerValidator implements [Validator] for signup requests, profile
// updates and new messages.
type WarblerValidator struct {
}

// NewValidator constructs a new WarblerValidator and returns it as the
// Validator interface.
func NewValidator() Validator {
	return &WarblerValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both
// value and pointer forms are accepted.
//
// Supported types:
//   - models.SignupRequest / *models.SignupRequest
//   - models.ProfileUpdate / *models.ProfileUpdate
//   - models.NewMessageRequest / *models.NewMessageRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *WarblerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	case models.NewMessageRequest:
		return v.validateMessage(value, fields...)
	case *models.NewMessageRequest:
		return v.validateMessage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WarblerValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldImageURL}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = Username(req.Username)
		case FieldEmail:
			err = Email(req.Email)
		case FieldPassword:
			err = Password(req.Password)
		case FieldImageURL:
			err = checkURL(FieldImageURL, req.ImageURL)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateProfileUpdate checks only the fields the update actually sets.
// The current password is always required.
func (v *WarblerValidator) validateProfileUpdate(upd models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldUsername, FieldEmail, FieldImageURL, FieldHeaderImageURL, FieldBio}
	}

	if upd.IsEmpty() {
		return NewValidationError("profile", ErrNoFieldsToUpdate)
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldCurrentPassword:
			if upd.Password == "" {
				err = NewValidationError(FieldCurrentPassword, ErrPasswordRequired)
			}
		case FieldUsername:
			if upd.Username != nil {
				err = Username(*upd.Username)
			}
		case FieldEmail:
			if upd.Email != nil {
				err = Email(*upd.Email)
			}
		case FieldImageURL:
			if upd.ImageURL != nil {
				err = checkURL(FieldImageURL, *upd.ImageURL)
			}
		case FieldHeaderImageURL:
			if upd.HeaderImageURL != nil {
				err = checkURL(FieldHeaderImageURL, *upd.HeaderImageURL)
			}
		case FieldBio:
			if upd.Bio != nil && utf8.RuneCountInString(*upd.Bio) > MaxBioLength {
				err = NewValidationError(FieldBio, ErrBioTooLong)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *WarblerValidator) validateMessage(req models.NewMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			if err := MessageText(req.Text); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Username checks that username is non-empty and at most MaxUsernameLength
// characters long.
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return NewValidationError(FieldUsername, ErrEmptyUsername)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return NewValidationError(FieldUsername, ErrUsernameTooLong)
	}
	return nil
}

// Email checks that email is non-empty, fits MaxEmailLength and has exactly
// one '@' separating a non-empty local part from a non-empty domain.
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError(FieldEmail, ErrEmptyEmail)
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return NewValidationError(FieldEmail, ErrEmailTooLong)
	}

	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" || strings.Contains(domain, "@") ||
		strings.ContainsAny(email, " \t\r\n") {
		return NewValidationError(FieldEmail, ErrInvalidEmail)
	}
	return nil
}

// Password checks the minimum password length.
func Password(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return NewValidationError(FieldPassword, ErrPasswordTooShort)
	}
	return nil
}

// MessageText checks that text, after trimming surrounding whitespace, is
// non-empty and at most models.MaxMessageLength characters long.
func MessageText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NewValidationError(FieldText, ErrEmptyText)
	}
	if utf8.RuneCountInString(trimmed) > models.MaxMessageLength {
		return NewValidationError(FieldText, ErrTextTooLong)
	}
	return nil
}

func checkURL(field, value string) error {
	if len(value) > MaxURLLength {
		return NewValidationError(field, ErrURLTooLong)
	}
	return nil
}
