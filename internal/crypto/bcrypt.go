// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest plaintext bcrypt accepts.
const MaxPasswordBytes = 72

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] using the given bcrypt cost.
// A zero cost selects bcrypt.DefaultCost. Costs outside
// [bcrypt.MinCost, bcrypt.MaxCost] are rejected with ErrInvalidCost.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrInputTooLarge
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrInputTooLarge
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Verify implements [PasswordHasher].
func (b *bcryptHasher) Verify(plaintext, credential string) bool {
	if credential == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}
