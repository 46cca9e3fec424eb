// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way salted credentials
// and checks plaintext candidates against them.
//
// Implementations are pure: the only state they hold is the work factor.
type PasswordHasher interface {
	// Hash returns a salted one-way credential for plaintext. Two calls with
	// the same input produce different credentials.
	// Returns ErrInputTooLarge when plaintext exceeds the algorithm limit.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches credential. A malformed
	// credential is a mismatch, never an error.
	Verify(plaintext, credential string) bool
}
