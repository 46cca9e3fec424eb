// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInputTooLarge = errors.New("password exceeds maximum supported length")
	ErrInvalidCost   = errors.New("invalid hash cost")
)
