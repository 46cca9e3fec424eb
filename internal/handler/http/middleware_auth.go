// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/utils"
)

// auth is the session gate for protected routes.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the caller id in the
// request context under [utils.UserIDCtxKey]. Requests without a valid token
// are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err, "request rejected by session gate")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// optionalAuth behaves like auth when an "Authorization" header is present
// and lets anonymous requests through untouched otherwise.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, err := h.authenticate(r)
		switch {
		case errors.Is(err, ErrEmptyAuthorizationHeader):
		case err != nil:
			writeError(w, r, err, "request rejected by session gate")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authenticate returns r with the caller id attached to its context.
func (h *Handler) authenticate(r *http.Request) (*http.Request, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return r, ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return r, err
	}

	logger.FromRequest(r).Debug().Int64("user_id", token.UserID).Msg("caller authenticated")

	return r.WithContext(utils.WithUserID(r.Context(), token.UserID)), nil
}
