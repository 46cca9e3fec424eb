// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/warbler/internal/app"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/utils"
	"github.com/MKhiriev/warbler/models"
)

// signup creates the account and logs the new user in: the session token
// is returned in the Authorization header, the user in the body.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid signup body")
		return
	}

	user, err := h.services.UserService.Signup(ctx, req)
	if err != nil {
		writeError(w, r, err, "user signup failed")
		return
	}

	if !h.setSessionToken(w, r, user) {
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid login body")
		return
	}

	user, err := h.services.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeError(w, r, err, "authentication failed")
		return
	}
	if user == nil {
		log.Debug().Str("username", req.Username).Msg(app.MsgInvalidUsernamePassword)
		utils.WriteJSON(w, errorResponse{Error: app.MsgInvalidUsernamePassword}, http.StatusUnauthorized)
		return
	}

	if !h.setSessionToken(w, r, *user) {
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) setSessionToken(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return false
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	return true
}
