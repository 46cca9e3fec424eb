// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/internal/utils"
	"github.com/MKhiriev/warbler/models"
)

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r)
	if err != nil {
		writeError(w, r, err, "invalid limit")
		return
	}

	users, err := h.services.UserService.SearchUsers(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, r, err, "user search failed")
		return
	}

	utils.WriteJSON(w, nonNil(users), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "getting user failed")
		return
	}
	if profile == nil {
		writeError(w, r, store.ErrUserNotFound, "user not found")
		return
	}

	resp := profileResponse{UserProfile: profile}
	if caller, ok := callerID(r); ok && caller != userID {
		following, err := h.services.UserService.IsFollowing(r.Context(), caller, userID)
		if err != nil {
			writeError(w, r, err, "checking follow edge failed")
			return
		}
		resp.IsFollowing = &following
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// profileResponse adds the caller's relation to the profile. IsFollowing is
// omitted for anonymous callers and for the caller's own profile.
type profileResponse struct {
	*models.UserProfile

	IsFollowing *bool `json:"is_following,omitempty"`
}

func (h *Handler) listUserMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}
	limit, err := limitParam(r)
	if err != nil {
		writeError(w, r, err, "invalid limit")
		return
	}

	messages, err := h.services.MessageService.ListForAuthor(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, err, "listing messages failed")
		return
	}

	utils.WriteJSON(w, nonNil(messages), http.StatusOK)
}

func (h *Handler) listFollowers(w http.ResponseWriter, r *http.Request) {
	h.listFollowEdges(w, r, h.services.FollowService.Followers)
}

func (h *Handler) listFollowing(w http.ResponseWriter, r *http.Request) {
	h.listFollowEdges(w, r, h.services.FollowService.Following)
}

func (h *Handler) listFollowEdges(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID int64) ([]models.User, error)) {
	userID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	users, err := list(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "listing follow edges failed")
		return
	}

	utils.WriteJSON(w, nonNil(users), http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	caller, _ := callerID(r)

	var upd models.ProfileUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, r, err, "invalid profile body")
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), caller, upd)
	if err != nil {
		writeError(w, r, err, "profile update failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteProfile(w http.ResponseWriter, r *http.Request) {
	caller, _ := callerID(r)

	if err := h.services.UserService.DeleteUser(r.Context(), caller, caller); err != nil {
		writeError(w, r, err, "user deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
