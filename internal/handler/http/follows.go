// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// follow makes the caller follow {userID}. The follower is always the
// caller; there is no way to follow on someone else's behalf.
func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	caller, _ := callerID(r)

	followedID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	if err := h.services.FollowService.Follow(r.Context(), caller, followedID); err != nil {
		writeError(w, r, err, "follow failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stopFollowing(w http.ResponseWriter, r *http.Request) {
	caller, _ := callerID(r)

	followedID, err := pathID(r, "userID")
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	if err := h.services.FollowService.Unfollow(r.Context(), caller, followedID); err != nil {
		writeError(w, r, err, "unfollow failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
