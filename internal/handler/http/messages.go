// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/internal/utils"
	"github.com/MKhiriev/warbler/models"
)

func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	caller, _ := callerID(r)

	var req models.NewMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err, "invalid message body")
		return
	}

	msg, err := h.services.MessageService.Post(r.Context(), caller, req.Text)
	if err != nil {
		writeError(w, r, err, "posting message failed")
		return
	}

	utils.WriteJSON(w, msg, http.StatusCreated)
}

func (h *Handler) getMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := pathID(r, "messageID")
	if err != nil {
		writeError(w, r, err, "invalid message id")
		return
	}

	msg, err := h.services.MessageService.Get(r.Context(), messageID)
	if err != nil {
		writeError(w, r, err, "getting message failed")
		return
	}
	if msg == nil {
		writeError(w, r, store.ErrMessageNotFound, "message not found")
		return
	}

	utils.WriteJSON(w, msg, http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	caller, _ := callerID(r)

	messageID, err := pathID(r, "messageID")
	if err != nil {
		writeError(w, r, err, "invalid message id")
		return
	}

	if err := h.services.MessageService.Delete(r.Context(), messageID, caller); err != nil {
		writeError(w, r, err, "deleting message failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// feed lists the caller's messages together with those of everyone the
// caller follows, newest first.
func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	caller, _ := callerID(r)

	limit, err := limitParam(r)
	if err != nil {
		writeError(w, r, err, "invalid limit")
		return
	}

	messages, err := h.services.MessageService.Feed(r.Context(), caller, limit)
	if err != nil {
		writeError(w, r, err, "building feed failed")
		return
	}

	utils.WriteJSON(w, nonNil(messages), http.StatusOK)
}
