// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/warbler/internal/app"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/service"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/internal/utils"
	"github.com/MKhiriev/warbler/internal/validators"
)

// errorStatusMap translates error kinds into HTTP status codes. Keys must
// not overlap: an error matching two keys would get an arbitrary status.
var errorStatusMap = map[error]int{
	service.ErrValidation:        http.StatusBadRequest,
	store.ErrConstraintViolation: http.StatusBadRequest,
	ErrInvalidPathID:             http.StatusBadRequest,
	ErrInvalidQueryParam:         http.StatusBadRequest,
	ErrInvalidJSON:               http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:        http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,

	service.ErrUnauthorized: http.StatusForbidden,

	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrMessageNotFound: http.StatusNotFound,

	store.ErrUniqueViolation: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage returns the text shown to the client. Internal failures
// never leak their cause.
func publicMessage(err error, status int) string {
	var vErr *validators.ValidationError

	switch {
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	case errors.As(err, &vErr):
		return vErr.Error()
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return app.MsgUsernameAlreadyExists
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return app.MsgEmailAlreadyExists
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}

// writeError logs err and responds with the mapped status and a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteJSON(w, errorResponse{Error: publicMessage(err, status)}, status)
}
