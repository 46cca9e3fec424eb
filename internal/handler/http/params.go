// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/warbler/internal/utils"
)

// maxListLimit caps the "limit" query parameter of list endpoints.
const maxListLimit = 1000

// pathID parses a positive int64 chi URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPathID, name, raw)
	}
	return id, nil
}

// limitParam parses the optional "limit" query parameter. Zero means the
// service default.
func limitParam(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit > maxListLimit {
		return 0, fmt.Errorf("%w: limit=%q", ErrInvalidQueryParam, raw)
	}
	return limit, nil
}

// decodeBody wraps utils.DecodeJSON failures with ErrInvalidJSON.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// callerID returns the identity stored by the auth middleware.
func callerID(r *http.Request) (int64, bool) {
	return utils.GetUserIDFromContext(r.Context())
}
