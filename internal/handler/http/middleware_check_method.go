// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/utils"
)

// methodNotAllowed is registered via [chi.Mux.MethodNotAllowed]. Instead of
// chi's default 405 it answers 404, so callers cannot probe which methods a
// path serves.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not allowed for path")
	notFound(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, errorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
