// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every request gets a trace id and an access log
// entry; routes in the authorized group additionally pass the session gate.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/signup", h.signup)
		r.Post("/api/users/login", h.login)

		r.Get("/api/users", h.searchUsers)
		r.With(h.optionalAuth).Get("/api/users/{userID}", h.getUser)
		r.Get("/api/users/{userID}/messages", h.listUserMessages)
		r.Get("/api/users/{userID}/followers", h.listFollowers)
		r.Get("/api/users/{userID}/following", h.listFollowing)

		r.Get("/api/messages/{messageID}", h.getMessage)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Patch("/api/users/profile", h.updateProfile)
		r.Delete("/api/users/profile", h.deleteProfile)

		r.Post("/api/users/follow/{userID}", h.follow)
		r.Post("/api/users/stop-following/{userID}", h.stopFollowing)

		r.Post("/api/messages", h.postMessage)
		r.Post("/api/messages/{messageID}/delete", h.deleteMessage)

		r.Get("/api/feed", h.feed)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
