// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP boundary and the
// services: request context keys, session token handling, JSON responses
// and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so values stored here
// cannot collide with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey holds the caller identity resolved by the session gate.
var UserIDCtxKey = contextKey("userID")

// TraceIDCtxKey holds the per-request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithUserID returns a copy of ctx carrying the caller identity.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the caller identity from ctx.
// ok is false when the request is anonymous.
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // anonymous caller
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTraceIDFromContext returns the trace id or an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
