// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON HTTP boundary of warbler.
//
// It owns route wiring, request decoding and the session gate: the auth
// middleware resolves a bearer token into a caller identity, and every
// handler passes that identity explicitly to the service layer. Error
// values returned by services are translated to status codes in one table
// (see errorStatusMap).
package http
