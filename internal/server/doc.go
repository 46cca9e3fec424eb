// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the warbler transports.
//
// It owns the HTTP and gRPC listeners, starts every transport enabled in
// [config.Server] and shuts them down gracefully on SIGTERM, SIGINT or
// SIGQUIT, giving in-flight HTTP requests up to ShutdownTimeout to finish.
package server
