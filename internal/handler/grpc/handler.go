// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported by the health service for the warbler
// API as a whole.
const ServiceName = "warbler"

// Handler is the root gRPC transport handler.
//
// The gRPC side of warbler only exposes the standard health checking
// protocol, so load balancers and orchestrators can probe the process on the
// same port they use for the rest of the gRPC surface.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the handler's services to s and marks them as serving.
// Must be called before s.Serve.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Debug().Str("service", ServiceName).Msg("gRPC health service registered")
}

// Shutdown flips every service to NOT_SERVING so probes fail while the
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
