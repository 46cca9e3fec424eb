// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/warbler/internal/config"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/models"
)

// appInfoService reports what is running. The configured version wins over
// the linker-injected one so deployments can label a build without
// rebuilding it.
type appInfoService struct {
	info models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when neither cfg nor
// build carry a version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := build.Response()
	if cfg.Version != "" {
		info.Version = cfg.Version
	}
	if info.Version == "" || info.Version == models.NotAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.VersionResponse {
	return s.info
}
