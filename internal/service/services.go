// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/warbler/internal/config"
	"github.com/MKhiriev/warbler/internal/crypto"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/models"
)

type Services struct {
	UserService    UserService
	FollowService  FollowService
	MessageService MessageService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserService(storages, hasher, logger),
		FollowService:  NewFollowService(storages, logger),
		MessageService: NewMessageService(storages, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
