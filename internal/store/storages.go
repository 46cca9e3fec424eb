// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/warbler/internal/logger"

// Storages bundles the database handle with every repository built on it.
type Storages struct {
	DB                Executor
	UserRepository    UserRepository
	FollowRepository  FollowRepository
	MessageRepository MessageRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, logger),
		FollowRepository:  NewFollowRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}
}
