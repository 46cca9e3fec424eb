// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command admin runs maintenance tasks against a warbler database: schema
// migrations and development seeding.
package main

import (
	"os"

	"github.com/MKhiriev/warbler/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newApp(nil).Run(os.Args); err != nil {
		logger.NewLogger("warbler-admin", "").Fatal().Err(err).Msg("admin command failed")
	}
}
