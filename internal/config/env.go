// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when ENV_FILE is not set. A missing file is not
// an error.
const defaultEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Before parsing, the .env file named by ENV_FILE (or ./.env) is
// loaded with godotenv; variables already present in the process environment
// are never overwritten.
//
// Returns a wrapped error if the .env file exists but cannot be parsed, or if
// env.Parse fails (e.g. a value cannot be converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	if err := loadEnvFile(os.Getenv("ENV_FILE")); err != nil {
		return err
	}

	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
