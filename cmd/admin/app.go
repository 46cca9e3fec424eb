// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/warbler/internal/config"
	"github.com/MKhiriev/warbler/internal/logger"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/models"
)

// admin carries the state shared by every subcommand. The connection is
// opened lazily by connect and released in the app's After hook.
type admin struct {
	cfg *config.StructuredConfig
	db  *store.DB
	log *logger.Logger
}

// newApp builds the CLI. A nil log is replaced by a stdout logger at the
// level given by --log-level.
func newApp(log *logger.Logger) *cli.App {
	a := &admin{log: log}
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	return &cli.App{
		Name:    "warbler-admin",
		Usage:   "maintenance commands for a warbler database",
		Version: build.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "database-uri", Aliases: []string{"d"}, Usage: "database DSN (overrides STORAGE_DB_DATABASE_URI)"},
			&cli.StringFlag{Name: "db-driver", Usage: "database driver: pgx or sqlite3"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "JSON config file path"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "log level"},
		},
		Before: func(c *cli.Context) error {
			if a.log == nil {
				a.log = logger.NewLogger("warbler-admin", c.String("log-level"))
			}
			return nil
		},
		After: func(c *cli.Context) error {
			return a.close()
		},
		Commands: []*cli.Command{
			newMigrateCommand(a),
			newSeedCommand(a, build),
			newPingCommand(a),
		},
	}
}

// connect loads the storage config and opens the database once per run.
func (a *admin) connect(c *cli.Context) error {
	if a.db != nil {
		return nil
	}

	cfg, err := config.GetStorageConfig(&config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{
			DSN:    c.String("database-uri"),
			Driver: c.String("db-driver"),
		}},
		JSONFilePath: c.String("config"),
	})
	if err != nil {
		return fmt.Errorf("loading storage config: %w", err)
	}

	db, err := store.NewConnect(c.Context, cfg.Storage.DB, a.log)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	a.cfg = cfg
	a.db = db
	return nil
}

func (a *admin) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
