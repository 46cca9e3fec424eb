// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/warbler/migrations"
)

func newMigrateCommand(a *admin) *cli.Command {
	return &cli.Command{
		Name:   "migrate",
		Usage:  "manage the database schema",
		Before: a.connect,
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					if err := a.db.Migrate(); err != nil {
						return err
					}
					return a.printVersion(c)
				},
			},
			{
				Name:  "down",
				Usage: "roll back the latest migration",
				Action: func(c *cli.Context) error {
					if err := migrations.Rollback(a.db.DB, a.db.Driver()); err != nil {
						return err
					}
					return a.printVersion(c)
				},
			},
			{
				Name:   "version",
				Usage:  "print the applied schema version",
				Action: a.printVersion,
			},
		},
	}
}

func (a *admin) printVersion(c *cli.Context) error {
	version, err := migrations.Version(a.db.DB, a.db.Driver())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.App.Writer, "schema version: %d\n", version)
	return nil
}
