// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/warbler/internal/seed"
	"github.com/MKhiriev/warbler/internal/service"
	"github.com/MKhiriev/warbler/internal/store"
	"github.com/MKhiriev/warbler/models"
)

func newSeedCommand(a *admin, build models.AppBuildInfo) *cli.Command {
	return &cli.Command{
		Name:   "seed",
		Usage:  "fill the database with fake users, messages and follows",
		Before: a.connect,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "users", Value: seed.DefaultUsers},
			&cli.IntFlag{Name: "messages", Value: seed.DefaultMessagesPerUser, Usage: "messages per user"},
			&cli.IntFlag{Name: "follows", Value: seed.DefaultFollowsPerUser, Usage: "follow attempts per user"},
			&cli.StringFlag{Name: "password", Value: seed.DefaultPassword, Usage: "password shared by seeded accounts"},
			&cli.Int64Flag{Name: "random-seed", Usage: "fixed seed for reproducible data"},
			&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations first"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("migrate") {
				if err := a.db.Migrate(); err != nil {
					return err
				}
			}

			// seeding never serves /api/version
			cfg := *a.cfg
			if cfg.App.Version == "" && build.BuildVersion() == models.NotAvailable {
				cfg.App.Version = "admin"
			}

			services, err := service.NewServices(store.NewStorages(a.db, a.log), cfg, build, a.log)
			if err != nil {
				return err
			}

			seeder, err := seed.NewSeeder(services, seed.Options{
				Users:           c.Int("users"),
				MessagesPerUser: c.Int("messages"),
				FollowsPerUser:  c.Int("follows"),
				Password:        c.String("password"),
				RandomSeed:      c.Int64("random-seed"),
			}, a.log)
			if err != nil {
				return err
			}

			res, err := seeder.Run(c.Context)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(c.App.Writer, "seeded %d users, %d messages, %d follows\n",
				len(res.Users), res.Messages, res.Follows)
			return nil
		},
	}
}
