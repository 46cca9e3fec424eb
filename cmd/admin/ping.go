// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/warbler/internal/adapter"
)

// newPingCommand checks that a running server answers on its HTTP API.
func newPingCommand(a *admin) *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "print the version reported by a running warbler server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "server", Aliases: []string{"s"}, Value: "localhost:8080", EnvVars: []string{"SERVER_ADDRESS"}},
			&cli.DurationFlag{Name: "timeout", Value: adapter.DefaultTimeout},
		},
		Action: func(c *cli.Context) error {
			api, err := adapter.NewHTTPServerAdapter(adapter.Config{
				Address: c.String("server"),
				Timeout: c.Duration("timeout"),
			}, a.log)
			if err != nil {
				return err
			}

			version, err := api.Version(c.Context)
			if err != nil {
				return fmt.Errorf("pinging %s: %w", c.String("server"), err)
			}

			_, _ = fmt.Fprintf(c.App.Writer, "version: %s, date: %s, commit: %s\n", version.Version, version.Date, version.Commit)
			return nil
		},
	}
}
