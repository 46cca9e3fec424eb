// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema for every supported database
// dialect and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported database driver")
)

// dialects maps database/sql driver names to goose dialects and the
// embedded directory holding their migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"pgx":     {goose: "postgres", dir: "postgres"},
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for the given driver
// ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	dir, err := prepare(db, driver)
	if err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Rollback reverts the most recently applied migration.
func Rollback(db *sql.DB, driver string) error {
	dir, err := prepare(db, driver)
	if err != nil {
		return err
	}

	if err := goose.Down(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the currently applied schema version.
func Version(db *sql.DB, driver string) (int64, error) {
	if _, err := prepare(db, driver); err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("migration error getting db version: %w", err)
	}

	return version, nil
}

func prepare(db *sql.DB, driver string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("migration error: %w", ErrNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return "", fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.goose); err != nil {
		return "", fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	return d.dir, nil
}
