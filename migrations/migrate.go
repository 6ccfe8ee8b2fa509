// Package migrations holds the embedded goose SQL migrations and helpers to
// apply them or to scaffold new ones.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations to db in order.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Generate scaffolds a new timestamped SQL migration named name in dir.
// The skeleton must be filled in and compiled into the binary before it can
// be applied; the operator endpoint only prepares the file.
func Generate(dir, name string) error {
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("migration generation error: %w", err)
	}

	return nil
}
