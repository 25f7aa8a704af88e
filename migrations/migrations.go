// Package migrations holds the schema of the books store and applies it.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
	"github.com/pressly/goose/v3/lock"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// VersionTable records which migrations have been applied.
const VersionTable = "schema_migrations"

var storeDialects = map[string]database.Dialect{
	"postgres": database.DialectPostgres,
	"sqlite":   database.DialectSQLite3,
}

// Dialect returns the migration directory used for a database/sql driver.
func Dialect(driverName string) (string, error) {
	switch driverName {
	case "pgx", "postgres":
		return "postgres", nil
	case "sqlite", "sqlite3":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driverName)
	}
}

func newProvider(db *sqlx.DB) (*goose.Provider, error) {
	dialect, err := Dialect(db.DriverName())
	if err != nil {
		return nil, err
	}

	fsys, err := fs.Sub(files, dialect)
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", dialect, err)
	}

	store, err := database.NewStore(storeDialects[dialect], VersionTable)
	if err != nil {
		return nil, fmt.Errorf("migration store: %w", err)
	}

	opts := []goose.ProviderOption{
		goose.WithStore(store),
		goose.WithDisableGlobalRegistry(true),
	}

	// concurrent replicas take turns on postgres
	if dialect == "postgres" {
		locker, err := lock.NewPostgresSessionLocker()
		if err != nil {
			return nil, fmt.Errorf("migration lock: %w", err)
		}
		opts = append(opts, goose.WithSessionLocker(locker))
	}

	return goose.NewProvider("", db.DB, fsys, opts...)
}

// Run applies every migration not yet recorded in VersionTable.
// Each migration runs in its own transaction.
func Run(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"file", r.Source.Path,
			"duration", r.Duration,
		)
	}

	return nil
}
