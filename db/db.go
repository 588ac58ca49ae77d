// Package db provides database connectivity and migrations for the changelog API.
// The application talks to PostgreSQL through a pgx connection pool; schema
// changes are applied with golang-migrate from SQL files on disk.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	// `golang-migrate` applies versioned SQL migrations.
	"github.com/golang-migrate/migrate/v4"
	// The postgres database driver and file source are registered for their side effects.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	// `pgxpool` provides the connection pool used by every store.
	"github.com/jackc/pgx/v5/pgxpool"
	// migrate's postgres driver talks through database/sql with lib/pq.
	_ "github.com/lib/pq"

	"github.com/user/changelog-api/apperror"
	"github.com/user/changelog-api/config"
)

// NewPool establishes a pgx connection pool and verifies it with a ping.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, apperror.NewDatabaseError("error parsing DATABASE_URL", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	// Bound pool creation so an unreachable database fails fast at startup.
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, apperror.NewDatabaseError("error creating pgxpool", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, apperror.NewDatabaseError("error connecting to the database", err)
	}
	return pool, nil
}

// Direction selects which way migrations run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies (Up) or rolls back (Down) every migration found in
// migrationsPath. Files follow golang-migrate naming, e.g. 0001_init.up.sql.
func RunMigrations(cfg *config.DatabaseConfig, dir Direction) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.URL)
	if err != nil {
		return apperror.NewMigrationError("failed to create migrator", err)
	}
	defer func() {
		// Close errors are not actionable once the migration itself has finished.
		_, _ = m.Close()
	}()

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return apperror.NewMigrationError(fmt.Sprintf("unknown migration direction %q", dir), nil)
	}

	// `migrate.ErrNoChange` means the schema is already current.
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewMigrationError(fmt.Sprintf("failed to run migrations %s", dir), err)
	}
	return nil
}
