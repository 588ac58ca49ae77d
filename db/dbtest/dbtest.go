// Package dbtest opens a migrated PostgreSQL pool for store tests. Tests that
// use it are skipped unless TEST_DATABASE_URL points at a disposable database.
package dbtest

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/user/changelog-api/config"
	"github.com/user/changelog-api/db"
)

// EnvURL names the variable holding the test database connection string.
const EnvURL = "TEST_DATABASE_URL"

// Open migrates the test database up and returns a pool closed at test cleanup.
// Every table is truncated first.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("%s not set; skipping PostgreSQL test", EnvURL)
	}

	cfg := &config.DatabaseConfig{URL: url, MaxConns: 4, MigrationsPath: migrationsDir()}
	require.NoError(t, db.RunMigrations(cfg, db.Up))

	pool, err := db.NewPool(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE users CASCADE`)
	require.NoError(t, err)
	return pool
}

// CreateUser inserts a bare user row and returns its id.
func CreateUser(t *testing.T, pool *pgxpool.Pool, username string) string {
	t.Helper()
	id := db.NewID()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password) VALUES ($1, $2, 'x')`, id, username)
	require.NoError(t, err)
	return id
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}
