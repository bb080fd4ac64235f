package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// DefaultSQLitePath is used when no database file is configured.
const DefaultSQLitePath = "retailsales.db"

// SQLitePath picks the database file from a connection setting and a
// database name override. Server URLs such as the PostgreSQL default
// connection are not file paths and are ignored.
func SQLitePath(connection, name string) string {
	if name != "" {
		return name
	}
	if connection != "" && !strings.Contains(connection, "://") {
		return connection
	}
	return DefaultSQLitePath
}

// OpenSQLite opens (creating if needed) the SQLite database at path with
// foreign keys enforced.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultSQLitePath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// PRAGMAs are per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	logging.Info().Str("path", path).Msg("Opened SQLite database")
	return db, nil
}
