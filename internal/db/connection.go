// Package db provides database connection management for pgedge-retailgen.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// Overrides replace parts of a connection string. Empty fields leave the
// connection string untouched.
type Overrides struct {
	// Server replaces the host.
	Server string

	// Database replaces the database name.
	Database string
}

// DefaultPoolConfig returns default connection pool configuration. Loading
// is single threaded, so the pool stays small.
func DefaultPoolConfig() *pgxpool.Config {
	config, _ := pgxpool.ParseConfig("")

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	return config
}

// ParseConfig parses a connection string, applies pool defaults and the
// given overrides.
func ParseConfig(connString string, ov Overrides) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	defaults := DefaultPoolConfig()
	config.MaxConns = defaults.MaxConns
	config.MinConns = defaults.MinConns
	config.MaxConnLifetime = defaults.MaxConnLifetime
	config.MaxConnIdleTime = defaults.MaxConnIdleTime
	config.HealthCheckPeriod = defaults.HealthCheckPeriod

	if ov.Server != "" {
		config.ConnConfig.Host = ov.Server
		// Fallbacks carry the configured host and would be tried first
		// on failure, so drop them.
		config.ConnConfig.Fallbacks = nil
	}
	if ov.Database != "" {
		config.ConnConfig.Database = ov.Database
	}

	return config, nil
}

// Connect establishes a connection pool to the PostgreSQL database.
func Connect(ctx context.Context, connString string, ov Overrides) (*pgxpool.Pool, error) {
	config, err := ParseConfig(connString, ov)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Str("host", config.ConnConfig.Host).
		Uint16("port", config.ConnConfig.Port).
		Str("database", config.ConnConfig.Database).
		Msg("Connecting to database")

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.Info().
		Str("host", config.ConnConfig.Host).
		Str("database", config.ConnConfig.Database).
		Msg("Connected to database")

	return pool, nil
}
