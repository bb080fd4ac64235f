//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/pkg/version"
)

// MetadataTable holds key/value facts about the last load.
const MetadataTable = "retailgen_metadata"

// createMetadataTableSQL creates the metadata table if it doesn't exist.
const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS retailgen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// Metadata describes one generation run.
type Metadata struct {
	RunID        string
	Seed         uint64
	StartDate    time.Time
	EndDate      time.Time
	Transactions int
	GeneratedAt  time.Time
}

// Values returns the metadata as the key/value pairs stored in the table.
func (m Metadata) Values() map[string]string {
	return map[string]string{
		"run_id":       m.RunID,
		"version":      version.Short(),
		"generated_at": m.GeneratedAt.UTC().Format(time.RFC3339),
		"seed":         strconv.FormatUint(m.Seed, 10),
		"start_date":   m.StartDate.Format(time.DateOnly),
		"end_date":     m.EndDate.Format(time.DateOnly),
		"transactions": strconv.Itoa(m.Transactions),
	}
}

// metadataUpserts builds one upsert per key, in key order.
func metadataUpserts(m Metadata, format squirrel.PlaceholderFormat) ([]string, [][]any, error) {
	values := m.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	qb := squirrel.StatementBuilder.PlaceholderFormat(format)
	queries := make([]string, 0, len(keys))
	args := make([][]any, 0, len(keys))
	for _, key := range keys {
		query, a, err := qb.Insert(MetadataTable).
			Columns("key", "value").
			Values(key, values[key]).
			Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value").
			ToSql()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build metadata upsert: %w", err)
		}
		queries = append(queries, query)
		args = append(args, a)
	}
	return queries, args, nil
}

// SaveMetadata saves run metadata to a PostgreSQL database.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, m Metadata) error {
	if _, err := pool.Exec(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	queries, args, err := metadataUpserts(m, squirrel.Dollar)
	if err != nil {
		return err
	}
	for i, query := range queries {
		if _, err := pool.Exec(ctx, query, args[i]...); err != nil {
			return fmt.Errorf("failed to save metadata %v: %w", args[i][0], err)
		}
	}

	logging.Debug().Str("run_id", m.RunID).Msg("Saved metadata")
	return nil
}

// SaveMetadataSQL saves run metadata through database/sql using '?'
// placeholders (SQLite).
func SaveMetadataSQL(ctx context.Context, db *sql.DB, m Metadata) error {
	if _, err := db.ExecContext(ctx, createMetadataTableSQL); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	queries, args, err := metadataUpserts(m, squirrel.Question)
	if err != nil {
		return err
	}
	for i, query := range queries {
		if _, err := db.ExecContext(ctx, query, args[i]...); err != nil {
			return fmt.Errorf("failed to save metadata %v: %w", args[i][0], err)
		}
	}

	logging.Debug().Str("run_id", m.RunID).Msg("Saved metadata")
	return nil
}

// GetAllMetadata retrieves all PostgreSQL metadata as a map.
func GetAllMetadata(ctx context.Context, pool *pgxpool.Pool) (map[string]string, error) {
	rows, err := pool.Query(ctx, `SELECT key, value FROM retailgen_metadata`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}

// GetAllMetadataSQL retrieves all metadata through database/sql.
func GetAllMetadataSQL(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT key, value FROM retailgen_metadata`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	metadata := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		metadata[key] = value
	}

	return metadata, rows.Err()
}
