//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sink

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

func init() {
	Register(&Postgres{})
}

// Postgres loads tables into a PostgreSQL database, replacing any tables
// of the same name.
type Postgres struct{}

// Name returns the sink name.
func (p *Postgres) Name() string {
	return "postgres"
}

// Description returns the sink description.
func (p *Postgres) Description() string {
	return "Drop, recreate and load the retail tables in PostgreSQL"
}

// Open connects to the database. Nothing is modified until Write.
func (p *Postgres) Open(ctx context.Context, opts Options) (Writer, error) {
	pool, err := db.Connect(ctx, opts.Connection, db.Overrides{
		Server:   opts.Server,
		Database: opts.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &postgresWriter{
		pool:  pool,
		runID: opts.RunID,
		qb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

var _ Writer = (*postgresWriter)(nil)

type postgresWriter struct {
	pool  *pgxpool.Pool
	runID string
	qb    squirrel.StatementBuilderType
}

// Write recreates the schema, loads every table and saves run metadata.
func (w *postgresWriter) Write(ctx context.Context, ds *retail.Dataset) (*Report, error) {
	report := &Report{Sink: "postgres"}

	logging.Info().Msg("Recreating schema")
	if err := w.recreateSchema(ctx); err != nil {
		return report, err
	}

	for _, table := range ds.Tables() {
		tr, err := w.loadTable(ctx, table)
		report.Tables = append(report.Tables, tr)
		if err != nil {
			return report, fmt.Errorf("failed to load %s: %w", table.Name, err)
		}
	}

	if err := db.SaveMetadata(ctx, w.pool, metadataFor(w.runID, ds)); err != nil {
		return report, err
	}

	return report, nil
}

func (w *postgresWriter) recreateSchema(ctx context.Context) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range retail.DropTableStatements() {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	for _, stmt := range retail.CreateTableStatements() {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// loadTable inserts rows one statement at a time inside a single
// transaction. Each row runs under its own savepoint so a failed row is
// rolled back alone and the rest of the table still commits.
func (w *postgresWriter) loadTable(ctx context.Context, table retail.Table) (TableReport, error) {
	tr := TableReport{Table: table.Name}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return tr, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insert := w.qb.Insert(table.SQLName).Columns(table.SQLColumnNames()...)
	progress := datagen.NewProgressReporter(table.Name, int64(len(table.Rows)), datagen.DefaultProgressInterval)

	for i, row := range table.Rows {
		query, args, err := insert.Values(rowArgs(row, postgresArg)...).ToSql()
		if err != nil {
			return tr, fmt.Errorf("failed to build insert: %w", err)
		}

		sp, err := tx.Begin(ctx)
		if err != nil {
			return tr, fmt.Errorf("failed to create savepoint: %w", err)
		}
		if _, err := sp.Exec(ctx, query, args...); err != nil {
			if rbErr := sp.Rollback(ctx); rbErr != nil {
				return tr, fmt.Errorf("failed to roll back savepoint: %w", rbErr)
			}
			tr.fail(i, err)
			logging.Warn().
				Err(err).
				Str("table", table.Name).
				Interface("key", row[0]).
				Msg("Failed to insert row")
			continue
		}
		if err := sp.Commit(ctx); err != nil {
			return tr, fmt.Errorf("failed to release savepoint: %w", err)
		}
		tr.Written++
		progress.Update(1)
	}

	if err := tx.Commit(ctx); err != nil {
		return tr, fmt.Errorf("failed to commit: %w", err)
	}
	progress.Done()

	return tr, nil
}

// Close closes the connection pool.
func (w *postgresWriter) Close() error {
	w.pool.Close()
	return nil
}
