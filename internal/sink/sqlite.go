package sink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

func init() {
	Register(&SQLite{})
}

// SQLite loads tables into a SQLite database file.
type SQLite struct{}

// Name returns the sink name.
func (s *SQLite) Name() string {
	return "sqlite"
}

// Description returns the sink description.
func (s *SQLite) Description() string {
	return "Drop, recreate and load the retail tables in a SQLite file"
}

// Open opens the database file. Database, when set, takes precedence over
// Connection as the file path (see db.SQLitePath).
func (s *SQLite) Open(ctx context.Context, opts Options) (Writer, error) {
	conn, err := db.OpenSQLite(ctx, db.SQLitePath(opts.Connection, opts.Database))
	if err != nil {
		return nil, err
	}
	return &sqliteWriter{
		db:    conn,
		runID: opts.RunID,
		qb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

var _ Writer = (*sqliteWriter)(nil)

type sqliteWriter struct {
	db    *sql.DB
	runID string
	qb    squirrel.StatementBuilderType
}

// Write recreates the schema, loads every table and saves run metadata.
func (w *sqliteWriter) Write(ctx context.Context, ds *retail.Dataset) (*Report, error) {
	report := &Report{Sink: "sqlite"}

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

	if err := db.SaveMetadataSQL(ctx, w.db, metadataFor(w.runID, ds)); err != nil {
		return report, err
	}

	return report, nil
}

func (w *sqliteWriter) recreateSchema(ctx context.Context) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range retail.DropTableStatements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	for _, stmt := range retail.CreateTableStatements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return tx.Commit()
}

// loadTable inserts rows one statement at a time inside a single
// transaction. A failed statement in SQLite leaves the transaction usable,
// so failures are recorded and skipped.
func (w *sqliteWriter) loadTable(ctx context.Context, table retail.Table) (TableReport, error) {
	tr := TableReport{Table: table.Name}

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return tr, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insert := w.qb.Insert(table.SQLName).Columns(table.SQLColumnNames()...)
	progress := datagen.NewProgressReporter(table.Name, int64(len(table.Rows)), datagen.DefaultProgressInterval)

	for i, row := range table.Rows {
		query, args, err := insert.Values(rowArgs(row, sqliteArg)...).ToSql()
		if err != nil {
			return tr, fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			tr.fail(i, err)
			logging.Warn().
				Err(err).
				Str("table", table.Name).
				Interface("key", row[0]).
				Msg("Failed to insert row")
			continue
		}
		tr.Written++
		progress.Update(1)
	}

	if err := tx.Commit(); err != nil {
		return tr, fmt.Errorf("failed to commit: %w", err)
	}
	progress.Done()

	return tr, nil
}

// Close closes the database.
func (w *sqliteWriter) Close() error {
	return w.db.Close()
}
