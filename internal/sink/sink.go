// Package sink defines the persistence targets generated retail data is
// written to.
package sink

import (
	"context"

	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

// Options holds everything a sink may need to open its target. Each sink
// reads only the fields that apply to it.
type Options struct {
	// OutputDir is the directory file sinks write into.
	OutputDir string

	// Connection is the database connection string (PostgreSQL) or file
	// path (SQLite).
	Connection string

	// Server overrides the host of Connection.
	Server string

	// Database overrides the database name of Connection, or the file path
	// for SQLite.
	Database string

	// RunID identifies this run in logs and stored metadata.
	RunID string
}

// Sink is a persistence target.
type Sink interface {
	// Name returns the sink name used on the command line.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Open acquires the sink's resources. Failing here must leave the
	// target untouched.
	Open(ctx context.Context, opts Options) (Writer, error)
}

// Writer writes one dataset to an opened sink.
type Writer interface {
	// Write persists every table of the dataset. Per-row failures are
	// recorded in the report; the returned error is reserved for failures
	// that stop the load.
	Write(ctx context.Context, ds *retail.Dataset) (*Report, error)

	// Close releases the sink's resources.
	Close() error
}

// RowError records one row that could not be written.
type RowError struct {
	// Row is the 0-based row index within its table.
	Row int

	// Err is the underlying failure.
	Err error
}

// TableReport summarizes the load of one table.
type TableReport struct {
	Table   string
	Written int
	Failed  int
	Errors  []RowError
}

// Report summarizes a whole write.
type Report struct {
	Sink   string
	Tables []TableReport
}

// Written returns the total number of rows written.
func (r *Report) Written() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Written
	}
	return n
}

// Failed returns the total number of rows that failed.
func (r *Report) Failed() int {
	n := 0
	for _, t := range r.Tables {
		n += t.Failed
	}
	return n
}

// fail records a failed row.
func (t *TableReport) fail(row int, err error) {
	t.Failed++
	t.Errors = append(t.Errors, RowError{Row: row, Err: err})
}
