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
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

// DefaultOutputDir is where the CSV sink writes when no directory is set.
const DefaultOutputDir = "sourcedata"

func init() {
	Register(&CSV{})
}

// CSV writes one comma separated file per table.
type CSV struct{}

// Name returns the sink name.
func (c *CSV) Name() string {
	return "csv"
}

// Description returns the sink description.
func (c *CSV) Description() string {
	return "One CSV file per table in the output directory"
}

// Open creates the output directory.
func (c *CSV) Open(ctx context.Context, opts Options) (Writer, error) {
	dir := opts.OutputDir
	if dir == "" {
		dir = DefaultOutputDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &csvWriter{dir: dir, runID: opts.RunID}, nil
}

var _ Writer = (*csvWriter)(nil)

type csvWriter struct {
	dir   string
	runID string
}

// Write writes every table to <dir>/<Name>.csv, replacing existing files.
func (w *csvWriter) Write(ctx context.Context, ds *retail.Dataset) (*Report, error) {
	report := &Report{Sink: "csv"}

	for _, table := range ds.Tables() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		tr, err := w.writeTable(table)
		if err != nil {
			return report, fmt.Errorf("failed to write %s: %w", table.Name, err)
		}
		report.Tables = append(report.Tables, tr)
	}

	logging.Info().
		Str("run_id", w.runID).
		Str("dir", w.dir).
		Int("rows", report.Written()).
		Msg("CSV files written")

	return report, nil
}

// Close is a no-op; files are closed as each table is written.
func (w *csvWriter) Close() error {
	return nil
}

func (w *csvWriter) writeTable(table retail.Table) (tr TableReport, err error) {
	tr.Table = table.Name
	path := filepath.Join(w.dir, table.Name+".csv")

	f, err := os.Create(path)
	if err != nil {
		return tr, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	cw := csv.NewWriter(f)
	if err := cw.Write(table.ColumnNames()); err != nil {
		return tr, err
	}

	progress := datagen.NewProgressReporter(table.Name, int64(len(table.Rows)), datagen.DefaultProgressInterval)
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return tr, err
		}
		tr.Written++
		progress.Update(1)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return tr, err
	}

	info, err := f.Stat()
	if err != nil {
		return tr, err
	}
	progress.Done()

	logging.Info().
		Str("table", table.Name).
		Str("file", path).
		Int("rows", tr.Written).
		Str("size", datagen.FormatSize(info.Size())).
		Msg("Wrote CSV file")

	return tr, nil
}

// ReadCSV reads back a file written by the CSV sink. The header row is
// returned separately.
func ReadCSV(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, errors.New("empty csv file")
	}
	return records[0], records[1:], nil
}
