package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show details of the last database load",
	Long: `Show the metadata recorded by the last 'load' into the database: run id,
version, seed, date range and number of transactions.

Example:
  pgedge-retailgen status --driver sqlite --database retail.db`,
	RunE: runStatus,
}

func init() {
	registerDatabaseFlags(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	applyDatabaseFlags()
	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	metadata, err := readMetadata(ctx)
	if err != nil {
		return fmt.Errorf(
			"database has not been loaded; run 'pgedge-retailgen load' first: %w", err)
	}

	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cmd.Printf("Last load (%s):\n", cfg.Database.Driver)
	for _, key := range keys {
		cmd.Printf("  %-13s %s\n", key, metadata[key])
	}
	return nil
}

// readMetadata reads the metadata table of the configured database.
func readMetadata(ctx context.Context) (map[string]string, error) {
	if cfg.Database.Driver == "sqlite" {
		path := db.SQLitePath(cfg.Database.Connection, cfg.Database.Name)
		// Opening would create a missing file.
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		conn, err := db.OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = conn.Close() }()
		return db.GetAllMetadataSQL(ctx, conn)
	}

	pool, err := db.Connect(ctx, cfg.Database.Connection, db.Overrides{
		Server:   cfg.Database.Server,
		Database: cfg.Database.Name,
	})
	if err != nil {
		return nil, err
	}
	defer pool.Close()
	return db.GetAllMetadata(ctx, pool)
}
