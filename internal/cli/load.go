package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

var (
	loadDriver     string
	loadConnection string
	loadServer     string
	loadDatabase   string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the retail dataset and load it into a database",
	Long: `Generate the retail dataset and load it into PostgreSQL or SQLite. The
six retail tables are dropped and recreated before loading. Rows that fail
to insert are logged and skipped.

Example:
  pgedge-retailgen load --connection "postgres://postgres@localhost/retailsales" \
      --start-date 2024-01-01 --end-date 2024-12-31
  pgedge-retailgen load --driver sqlite --database retail.db \
      --start-date 2024-01-01 --end-date 2024-01-31`,
	RunE: runLoad,
}

func init() {
	genFlags.register(loadCmd)
	registerDatabaseFlags(loadCmd)
}

// registerDatabaseFlags adds the flags selecting the target database.
func registerDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&loadDriver, "driver", "",
		"database driver: postgres or sqlite")
	cmd.Flags().StringVar(&loadConnection, "connection", "",
		"PostgreSQL connection string or SQLite file path")
	cmd.Flags().StringVar(&loadServer, "server", "",
		"database server, overriding the connection string host")
	cmd.Flags().StringVar(&loadDatabase, "database", "",
		"database name (SQLite: file path), overriding the connection string")
}

// applyDatabaseFlags copies database flags that were set over the
// configuration.
func applyDatabaseFlags() {
	if loadDriver != "" {
		cfg.Database.Driver = loadDriver
	}
	if loadConnection != "" {
		cfg.Database.Connection = loadConnection
	}
	if loadServer != "" {
		cfg.Database.Server = loadServer
	}
	if loadDatabase != "" {
		cfg.Database.Name = loadDatabase
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	genFlags.apply(cmd)
	applyDatabaseFlags()

	if err := cfg.ValidateLoad(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	_, err := execute(ctx, cfg.Database.Driver, databaseOptions())
	return err
}

// databaseOptions builds sink options from the database configuration.
func databaseOptions() sink.Options {
	return sink.Options{
		Connection: cfg.Database.Connection,
		Server:     cfg.Database.Server,
		Database:   cfg.Database.Name,
	}
}
