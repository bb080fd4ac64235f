package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

var generateOutputDir string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the retail dataset as CSV files",
	Long: `Generate the retail dataset and write one CSV file per table into the
output directory (created if missing). Existing files are replaced.

Example:
  pgedge-retailgen generate --start-date 2024-01-01 --end-date 2024-12-31 \
      --transactions 50000 --output-dir sourcedata`,
	RunE: runGenerate,
}

func init() {
	genFlags.register(generateCmd)
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "",
		"directory for CSV files (default: sourcedata)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	genFlags.apply(cmd)
	if generateOutputDir != "" {
		cfg.Output.Dir = generateOutputDir
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	_, err := execute(ctx, "csv", sinkOptionsForCSV())
	return err
}

// sinkOptionsForCSV builds sink options for file output.
func sinkOptionsForCSV() sink.Options {
	return sink.Options{OutputDir: cfg.Output.Dir}
}
