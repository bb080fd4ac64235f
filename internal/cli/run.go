package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
	"github.com/pgEdge/pgedge-retailgen/internal/sink"
)

// generationFlags are shared by every command that generates data.
type generationFlags struct {
	startDate    string
	endDate      string
	transactions int
	products     int
	customers    int
}

var genFlags generationFlags

// apply copies flags given on the command line over the loaded
// configuration. An explicit zero count is applied too.
func (f generationFlags) apply(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("start-date") {
		cfg.Generate.StartDate = f.startDate
	}
	if flags.Changed("end-date") {
		cfg.Generate.EndDate = f.endDate
	}
	if flags.Changed("transactions") {
		cfg.Generate.Transactions = f.transactions
	}
	if flags.Changed("products") {
		cfg.Generate.Products = f.products
	}
	if flags.Changed("customers") {
		cfg.Generate.Customers = f.customers
	}
}

func (f *generationFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.startDate, "start-date", "",
		"first transaction date (YYYY-MM-DD)")
	flags.StringVar(&f.endDate, "end-date", "",
		"last transaction date (YYYY-MM-DD)")
	flags.IntVar(&f.transactions, "transactions", 0,
		"number of sales transactions")
	flags.IntVar(&f.products, "products", 0,
		"number of products")
	flags.IntVar(&f.customers, "customers", 0,
		"number of customers")
}

// request builds a generation request from the configuration.
func request() retail.Request {
	return retail.Request{
		StartDate:    cfg.Generate.StartDate,
		EndDate:      cfg.Generate.EndDate,
		Transactions: cfg.Generate.Transactions,
		Products:     cfg.Generate.Products,
		Customers:    cfg.Generate.Customers,
	}
}

// newFaker returns the configured random source.
func newFaker() *datagen.Faker {
	if cfg.Seed != 0 {
		return datagen.NewFakerWithSeed(cfg.Seed)
	}
	return datagen.NewFaker()
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			logging.Info().
				Str("signal", sig.String()).
				Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

// execute generates a dataset and writes it to the named sink. The sink is
// opened before generation so an unreachable target aborts the run before
// any work is done.
func execute(ctx context.Context, sinkName string, opts sink.Options) (*sink.Report, error) {
	target, err := sink.Get(sinkName)
	if err != nil {
		return nil, err
	}

	req := request()
	if _, _, err := req.ParseDates(); err != nil {
		return nil, err
	}

	opts.RunID = uuid.NewString()
	logging.Info().
		Str("run_id", opts.RunID).
		Str("sink", target.Name()).
		Str("start_date", req.StartDate).
		Str("end_date", req.EndDate).
		Int("transactions", req.Transactions).
		Msg("Starting run")

	w, err := target.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := w.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close sink")
		}
	}()

	gen := retail.NewGenerator(newFaker())
	logging.Debug().Uint64("seed", gen.Faker().Seed()).Msg("Random source ready")

	ds, err := gen.Generate(req)
	if err != nil {
		return nil, err
	}

	report, err := w.Write(ctx, ds)
	if err != nil {
		return report, fmt.Errorf("failed to write to %s: %w", target.Name(), err)
	}

	for _, t := range report.Tables {
		logging.Info().
			Str("table", t.Table).
			Int("written", t.Written).
			Int("failed", t.Failed).
			Msg("Table loaded")
	}
	if failed := report.Failed(); failed > 0 {
		logging.Warn().
			Int("failed", failed).
			Msg("Some rows could not be written")
	}

	logging.Info().
		Str("run_id", opts.RunID).
		Int("rows", report.Written()).
		Msg("Run complete")

	return report, nil
}
