package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-retailgen/internal/config"
	"github.com/pgEdge/pgedge-retailgen/internal/db"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Choose the output and date range from a menu",
	Long: `Prompt for the output (CSV files or database), the database to load,
the transaction date range and the number of transactions, then run
'generate' or 'load' with those values. Press Enter to accept a default.`,
	RunE: runInteractive,
}

var (
	titleColor  = color.New(color.FgCyan, color.Bold)
	optionColor = color.New(color.FgGreen)
	promptColor = color.New(color.FgYellow)
)

func runInteractive(cmd *cobra.Command, args []string) error {
	sinkName, err := promptRun(cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if sinkName == "csv" {
		if err := cfg.ValidateGenerate(); err != nil {
			return err
		}
		_, err = execute(ctx, sinkName, sinkOptionsForCSV())
		return err
	}

	if err := cfg.ValidateLoad(); err != nil {
		return err
	}
	_, err = execute(ctx, sinkName, databaseOptions())
	return err
}

// prompter reads answers line by line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask prints label with its default and returns the trimmed answer, or
// def when the answer is empty.
func (p *prompter) ask(label, def string) (string, error) {
	if def != "" {
		promptColor.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		promptColor.Fprintf(p.out, "%s: ", label)
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// askDate asks for a YYYY-MM-DD date. A malformed date is an error.
func (p *prompter) askDate(label, def string) (string, error) {
	answer, err := p.ask(label, def)
	if err != nil {
		return "", err
	}
	if _, err := time.Parse(config.DateLayout, answer); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", answer)
	}
	return answer, nil
}

// promptRun walks the menu, writes the answers into c and returns the name
// of the sink to use.
func promptRun(in io.Reader, out io.Writer, c *config.Config) (string, error) {
	p := &prompter{in: bufio.NewScanner(in), out: out}

	titleColor.Fprintln(out, "pgEdge Retail Data Generator")
	fmt.Fprintln(out)
	optionColor.Fprintln(out, "  1. Generate CSV files")
	optionColor.Fprintln(out, "  2. Load into a database")
	fmt.Fprintln(out)

	choice, err := p.ask("Select an option", "1")
	if err != nil {
		return "", err
	}

	sinkName := "csv"
	switch choice {
	case "1":
		dir, err := p.ask("Output directory", c.Output.Dir)
		if err != nil {
			return "", err
		}
		c.Output.Dir = dir
	case "2":
		if sinkName, err = promptDatabase(p, c); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("invalid option %q: choose 1 or 2", choice)
	}

	if c.Generate.StartDate, err = p.askDate("Start date (YYYY-MM-DD)", c.Generate.StartDate); err != nil {
		return "", err
	}
	if c.Generate.EndDate, err = p.askDate("End date (YYYY-MM-DD)", c.Generate.EndDate); err != nil {
		return "", err
	}

	answer, err := p.ask("Number of transactions", strconv.Itoa(c.Generate.Transactions))
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 0 {
		return "", fmt.Errorf("invalid number of transactions %q", answer)
	}
	c.Generate.Transactions = n

	fmt.Fprintln(out)
	return sinkName, nil
}

// promptDatabase asks for the database driver and target.
func promptDatabase(p *prompter, c *config.Config) (string, error) {
	driver, err := p.ask("Database driver (postgres, sqlite)", c.Database.Driver)
	if err != nil {
		return "", err
	}
	c.Database.Driver = driver

	switch driver {
	case "postgres":
		if c.Database.Server, err = p.ask("Server (empty keeps the connection host)", c.Database.Server); err != nil {
			return "", err
		}
		if c.Database.Name, err = p.ask("Database (empty keeps the connection database)", c.Database.Name); err != nil {
			return "", err
		}
	case "sqlite":
		def := c.Database.Name
		if def == "" {
			def = db.DefaultSQLitePath
		}
		if c.Database.Name, err = p.ask("Database file", def); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}

	return driver, nil
}
