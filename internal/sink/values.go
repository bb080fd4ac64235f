package sink

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/db"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

// formatValue renders a table value for text output. Nil becomes an
// empty field.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case decimal.Decimal:
		return val.StringFixed(2)
	case time.Time:
		return val.Format(retail.DateLayout)
	default:
		return fmt.Sprint(val)
	}
}

// postgresArg converts a table value to a pgx query argument.
func postgresArg(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.InexactFloat64()
	default:
		return v
	}
}

// sqliteArg converts a table value to a database/sql argument for SQLite,
// which stores dates as ISO text.
func sqliteArg(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.InexactFloat64()
	case time.Time:
		return val.Format(retail.DateLayout)
	default:
		return v
	}
}

// rowArgs converts a row with conv.
func rowArgs(row []any, conv func(any) any) []any {
	args := make([]any, len(row))
	for i, v := range row {
		args[i] = conv(v)
	}
	return args
}

// metadataFor describes a dataset for the metadata table.
func metadataFor(runID string, ds *retail.Dataset) db.Metadata {
	return db.Metadata{
		RunID:        runID,
		Seed:         ds.Seed,
		StartDate:    ds.StartDate,
		EndDate:      ds.EndDate,
		Transactions: len(ds.Transactions),
		GeneratedAt:  ds.GeneratedAt,
	}
}
