package sink

import (
	"testing"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/retail"
)

func testDataset(t *testing.T) *retail.Dataset {
	t.Helper()
	g := retail.NewGenerator(datagen.NewFakerWithSeed(7)).
		WithClock(func() time.Time { return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) })

	ds, err := g.Generate(retail.Request{
		StartDate:    "2024-01-01",
		EndDate:      "2024-03-31",
		Transactions: 300,
		Products:     40,
		Customers:    60,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return ds
}
