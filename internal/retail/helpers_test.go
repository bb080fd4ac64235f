package retail

import (
	"testing"
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// fixedNow is the clock reading used by tests.
var fixedNow = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

func newTestGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	return NewGenerator(datagen.NewFakerWithSeed(seed)).
		WithClock(func() time.Time { return fixedNow })
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}
