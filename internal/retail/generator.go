//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"time"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
)

// Generator synthesizes retail records. All randomness comes from the
// Faker it was built with; the clock anchors customer creation dates.
type Generator struct {
	faker *datagen.Faker
	now   func() time.Time
}

// NewGenerator creates a generator drawing from the given faker. A nil
// faker gets a randomly seeded one.
func NewGenerator(faker *datagen.Faker) *Generator {
	if faker == nil {
		faker = datagen.NewFaker()
	}
	return &Generator{
		faker: faker,
		now:   time.Now,
	}
}

// WithClock returns a copy of the generator using now as its clock.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	c := *g
	c.now = now
	return &c
}

// Faker returns the random source of the generator.
func (g *Generator) Faker() *datagen.Faker {
	return g.faker
}
