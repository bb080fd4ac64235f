//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides random data generation utilities.
package datagen

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// freeEmailDomains are the webmail providers used for customer addresses.
var freeEmailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com"}

// Faker provides fake data generation using gofakeit. Every random draw made
// by the generators goes through a Faker, so a seeded Faker reproduces a
// dataset exactly.
type Faker struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return NewFakerWithSeed(0)
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
// A zero seed is replaced by a clock based one, which Seed reports.
func NewFakerWithSeed(seed uint64) *Faker {
	for seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Faker{
		faker: gofakeit.New(seed),
		seed:  seed,
	}
}

// Seed returns the seed the Faker was created with.
func (f *Faker) Seed() uint64 {
	return f.seed
}

// FirstName generates a random first name.
func (f *Faker) FirstName() string {
	return f.faker.FirstName()
}

// LastName generates a random last name.
func (f *Faker) LastName() string {
	return f.faker.LastName()
}

// Phone generates a random formatted US phone number.
func (f *Faker) Phone() string {
	return f.faker.PhoneFormatted()
}

// City generates a random city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// FreeEmailDomain returns a random free webmail domain.
func (f *Faker) FreeEmailDomain() string {
	return Choose(f, freeEmailDomains)
}

// CatchPhrase generates a marketing style phrase such as
// "Proactive synergize hardware".
func (f *Faker) CatchPhrase() string {
	return fmt.Sprintf("%s %s %s",
		capitalize(f.faker.Adjective()), f.faker.BuzzWord(), f.faker.Noun())
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Chance reports true with the given probability.
func (f *Faker) Chance(probability float64) bool {
	return f.Float64(0, 1) < probability
}

// NullableString returns the string or empty with given probability.
func (f *Faker) NullableString(s string, nullProbability float64) string {
	if f.Chance(nullProbability) {
		return ""
	}
	return s
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseWeighted returns a random element based on weights.
func ChooseWeighted[T any](f *Faker, items []T, weights []int) T {
	if len(items) == 0 || len(weights) == 0 {
		var zero T
		return zero
	}

	totalWeight := 0
	for _, w := range weights {
		totalWeight += w
	}

	r := f.Int(1, totalWeight)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}

	return items[len(items)-1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
