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
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

var validate = validator.New()

// Request describes the dataset to generate.
type Request struct {
	StartDate    string `validate:"required,datetime=2006-01-02"`
	EndDate      string `validate:"required,datetime=2006-01-02"`
	Transactions int    `validate:"gte=0"`
	Products     int    `validate:"gte=0"`
	Customers    int    `validate:"gte=0"`
}

// Dataset is a complete, generated set of retail tables.
type Dataset struct {
	Categories    []Category
	Subcategories []Subcategory
	Stores        []Store
	Products      []Product
	Customers     []Customer
	Transactions  []SalesTransaction

	// StartDate and EndDate bound the transaction dates.
	StartDate time.Time
	EndDate   time.Time

	// Seed is the seed of the random source used.
	Seed uint64

	// GeneratedAt is the generator clock reading when generation finished.
	GeneratedAt time.Time
}

// ParseDates validates the request and returns its parsed date range.
func (r Request) ParseDates() (start, end time.Time, err error) {
	if err := validate.Struct(r); err != nil {
		return start, end, fmt.Errorf("invalid request: %w", err)
	}
	start, err = time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid start date: %w", err)
	}
	end, err = time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid end date: %w", err)
	}
	return start, end, nil
}

// Generate builds a full dataset: reference tables first, then products,
// customers and finally transactions pointing at all of them.
func (g *Generator) Generate(req Request) (*Dataset, error) {
	start, end, err := req.ParseDates()
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, req.StartDate, req.EndDate)
	}

	logging.Info().Msg("Generating reference data")
	ds := &Dataset{
		Categories:    Categories(),
		Subcategories: Subcategories(),
		Stores:        Stores(),
		StartDate:     start,
		EndDate:       end,
		Seed:          g.faker.Seed(),
	}

	ds.Products = g.Products(req.Products, ds.Categories, ds.Subcategories)
	ds.Customers = g.Customers(req.Customers)

	ds.Transactions, err = g.Transactions(req.Transactions, start, end, TransactionRefs{
		Customers: ds.Customers,
		Products:  ds.Products,
		Stores:    ds.Stores,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate sales transactions: %w", err)
	}

	ds.GeneratedAt = g.now().UTC()
	return ds, nil
}

// Counts returns the number of rows per table name.
func (d *Dataset) Counts() map[string]int {
	counts := make(map[string]int, 6)
	for _, t := range d.Tables() {
		counts[t.Name] = len(t.Rows)
	}
	return counts
}
