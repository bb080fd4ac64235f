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
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// Sentinel errors returned by the transaction synthesizer.
var (
	// ErrInvalidDateRange is returned when the end date precedes the start date.
	ErrInvalidDateRange = errors.New("end date is before start date")

	// ErrEmptyReference is returned when a table a transaction must point
	// at has no rows.
	ErrEmptyReference = errors.New("reference table is empty")
)

// transactionIDOffset is added to the 1-based sequence to form IDs.
const transactionIDOffset = 1000

// Defect rates. Each is rolled independently per transaction.
const (
	missingCustomerRate = 0.02
	invalidQuantityRate = 0.01
	priceMismatchRate   = 0.03
)

// invalidQuantity is written when a quantity defect is injected.
const invalidQuantity = -1

var (
	// discountOdds picks between a discounted and an undiscounted sale.
	discountOdds    = []bool{true, false}
	discountWeights = []int{80, 20}
)

// TransactionRefs holds the tables transactions point at.
type TransactionRefs struct {
	Customers []Customer
	Products  []Product
	Stores    []Store
}

// Transactions generates n sales transactions dated between start and end
// (inclusive, by calendar day) with IDs 1001..1000+n.
func (g *Generator) Transactions(n int, start, end time.Time, refs TransactionRefs) ([]SalesTransaction, error) {
	start, end = dateOf(start), dateOf(end)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			start.Format(DateLayout), end.Format(DateLayout))
	}
	switch {
	case len(refs.Customers) == 0:
		return nil, fmt.Errorf("%w: customers", ErrEmptyReference)
	case len(refs.Products) == 0:
		return nil, fmt.Errorf("%w: products", ErrEmptyReference)
	case len(refs.Stores) == 0:
		return nil, fmt.Errorf("%w: stores", ErrEmptyReference)
	}

	logging.Info().
		Int("count", n).
		Str("start_date", start.Format(DateLayout)).
		Str("end_date", end.Format(DateLayout)).
		Msg("Generating sales transactions")

	days := daysBetween(start, end)
	txns := make([]SalesTransaction, 0, max(n, 0))

	for i := 1; i <= n; i++ {
		customerID := datagen.Choose(g.faker, refs.Customers).ID
		product := datagen.Choose(g.faker, refs.Products)
		unitPrice := product.SellingPrice
		quantity := g.faker.Int(1, 5)

		discount := decimal.Zero
		if datagen.ChooseWeighted(g.faker, discountOdds, discountWeights) {
			discount = round2(g.faker.Float64(0, 0.3) * unitPrice.InexactFloat64())
		}

		txn := SalesTransaction{
			ID:              transactionIDOffset + i,
			CustomerID:      &customerID,
			ProductID:       product.ID,
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			Discount:        discount,
			TransactionDate: start.AddDate(0, 0, g.faker.Int(0, days)),
			StoreID:         datagen.Choose(g.faker, refs.Stores).ID,
			PaymentMethod:   datagen.Choose(g.faker, PaymentMethods),
		}
		g.injectDefects(&txn)

		txns = append(txns, txn)
	}

	return txns, nil
}

// injectDefects corrupts a freshly built transaction the way real source
// systems do: missing customer links, invalid quantities and prices that
// disagree with the catalog.
func (g *Generator) injectDefects(txn *SalesTransaction) {
	if g.faker.Chance(missingCustomerRate) {
		txn.CustomerID = nil
	}
	if g.faker.Chance(invalidQuantityRate) {
		txn.Quantity = invalidQuantity
	}
	if g.faker.Chance(priceMismatchRate) {
		txn.UnitPrice = round2(txn.UnitPrice.InexactFloat64() * g.faker.Float64(0.5, 1.5))
	}
}

// daysBetween returns the whole days from start to end, both UTC midnights.
// time.Duration saturates near 292 years, so it is not used here.
func daysBetween(start, end time.Time) int {
	return int((end.Unix() - start.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
