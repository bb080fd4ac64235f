//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package retail generates a fictitious retail sales dataset: reference
// tables, a product catalog, customers and sales transactions with a small
// share of deliberately dirty rows.
package retail

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of every date rendered or parsed by the package.
const DateLayout = "2006-01-02"

// Category is a top level product category.
type Category struct {
	ID   int
	Name string
}

// Subcategory belongs to exactly one Category. The tens digit of the ID is
// the parent category ID.
type Subcategory struct {
	ID         int
	Name       string
	CategoryID int
}

// Store is a physical retail location.
type Store struct {
	ID        int
	Name      string
	City      string
	State     string
	Region    string
	StoreType string
}

// Product is a catalog entry. CostPrice is between 50% and 80% of
// SellingPrice.
type Product struct {
	ID            int
	Name          string
	CategoryID    int
	SubcategoryID int
	Brand         string
	CostPrice     decimal.Decimal
	SellingPrice  decimal.Decimal
}

// Customer is a synthetic shopper. Phone is empty for a small share of
// customers.
type Customer struct {
	ID          int
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	City        string
	State       string
	Country     string
	CreatedDate time.Time
}

// SalesTransaction is a single sale line. CustomerID is nil when the
// customer link is missing.
type SalesTransaction struct {
	ID              int
	CustomerID      *int
	ProductID       int
	Quantity        int
	UnitPrice       decimal.Decimal
	Discount        decimal.Decimal
	TransactionDate time.Time
	StoreID         int
	PaymentMethod   string
}

// PaymentMethods lists the accepted payment methods.
var PaymentMethods = []string{"Credit Card", "Debit Card", "Digital Wallet", "Cash", "Bank Transfer"}

// round2 rounds a float to a two place decimal.
func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// dateOf truncates t to midnight UTC of its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
