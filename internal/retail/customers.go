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
	"strings"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// DefaultCustomers is the default number of customers.
const DefaultCustomers = 1000

const (
	customerCountry = "USA"

	// missingPhoneRate is the share of customers without a phone number.
	missingPhoneRate = 0.05

	// customerHistoryYears bounds how far back created dates go.
	customerHistoryYears = 2
)

// Customers generates n customers with IDs 1..n. Creation dates fall
// within the two years before the generator clock's current day.
func (g *Generator) Customers(n int) []Customer {
	logging.Info().Int("count", n).Msg("Generating customers")

	today := dateOf(g.now())
	earliest := today.AddDate(-customerHistoryYears, 0, 0)
	days := daysBetween(earliest, today)

	customers := make([]Customer, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		first := g.faker.FirstName()
		last := g.faker.LastName()

		customers = append(customers, Customer{
			ID:          i,
			FirstName:   first,
			LastName:    last,
			Email:       customerEmail(first, last, g.faker.FreeEmailDomain()),
			Phone:       g.faker.NullableString(g.faker.Phone(), missingPhoneRate),
			City:        g.faker.City(),
			State:       datagen.Choose(g.faker, usStates),
			Country:     customerCountry,
			CreatedDate: earliest.AddDate(0, 0, g.faker.Int(0, days)),
		})
	}

	return customers
}

// customerEmail derives first.last@domain in lower case.
func customerEmail(first, last, domain string) string {
	return fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), domain)
}
