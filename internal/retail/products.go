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

	"github.com/shopspring/decimal"

	"github.com/pgEdge/pgedge-retailgen/internal/datagen"
	"github.com/pgEdge/pgedge-retailgen/internal/logging"
)

// DefaultProducts is the default number of product draws.
const DefaultProducts = 200

// firstProductID is the ID of the first generated product.
const firstProductID = 101

const genericBrand = "Generic"

var brandsByCategory = map[int][]string{
	1: {"Apple", "Samsung", "Sony", "LG", "Dell", "Lenovo", "HP", "Bose", "JBL"},
	2: {"KitchenAid", "Ninja", "Instant Pot", "Dyson", "Shark", "Black+Decker", "Cuisinart"},
	3: {"Nike", "Adidas", "Levi's", "H&M", "Zara", "Gap", "Under Armour"},
	4: {"Penguin", "HarperCollins", "Random House", "Scholastic", "Disney"},
	5: {"Nike", "Adidas", "Under Armour", "The North Face", "Columbia"},
	6: {"L'Oreal", "Maybelline", "Neutrogena", "Olay", "Nivea"},
	7: {"Hasbro", "Mattel", "Nintendo", "Sony", "Microsoft"},
	8: {"3M", "Bosch", "Stanley", "Black+Decker", "Michelin"},
}

// mediaCategoryID names products after a catch phrase instead of a brand.
const mediaCategoryID = 4

// nameTemplates hold one %s verb, filled with the brand (or a catch phrase
// for the media category).
var nameTemplates = map[int][]string{
	1: {"%s Smartphone", "%s Laptop", "%s Headphones", "%s Tablet", "%s Smart Watch"},
	2: {"%s Blender", "%s Coffee Maker", "%s Vacuum Cleaner", "%s Air Purifier"},
	3: {"%s T-Shirt", "%s Jeans", "%s Jacket", "%s Dress", "%s Sneakers"},
	4: {"Book: %s", "DVD: %s", "CD: %s"},
	5: {"%s Running Shoes", "%s Yoga Mat", "%s Tent", "%s Basketball"},
	6: {"%s Moisturizer", "%s Foundation", "%s Shampoo", "%s Perfume"},
	7: {"%s Board Game", "%s Video Game", "%s Action Figure", "%s Puzzle"},
	8: {"%s Car Mat", "%s Tool Set", "%s Tire", "%s Battery"},
}

var defaultNameTemplates = []string{"%s Product"}

// priceRange is an inclusive selling price range in dollars.
type priceRange struct {
	min, max float64
}

var priceRanges = map[int]priceRange{
	1: {50, 2000}, // Electronics
	2: {20, 500},  // Home Appliances
	3: {10, 200},  // Clothing
	4: {5, 50},    // Books & Media
	5: {15, 300},  // Sports & Outdoors
	6: {5, 100},   // Beauty & Personal Care
	7: {10, 100},  // Toys & Games
	8: {10, 400},  // Automotive
}

var defaultPriceRange = priceRange{10, 100}

// Products draws n products from the given category and subcategory tables.
// Draws that land on a category without subcategories are skipped, so fewer
// than n products may be returned.
func (g *Generator) Products(n int, cats []Category, subs []Subcategory) []Product {
	logging.Info().Int("count", n).Msg("Generating products")

	if len(cats) == 0 {
		return []Product{}
	}

	byCategory := make(map[int][]Subcategory, len(cats))
	for _, s := range subs {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}

	products := make([]Product, 0, max(n, 0))
	id := firstProductID
	skipped := 0
	for i := 0; i < n; i++ {
		cat := datagen.Choose(g.faker, cats)
		matches := byCategory[cat.ID]
		if len(matches) == 0 {
			skipped++
			continue
		}
		sub := datagen.Choose(g.faker, matches)
		brand := g.brand(cat.ID)
		cost, selling := g.prices(cat.ID)

		products = append(products, Product{
			ID:            id,
			Name:          g.productName(cat.ID, brand),
			CategoryID:    cat.ID,
			SubcategoryID: sub.ID,
			Brand:         brand,
			CostPrice:     cost,
			SellingPrice:  selling,
		})
		id++
	}

	if skipped > 0 {
		logging.Debug().
			Int("skipped", skipped).
			Msg("Skipped product draws for categories without subcategories")
	}

	return products
}

func (g *Generator) brand(categoryID int) string {
	brands, ok := brandsByCategory[categoryID]
	if !ok {
		return genericBrand
	}
	return datagen.Choose(g.faker, brands)
}

func (g *Generator) productName(categoryID int, brand string) string {
	templates, ok := nameTemplates[categoryID]
	if !ok {
		templates = defaultNameTemplates
	}
	tmpl := datagen.Choose(g.faker, templates)
	if categoryID == mediaCategoryID {
		return fmt.Sprintf(tmpl, g.faker.CatchPhrase())
	}
	return fmt.Sprintf(tmpl, brand)
}

// prices returns a cost and selling price pair for a category.
func (g *Generator) prices(categoryID int) (cost, selling decimal.Decimal) {
	r, ok := priceRanges[categoryID]
	if !ok {
		r = defaultPriceRange
	}
	selling = round2(g.faker.Float64(r.min, r.max))
	cost = round2(selling.InexactFloat64() * g.faker.Float64(0.5, 0.8))
	return cost, selling
}
