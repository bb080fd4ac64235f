//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

// Reference data. The accessors below return copies so callers can never
// alter the package level tables.
var categories = []Category{
	{1, "Electronics"},
	{2, "Home Appliances"},
	{3, "Clothing"},
	{4, "Books & Media"},
	{5, "Sports & Outdoors"},
	{6, "Beauty & Personal Care"},
	{7, "Toys & Games"},
	{8, "Automotive"},
}

var subcategories = []Subcategory{
	{11, "Smartphones", 1},
	{12, "Laptops", 1},
	{13, "Audio Devices", 1},
	{14, "Tablets", 1},
	{15, "Cameras", 1},
	{21, "Kitchen Appliances", 2},
	{22, "Home Comfort", 2},
	{23, "Cleaning Appliances", 2},
	{31, "Men's Clothing", 3},
	{32, "Women's Clothing", 3},
	{33, "Kids' Clothing", 3},
	{41, "Books", 4},
	{42, "Movies & TV", 4},
	{43, "Music", 4},
	{51, "Exercise Equipment", 5},
	{52, "Outdoor Gear", 5},
	{61, "Skincare", 6},
	{62, "Makeup", 6},
	{71, "Board Games", 7},
	{72, "Video Games", 7},
	{81, "Car Accessories", 8},
	{82, "Tools & Equipment", 8},
}

var stores = []Store{
	{1, "NYC Flagship", "New York", "NY", "Northeast", "Flagship"},
	{2, "LA Downtown", "Los Angeles", "CA", "West", "Standard"},
	{3, "Chicago Mall", "Chicago", "IL", "Midwest", "Standard"},
	{4, "Houston Plaza", "Houston", "TX", "South", "Outlet"},
	{5, "Miami Beach Store", "Miami", "FL", "Southeast", "Standard"},
	{6, "Seattle Center", "Seattle", "WA", "Northwest", "Standard"},
	{7, "Boston Commons", "Boston", "MA", "Northeast", "Flagship"},
	{8, "Phoenix Mall", "Phoenix", "AZ", "Southwest", "Outlet"},
	{9, "Denver Downtown", "Denver", "CO", "Mountain", "Standard"},
	{10, "Atlanta Plaza", "Atlanta", "GA", "Southeast", "Standard"},
}

var usStates = []string{"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY"}

// Categories returns the fixed category table.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// Subcategories returns the fixed subcategory table.
func Subcategories() []Subcategory {
	return append([]Subcategory(nil), subcategories...)
}

// Stores returns the fixed store table.
func Stores() []Store {
	return append([]Store(nil), stores...)
}

// USStates returns the 50 US state abbreviations.
func USStates() []string {
	return append([]string(nil), usStates...)
}
