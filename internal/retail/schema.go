//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

// The DDL below is accepted by both PostgreSQL and SQLite. Tables are
// created parents first and dropped children first, so no CASCADE is
// needed.
var createTableStatements = []string{
	`CREATE TABLE categories (
    category_id   INTEGER PRIMARY KEY,
    category_name VARCHAR(100) NOT NULL
)`,
	`CREATE TABLE subcategories (
    subcategory_id   INTEGER PRIMARY KEY,
    subcategory_name VARCHAR(100) NOT NULL,
    category_id      INTEGER NOT NULL REFERENCES categories (category_id)
)`,
	`CREATE TABLE stores (
    store_id   INTEGER PRIMARY KEY,
    store_name VARCHAR(100) NOT NULL,
    city       VARCHAR(50) NOT NULL,
    state      VARCHAR(10) NOT NULL,
    region     VARCHAR(50) NOT NULL,
    store_type VARCHAR(50) NOT NULL
)`,
	`CREATE TABLE products (
    product_id     INTEGER PRIMARY KEY,
    product_name   VARCHAR(200) NOT NULL,
    category_id    INTEGER NOT NULL REFERENCES categories (category_id),
    subcategory_id INTEGER NOT NULL REFERENCES subcategories (subcategory_id),
    brand          VARCHAR(50) NOT NULL,
    cost_price     DECIMAL(10,2) NOT NULL,
    selling_price  DECIMAL(10,2) NOT NULL
)`,
	`CREATE TABLE customers (
    customer_id  INTEGER PRIMARY KEY,
    first_name   VARCHAR(50) NOT NULL,
    last_name    VARCHAR(50) NOT NULL,
    email        VARCHAR(100) NOT NULL,
    phone        VARCHAR(20),
    city         VARCHAR(50) NOT NULL,
    state        VARCHAR(10) NOT NULL,
    country      VARCHAR(50) NOT NULL,
    created_date DATE NOT NULL
)`,
	`CREATE TABLE sales_transactions (
    transaction_id   INTEGER PRIMARY KEY,
    customer_id      INTEGER REFERENCES customers (customer_id),
    product_id       INTEGER NOT NULL REFERENCES products (product_id),
    quantity         INTEGER NOT NULL,
    unit_price       DECIMAL(10,2) NOT NULL,
    discount         DECIMAL(10,2) NOT NULL,
    transaction_date DATE NOT NULL,
    store_id         INTEGER NOT NULL REFERENCES stores (store_id),
    payment_method   VARCHAR(50) NOT NULL
)`,
}

var dropTableStatements = []string{
	"DROP TABLE IF EXISTS sales_transactions",
	"DROP TABLE IF EXISTS customers",
	"DROP TABLE IF EXISTS products",
	"DROP TABLE IF EXISTS stores",
	"DROP TABLE IF EXISTS subcategories",
	"DROP TABLE IF EXISTS categories",
}

// CreateTableStatements returns the CREATE TABLE statements in dependency
// order.
func CreateTableStatements() []string {
	return append([]string(nil), createTableStatements...)
}

// DropTableStatements returns DROP TABLE statements in reverse dependency
// order.
func DropTableStatements() []string {
	return append([]string(nil), dropTableStatements...)
}
