//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package testutil gives integration tests a throwaway PostgreSQL database
// to load retail tables into.
package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-retailgen/internal/db"
)

const (
	// ConnEnv names the variable holding the server used by integration
	// tests.
	ConnEnv = "RETAILGEN_TEST_CONN"

	// DefaultTestConnString is used when ConnEnv is unset.
	DefaultTestConnString = "postgres://postgres@localhost:5432/postgres"

	// TestDBPrefix starts the name of every database the tests create.
	TestDBPrefix = "retailgen_test_"
)

// baseConnString returns the server connection string for tests.
func baseConnString() string {
	if connStr := os.Getenv(ConnEnv); connStr != "" {
		return connStr
	}
	return DefaultTestConnString
}

// SkipIfNoPostgres skips the test unless the test server answers a ping,
// and returns its connection string.
func SkipIfNoPostgres(t *testing.T) string {
	t.Helper()

	connStr := baseConnString()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, connStr)
	if err == nil {
		defer pool.Close()
		err = pool.Ping(ctx)
	}
	if err != nil {
		t.Skipf("PostgreSQL not reachable via %s: %v", ConnEnv, err)
	}
	return connStr
}

// CreateTestDB creates an empty database named after label with a random
// suffix and returns a connection string for it.
func CreateTestDB(t *testing.T, baseConnStr, label string) string {
	t.Helper()

	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("Failed to generate database name: %v", err)
	}
	dbName := TestDBPrefix + label + "_" + hex.EncodeToString(suffix)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, baseConnStr)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	config, err := db.ParseConfig(baseConnStr, db.Overrides{Database: dbName})
	if err != nil {
		t.Fatalf("Failed to parse connection string: %v", err)
	}

	// ConnString() keeps the original database, so build the URL from the
	// parsed fields.
	cc := config.ConnConfig
	u := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", cc.Host, cc.Port),
		Path:   "/" + cc.Database,
	}
	if cc.Password != "" {
		u.User = url.UserPassword(cc.User, cc.Password)
	} else {
		u.User = url.User(cc.User)
	}
	return u.String()
}

// DropTestDB drops a test database, disconnecting any sessions left on it.
func DropTestDB(t *testing.T, baseConnStr, dbName string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, baseConnStr)
	if err != nil {
		t.Logf("Warning: could not connect to drop %s: %v", dbName, err)
		return
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s WITH (FORCE)", dbName)); err != nil {
		t.Logf("Warning: failed to drop %s: %v", dbName, err)
	}
}

// GetDBNameFromConnStr extracts the database name from a connection string.
func GetDBNameFromConnStr(connStr string) string {
	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return ""
	}
	return config.ConnConfig.Database
}

// ConnectTestDB opens a pool on a test database for checking loaded rows.
func ConnectTestDB(t *testing.T, connStr string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, connStr, db.Overrides{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	return pool
}

// TestCleanup closes the verification pool and drops the test database
// when the test ends.
type TestCleanup struct {
	t           *testing.T
	baseConnStr string
	dbName      string
	pool        *pgxpool.Pool
}

// NewTestCleanup creates a cleanup for dbName on the given server.
func NewTestCleanup(t *testing.T, baseConnStr, dbName string) *TestCleanup {
	return &TestCleanup{
		t:           t,
		baseConnStr: baseConnStr,
		dbName:      dbName,
	}
}

// SetPool registers a pool to close before the database is dropped.
func (tc *TestCleanup) SetPool(pool *pgxpool.Pool) {
	tc.pool = pool
}

// Cleanup closes the pool and drops the database. A failed test keeps its
// database so the loaded rows can be inspected.
func (tc *TestCleanup) Cleanup() {
	if tc.pool != nil {
		tc.pool.Close()
	}
	if tc.dbName == "" {
		return
	}
	if tc.t.Failed() {
		tc.t.Logf("Keeping database %s for inspection", tc.dbName)
		return
	}
	DropTestDB(tc.t, tc.baseConnStr, tc.dbName)
}
