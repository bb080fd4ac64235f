//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-retailgen.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateLayout is the layout used for every date accepted on input.
const DateLayout = "2006-01-02"

// Config holds all configuration for pgedge-retailgen.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Seed makes generation reproducible. Zero picks a random seed.
	Seed uint64 `mapstructure:"seed"`

	// Generate holds the dataset dimensions.
	Generate GenerateConfig `mapstructure:"generate"`

	// Output holds configuration for the CSV sink.
	Output OutputConfig `mapstructure:"output"`

	// Database holds configuration for the relational sinks.
	Database DatabaseConfig `mapstructure:"database"`
}

// GenerateConfig holds the dataset dimensions.
type GenerateConfig struct {
	// StartDate is the first possible transaction date (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`

	// EndDate is the last possible transaction date (YYYY-MM-DD).
	EndDate string `mapstructure:"end_date"`

	// Transactions is the number of sales transactions.
	Transactions int `mapstructure:"transactions"`

	// Products is the number of product draws. Fewer products can be
	// produced when a category has no subcategories.
	Products int `mapstructure:"products"`

	// Customers is the number of customers.
	Customers int `mapstructure:"customers"`
}

// OutputConfig holds configuration for file output.
type OutputConfig struct {
	// Dir is the directory receiving one CSV file per table.
	Dir string `mapstructure:"dir"`
}

// DatabaseConfig holds configuration for database output.
type DatabaseConfig struct {
	// Driver selects the relational sink: postgres or sqlite.
	Driver string `mapstructure:"driver"`

	// Connection is a PostgreSQL connection string or a SQLite file path.
	Connection string `mapstructure:"connection"`

	// Server overrides the host of a PostgreSQL connection string.
	Server string `mapstructure:"server"`

	// Name overrides the database name (PostgreSQL) or file (SQLite).
	Name string `mapstructure:"name"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			Transactions: 1000,
			Products:     200,
			Customers:    1000,
		},
		Output: OutputConfig{
			Dir: "sourcedata",
		},
		Database: DatabaseConfig{
			Driver:     "postgres",
			Connection: "postgres://postgres@localhost:5432/retailsales",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-retailgen.yaml
// 3. ~/.config/pgedge-retailgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-retailgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-retailgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks the generation settings shared by every command.
func (c *Config) Validate() error {
	g := c.Generate
	if g.StartDate == "" {
		return fmt.Errorf("start date is required")
	}
	if g.EndDate == "" {
		return fmt.Errorf("end date is required")
	}
	start, err := time.Parse(DateLayout, g.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", g.StartDate, err)
	}
	end, err := time.Parse(DateLayout, g.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", g.EndDate, err)
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", g.EndDate, g.StartDate)
	}
	if g.Transactions < 0 {
		return fmt.Errorf("transactions must be non-negative")
	}
	if g.Products < 0 {
		return fmt.Errorf("products must be non-negative")
	}
	if g.Customers < 0 {
		return fmt.Errorf("customers must be non-negative")
	}
	return nil
}

// ValidateGenerate checks configuration required for CSV generation.
func (c *Config) ValidateGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

// ValidateLoad checks configuration required for database loading.
func (c *Config) ValidateLoad() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.ValidateDatabase()
}

// ValidateDatabase checks the database settings alone.
func (c *Config) ValidateDatabase() error {
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return fmt.Errorf("database driver must be 'postgres' or 'sqlite'")
	}
	if c.Database.Connection == "" && c.Database.Name == "" {
		return fmt.Errorf("database connection is required")
	}
	return nil
}
