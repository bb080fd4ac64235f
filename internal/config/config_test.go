package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validGenerate() GenerateConfig {
	return GenerateConfig{
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
		Transactions: 100,
		Products:     20,
		Customers:    50,
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected Seed 0, got %d", cfg.Seed)
	}

	// Generate defaults
	if cfg.Generate.Transactions != 1000 {
		t.Errorf("Expected Generate.Transactions 1000, got %d", cfg.Generate.Transactions)
	}
	if cfg.Generate.Products != 200 {
		t.Errorf("Expected Generate.Products 200, got %d", cfg.Generate.Products)
	}
	if cfg.Generate.Customers != 1000 {
		t.Errorf("Expected Generate.Customers 1000, got %d", cfg.Generate.Customers)
	}
	if cfg.Generate.StartDate != "" || cfg.Generate.EndDate != "" {
		t.Error("Expected no default date range")
	}

	// Sink defaults
	if cfg.Output.Dir != "sourcedata" {
		t.Errorf("Expected Output.Dir 'sourcedata', got '%s'", cfg.Output.Dir)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Expected Database.Driver 'postgres', got '%s'", cfg.Database.Driver)
	}
	if cfg.Database.Connection == "" {
		t.Error("Expected a default Database.Connection")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		gen       func(g *GenerateConfig)
		wantError bool
	}{
		{
			name:      "valid config",
			gen:       func(g *GenerateConfig) {},
			wantError: false,
		},
		{
			name:      "single day range",
			gen:       func(g *GenerateConfig) { g.EndDate = g.StartDate },
			wantError: false,
		},
		{
			name:      "zero counts",
			gen:       func(g *GenerateConfig) { g.Transactions, g.Products, g.Customers = 0, 0, 0 },
			wantError: false,
		},
		{
			name:      "missing start date",
			gen:       func(g *GenerateConfig) { g.StartDate = "" },
			wantError: true,
		},
		{
			name:      "missing end date",
			gen:       func(g *GenerateConfig) { g.EndDate = "" },
			wantError: true,
		},
		{
			name:      "malformed start date",
			gen:       func(g *GenerateConfig) { g.StartDate = "01/02/2024" },
			wantError: true,
		},
		{
			name:      "malformed end date",
			gen:       func(g *GenerateConfig) { g.EndDate = "2024-13-01" },
			wantError: true,
		},
		{
			name:      "end before start",
			gen:       func(g *GenerateConfig) { g.StartDate, g.EndDate = "2024-06-01", "2024-05-31" },
			wantError: true,
		},
		{
			name:      "negative transactions",
			gen:       func(g *GenerateConfig) { g.Transactions = -1 },
			wantError: true,
		},
		{
			name:      "negative products",
			gen:       func(g *GenerateConfig) { g.Products = -5 },
			wantError: true,
		},
		{
			name:      "negative customers",
			gen:       func(g *GenerateConfig) { g.Customers = -5 },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Generate = validGenerate()
			tt.gen(&cfg.Generate)

			err := cfg.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestConfigValidateGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generate = validGenerate()
	if err := cfg.ValidateGenerate(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	cfg.Output.Dir = ""
	if err := cfg.ValidateGenerate(); err == nil {
		t.Error("Expected error for missing output directory, got nil")
	}
}

func TestConfigValidateLoad(t *testing.T) {
	tests := []struct {
		name      string
		db        DatabaseConfig
		wantError bool
	}{
		{
			name:      "postgres",
			db:        DatabaseConfig{Driver: "postgres", Connection: "postgres://user@localhost/db"},
			wantError: false,
		},
		{
			name:      "sqlite",
			db:        DatabaseConfig{Driver: "sqlite", Connection: "retail.db"},
			wantError: false,
		},
		{
			name:      "name only",
			db:        DatabaseConfig{Driver: "sqlite", Name: "retail.db"},
			wantError: false,
		},
		{
			name:      "unknown driver",
			db:        DatabaseConfig{Driver: "sqlserver", Connection: "server=localhost"},
			wantError: true,
		},
		{
			name:      "missing connection",
			db:        DatabaseConfig{Driver: "postgres"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Generate = validGenerate()
			cfg.Database = tt.db

			err := cfg.ValidateLoad()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestConfigValidateDatabaseIgnoresDates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateDatabase(); err != nil {
		t.Errorf("Expected defaults to pass without dates, got: %v", err)
	}
	if err := cfg.ValidateLoad(); err == nil {
		t.Error("Expected ValidateLoad to require dates, got nil")
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pgedge-retailgen.yaml")

	configContent := `
log_level: "debug"
seed: 42

generate:
  start_date: "2023-01-01"
  end_date: "2023-03-31"
  transactions: 5000
  products: 50
  customers: 300

output:
  dir: "/tmp/retail"

database:
  driver: "sqlite"
  connection: "/tmp/retail.db"
  server: "db.internal"
  name: "sales"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel mismatch: %s", cfg.LogLevel)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed mismatch: %d", cfg.Seed)
	}
	if cfg.Generate.StartDate != "2023-01-01" {
		t.Errorf("Generate.StartDate mismatch: %s", cfg.Generate.StartDate)
	}
	if cfg.Generate.EndDate != "2023-03-31" {
		t.Errorf("Generate.EndDate mismatch: %s", cfg.Generate.EndDate)
	}
	if cfg.Generate.Transactions != 5000 {
		t.Errorf("Generate.Transactions mismatch: %d", cfg.Generate.Transactions)
	}
	if cfg.Generate.Products != 50 {
		t.Errorf("Generate.Products mismatch: %d", cfg.Generate.Products)
	}
	if cfg.Generate.Customers != 300 {
		t.Errorf("Generate.Customers mismatch: %d", cfg.Generate.Customers)
	}
	if cfg.Output.Dir != "/tmp/retail" {
		t.Errorf("Output.Dir mismatch: %s", cfg.Output.Dir)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver mismatch: %s", cfg.Database.Driver)
	}
	if cfg.Database.Connection != "/tmp/retail.db" {
		t.Errorf("Database.Connection mismatch: %s", cfg.Database.Connection)
	}
	if cfg.Database.Server != "db.internal" {
		t.Errorf("Database.Server mismatch: %s", cfg.Database.Server)
	}
	if cfg.Database.Name != "sales" {
		t.Errorf("Database.Name mismatch: %s", cfg.Database.Name)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("seed: 7\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed mismatch: %d", cfg.Seed)
	}
	if cfg.Generate.Products != 200 {
		t.Errorf("Expected default Generate.Products 200, got %d", cfg.Generate.Products)
	}
	if cfg.Output.Dir != "sourcedata" {
		t.Errorf("Expected default Output.Dir, got %s", cfg.Output.Dir)
	}
}

func TestLoadConfigFileNotFound(t *testing.T) {
	// When a specific config file is provided but doesn't exist, Load returns an error
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load should error when specified config file doesn't exist")
	}
}

func TestLoadConfigDefaultPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should not error with empty path, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load should return default config")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default LogLevel 'info', got '%s'", cfg.LogLevel)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidContent := `
generate: [invalid yaml
  that: won't parse
`
	err := os.WriteFile(configPath, []byte(invalidContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}
