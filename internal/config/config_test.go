package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel 'info', got '%s'", cfg.LogLevel)
	}

	// Generate defaults reproduce the canonical seed data set.
	if cfg.Generate.StartDate != "2023-01-01" {
		t.Errorf("Expected Generate.StartDate '2023-01-01', got '%s'", cfg.Generate.StartDate)
	}
	if cfg.Generate.EndDate != "" {
		t.Errorf("Expected empty Generate.EndDate, got '%s'", cfg.Generate.EndDate)
	}
	if cfg.Generate.BasePrice != 3.30 {
		t.Errorf("Expected Generate.BasePrice 3.30, got %f", cfg.Generate.BasePrice)
	}
	if cfg.Generate.BatchSize != 500 {
		t.Errorf("Expected Generate.BatchSize 500, got %d", cfg.Generate.BatchSize)
	}
	if cfg.Generate.Table != "historical_market_prices" {
		t.Errorf("Expected Generate.Table 'historical_market_prices', got '%s'", cfg.Generate.Table)
	}
	if cfg.Generate.Output != "" {
		t.Errorf("Expected empty Generate.Output, got '%s'", cfg.Generate.Output)
	}
}

func TestValidateGenerate(t *testing.T) {
	valid := func() *Config {
		return DefaultConfig()
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{
			name:      "defaults are valid",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "explicit end date",
			mutate:    func(c *Config) { c.Generate.EndDate = "2025-12-31" },
			wantError: false,
		},
		{
			name:      "zero base price",
			mutate:    func(c *Config) { c.Generate.BasePrice = 0 },
			wantError: true,
		},
		{
			name:      "negative base price",
			mutate:    func(c *Config) { c.Generate.BasePrice = -1.5 },
			wantError: true,
		},
		{
			name:      "zero batch size",
			mutate:    func(c *Config) { c.Generate.BatchSize = 0 },
			wantError: true,
		},
		{
			name:      "missing table",
			mutate:    func(c *Config) { c.Generate.Table = "" },
			wantError: true,
		},
		{
			name:      "malformed start date",
			mutate:    func(c *Config) { c.Generate.StartDate = "01/01/2023" },
			wantError: true,
		},
		{
			name:      "malformed end date",
			mutate:    func(c *Config) { c.Generate.EndDate = "tomorrow" },
			wantError: true,
		},
		{
			name: "end before start",
			mutate: func(c *Config) {
				c.Generate.StartDate = "2025-01-01"
				c.Generate.EndDate = "2023-01-01"
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.ValidateGenerate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	g := GenerateConfig{StartDate: "2023-01-01", EndDate: "2025-12-31"}

	start, end, err := g.DateRange()
	if err != nil {
		t.Fatalf("DateRange failed: %v", err)
	}
	if start.Format(DateFormat) != "2023-01-01" {
		t.Errorf("start mismatch: %v", start)
	}
	if end.Format(DateFormat) != "2025-12-31" {
		t.Errorf("end mismatch: %v", end)
	}
}

func TestDateRangeEmptyEndIsToday(t *testing.T) {
	g := GenerateConfig{StartDate: "2023-01-01"}

	_, end, err := g.DateRange()
	if err != nil {
		t.Fatalf("DateRange failed: %v", err)
	}
	if end.Format(DateFormat) != time.Now().Format(DateFormat) {
		t.Errorf("empty end date should resolve to today, got %v", end)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pricegen.yaml")

	configContent := `
log_level: "debug"

generate:
  start_date: "2024-06-01"
  end_date: "2025-06-01"
  base_price: 4.10
  batch_size: 250
  table: "prices_staging"
  output: "seed.sql"
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
	if cfg.Generate.StartDate != "2024-06-01" {
		t.Errorf("Generate.StartDate mismatch: %s", cfg.Generate.StartDate)
	}
	if cfg.Generate.EndDate != "2025-06-01" {
		t.Errorf("Generate.EndDate mismatch: %s", cfg.Generate.EndDate)
	}
	if cfg.Generate.BasePrice != 4.10 {
		t.Errorf("Generate.BasePrice mismatch: %f", cfg.Generate.BasePrice)
	}
	if cfg.Generate.BatchSize != 250 {
		t.Errorf("Generate.BatchSize mismatch: %d", cfg.Generate.BatchSize)
	}
	if cfg.Generate.Table != "prices_staging" {
		t.Errorf("Generate.Table mismatch: %s", cfg.Generate.Table)
	}
	if cfg.Generate.Output != "seed.sql" {
		t.Errorf("Generate.Output mismatch: %s", cfg.Generate.Output)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	// Values absent from the file keep their defaults.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "pricegen.yaml")

	configContent := `
generate:
  batch_size: 100
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Generate.BatchSize != 100 {
		t.Errorf("Generate.BatchSize mismatch: %d", cfg.Generate.BatchSize)
	}
	if cfg.Generate.StartDate != "2023-01-01" {
		t.Errorf("Generate.StartDate should keep default, got: %s", cfg.Generate.StartDate)
	}
	if cfg.Generate.BasePrice != 3.30 {
		t.Errorf("Generate.BasePrice should keep default, got: %f", cfg.Generate.BasePrice)
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
	// When no config file is specified (empty string), Load returns defaults
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
