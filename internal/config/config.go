//-------------------------------------------------------------------------
//
// AgriYards Price Generator
//
// Copyright (c) 2025 - 2026, AgriYards, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pricegen.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DateFormat is the calendar date layout used throughout pricegen.
const DateFormat = "2006-01-02"

// Config holds all configuration for pricegen.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for SQL generation.
type GenerateConfig struct {
	// StartDate is the first day of the series (YYYY-MM-DD).
	StartDate string `mapstructure:"start_date"`

	// EndDate is the last day of the series (YYYY-MM-DD).
	// Empty means today.
	EndDate string `mapstructure:"end_date"`

	// BasePrice is the reference price per kg for Grown Steer.
	BasePrice float64 `mapstructure:"base_price"`

	// BatchSize is the number of value tuples per INSERT statement.
	BatchSize int `mapstructure:"batch_size"`

	// Table is the target table name.
	Table string `mapstructure:"table"`

	// Output is the file to write SQL to. Empty means stdout.
	Output string `mapstructure:"output"`
}

// DefaultConfig returns a Config with default values. The generate
// defaults reproduce the canonical seed data set byte for byte.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Generate: GenerateConfig{
			StartDate: "2023-01-01",
			EndDate:   "",
			BasePrice: 3.30,
			BatchSize: 500,
			Table:     "historical_market_prices",
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pricegen.yaml
// 3. ~/.config/pricegen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pricegen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pricegen"))
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

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	g := c.Generate
	if g.BasePrice <= 0 {
		return fmt.Errorf("base_price must be positive")
	}
	if g.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}
	if g.Table == "" {
		return fmt.Errorf("table name is required")
	}
	start, end, err := g.DateRange()
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("end_date must not be before start_date")
	}
	return nil
}

// DateRange parses the configured start and end dates. An empty end date
// resolves to today.
func (g GenerateConfig) DateRange() (time.Time, time.Time, error) {
	start, err := time.Parse(DateFormat, g.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date: %w", err)
	}

	end := time.Now()
	if g.EndDate != "" {
		end, err = time.Parse(DateFormat, g.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date: %w", err)
		}
	}

	return start, end, nil
}
