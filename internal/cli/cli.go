//-------------------------------------------------------------------------
//
// AgriYards Price Generator
//
// Copyright (c) 2025 - 2026, AgriYards, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for pricegen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/agriyards/pricegen/internal/config"
	"github.com/agriyards/pricegen/internal/livestock"
	"github.com/agriyards/pricegen/internal/logging"
	"github.com/agriyards/pricegen/internal/pricing"
	"github.com/agriyards/pricegen/pkg/version"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "pricegen",
		Short: "Deterministic livestock market price seed generator",
		Long: `pricegen fabricates a multi-year daily price series for livestock sale
categories and emits it as batched SQL INSERT statements, ready to run
against a historical_market_prices table.

The series is fully deterministic: every price, saleyard and state pick is
derived from the day offset and category, so repeated runs over the same
date range produce identical SQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./pricegen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(speciesCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List registered livestock species",
	Long: `List all livestock species packs. Registration order matters: it fixes
both the category emission order and the multiplier rule precedence.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Registered species:")
		cmd.Println()
		for _, sp := range livestock.All() {
			cmd.Printf("  %-8s - %s (%d categories)\n",
				sp.Name, sp.Description, len(sp.Categories))
		}
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List sale categories and their price multipliers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, sp := range livestock.All() {
			cmd.Printf("%s:\n", sp.Name)
			for _, category := range sp.Categories {
				cmd.Printf("  %-20s x%.2f\n", category, pricing.MultiplierFor(category))
			}
			cmd.Println()
		}
	},
}
