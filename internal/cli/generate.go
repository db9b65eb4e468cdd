package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agriyards/pricegen/internal/logging"
	"github.com/agriyards/pricegen/internal/seeder"
)

var (
	generateStartDate string
	generateEndDate   string
	generateBasePrice float64
	generateBatchSize int
	generateTable     string
	generateOutput    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the historical price SQL",
	Long: `Generate batched SQL INSERT statements for the historical price series
and write them to stdout (or a file with --output). The defaults reproduce
the canonical three-year seed data set.

Example:
  pricegen generate > seed.sql
  pricegen generate --end-date 2025-12-31 --output seed.sql`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateStartDate, "start-date", "",
		"first day of the series (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&generateEndDate, "end-date", "",
		"last day of the series (YYYY-MM-DD, default: today)")
	generateCmd.Flags().Float64Var(&generateBasePrice, "base-price", 0,
		"reference price per kg for Grown Steer")
	generateCmd.Flags().IntVar(&generateBatchSize, "batch-size", 0,
		"value tuples per INSERT statement")
	generateCmd.Flags().StringVar(&generateTable, "table", "",
		"target table name")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "",
		"write SQL to this file instead of stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if generateStartDate != "" {
		cfg.Generate.StartDate = generateStartDate
	}
	if generateEndDate != "" {
		cfg.Generate.EndDate = generateEndDate
	}
	if generateBasePrice > 0 {
		cfg.Generate.BasePrice = generateBasePrice
	}
	if generateBatchSize > 0 {
		cfg.Generate.BatchSize = generateBatchSize
	}
	if generateTable != "" {
		cfg.Generate.Table = generateTable
	}
	if generateOutput != "" {
		cfg.Generate.Output = generateOutput
	}

	if err := cfg.ValidateGenerate(); err != nil {
		return err
	}

	s, err := seeder.New(cfg.Generate)
	if err != nil {
		return err
	}

	out := os.Stdout
	if cfg.Generate.Output != "" {
		out, err = os.Create(cfg.Generate.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}

	runID := uuid.New().String()
	logging.Info().
		Str("run_id", runID).
		Str("start_date", cfg.Generate.StartDate).
		Int("days", s.TotalDays()).
		Int64("rows", s.TotalRows()).
		Msg("Starting generation")

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	w := bufio.NewWriter(out)
	rows, err := s.Run(ctx, w)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logging.Info().
		Str("run_id", runID).
		Int64("rows", rows).
		Dur("elapsed", time.Since(started)).
		Msg("Generation complete")

	return nil
}
