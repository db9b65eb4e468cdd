//-------------------------------------------------------------------------
//
// AgriYards Price Generator
//
// Copyright (c) 2025 - 2026, AgriYards, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package seeder generates the historical price rows and emits them as
// batched SQL INSERT statements.
package seeder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agriyards/pricegen/internal/config"
	"github.com/agriyards/pricegen/internal/datagen"
	"github.com/agriyards/pricegen/internal/livestock"
	"github.com/agriyards/pricegen/internal/logging"
	"github.com/agriyards/pricegen/internal/pricing"
	"github.com/agriyards/pricegen/internal/sqlgen"
)

const (
	headerTitle    = "HISTORICAL MARKET PRICES (3 YEARS)"
	insertColumns  = "(category, saleyard, state, price_per_kg, price_date, source, is_historical)"
	conflictClause = "ON CONFLICT (category, saleyard, price_date) DO NOTHING;"
)

// Source labels, by age of the observation within the series.
const (
	SourceSaleyard = "Saleyard"
	SourceState    = "State Indicator"
	SourceNational = "National Benchmark"
)

// Seeder produces the full day x category price series.
type Seeder struct {
	cfg   config.GenerateConfig
	model *pricing.Model
}

// New creates a Seeder from generation config. The series ends at the
// configured end date and is capped at the modelling horizon.
func New(cfg config.GenerateConfig) (*Seeder, error) {
	start, end, err := cfg.DateRange()
	if err != nil {
		return nil, err
	}

	totalDays := int(end.Sub(start).Hours() / 24)
	if totalDays > pricing.HorizonDays {
		totalDays = pricing.HorizonDays
	}
	if totalDays < 0 {
		return nil, fmt.Errorf("end date %s precedes start date %s",
			end.Format(config.DateFormat), start.Format(config.DateFormat))
	}

	return &Seeder{
		cfg:   cfg,
		model: pricing.NewModel(cfg.BasePrice, end, totalDays),
	}, nil
}

// TotalDays returns the number of days the series will span.
func (s *Seeder) TotalDays() int {
	return s.model.TotalDays
}

// TotalRows returns the number of rows the series will contain.
func (s *Seeder) TotalRows() int64 {
	return int64(s.model.TotalDays) * int64(len(livestock.Categories()))
}

// Run emits the complete SQL stream to w and returns the number of rows
// written.
func (s *Seeder) Run(ctx context.Context, w io.Writer) (int64, error) {
	categories := livestock.Categories()
	expected := s.TotalRows()

	if err := sqlgen.WriteHeader(w, headerTitle, expected, time.Now()); err != nil {
		return 0, err
	}

	batchCfg := sqlgen.DefaultBatchConfig()
	batchCfg.BatchSize = s.cfg.BatchSize
	iw := sqlgen.NewInsertWriter(w, s.cfg.Table, insertColumns, conflictClause, batchCfg)
	progress := datagen.NewProgressReporter(s.cfg.Table, expected, batchCfg.MarkerInterval)

	logging.Info().
		Int("days", s.model.TotalDays).
		Int("categories", len(categories)).
		Int64("rows", expected).
		Str("table", s.cfg.Table).
		Msg("Generating price series")

	for offset := 0; offset < s.model.TotalDays; offset++ {
		if err := ctx.Err(); err != nil {
			return iw.Total(), err
		}

		dateStr := s.model.DateAt(offset).Format(config.DateFormat)
		basePrice := s.model.BaseAt(offset)
		source := sourceFor(offset)

		for _, category := range categories {
			price := basePrice * pricing.MultiplierFor(category)

			// One seeded PRNG per (offset, category) pair: the
			// saleyard and state picks never depend on draw order
			// elsewhere in the run.
			f := datagen.NewSeeded(datagen.CategorySeed(offset, category))
			saleyard := datagen.Pick(f, livestock.Saleyards)
			state := datagen.Pick(f, livestock.States)

			tuple := fmt.Sprintf("('%s', '%s', '%s', %.4f, '%s', '%s', true)",
				sqlgen.Escape(category),
				sqlgen.Escape(saleyard),
				state,
				price,
				dateStr,
				source,
			)

			if err := iw.Add(tuple); err != nil {
				return iw.Total(), err
			}
			progress.Update(1)
		}
	}

	if err := iw.Flush(); err != nil {
		return iw.Total(), err
	}
	if err := sqlgen.WriteFooter(w, iw.Total()); err != nil {
		return iw.Total(), err
	}
	progress.Done()

	return iw.Total(), nil
}

// sourceFor classifies the price source by day offset: the first week of
// the series carries saleyard quotes, the first month state indicators,
// everything later the national benchmark.
func sourceFor(offset int) string {
	switch {
	case offset < 7:
		return SourceSaleyard
	case offset < 30:
		return SourceState
	default:
		return SourceNational
	}
}
