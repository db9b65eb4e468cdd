//-------------------------------------------------------------------------
//
// AgriYards Price Generator
//
// Copyright (c) 2025 - 2026, AgriYards, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pricing implements the synthetic saleyard price model.
//
// The daily base price is the configured reference price shifted by four
// components: a multi-year market trend, an annual seasonal wave, a
// 13-week volatility cycle, and per-day noise. The noise draw comes from a
// PRNG instance seeded with the day offset, so the whole series is
// reproducible without any global random state.
package pricing

import (
	"math"
	"time"

	"github.com/agriyards/pricegen/internal/datagen"
	"github.com/agriyards/pricegen/internal/livestock"
)

const (
	// HorizonDays is the fixed modelling horizon (three years). The
	// trend curve always spans this horizon, even when the generated
	// range is shorter.
	HorizonDays = 1095

	// PriceFloor and PriceCeiling clamp the base price. Category
	// multipliers are applied after clamping, so per-category prices can
	// leave this band.
	PriceFloor   = 3.10
	PriceCeiling = 3.50

	seasonalAmplitude = 0.10
	weeklyAmplitude   = 0.08
	dailyAmplitude    = 0.03

	// weeklyCycle is the length of the week-to-week volatility cycle.
	weeklyCycle = 13
)

// Model computes the daily base price series for a date range.
type Model struct {
	// BasePrice is the reference price per kg (Grown Steer).
	BasePrice float64

	// EndDate is the last day of the series.
	EndDate time.Time

	// TotalDays is the number of days in the series.
	TotalDays int
}

// NewModel creates a price model ending at endDate and spanning totalDays.
func NewModel(basePrice float64, endDate time.Time, totalDays int) *Model {
	return &Model{
		BasePrice: basePrice,
		EndDate:   endDate,
		TotalDays: totalDays,
	}
}

// BaseAt returns the clamped base price for a day offset in [0, TotalDays).
func (m *Model) BaseAt(offset int) float64 {
	price := m.BasePrice * (1.0 +
		trend(float64(offset)/HorizonDays) +
		m.seasonal(offset) +
		weekly(offset) +
		dailyNoise(offset))

	return math.Max(PriceFloor, math.Min(PriceCeiling, price))
}

// DateAt returns the calendar date emitted for a day offset. Offset 0 is
// the oldest day.
func (m *Model) DateAt(offset int) time.Time {
	return m.EndDate.AddDate(0, 0, -(m.TotalDays - offset - 1))
}

// trend is the multi-year market cycle over progress in [0, 1]:
// a shallow dip, a steep decline to -30%, two recovery legs, then growth
// to +15%.
func trend(progress float64) float64 {
	switch {
	case progress < 0.2:
		return -0.05 * (progress / 0.2)
	case progress < 0.4:
		decline := (progress - 0.2) / 0.2
		return -0.05 - 0.25*decline
	case progress < 0.6:
		recovery := (progress - 0.4) / 0.2
		return -0.30 + 0.20*recovery
	case progress < 0.8:
		recovery := (progress - 0.6) / 0.2
		return -0.10 + 0.15*recovery
	default:
		growth := (progress - 0.8) / 0.2
		return 0.05 + 0.10*growth
	}
}

// seasonal is an annual sine wave bottoming in early January.
// Its reference date trails the emitted row date by one day; the seed
// series has always been produced this way, and reproducibility wins over
// tidiness here.
func (m *Model) seasonal(offset int) float64 {
	date := m.EndDate.AddDate(0, 0, -(m.TotalDays - offset))
	dayOfYear := float64(date.YearDay())
	return math.Sin(dayOfYear/365.0*2*math.Pi-math.Pi/2) * seasonalAmplitude
}

// weekly is a sine wave over a 13-week cycle keyed on the week number.
func weekly(offset int) float64 {
	week := (offset / 7) % weeklyCycle
	return math.Sin(float64(week)/weeklyCycle*2*math.Pi) * weeklyAmplitude
}

// dailyNoise is uniform noise in [-dailyAmplitude, dailyAmplitude], drawn
// from a fresh PRNG seeded with the day offset.
func dailyNoise(offset int) float64 {
	f := datagen.NewSeeded(uint64(offset))
	return f.Float64(-dailyAmplitude, dailyAmplitude)
}

// MultiplierFor returns the price multiplier for a sale category. Rules
// are walked in species registration order; the first match wins and
// unmatched categories price at 1.0.
func MultiplierFor(category string) float64 {
	for _, r := range livestock.Rules() {
		if r.Match(category) {
			return r.Multiplier
		}
	}
	return 1.0
}
