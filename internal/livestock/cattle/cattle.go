//-------------------------------------------------------------------------
//
// AgriYards Price Generator
//
// Copyright (c) 2025 - 2026, AgriYards, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cattle registers the cattle species catalog.
package cattle

import (
	"github.com/agriyards/pricegen/internal/livestock"
)

// Species returns the cattle species pack.
func Species() livestock.Species {
	return livestock.Species{
		Name:        "cattle",
		Description: "Cattle sale categories (steers, heifers, cows, bulls, calves)",
		Categories: []string{
			"Feeder Steer", "Feeder Heifer", "Yearling Steer", "Yearling Bull",
			"Grown Steer", "Grown Bull", "Weaner Steer", "Weaner Bull", "Weaner Heifer",
			"Breeding Cow", "Breeder", "Dry Cow", "Cull Cow", "Heifer",
			"First Calf Heifer", "Slaughter Cattle", "Calves",
		},
		// The breeding-stock rule precedes the feeder rule, so "Feeder
		// Heifer" prices as breeding stock. "Breeding Ewe" from the sheep
		// pack also lands here before the sheep rules see it.
		Rules: []livestock.Rule{
			{
				Match: livestock.AllOf(
					livestock.Contains("Weaner"),
					livestock.ContainsAny("Steer", "Bull", "Heifer"),
				),
				Multiplier: 1.18,
			},
			{
				Match: livestock.AllOf(
					livestock.Contains("Yearling"),
					livestock.ContainsAny("Steer", "Bull"),
				),
				Multiplier: 1.22,
			},
			{
				Match: livestock.AnyOf(
					livestock.ContainsAny("Breeding", "Heifer", "Dry Cow"),
					livestock.Exact("Breeder"),
				),
				Multiplier: 1.15,
			},
			{Match: livestock.Contains("Cull Cow"), Multiplier: 0.95},
			{
				Match: livestock.AllOf(
					livestock.Contains("Feeder"),
					livestock.ContainsAny("Steer", "Heifer"),
				),
				Multiplier: 1.18,
			},
			{
				Match: livestock.AllOf(
					livestock.Contains("Grown"),
					livestock.ContainsAny("Steer", "Bull"),
				),
				Multiplier: 1.0,
			},
			{Match: livestock.Contains("Slaughter Cattle"), Multiplier: 0.92},
			{Match: livestock.Contains("Calves"), Multiplier: 1.25},
		},
	}
}
