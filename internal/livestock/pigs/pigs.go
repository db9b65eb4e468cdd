// Package pigs registers the pig species catalog.
package pigs

import (
	"github.com/agriyards/pricegen/internal/livestock"
)

// Species returns the pig species pack.
func Species() livestock.Species {
	return livestock.Species{
		Name:        "pigs",
		Description: "Pig sale categories (sows, growers, porkers, baconers)",
		// "Breeder" is listed by both cattle and pigs; the duplicate is
		// intentional and produces a row per listing.
		Categories: []string{
			"Breeder", "Dry Sow", "Cull Sow", "Weaner Pig", "Feeder Pig",
			"Grower Pig", "Finisher Pig", "Porker", "Baconer",
			"Grower Barrow", "Finisher Barrow",
		},
		Rules: []livestock.Rule{
			{
				Match: livestock.AllOf(
					livestock.AnyOf(
						livestock.Contains("Breeder"),
						livestock.Contains("Dry Sow"),
					),
					livestock.Contains("Sow"),
				),
				Multiplier: 0.66,
			},
			{Match: livestock.Contains("Cull Sow"), Multiplier: 0.60},
			{
				Match:      livestock.ContainsAny("Weaner Pig", "Feeder Pig"),
				Multiplier: 0.70,
			},
			{
				Match:      livestock.ContainsAny("Grower", "Finisher"),
				Multiplier: 0.65,
			},
			{
				Match:      livestock.ContainsAny("Porker", "Baconer"),
				Multiplier: 0.66,
			},
		},
	}
}
