// Package sheep registers the sheep species catalog.
package sheep

import (
	"github.com/agriyards/pricegen/internal/livestock"
)

// Species returns the sheep species pack.
func Species() livestock.Species {
	return livestock.Species{
		Name:        "sheep",
		Description: "Sheep sale categories (ewes, lambs, wethers)",
		Categories: []string{
			"Breeding Ewe", "Maiden Ewe", "Dry Ewe", "Cull Ewe",
			"Weaner Ewe", "Feeder Ewe", "Slaughter Ewe",
			"Wether Lamb", "Weaner Lamb", "Feeder Lamb", "Slaughter Lamb", "Lambs",
		},
		// "Breeding Ewe" never reaches these rules: the cattle
		// breeding-stock rule claims it first. "Weaner Ewe" and
		// "Feeder Ewe" match no rule at all and price at 1.0.
		Rules: []livestock.Rule{
			{
				Match:      livestock.ContainsAny("Breeding Ewe", "Maiden Ewe", "Dry Ewe"),
				Multiplier: 3.2,
			},
			{
				Match:      livestock.ContainsAny("Cull Ewe", "Slaughter Ewe"),
				Multiplier: 2.8,
			},
			{
				Match:      livestock.ContainsAny("Wether Lamb", "Weaner Lamb", "Feeder Lamb"),
				Multiplier: 3.5,
			},
			{
				Match:      livestock.ContainsAny("Slaughter Lamb", "Lambs"),
				Multiplier: 3.3,
			},
		},
	}
}
