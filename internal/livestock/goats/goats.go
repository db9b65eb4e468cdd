// Package goats registers the goat species catalog.
package goats

import (
	"github.com/agriyards/pricegen/internal/livestock"
)

// Species returns the goat species pack.
func Species() livestock.Species {
	return livestock.Species{
		Name:        "goats",
		Description: "Goat sale categories (does, bucks, wethers, capretto, chevon)",
		Categories: []string{
			"Breeder Doe", "Dry Doe", "Cull Doe", "Breeder Buck", "Sale Buck",
			"Mature Wether", "Rangeland Goat", "Capretto", "Chevon",
		},
		Rules: []livestock.Rule{
			{
				Match:      livestock.ContainsAny("Breeder Doe", "Dry Doe"),
				Multiplier: 1.30,
			},
			{Match: livestock.Contains("Cull Doe"), Multiplier: 1.20},
			{
				Match:      livestock.ContainsAny("Breeder Buck", "Sale Buck"),
				Multiplier: 1.35,
			},
			{
				Match:      livestock.ContainsAny("Mature Wether", "Rangeland Goat"),
				Multiplier: 1.30,
			},
			{Match: livestock.Contains("Capretto"), Multiplier: 1.53},
			{Match: livestock.Contains("Chevon"), Multiplier: 1.25},
		},
	}
}
