// Package all registers every species pack in canonical order.
// Import it for side effects:
//
//	import _ "github.com/agriyards/pricegen/internal/livestock/all"
//
// The cattle, sheep, pigs, goats order is load-bearing: it fixes category
// emission order and multiplier rule precedence.
package all

import (
	"github.com/agriyards/pricegen/internal/livestock"
	"github.com/agriyards/pricegen/internal/livestock/cattle"
	"github.com/agriyards/pricegen/internal/livestock/goats"
	"github.com/agriyards/pricegen/internal/livestock/pigs"
	"github.com/agriyards/pricegen/internal/livestock/sheep"
)

func init() {
	livestock.Register(cattle.Species())
	livestock.Register(sheep.Species())
	livestock.Register(pigs.Species())
	livestock.Register(goats.Species())
}
