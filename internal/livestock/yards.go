package livestock

// Saleyards are the physical markets a price record can be attributed to.
var Saleyards = []string{
	"Wagga Wagga Livestock Marketing Centre",
	"Dubbo Regional Livestock Market",
	"Roma Saleyards",
	"Ballarat Regional Livestock Exchange",
	"Mount Gambier Livestock Exchange",
}

// States are the reporting states.
var States = []string{"NSW", "VIC", "QLD", "SA", "WA"}
