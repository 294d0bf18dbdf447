// Package catalog holds the fixed troop cookie catalog: the closed set of
// cookie codes sold in a season, their display labels, and unit prices.
// This is immutable reference data; the rest of the system treats it as
// static configuration.
package catalog

// CookieTypes lists every cookie code in catalog order.
var CookieTypes = []string{
	"Advf", "LmUp", "Tre", "D-S-D", "Sam", "Tags", "TMint", "Exp", "Toff", "C4C",
}

// Labels maps a cookie code to its customer-facing name.
var Labels = map[string]string{
	"Advf":  "Adventurefuls",
	"LmUp":  "Lemon-Ups",
	"Tre":   "Trefoils",
	"D-S-D": "Do-Si-Dos",
	"Sam":   "Samoas",
	"Tags":  "Tagalongs",
	"TMint": "Thin Mints",
	"Exp":   "Explore Mores",
	"Toff":  "Toffee-tastic",
	"C4C":   "Donations (C4C)",
}

// Prices maps a cookie code to its unit price in whole dollars.
var Prices = map[string]int{
	"Advf": 6, "LmUp": 6, "Tre": 6, "D-S-D": 6,
	"Sam": 6, "Tags": 6, "TMint": 6, "Exp": 6,
	"Toff": 7, "C4C": 6,
}

// TroopProfitPerBox is the troop's cut of every box sold, in dollars.
const TroopProfitPerBox = 1

// Valid reports whether code is part of the catalog.
func Valid(code string) bool {
	_, ok := Prices[code]
	return ok
}
