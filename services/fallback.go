package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tripindia/catalog"
)

// fallbackCost prices destinations the catalog does not know.
var fallbackCost = map[catalog.Style]int{
	catalog.StyleBudget: 1000,
	catalog.StyleNormal: 3000,
	catalog.StyleLuxury: 8000,
}

var fallbackFood = []catalog.FoodItem{
	{Name: "Local breakfast thali", Price: 60},
	{Name: "Street snacks", Price: 30},
	{Name: "Regional curry", Price: 150},
	{Name: "Sweet shop treats", Price: 40},
}

// GenerateFallback synthesizes a generic profile for a destination that did
// not resolve: five famous places, four hidden gems, four food items and the
// fixed fallback cost table.
func GenerateFallback(destination string) catalog.CityProfile {
	d := strings.TrimSpace(destination)

	costs := make(map[catalog.Style]int, len(fallbackCost))
	for s, c := range fallbackCost {
		costs[s] = c
	}

	return catalog.CityProfile{
		Name: cases.Title(language.Und).String(d),
		FamousPlaces: []string{
			d + " Heritage Site",
			d + " City Centre",
			d + " Museum",
			"Local Market",
			"Viewpoint",
		},
		HiddenGems: []string{
			"Old town lanes of " + d,
			"Local village nearby",
			"Scenic route",
			"Sunrise point",
		},
		FoodItems:  append([]catalog.FoodItem(nil), fallbackFood...),
		PerDayCost: costs,
		Tips:       "Hire a local guide for the best experience in " + d + ".",
	}
}
