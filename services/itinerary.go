package services

import (
	"fmt"

	"tripindia/catalog"
)

// MaxPlanDays caps the number of generated day entries.
const MaxPlanDays = 7

// activities fill the afternoon slot; they depend on the style only.
var activities = map[catalog.Style][]string{
	catalog.StyleBudget: {"Walk + explore local markets", "Sunrise photography", "Street food hunting", "Free museum visit"},
	catalog.StyleNormal: {"Guided tour", "Local transport tour", "Sunset cruise/view", "Cultural show"},
	catalog.StyleLuxury: {"Private chauffeur tour", "Helicopter/premium excursion", "Spa & wellness", "Fine dining experience"},
}

type DayEntry struct {
	Day                int    `json:"day"`
	Morning            string `json:"morning"`
	Afternoon          string `json:"afternoon"`
	Evening            string `json:"evening"`
	FoodRecommendation string `json:"food_recommendation"`
}

// BuildPlan lays out one entry per day, clamped to [1, MaxPlanDays]. Spots
// are walked two per day (morning, evening) over famous places then hidden
// gems; food and activities advance one per day. All lists wrap around.
// The result depends only on the arguments.
func BuildPlan(profile catalog.CityProfile, days int, style string) []DayEntry {
	days = clampDays(days)

	spots := profile.Spots()
	foods := profile.FoodItems
	tier, _ := catalog.ParseStyle(style)
	acts := activities[tier]

	plan := make([]DayEntry, 0, days)
	for d := 1; d <= days; d++ {
		food := foods[(d-1)%len(foods)]
		plan = append(plan, DayEntry{
			Day:                d,
			Morning:            "Visit " + spots[(2*d-2)%len(spots)],
			Afternoon:          acts[(d-1)%len(acts)],
			Evening:            "Explore " + spots[(2*d-1)%len(spots)],
			FoodRecommendation: fmt.Sprintf("Try %s (~₹%d)", food.Name, food.Price),
		})
	}
	return plan
}

func clampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > MaxPlanDays {
		return MaxPlanDays
	}
	return days
}
