package services

import "math"

// Shares of the per-day cost for each breakdown category.
const (
	accommodationShare = 0.40
	foodShare          = 0.25
	transportShare     = 0.20
	activitiesShare    = 0.15
)

type CostBreakdown struct {
	Accommodation int `json:"accommodation"`
	Food          int `json:"food"`
	Transport     int `json:"transport"`
	Activities    int `json:"activities"`
}

// Sum adds the four categories. It can differ from the estimate total
// because each category is rounded per day.
func (b CostBreakdown) Sum() int {
	return b.Accommodation + b.Food + b.Transport + b.Activities
}

type CostEstimate struct {
	Total     int
	PerDay    int
	Breakdown CostBreakdown
	// Surplus is budget minus total; negative means over budget.
	Surplus int
}

// EstimateCost prices a trip. Each category is round(perDay*share)*days,
// rounding half to even.
func EstimateCost(perDay, days, budget int) CostEstimate {
	total := perDay * days
	return CostEstimate{
		Total:  total,
		PerDay: perDay,
		Breakdown: CostBreakdown{
			Accommodation: categoryCost(perDay, accommodationShare, days),
			Food:          categoryCost(perDay, foodShare, days),
			Transport:     categoryCost(perDay, transportShare, days),
			Activities:    categoryCost(perDay, activitiesShare, days),
		},
		Surplus: budget - total,
	}
}

func categoryCost(perDay int, share float64, days int) int {
	return int(math.RoundToEven(float64(perDay)*share)) * days
}
