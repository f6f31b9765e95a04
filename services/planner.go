package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tripindia/catalog"
	"tripindia/errx"
)

// ErrDestinationRequired is returned when the destination is blank.
var ErrDestinationRequired = errx.Validation("Destination is required")

// Source tells whether a plan came from the catalog or from generated content.
type Source string

const (
	SourceCatalog   Source = "catalog"
	SourceGenerated Source = "generated"
)

// Recorder receives planning events, typically for metrics.
type Recorder interface {
	PlanServed(source string)
	PlanRejected()
}

type nopRecorder struct{}

func (nopRecorder) PlanServed(string) {}
func (nopRecorder) PlanRejected()     {}

// PlanInput is an already-normalized planning request.
type PlanInput struct {
	Destination string
	Budget      int
	Days        int
	Style       string
}

type Plan struct {
	Destination   string        `json:"destination"`
	Days          int           `json:"days"`
	Style         string        `json:"style"`
	BudgetTotal   int           `json:"budget_total"`
	EstimatedCost int           `json:"estimated_cost"`
	CostPerDay    int           `json:"cost_per_day"`
	Surplus       int           `json:"surplus"`
	Breakdown     CostBreakdown `json:"breakdown"`
	FamousPlaces  []string      `json:"famous_places"`
	HiddenGems    []string      `json:"hidden_gems"`
	StreetFood    []string      `json:"street_food"`
	DayPlan       []DayEntry    `json:"day_plan"`
	Tips          string        `json:"tips"`
	Source        Source        `json:"source"`
}

// Planner turns planning requests into itineraries and cost estimates. It
// holds no mutable state and is safe for concurrent use.
type Planner struct {
	catalog  *catalog.Catalog
	logger   zerolog.Logger
	recorder Recorder
}

func NewPlanner(c *catalog.Catalog, logger zerolog.Logger, recorder Recorder) *Planner {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Planner{
		catalog:  c,
		logger:   logger.With().Str("component", "planner").Logger(),
		recorder: recorder,
	}
}

// Profile resolves the destination against the catalog, or generates a
// fallback profile when nothing matches.
func (p *Planner) Profile(destination string) (catalog.CityProfile, Source) {
	if key, ok := p.catalog.Resolve(destination); ok {
		if profile, ok := p.catalog.Lookup(key); ok {
			return profile, SourceCatalog
		}
	}
	return GenerateFallback(destination), SourceGenerated
}

// Plan builds the full response for one request. The style is echoed as
// given; the cost uses the requested days while the day plan is capped at
// MaxPlanDays entries.
func (p *Planner) Plan(ctx context.Context, in PlanInput) (*Plan, error) {
	_, span := otel.Tracer("services/planner").Start(ctx, "Planner.Plan",
		trace.WithAttributes(attribute.String("plan.style", in.Style)))
	defer span.End()

	destination := strings.TrimSpace(in.Destination)
	if destination == "" {
		p.recorder.PlanRejected()
		span.SetStatus(codes.Error, ErrDestinationRequired.Message)
		return nil, ErrDestinationRequired
	}

	profile, source := p.Profile(destination)
	perDay := profile.CostFor(in.Style)
	estimate := EstimateCost(perDay, in.Days, in.Budget)

	food := make([]string, len(profile.FoodItems))
	for i, f := range profile.FoodItems {
		food[i] = f.String()
	}

	plan := &Plan{
		Destination:   profile.Name,
		Days:          in.Days,
		Style:         in.Style,
		BudgetTotal:   in.Budget,
		EstimatedCost: estimate.Total,
		CostPerDay:    estimate.PerDay,
		Surplus:       estimate.Surplus,
		Breakdown:     estimate.Breakdown,
		FamousPlaces:  profile.FamousPlaces,
		HiddenGems:    profile.HiddenGems,
		StreetFood:    food,
		DayPlan:       BuildPlan(profile, in.Days, in.Style),
		Tips:          profile.Tips,
		Source:        source,
	}

	span.SetAttributes(
		attribute.String("plan.destination", plan.Destination),
		attribute.String("plan.source", string(source)),
		attribute.Int("plan.days", plan.Days),
	)
	p.recorder.PlanServed(string(source))
	p.logger.Debug().
		Str("destination", plan.Destination).
		Str("source", string(source)).
		Int("days", plan.Days).
		Str("style", plan.Style).
		Int("estimated_cost", plan.EstimatedCost).
		Msg("plan built")

	return plan, nil
}
