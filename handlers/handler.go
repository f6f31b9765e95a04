package handlers

import (
	"time"

	"github.com/rs/zerolog"

	"tripindia/catalog"
	"tripindia/metrics"
	"tripindia/services"
	"tripindia/store"
)

// Handler serves the HTTP API. All dependencies are built once at start-up.
type Handler struct {
	catalog     *catalog.Catalog
	planner     *services.Planner
	itineraries *store.ItineraryStore
	metrics     *metrics.Metrics
	logger      zerolog.Logger
	serviceName string
	staticDir   string
	now         func() time.Time
}

type Deps struct {
	Catalog     *catalog.Catalog
	Planner     *services.Planner
	Itineraries *store.ItineraryStore
	Metrics     *metrics.Metrics
	Logger      zerolog.Logger
	ServiceName string
	StaticDir   string
}

func New(d Deps) *Handler {
	return &Handler{
		catalog:     d.Catalog,
		planner:     d.Planner,
		itineraries: d.Itineraries,
		metrics:     d.Metrics,
		logger:      d.Logger,
		serviceName: d.ServiceName,
		staticDir:   d.StaticDir,
		now:         time.Now,
	}
}
