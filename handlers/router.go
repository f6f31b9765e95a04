package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripindia/middleware"
)

type RouterConfig struct {
	// Empty allows every origin.
	AllowedOrigins []string
	Gatherer       prometheus.Gatherer
}

// NewRouter wires middleware, API routes and static file serving.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(
		middleware.RequestID(),
		middleware.StructuredLogger(h.logger),
		gin.Recovery(),
		h.metrics.Middleware(),
		cors.New(corsCfg),
	)

	r.POST("/planner", h.Planner)
	r.POST("/planner/pdf", h.GeneratePDF)
	r.GET("/planner/download/:id", h.Download)
	r.POST("/contact", h.Contact)

	r.GET("/health", h.Health)
	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	r.GET("/", h.Index)
	r.NoRoute(h.Static)

	return r
}
