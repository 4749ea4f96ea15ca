// Package api provides the HTTP API for TouringBrain.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/touringbrain/touringbrain/internal/api/handler"
	"github.com/touringbrain/touringbrain/internal/api/middleware"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version         string
	BuildTime       string
	Logger          zerolog.Logger
	ServiceName     string
	Metrics         *middleware.Metrics
	BriefingService handler.BriefingService
	CaravanService  handler.CaravanService
	TouringService  handler.TouringService
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "touringbrain-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime)
	briefingHandler := handler.NewBriefingHandler(cfg.BriefingService)
	caravanHandler := handler.NewCaravanHandler(cfg.CaravanService)
	touringHandler := handler.NewTouringHandler(cfg.TouringService)
	towingHandler := handler.NewTowingHandler()
	vehicleHandler := handler.NewVehicleHandler()

	// Create rate limit middleware for different endpoint categories
	forecastRateLimit := middleware.RateLimitByIP(middleware.ForecastRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Briefing endpoint - fans out to the weather provider
		r.With(forecastRateLimit).Post("/briefing/daily", briefingHandler.DailyBriefing)

		// Caravan endpoints
		r.Route("/caravan", func(r chi.Router) {
			r.With(forecastRateLimit).Post("/score", caravanHandler.Score)
			r.With(standardRateLimit).Get("/lookup", caravanHandler.Lookup)
		})

		// Touring plan endpoint - weather, geocoding and routing fan-out
		r.With(forecastRateLimit).Post("/touring/plan", touringHandler.Plan)

		// Towing advisor - local compute only
		r.With(standardRateLimit).Post("/towing/evaluate", towingHandler.Evaluate)

		// Vehicle reference lookup
		r.With(standardRateLimit).Get("/vehicle/lookup", vehicleHandler.Lookup)
	})

	return r
}
