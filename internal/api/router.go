// Package api provides the HTTP API for whereabouts.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/api/handler"
	"github.com/whereabouts/whereabouts/internal/api/middleware"
	"github.com/whereabouts/whereabouts/internal/event"
	"github.com/whereabouts/whereabouts/internal/speech"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics

	Synthesizer *speech.Synthesizer
	Voice       handler.VoiceConfig

	Repository event.Repository
	Window     event.Window
	Store      handler.Pinger

	// JWTSigningKey protects the ingest endpoints. Leave empty to run
	// them unauthenticated (local development only).
	JWTSigningKey string
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing("whereabouts-api"))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequireTLS)
	r.Use(middleware.ContentTypeJSON)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Store)
	voiceHandler := handler.NewVoiceHandler(cfg.Synthesizer, cfg.Voice, cfg.Logger)
	eventHandler := handler.NewEventHandler(cfg.Repository, cfg.Window, cfg.Logger)

	voiceRateLimit := middleware.RateLimitByIP(middleware.VoiceRateLimit)
	ingestRateLimit := middleware.RateLimitBySubject(middleware.IngestRateLimit)
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	authed := func(r chi.Router) chi.Router {
		if cfg.JWTSigningKey == "" {
			return r
		}
		return r.With(middleware.Auth(cfg.JWTSigningKey))
	}

	r.Route("/v1", func(r chi.Router) {
		// Assistant webhook (public) - platform does its own signing
		r.With(voiceRateLimit, middleware.RequireJSON).Post("/voice", voiceHandler.HandleRequest)

		// Location event ingestion (authenticated reporters)
		r.Route("/events", func(r chi.Router) {
			r.Use(ingestRateLimit)
			authed(r).With(middleware.RequireJSON).Post("/", eventHandler.IngestEvent)
			authed(r).Get("/latest", eventHandler.LatestEvent)
		})

		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})
	})

	return r
}
