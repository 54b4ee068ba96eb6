// Package main provides the entrypoint for the whereabouts API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/api"
	"github.com/whereabouts/whereabouts/internal/api/handler"
	"github.com/whereabouts/whereabouts/internal/api/middleware"
	"github.com/whereabouts/whereabouts/internal/clock"
	"github.com/whereabouts/whereabouts/internal/config"
	"github.com/whereabouts/whereabouts/internal/database"
	"github.com/whereabouts/whereabouts/internal/event"
	"github.com/whereabouts/whereabouts/internal/speech"
	"github.com/whereabouts/whereabouts/internal/telemetry"
	"github.com/whereabouts/whereabouts/internal/transit/metro"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "whereabouts-api"

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting whereabouts API")

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Enabled:        cfg.TelemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.TelemetryEnabled {
		log.Info().
			Str("otlp_endpoint", cfg.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	providerMetrics, err := middleware.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	repo := event.NewPostgresRepository(pool)

	metroClient := metro.NewClient(metro.ClientConfig{
		BaseURL: cfg.MetroBaseURL,
		Metrics: providerMetrics,
		Logger:  log,
	})

	zoned, err := clock.NewZoned(cfg.TimeZone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.TimeZone).Msg("invalid timezone")
	}

	window := event.Window{
		MaxAccuracyMetres: cfg.MaxEventAccuracyMetres,
		MaxAge:            cfg.MaxEventAge,
	}

	synth := speech.NewSynthesizer(speech.SynthesizerConfig{
		Repository: repo,
		Window:     window,
		Transit:    metroClient,
		LineID:     cfg.MetroLineID,
		Pronouns:   cfg.Pronouns,
		Clock:      zoned,
		Logger:     log,
	})
	log.Info().
		Str("timezone", cfg.TimeZone).
		Str("metro_line", cfg.MetroLineID).
		Msg("synthesizer initialized")

	if cfg.JWTSigningKey == "" {
		log.Warn().Msg("JWT_SIGNING_KEY not set - ingest endpoints are unauthenticated")
	}

	router := api.NewRouter(api.RouterConfig{
		Version:   Version,
		BuildTime: BuildTime,
		Logger:    log,
		Metrics:   metrics,

		Synthesizer: synth,
		Voice: handler.VoiceConfig{
			FallbackMessage:  cfg.FallbackMessage,
			FallbackReprompt: cfg.FallbackReprompt,
			ExceptionMessage: cfg.ExceptionMessage,
		},

		Repository:    repo,
		Window:        window,
		Store:         pool,
		JWTSigningKey: cfg.JWTSigningKey,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
