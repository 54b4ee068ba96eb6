// Package config assembles application settings from the environment.
// A Config is built once at startup and passed by value; nothing mutates
// it after that.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/whereabouts/whereabouts/internal/speech"
)

// Config carries every tunable the API and worker binaries need.
type Config struct {
	Port string
	Env  string

	// TimeZone is the IANA zone the tracked person lives in. All
	// weekday and hour checks run in this zone.
	TimeZone string

	Pronouns speech.Pronouns

	MetroBaseURL string
	MetroLineID  string

	MaxEventAccuracyMetres float64
	MaxEventAge            time.Duration
	EventRetention         time.Duration

	FallbackMessage  string
	FallbackReprompt string
	ExceptionMessage string

	JWTSigningKey string

	PubSubProjectID    string
	PubSubSubscription string

	OTLPEndpoint     string
	TelemetryEnabled bool
}

// FromEnv builds a Config from environment variables with sensible
// defaults for local development.
func FromEnv() (Config, error) {
	accuracy, err := strconv.ParseFloat(getEnvOrDefault("MAX_EVENT_ACCURACY_M", "65"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_EVENT_ACCURACY_M: %w", err)
	}
	maxAge, err := time.ParseDuration(getEnvOrDefault("MAX_EVENT_AGE", "2h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MAX_EVENT_AGE: %w", err)
	}
	retention, err := time.ParseDuration(getEnvOrDefault("EVENT_RETENTION", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse EVENT_RETENTION: %w", err)
	}

	pronouns, err := parsePronouns(getEnvOrDefault("PRONOUNS", "they/them"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:     getEnvOrDefault("APP_PORT", "8080"),
		Env:      getEnvOrDefault("APP_ENV", "development"),
		TimeZone: getEnvOrDefault("TIMEZONE", "Australia/Melbourne"),
		Pronouns: pronouns,

		MetroBaseURL: getEnvOrDefault("METRO_BASE_URL", "http://www.metrotrains.com.au/api"),
		MetroLineID:  getEnvOrDefault("METRO_LINE_ID", "3"),

		MaxEventAccuracyMetres: accuracy,
		MaxEventAge:            maxAge,
		EventRetention:         retention,

		FallbackMessage: getEnvOrDefault("FALLBACK_MESSAGE",
			"Sorry, I can't help with that. Try asking where they are."),
		FallbackReprompt: getEnvOrDefault("FALLBACK_REPROMPT",
			"Try asking where they are."),
		ExceptionMessage: getEnvOrDefault("EXCEPTION_MESSAGE",
			"Sorry, something went wrong. Please try again later."),

		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),

		PubSubProjectID:    os.Getenv("PUBSUB_PROJECT_ID"),
		PubSubSubscription: getEnvOrDefault("PUBSUB_SUBSCRIPTION", "location-pings"),

		OTLPEndpoint:     getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled: os.Getenv("OTEL_ENABLED") == "true",
	}, nil
}

// parsePronouns splits a "subject/object" pair, e.g. "he/him".
func parsePronouns(raw string) (speech.Pronouns, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return speech.Pronouns{}, fmt.Errorf("parse PRONOUNS %q: want subject/object", raw)
	}
	return speech.Pronouns{Subject: parts[0], Object: parts[1]}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
