package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whereabouts/whereabouts/internal/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "Australia/Melbourne", cfg.TimeZone)
	assert.Equal(t, "they", cfg.Pronouns.Subject)
	assert.Equal(t, "them", cfg.Pronouns.Object)
	assert.Equal(t, 65.0, cfg.MaxEventAccuracyMetres)
	assert.Equal(t, 2*time.Hour, cfg.MaxEventAge)
	assert.Equal(t, 720*time.Hour, cfg.EventRetention)
	assert.False(t, cfg.TelemetryEnabled)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("PRONOUNS", "he/him")
	t.Setenv("MAX_EVENT_ACCURACY_M", "100")
	t.Setenv("MAX_EVENT_AGE", "90m")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "he", cfg.Pronouns.Subject)
	assert.Equal(t, "him", cfg.Pronouns.Object)
	assert.Equal(t, 100.0, cfg.MaxEventAccuracyMetres)
	assert.Equal(t, 90*time.Minute, cfg.MaxEventAge)
	assert.True(t, cfg.TelemetryEnabled)
}

func TestFromEnv_BadValues(t *testing.T) {
	t.Run("pronouns", func(t *testing.T) {
		t.Setenv("PRONOUNS", "they")

		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "PRONOUNS")
	})

	t.Run("accuracy", func(t *testing.T) {
		t.Setenv("MAX_EVENT_ACCURACY_M", "not-a-number")

		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "MAX_EVENT_ACCURACY_M")
	})

	t.Run("age", func(t *testing.T) {
		t.Setenv("MAX_EVENT_AGE", "soon")

		_, err := config.FromEnv()
		assert.ErrorContains(t, err, "MAX_EVENT_AGE")
	})
}
