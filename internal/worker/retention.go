package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/event"
)

// RetentionConfig holds configuration for the retention job.
type RetentionConfig struct {
	// Retention is how long stored events are kept.
	Retention time.Duration

	// Interval is how often the prune runs. Default: 1 hour.
	Interval time.Duration

	Repository event.Repository
	Logger     zerolog.Logger
}

// RetentionJob prunes events older than the retention window.
type RetentionJob struct {
	retention time.Duration
	interval  time.Duration
	repo      event.Repository
	logger    zerolog.Logger
}

// NewRetentionJob creates a new retention job.
func NewRetentionJob(cfg RetentionConfig) *RetentionJob {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	return &RetentionJob{
		retention: cfg.Retention,
		interval:  interval,
		repo:      cfg.Repository,
		logger:    cfg.Logger,
	}
}

// Run prunes on the configured interval until ctx is cancelled.
func (j *RetentionJob) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("retention job stopped")
			return
		case <-ticker.C:
			if err := j.RunOnce(ctx); err != nil {
				j.logger.Error().Err(err).Msg("retention prune failed")
			}
		}
	}
}

// RunOnce performs a single prune pass.
func (j *RetentionJob) RunOnce(ctx context.Context) error {
	cutoff := time.Now().Add(-j.retention)

	deleted, err := j.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("pruning events: %w", err)
	}

	j.logger.Info().
		Time("cutoff", cutoff).
		Int64("deleted", deleted).
		Msg("pruned aged events")

	return nil
}
