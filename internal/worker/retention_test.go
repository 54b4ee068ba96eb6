package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whereabouts/whereabouts/internal/event"
	"github.com/whereabouts/whereabouts/internal/worker"
)

func TestRetention_RunOncePrunesAgedEvents(t *testing.T) {
	repo := event.NewInMemoryRepository()
	ingestor := worker.NewIngestor(repo, zerolog.Nop())
	require.NoError(t, ingestor.HandlePing(context.Background(), validPing(t)))

	job := worker.NewRetentionJob(worker.RetentionConfig{
		Retention:  time.Hour,
		Repository: repo,
		Logger:     zerolog.Nop(),
	})

	// Freshly inserted event survives an hour-long retention window.
	require.NoError(t, job.RunOnce(context.Background()))

	events, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)

	// A negative window prunes everything already stored.
	job = worker.NewRetentionJob(worker.RetentionConfig{
		Retention:  -time.Second,
		Repository: repo,
		Logger:     zerolog.Nop(),
	})
	require.NoError(t, job.RunOnce(context.Background()))

	events, err = repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRetention_RunStopsOnCancel(t *testing.T) {
	job := worker.NewRetentionJob(worker.RetentionConfig{
		Retention:  time.Hour,
		Interval:   time.Millisecond,
		Repository: event.NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retention job did not stop")
	}
}
