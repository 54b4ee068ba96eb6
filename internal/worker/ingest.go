// Package worker provides background processing for whereabouts: ingesting
// location pings from the message bus and pruning aged events.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/event"
)

// Ping is the payload published by the location reporter app. Field names
// follow its wire format.
type Ping struct {
	EventID                string  `json:"event_id,omitempty"`
	Address                string  `json:"event_address"`
	RecordedAt             string  `json:"event_date"`
	AccuracyMetres         float64 `json:"accuracy_m"`
	DistanceFromHomeMetres float64 `json:"distance_home_m"`
	DistanceFromWorkMetres float64 `json:"distance_work_m"`
	HomeETASeconds         int     `json:"home_eta_s"`
}

// ErrMalformedPing marks payloads that can never be stored. Callers should
// drop these rather than retry them.
var ErrMalformedPing = fmt.Errorf("malformed ping")

// Ingestor validates pings and writes them to the event store.
type Ingestor struct {
	repo   event.Repository
	logger zerolog.Logger
}

// NewIngestor creates a new Ingestor.
func NewIngestor(repo event.Repository, logger zerolog.Logger) *Ingestor {
	return &Ingestor{
		repo:   repo,
		logger: logger,
	}
}

// HandlePing parses and stores one raw ping payload. Malformed payloads
// return ErrMalformedPing; anything else is a store failure.
func (i *Ingestor) HandlePing(ctx context.Context, data []byte) error {
	var ping Ping
	if err := json.Unmarshal(data, &ping); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPing, err)
	}

	if ping.Address == "" {
		return fmt.Errorf("%w: missing event_address", ErrMalformedPing)
	}
	if _, err := event.ParseEventTime(ping.RecordedAt); err != nil {
		return fmt.Errorf("%w: event_date: %v", ErrMalformedPing, err)
	}

	id := ping.EventID
	if id == "" {
		id = "evt_" + uuid.New().String()[:22]
	}

	e := &event.Event{
		ID:                     id,
		Address:                ping.Address,
		RecordedAt:             ping.RecordedAt,
		AccuracyMetres:         ping.AccuracyMetres,
		DistanceFromHomeMetres: ping.DistanceFromHomeMetres,
		DistanceFromWorkMetres: ping.DistanceFromWorkMetres,
		HomeETASeconds:         ping.HomeETASeconds,
	}

	if err := i.repo.Insert(ctx, e); err != nil {
		return fmt.Errorf("storing ping: %w", err)
	}

	i.logger.Debug().
		Str("event_id", e.ID).
		Str("recorded_at", e.RecordedAt).
		Msg("ping stored")

	return nil
}
