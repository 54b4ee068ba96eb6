package event

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]storedEvent
}

type storedEvent struct {
	event      Event
	insertedAt time.Time
}

// NewInMemoryRepository creates a new in-memory event repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string]storedEvent),
	}
}

// ListAll retrieves every stored event. Map iteration order makes the result
// order deliberately unstable, matching the store's no-ordering contract.
func (r *InMemoryRepository) ListAll(_ context.Context) ([]*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*Event, 0, len(r.records))
	for _, rec := range r.records {
		cpy := rec.event
		events = append(events, &cpy)
	}
	return events, nil
}

// Insert appends a new event.
func (r *InMemoryRepository) Insert(_ context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[e.ID] = storedEvent{event: *e, insertedAt: time.Now()}
	return nil
}

// DeleteOlderThan removes events inserted before cutoff.
func (r *InMemoryRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, rec := range r.records {
		if rec.insertedAt.Before(cutoff) {
			delete(r.records, id)
			removed++
		}
	}
	return removed, nil
}
