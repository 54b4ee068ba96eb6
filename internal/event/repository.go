package event

import (
	"context"
	"time"
)

// Repository defines the interface for the event store.
//
// The store guarantees nothing about the order ListAll returns records in;
// callers must select among them rather than relying on store-side ordering.
type Repository interface {
	// ListAll retrieves every currently stored event.
	ListAll(ctx context.Context) ([]*Event, error)

	// Insert appends a new event to the store.
	Insert(ctx context.Context, e *Event) error

	// DeleteOlderThan removes events inserted before cutoff and returns
	// the number removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
