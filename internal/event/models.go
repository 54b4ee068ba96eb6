// Package event provides the location event model, validity rules, and the
// event store repositories.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Event errors.
var (
	ErrMalformedAddress   = errors.New("event address has too few components")
	ErrMalformedTimestamp = errors.New("event timestamp is not in a recognised format")
	ErrNotFound           = errors.New("event not found")
	ErrStoreUnavailable   = errors.New("event store unavailable")
)

// Event is one location ping recorded by the upstream geofencing app.
// Events are appended by the ingest worker and never mutated afterwards;
// the retention job prunes them by insertion time.
type Event struct {
	// ID is the unique identifier for this event.
	ID string

	// Address is the free-text address of the ping, comma-separated.
	// The second-to-last component is the suburb.
	Address string

	// RecordedAt is the raw timestamp string as supplied upstream.
	// Offsets arrive both colon-delimited (+11:00) and compact (+1100).
	RecordedAt string

	// AccuracyMetres is the positional uncertainty of the ping.
	AccuracyMetres float64

	// DistanceFromHomeMetres is the route distance to home.
	DistanceFromHomeMetres float64

	// DistanceFromWorkMetres is the route distance to work.
	DistanceFromWorkMetres float64

	// HomeETASeconds is the predicted public-transport travel time home.
	HomeETASeconds int
}

// Timestamp parses the event's recorded-at string.
func (e *Event) Timestamp() (time.Time, error) {
	return ParseEventTime(e.RecordedAt)
}

// Suburb returns the second-to-last comma-separated component of the address,
// which is the suburb in the upstream address format.
// eg. "20 Main Street, Box Hill, VIC" yields "Box Hill".
func (e *Event) Suburb() (string, error) {
	parts := strings.Split(e.Address, ", ")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedAddress, e.Address)
	}
	return parts[len(parts)-2], nil
}

// eventTimeLayouts covers both zone offset forms seen upstream.
var eventTimeLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05-0700",
}

// ParseEventTime parses an ISO-8601 timestamp with a numeric zone offset,
// accepting both the colon-delimited (+11:00) and compact (+1100) forms.
func ParseEventTime(value string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, value)
}

// Window is the pair of thresholds an event must satisfy to be trusted.
// It is built once from configuration and never mutated.
type Window struct {
	// MaxAccuracyMetres rejects events less accurate than this.
	MaxAccuracyMetres float64

	// MaxAge rejects events older than now minus this duration.
	MaxAge time.Duration
}
