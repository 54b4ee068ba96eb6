// Package clock abstracts wall-clock access so response synthesis can be
// tested against fixed instants.
package clock

import (
	"fmt"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Zoned is a Clock that reports the current time in a fixed location.
type Zoned struct {
	loc *time.Location
}

// NewZoned creates a Zoned clock for the named IANA timezone.
func NewZoned(tz string) (*Zoned, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", tz, err)
	}
	return &Zoned{loc: loc}, nil
}

// Now returns the current time in the clock's location.
func (c *Zoned) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (c Fixed) Now() time.Time {
	return c.Instant
}
