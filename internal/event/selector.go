package event

import (
	"time"

	"github.com/rs/zerolog"
)

// SelectNewestValid returns the newest event that satisfies the validity
// window, or nil if none passes. The scan is a single linear pass: the store
// has no ordering contract, so every candidate is considered. Candidates with
// unparsable timestamps are logged and skipped rather than aborting the scan.
// When two valid events share the newest timestamp, the earliest-encountered
// one is kept, so selection is deterministic for a fixed input order.
func SelectNewestValid(events []*Event, w Window, now time.Time, log zerolog.Logger) *Event {
	var (
		winner   *Event
		winnerTS time.Time
	)

	for _, e := range events {
		ts, err := e.Timestamp()
		if err != nil {
			log.Debug().
				Str("event_id", e.ID).
				Str("recorded_at", e.RecordedAt).
				Err(err).
				Msg("skipping event with unparsable timestamp")
			continue
		}

		if !AccurateEnough(e, w) || !FreshEnough(ts, w, now) {
			continue
		}

		if winner == nil || ts.After(winnerTS) {
			winner = e
			winnerTS = ts
			log.Debug().Str("event_id", e.ID).Msg("newest valid event so far")
		}
	}

	return winner
}
