package speech

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/whereabouts/whereabouts/internal/clock"
	"github.com/whereabouts/whereabouts/internal/event"
	"github.com/whereabouts/whereabouts/internal/transit"
)

// StatusProvider fetches the current disruption status of one transit line.
type StatusProvider interface {
	LineStatus(ctx context.Context, lineID string) (*transit.LineStatus, error)
}

// Intn returns a non-negative pseudo-random number in [0, n). Phrase pool
// selection goes through an injected Intn so tests can pin the choice.
type Intn func(n int) int

// SynthesizerConfig holds configuration for the synthesizer.
type SynthesizerConfig struct {
	// Repository is the event store to scan.
	Repository event.Repository

	// Window is the validity window applied to candidate events.
	Window event.Window

	// Transit fetches the line status for disruption notes.
	Transit StatusProvider

	// LineID is the transit line to report on.
	LineID string

	// Pronouns substituted into templates. Defaults to DefaultPronouns.
	Pronouns Pronouns

	// Clock provides the current local time.
	Clock clock.Clock

	// Intn selects among phrase variants. Defaults to math/rand.
	Intn Intn

	// Logger for synthesis decisions.
	Logger zerolog.Logger
}

// Synthesizer produces the spoken response for a location query.
type Synthesizer struct {
	repo     event.Repository
	window   event.Window
	transit  StatusProvider
	lineID   string
	pronouns Pronouns
	clock    clock.Clock
	intn     Intn
	logger   zerolog.Logger
}

// NewSynthesizer creates a new response synthesizer.
func NewSynthesizer(cfg SynthesizerConfig) *Synthesizer {
	pronouns := cfg.Pronouns
	if pronouns.Subject == "" {
		pronouns = DefaultPronouns
	}

	intn := cfg.Intn
	if intn == nil {
		intn = rand.Intn
	}

	return &Synthesizer{
		repo:     cfg.Repository,
		window:   cfg.Window,
		transit:  cfg.Transit,
		lineID:   cfg.LineID,
		pronouns: pronouns,
		clock:    cfg.Clock,
		intn:     intn,
		logger:   cfg.Logger,
	}
}

// Respond produces the spoken response text for a location query.
//
// The event store is only consulted on a plausible commute day and hour;
// outside those, a short-circuit response is returned without any reads.
// A store read failure is the one error that cannot be spoken around and
// is surfaced to the caller.
func (s *Synthesizer) Respond(ctx context.Context) (string, error) {
	now := s.clock.Now()

	if text, done := s.offClockResponse(now); done {
		return text, nil
	}

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("reading event store: %w", err)
	}

	selected := event.SelectNewestValid(events, s.window, now, s.logger)
	if selected == nil {
		return "I'm sorry, I'm not sure where " + s.pronouns.Subject + " is at the moment.", nil
	}

	return s.describe(ctx, selected, now)
}

// offClockResponse answers weekends and the hours before any departure is
// plausible, without consulting the event store.
func (s *Synthesizer) offClockResponse(now time.Time) (string, bool) {
	switch {
	case isoWeekday(now) > 5:
		return s.pronouns.Subject + "'s not at work today, so I'm not really sure!", true
	case now.Hour() <= 13:
		return "It's too early for " + s.pronouns.Object + " to have left work yet. " +
			"Check back with me later.", true
	case now.Hour() <= 15:
		return "It's a bit too early for " + s.pronouns.Object + " to have left work yet.", true
	default:
		return "", false
	}
}

// describe renders the response for the selected event. The event already
// won the validity scan, so a malformed address here is a hard error, not
// something to silently skip.
func (s *Synthesizer) describe(ctx context.Context, e *event.Event, now time.Time) (string, error) {
	suburb, err := e.Suburb()
	if err != nil {
		return "", fmt.Errorf("describing selected event %s: %w", e.ID, err)
	}

	eta := FormatDuration(e.HomeETASeconds)

	s.logger.Debug().
		Str("event_id", e.ID).
		Str("suburb", suburb).
		Str("distance_home", FormatDistance(e.DistanceFromHomeMetres)).
		Str("distance_work", FormatDistance(e.DistanceFromWorkMetres)).
		Str("eta_home", eta).
		Msg("describing selected event")

	sit := classify(e, now.Hour())

	text := s.choose(phrases(sit, phraseVars{
		Pronouns: s.pronouns,
		ETA:      eta,
		Suburb:   suburb,
	}))

	if sit.wantsTransitNote() {
		if note := s.transitNote(ctx); note != "" {
			text += " " + note
		}
	}

	return text, nil
}

// transitNote builds the disruption note for the configured line, or ""
// when the line is running fine. Lookup failures of any kind degrade to no
// note: a missing line or an unreachable feed must never sink the response.
func (s *Synthesizer) transitNote(ctx context.Context) string {
	status, err := s.transit.LineStatus(ctx, s.lineID)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("line_id", s.lineID).
			Msg("transit status unavailable, omitting note")
		return ""
	}

	pool := severityPhrases(status.Severity, status.LineName, s.pronouns)
	if len(pool) == 0 {
		return ""
	}
	return pool[s.intn(len(pool))]
}

// choose picks one member of a phrase pool uniformly at random.
func (s *Synthesizer) choose(pool []string) string {
	if len(pool) == 1 {
		return pool[0]
	}
	return pool[s.intn(len(pool))]
}

// isoWeekday returns the ISO-8601 weekday number: Monday is 1, Sunday is 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
