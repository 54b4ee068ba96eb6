package event

import "time"

// AccurateEnough reports whether the event's positional uncertainty is within
// the window's accuracy threshold. The boundary value passes.
func AccurateEnough(e *Event, w Window) bool {
	return e.AccuracyMetres <= w.MaxAccuracyMetres
}

// FreshEnough reports whether ts falls within the window's age threshold
// relative to now. A timestamp exactly at the cutoff counts as fresh.
func FreshEnough(ts time.Time, w Window, now time.Time) bool {
	return !ts.Before(now.Add(-w.MaxAge))
}
