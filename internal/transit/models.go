// Package transit provides disruption status for the tracked commute's
// train line.
package transit

import "errors"

// Transit errors.
var (
	ErrLineNotFound        = errors.New("transit line not found in feed")
	ErrProviderUnavailable = errors.New("transit provider unavailable")
)

// Severity is the disruption level of a line, ordered from no disruption
// through to a full suspension.
type Severity string

const (
	SeverityGood      Severity = "good"      // normal service
	SeverityTravel    Severity = "travel"    // adjusted services
	SeverityWorks     Severity = "works"     // planned works
	SeverityMinor     Severity = "minor"     // minor disruption
	SeverityMajor     Severity = "major"     // major delays
	SeveritySuspended Severity = "suspended" // no service
	SeverityUnknown   Severity = "unknown"   // unrecognised upstream value
)

// severityRanks orders severities from least to most disruptive.
var severityRanks = map[Severity]int{
	SeverityGood:      0,
	SeverityTravel:    1,
	SeverityWorks:     2,
	SeverityMinor:     3,
	SeverityMajor:     4,
	SeveritySuspended: 5,
}

// ParseSeverity maps an upstream alert type to a Severity.
// Unrecognised values map to SeverityUnknown rather than failing.
func ParseSeverity(alertType string) Severity {
	sev := Severity(alertType)
	if _, ok := severityRanks[sev]; ok {
		return sev
	}
	return SeverityUnknown
}

// Disrupted reports whether the severity warrants mentioning to the user.
// Unknown severities are treated as not disrupted: better to say nothing
// than to speculate about an alert type the feed has never used before.
func (s Severity) Disrupted() bool {
	rank, ok := severityRanks[s]
	return ok && rank > 0
}

// LineStatus is the current disruption status of one line. It is derived
// fresh on every query and never cached: freshness matters more than call
// cost at single-user query volume.
type LineStatus struct {
	// LineName is the line's display name, or a generic fallback when the
	// feed omits one.
	LineName string

	// Severity is the line's current disruption level.
	Severity Severity
}
