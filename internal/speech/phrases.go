package speech

import (
	"github.com/whereabouts/whereabouts/internal/event"
	"github.com/whereabouts/whereabouts/internal/transit"
)

// Pronouns is the pair substituted into phrase templates.
type Pronouns struct {
	// Subject is the subject pronoun, eg. "they".
	Subject string

	// Object is the object pronoun, eg. "them".
	Object string
}

// DefaultPronouns is a gender-neutral pair.
var DefaultPronouns = Pronouns{Subject: "they", Object: "them"}

// AudioCue renders an SSML audio tag for a voice-platform soundbank effect.
func AudioCue(name string) string {
	return "<audio src='soundbank://soundlibrary/office/amzn_sfx_" + name + "'/>"
}

// situation is one mutually exclusive classification of the tracked
// person's location state.
type situation int

const (
	situationStillAtWork situation = iota
	situationStillAtWorkEvening
	situationJustLeftWork
	situationAlreadyHome
	situationAnyMinute
	situationAroundCorner
	situationUnderFiveMinutes
	situationAlmostHere
	situationAlmostHome
	situationOnTheWay
)

// classify maps a selected event and the current hour to a situation.
// The cases are evaluated in fixed priority order; the first match wins.
func classify(e *event.Event, hour int) situation {
	etaMinutes := e.HomeETASeconds / secondsPerMinute

	switch {
	case e.DistanceFromWorkMetres <= 50:
		if hour < 17 {
			return situationStillAtWork
		}
		return situationStillAtWorkEvening
	case e.DistanceFromWorkMetres <= 500:
		return situationJustLeftWork
	case e.DistanceFromHomeMetres <= 50:
		return situationAlreadyHome
	case etaMinutes == 1:
		return situationAnyMinute
	case etaMinutes < 3:
		return situationAroundCorner
	case etaMinutes <= 5:
		return situationUnderFiveMinutes
	case e.DistanceFromHomeMetres <= 200:
		return situationAlmostHere
	case e.DistanceFromHomeMetres <= 1800:
		return situationAlmostHome
	default:
		return situationOnTheWay
	}
}

// wantsTransitNote reports whether a transit disruption note may be
// appended for this situation. Only the work-side and far-from-home
// situations qualify; the near-home ones are terminal.
func (s situation) wantsTransitNote() bool {
	switch s {
	case situationStillAtWork, situationStillAtWorkEvening, situationJustLeftWork, situationOnTheWay:
		return true
	default:
		return false
	}
}

// phraseVars carries the values interpolated into phrase templates.
type phraseVars struct {
	Pronouns Pronouns
	ETA      string
	Suburb   string
}

// phrases returns the pool of template variants for a situation.
// Every situation has a pool; one member is picked uniformly at random.
func phrases(s situation, v phraseVars) []string {
	p := v.Pronouns

	switch s {
	case situationStillAtWork:
		return []string{
			p.Subject + " hasn't left work yet." + AudioCue("typing_medium_01"),
			p.Subject + "'s still at work." + AudioCue("typing_medium_01"),
		}
	case situationStillAtWorkEvening:
		return []string{
			AudioCue("clear_throat_ahem_01") + "I don't think " + p.Subject + "'s left work yet.",
			"I'm pretty sure " + p.Subject + "'s still in the office.",
		}
	case situationJustLeftWork:
		return []string{
			p.Subject + "'s just left work!" + AudioCue("crowd_cheer_med_01") +
				p.Subject + " should be home in about " + v.ETA + ".",
		}
	case situationAlreadyHome:
		return []string{
			"I think " + p.Subject + "'s at home already!",
			"Looks like " + p.Subject + "'s already home!",
		}
	case situationAnyMinute:
		return []string{
			p.Subject + "'ll be here any minute!",
		}
	case situationAroundCorner:
		return []string{
			p.Subject + "'s just around the corner.",
		}
	case situationUnderFiveMinutes:
		return []string{
			p.Subject + "'ll be home in less than 5 minutes.",
		}
	case situationAlmostHere:
		return []string{
			p.Subject + "'s almost here! Around " + v.ETA + " away.",
			"Not much longer - about " + v.ETA + " to go.",
		}
	case situationAlmostHome:
		return []string{
			p.Subject + "'s almost home! About " + v.ETA + " away, depending on how the bus goes.",
			p.Subject + "'s not far - around " + v.ETA + " to go, depending on the bus.",
		}
	case situationOnTheWay:
		return []string{
			p.Subject + "'s on the way - " + p.Subject + " should be home in around " + v.ETA + ".",
			p.Subject + "'s about " + v.ETA + " from home.",
			p.Subject + "'s currently in " + v.Suburb + ", about " + v.ETA + " away.",
		}
	default:
		return nil
	}
}

// severityPhrases returns the transit-note pool for a severity, or nil when
// no note should be spoken. Every named severity maps to a pool here; an
// unknown upstream alert type adds nothing.
func severityPhrases(sev transit.Severity, lineName string, p Pronouns) []string {
	switch sev {
	case transit.SeverityGood, transit.SeverityUnknown:
		return nil
	case transit.SeverityTravel:
		return []string{
			"Metro have adjusted some services today though, so " +
				p.Subject + " may be a little longer than usual.",
		}
	case transit.SeverityWorks:
		return []string{
			"Metro are currently doing works on the " + lineName + " line though, " +
				"so this may delay " + p.Object + ".",
		}
	case transit.SeverityMinor:
		return []string{
			"There's a disruption on the " + lineName + " line though, " +
				"which may slow " + p.Object + " down a little.",
			"But, there's a disruption on the " + lineName + " line, " +
				"so " + p.Subject + " might take a little longer.",
		}
	case transit.SeverityMajor:
		return []string{
			"There are major delays on the " + lineName + " line though, " +
				"so " + p.Subject + " might take longer.",
			"But, there's major issues on the " + lineName + " line at the moment, " +
				"which might slow " + p.Object + " down.",
		}
	case transit.SeveritySuspended:
		return []string{
			"However, Metro tells me the " + lineName + " line is suspended, " +
				"so " + p.Subject + " could be a lot later.",
		}
	default:
		return nil
	}
}
