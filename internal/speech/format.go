// Package speech turns a selected location event and the current transit
// status into one spoken response string.
package speech

import (
	"math"
	"strconv"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	minutesPerHour   = 60
)

// FormatDistance renders a distance for speech. Distances below 950 metres
// read in whole metres; anything beyond rounds to the nearest kilometre.
func FormatDistance(metres float64) string {
	if metres < 950 {
		return strconv.Itoa(int(math.Round(metres))) + "m"
	}
	return strconv.Itoa(int(math.Round(metres/1000))) + "km"
}

// FormatDuration renders a duration for speech. With at least one whole hour
// the minutes are rounded to the nearest 5 and only mentioned when they
// exceed 5; under an hour, minutes above 10 are rounded to the nearest 5.
func FormatDuration(seconds int) string {
	hours := seconds / secondsPerHour
	minutes := seconds/secondsPerMinute - hours*minutesPerHour

	if hours >= 1 {
		out := strconv.Itoa(hours) + " " + Pluralize("hour", hours)
		minutes = RoundToNearest(minutes, 5)
		if minutes > 5 {
			out += " and " + strconv.Itoa(minutes) + " " + Pluralize("minute", minutes)
		}
		return out
	}

	if minutes > 10 {
		minutes = RoundToNearest(minutes, 5)
	}
	return strconv.Itoa(minutes) + " " + Pluralize("minute", minutes)
}

// Pluralize appends "s" to word unless count is exactly 1.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// RoundToNearest rounds value to the nearest multiple of step, halves up.
func RoundToNearest(value, step int) int {
	return step * int(math.Round(float64(value)/float64(step)))
}
