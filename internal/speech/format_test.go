package speech_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whereabouts/whereabouts/internal/speech"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		metres float64
		want   string
	}{
		{metres: 0, want: "0m"},
		{metres: 42, want: "42m"},
		{metres: 949, want: "949m"},  // expressed in metres below 950m
		{metres: 950, want: "1km"},   // switches to kilometres at 950m
		{metres: 1499, want: "1km"},  // rounds down
		{metres: 1500, want: "2km"},  // rounds up
		{metres: 12345, want: "12km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, speech.FormatDistance(tt.metres), "metres=%v", tt.metres)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 0, want: "0 minutes"},
		{seconds: 50, want: "0 minutes"},   // rounds down to current minute
		{seconds: 60, want: "1 minute"},    // singular
		{seconds: 110, want: "1 minute"},   // rounds down to current minute
		{seconds: 120, want: "2 minutes"},  // plural
		{seconds: 540, want: "9 minutes"},  // exact minute kept below 10
		{seconds: 720, want: "10 minutes"}, // 12 min rounds down to nearest 5
		{seconds: 780, want: "15 minutes"}, // 13 min rounds up to nearest 5
		{seconds: 3600, want: "1 hour"},
		{seconds: 3900, want: "1 hour"}, // 1h05 drops the small remainder
		{seconds: 6660, want: "1 hour and 50 minutes"}, // 1h51 rounds to nearest 5
		{seconds: 7200, want: "2 hours"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, speech.FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatDuration_NeverContainsZeroHours(t *testing.T) {
	for seconds := 0; seconds < 3600; seconds += 60 {
		assert.NotContains(t, speech.FormatDuration(seconds), "0 hour")
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "tests", speech.Pluralize("test", 0))
	assert.Equal(t, "test", speech.Pluralize("test", 1))
	assert.Equal(t, "tests", speech.Pluralize("test", 2))
	assert.Equal(t, "tests", speech.Pluralize("test", 11))
}

func TestRoundToNearest(t *testing.T) {
	tests := []struct {
		value int
		step  int
		want  int
	}{
		{value: 1, step: 5, want: 0},
		{value: 3, step: 5, want: 5},
		{value: 5, step: 5, want: 5},
		{value: 1, step: 3, want: 0},
		{value: 2, step: 3, want: 3},
		{value: 3, step: 3, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, speech.RoundToNearest(tt.value, tt.step), "value=%d step=%d", tt.value, tt.step)
	}
}
