package timefmt_test

import (
	"testing"
	"time"
	"zeit/shared/timefmt"

	"github.com/stretchr/testify/assert"
)

func TestUTCOffset(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{name: "zero renders as positive", seconds: 0, expected: "+00:00"},
		{name: "positive whole hours", seconds: 18000, expected: "+05:00"},
		{name: "negative whole hours", seconds: -18000, expected: "-05:00"},
		{name: "fractional hours", seconds: 20700, expected: "+05:45"},
		{name: "half hour", seconds: 19800, expected: "+05:30"},
		{name: "negative fractional", seconds: -12600, expected: "-03:30"},
		{name: "minute only", seconds: 60, expected: "+00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timefmt.UTCOffset(tt.seconds))
		})
	}
}

func TestOffsetDiff(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{name: "zero", seconds: 0, expected: "+0:00"},
		{name: "one hour", seconds: 3600, expected: "+1:00"},
		{name: "negative four hours", seconds: -14400, expected: "-4:00"},
		{name: "fractional positive", seconds: 20700, expected: "+5:45"},
		{name: "double digit hours", seconds: 45900, expected: "+12:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timefmt.OffsetDiff(tt.seconds))
		})
	}
}

func TestTimestamp(t *testing.T) {
	loc := time.FixedZone("", -5*3600)
	instant := time.Date(2025, time.January, 15, 7, 0, 0, 0, loc)

	assert.Equal(t, "2025-01-15T07:00:00-05:00", timefmt.Timestamp(instant))
}

func TestTimestampUTC(t *testing.T) {
	instant := time.Date(2025, time.July, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "2025-07-01T23:59:59+00:00", timefmt.Timestamp(instant))
}
