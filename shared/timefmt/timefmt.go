// Package timefmt renders UTC offsets and timestamps into the fixed textual
// forms used by the worldtime responses.
package timefmt

import (
	"fmt"
	"time"
)

// TimestampLayout is the ISO-8601 civil date-time layout with a
// colon-separated numeric UTC offset suffix.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// UTCOffset formats an offset in seconds east of UTC as "+HH:MM" or "-HH:MM".
// Zero renders as "+00:00". Fractional-hour offsets are preserved, e.g.
// 20700 seconds renders as "+05:45".
func UTCOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}

// OffsetDiff formats an offset difference in seconds as "+H:MM" or "-H:MM".
// Hours are not zero-padded, unlike UTCOffset.
func OffsetDiff(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	return fmt.Sprintf("%s%d:%02d", sign, hours, minutes)
}

// Timestamp formats a zoned instant using TimestampLayout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
