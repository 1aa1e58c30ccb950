package service

import (
	"strings"
	"zeit/internal/domains/worldtime/model"
)

// parseWallClock validates strict HH:MM 24-hour input. The input is trimmed
// first; the trimmed string must be exactly five characters with a colon at
// index 2, both halves numeric and in range. This rejects seconds-bearing
// input like "14:30:00" as well as "24:00" and "25:99".
func parseWallClock(input string) (model.WallClockTime, error) {
	trimmed := strings.TrimSpace(input)

	if len(trimmed) != 5 || trimmed[2] != ':' ||
		!isDigits(trimmed[:2]) || !isDigits(trimmed[3:]) {
		return model.WallClockTime{}, model.InvalidTimeFormat(trimmed)
	}

	hour := int(trimmed[0]-'0')*10 + int(trimmed[1]-'0')
	minute := int(trimmed[3]-'0')*10 + int(trimmed[4]-'0')

	if hour > 23 || minute > 59 {
		return model.WallClockTime{}, model.InvalidTimeFormat(trimmed)
	}

	return model.WallClockTime{Hour: hour, Minute: minute}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
