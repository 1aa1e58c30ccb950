package service

import (
	"strings"
	"zeit/infras/tzdb"
	"zeit/internal/domains/worldtime/model"
)

// resolveZone validates and resolves a zone-name string into a handle.
// Raw offsets and abbreviations are rejected with guidance toward the
// canonical IANA name; anything else goes through an exact database lookup.
// Pure function of the input and the zone database.
func resolveZone(db tzdb.ZoneDB, input string) (model.ZoneHandle, error) {
	// Raw offset strings like "+05:30" or "-05:00".
	if strings.HasPrefix(input, "+") || strings.HasPrefix(input, "-") {
		return model.ZoneHandle{}, model.OffsetLiteral(input, "+05:30")
	}

	// "UTC+N" and "GMT-N" style offsets.
	if strings.HasPrefix(input, "UTC+") || strings.HasPrefix(input, "UTC-") ||
		strings.HasPrefix(input, "GMT+") || strings.HasPrefix(input, "GMT-") {
		return model.ZoneHandle{}, model.OffsetLiteral(input, "UTC+5:30")
	}

	location, err := db.Lookup(input)
	if err != nil {
		if looksLikeAbbreviation(input) {
			return model.ZoneHandle{}, model.AmbiguousAbbreviation(input)
		}

		return model.ZoneHandle{}, model.InvalidZone(input)
	}

	return model.NewZoneHandle(location), nil
}

// looksLikeAbbreviation reports whether a failed lookup input has the shape
// of a timezone abbreviation: at most five all-uppercase ASCII letters.
func looksLikeAbbreviation(input string) bool {
	if len(input) > 5 {
		return false
	}

	for i := 0; i < len(input); i++ {
		if input[i] < 'A' || input[i] > 'Z' {
			return false
		}
	}

	return true
}
