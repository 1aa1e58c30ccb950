package model

import (
	"fmt"
	"time"
)

// ZoneHandle is a resolved timezone identity. It is only ever constructed by
// the resolver after a successful database lookup, so a handle never carries
// an unresolved or ambiguous name.
type ZoneHandle struct {
	location *time.Location
}

func NewZoneHandle(location *time.Location) ZoneHandle {
	return ZoneHandle{
		location: location,
	}
}

// UTCZone returns the handle the current-time query falls back to when no
// timezone is supplied.
func UTCZone() ZoneHandle {
	return ZoneHandle{
		location: time.UTC,
	}
}

// Name returns the canonical IANA name of the zone, or "UTC" when the handle
// has no name.
func (z ZoneHandle) Name() string {
	if z.location == nil || z.location.String() == "" {
		return "UTC"
	}

	return z.location.String()
}

func (z ZoneHandle) Location() *time.Location {
	if z.location == nil {
		return time.UTC
	}

	return z.location
}

// WallClockTime is a time of day without a date or zone. The parser only
// constructs it from strict five-character HH:MM input, so Hour is in [0,23]
// and Minute in [0,59].
type WallClockTime struct {
	Hour   int
	Minute int
}

func (w WallClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}
