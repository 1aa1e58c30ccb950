// Package tzdb exposes the IANA timezone database as an injectable
// collaborator.
//
// The time/tzdata import embeds a copy of the database into the binary so
// lookups work on hosts without a system zoneinfo directory.
package tzdb

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

type ZoneDB interface {
	// Lookup resolves a canonical IANA zone name, e.g. "America/New_York".
	// The match is exact and case-sensitive; anything else fails.
	Lookup(name string) (*time.Location, error)
}

type ianaDB struct {
}

func (db *ianaDB) Lookup(name string) (*time.Location, error) {
	// "" and "Local" are meaningful to time.LoadLocation but are not
	// entries in the IANA database.
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("unknown time zone %q", name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}

	return loc, nil
}

// New returns a ZoneDB backed by the embedded IANA database.
func New() ZoneDB {
	log.Info().Msg("IANA timezone database initialized")

	return &ianaDB{}
}
