package tzdb_test

import (
	"testing"
	"zeit/infras/tzdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCanonicalName(t *testing.T) {
	db := tzdb.New()

	loc, err := db.Lookup("America/New_York")

	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLookupUnknownZone(t *testing.T) {
	db := tzdb.New()

	_, err := db.Lookup("Fake/Zone")

	assert.Error(t, err)
}

func TestLookupRejectsNonDatabaseNames(t *testing.T) {
	db := tzdb.New()

	tests := []string{"", "Local"}

	for _, name := range tests {
		_, err := db.Lookup(name)

		assert.Error(t, err, "expected lookup of %q to fail", name)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	db := tzdb.New()

	_, err := db.Lookup("america/new_york")

	assert.Error(t, err)
}
