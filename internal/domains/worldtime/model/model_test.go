package model_test

import (
	"testing"
	"time"
	"zeit/internal/domains/worldtime/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneHandleName(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)

	handle := model.NewZoneHandle(loc)
	assert.Equal(t, "Europe/London", handle.Name())

	assert.Equal(t, "UTC", model.UTCZone().Name())
	assert.Equal(t, "UTC", model.ZoneHandle{}.Name())
}

func TestZoneHandleLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, model.ZoneHandle{}.Location())
}

func TestWallClockTimeString(t *testing.T) {
	assert.Equal(t, "09:05", model.WallClockTime{Hour: 9, Minute: 5}.String())
	assert.Equal(t, "23:59", model.WallClockTime{Hour: 23, Minute: 59}.String())
}

func TestValidationErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *model.ValidationError
		kind     model.ErrorKind
		contains []string
	}{
		{
			name:     "invalid zone",
			err:      model.InvalidZone("Fake/Zone"),
			kind:     model.KindInvalidZone,
			contains: []string{"Invalid timezone: 'Fake/Zone'", "America/New_York"},
		},
		{
			name:     "ambiguous abbreviation",
			err:      model.AmbiguousAbbreviation("PST"),
			kind:     model.KindAmbiguousAbbreviation,
			contains: []string{"'PST' is ambiguous", "instead of 'EST'"},
		},
		{
			name:     "offset literal",
			err:      model.OffsetLiteral("+05:30", "+05:30"),
			kind:     model.KindOffsetLiteral,
			contains: []string{"Timezone offset '+05:30' is not supported", "Asia/Kolkata"},
		},
		{
			name:     "invalid time format",
			err:      model.InvalidTimeFormat("25:99"),
			kind:     model.KindInvalidTimeFormat,
			contains: []string{"Invalid time format: '25:99'", "'14:30'"},
		},
		{
			name:     "nonexistent civil time",
			err:      model.NonexistentCivilTime("02:30", "America/New_York"),
			kind:     model.KindNonexistentCivilTime,
			contains: []string{"02:30", "America/New_York", "spring forward", "different time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)

			for _, fragment := range tt.contains {
				assert.Contains(t, tt.err.Error(), fragment)
			}
		})
	}
}

func TestAsValidation(t *testing.T) {
	verr, ok := model.AsValidation(model.InvalidZone("x"))
	assert.True(t, ok)
	assert.NotNil(t, verr)

	_, ok = model.AsValidation(assert.AnError)
	assert.False(t, ok)
}
