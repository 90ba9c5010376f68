package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2026-03-20")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, 20, parsed.Day())
}

func TestPrice(t *testing.T) {
	p := Price(t, "520.00")
	assert.Equal(t, "520.00", p.StringFixed(2))
}

func TestFlight(t *testing.T) {
	direct := Flight(t, "AC", "AIR CANADA", "210.55", 150, "", 0)
	assert.Equal(t, 0, direct.Stops)
	assert.Equal(t, "2h 30m", direct.Duration.Formatted)

	connecting := Flight(t, "EY", "ETIHAD AIRWAYS", "520.00", 1070, "AUH", 2.5)
	assert.Equal(t, 1, connecting.Stops)
	assert.Equal(t, "AUH", connecting.LayoverCity)
	assert.Equal(t, "17h 50m", connecting.Duration.Formatted)
}

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "amadeus_offers_response.json")
	require.NotEmpty(t, data)
	assert.Contains(t, string(data), "flight-offer")
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)
}
