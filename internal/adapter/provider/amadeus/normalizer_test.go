package amadeus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/flight-deal-radar/internal/infrastructure/logger"
)

// twoSegmentPayload is a realistic offers payload with one connecting offer.
const twoSegmentPayload = `{
	"data": [
		{
			"id": "1",
			"itineraries": [
				{
					"duration": "PT17H50M",
					"segments": [
						{
							"carrierCode": "EY",
							"number": "140",
							"departure": {"iataCode": "YYZ", "at": "2026-03-20T10:10:00"},
							"arrival": {"iataCode": "AUH", "at": "2026-03-20T14:00:00"}
						},
						{
							"carrierCode": "EY",
							"number": "264",
							"departure": {"iataCode": "AUH", "at": "2026-03-20T16:30:00"},
							"arrival": {"iataCode": "MAA", "at": "2026-03-21T04:00:00"}
						}
					]
				}
			],
			"price": {"currency": "CAD", "total": "520.00"}
		}
	],
	"dictionaries": {"carriers": {"EY": "ETIHAD AIRWAYS"}}
}`

func TestNormalize_ConnectingFlight(t *testing.T) {
	resp, err := ParseOffersResponse([]byte(twoSegmentPayload))
	require.NoError(t, err)

	records := Normalize(resp, logger.Nop())
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "EY", r.Airline.Code)
	assert.Equal(t, "ETIHAD AIRWAYS", r.Airline.Name)
	assert.Equal(t, "EY — ETIHAD AIRWAYS", r.Airline.Display())
	assert.True(t, r.Price.Equal(decimal.RequireFromString("520.00")))
	assert.Equal(t, 1070, r.Duration.TotalMinutes)
	assert.Equal(t, "17h 50m", r.Duration.Formatted)
	assert.Equal(t, 1, r.Stops)
	assert.Equal(t, "AUH", r.LayoverCity)
	assert.Equal(t, 2.5, r.LayoverHours)
	assert.Equal(t, "2026-03-20T10:10:00", r.Departure)
	assert.Equal(t, "2026-03-21T04:00:00", r.Arrival)
}

func TestNormalize_DirectFlightHasNoLayover(t *testing.T) {
	payload := `{
		"data": [
			{
				"itineraries": [
					{
						"duration": "PT2H30M",
						"segments": [
							{
								"carrierCode": "AC",
								"departure": {"iataCode": "YYZ", "at": "2026-03-20T08:00:00"},
								"arrival": {"iataCode": "YUL", "at": "2026-03-20T10:30:00"}
							}
						]
					}
				],
				"price": {"total": "210.55"}
			}
		]
	}`

	resp, err := ParseOffersResponse([]byte(payload))
	require.NoError(t, err)

	records := Normalize(resp, logger.Nop())
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, 0, r.Stops)
	assert.Empty(t, r.LayoverCity)
	assert.Equal(t, 0.0, r.LayoverHours)
	// no carrier dictionary: display falls back to the bare code
	assert.Equal(t, "AC", r.Airline.Display())
}

func TestNormalize_BadOffersAreSkippedNotFatal(t *testing.T) {
	payload := `{
		"data": [
			{
				"id": "no-itineraries",
				"itineraries": [],
				"price": {"total": "100.00"}
			},
			{
				"id": "bad-price",
				"itineraries": [
					{
						"duration": "PT2H",
						"segments": [
							{
								"carrierCode": "AC",
								"departure": {"iataCode": "YYZ", "at": "2026-03-20T08:00:00"},
								"arrival": {"iataCode": "YUL", "at": "2026-03-20T10:00:00"}
							}
						]
					}
				],
				"price": {"total": "not-a-number"}
			},
			{
				"id": "bad-duration",
				"itineraries": [
					{
						"duration": "PTxxH",
						"segments": [
							{
								"carrierCode": "AC",
								"departure": {"iataCode": "YYZ", "at": "2026-03-20T08:00:00"},
								"arrival": {"iataCode": "YUL", "at": "2026-03-20T10:00:00"}
							}
						]
					}
				],
				"price": {"total": "100.00"}
			},
			{
				"id": "bad-layover-timestamp",
				"itineraries": [
					{
						"duration": "PT10H",
						"segments": [
							{
								"carrierCode": "EY",
								"departure": {"iataCode": "YYZ", "at": "2026-03-20T08:00:00"},
								"arrival": {"iataCode": "AUH", "at": "bogus"}
							},
							{
								"carrierCode": "EY",
								"departure": {"iataCode": "AUH", "at": "2026-03-20T16:00:00"},
								"arrival": {"iataCode": "MAA", "at": "2026-03-20T20:00:00"}
							}
						]
					}
				],
				"price": {"total": "100.00"}
			},
			{
				"id": "good",
				"itineraries": [
					{
						"duration": "PT3H",
						"segments": [
							{
								"carrierCode": "QR",
								"departure": {"iataCode": "YYZ", "at": "2026-03-20T09:00:00"},
								"arrival": {"iataCode": "YUL", "at": "2026-03-20T12:00:00"}
							}
						]
					}
				],
				"price": {"total": "333.00"}
			}
		]
	}`

	resp, err := ParseOffersResponse([]byte(payload))
	require.NoError(t, err)

	records := Normalize(resp, logger.Nop())

	// only the last offer survives; earlier failures never abort the batch
	require.Len(t, records, 1)
	assert.Equal(t, "QR", records[0].Airline.Code)
	assert.True(t, records[0].Price.Equal(decimal.RequireFromString("333.00")))
}

func TestNormalize_EmptyPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "no data key", payload: `{}`},
		{name: "empty data", payload: `{"data": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ParseOffersResponse([]byte(tt.payload))
			require.NoError(t, err)

			records := Normalize(resp, logger.Nop())
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestNormalize_NilResponse(t *testing.T) {
	records := Normalize(nil, logger.Nop())
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNormalize_PreservesOfferOrder(t *testing.T) {
	payload := `{
		"data": [
			{
				"itineraries": [{"duration": "PT2H", "segments": [{"carrierCode": "ZZ", "departure": {"iataCode": "YYZ", "at": "2026-03-20T08:00:00"}, "arrival": {"iataCode": "YUL", "at": "2026-03-20T10:00:00"}}]}],
				"price": {"total": "900.00"}
			},
			{
				"itineraries": [{"duration": "PT2H", "segments": [{"carrierCode": "AA", "departure": {"iataCode": "YYZ", "at": "2026-03-20T09:00:00"}, "arrival": {"iataCode": "YUL", "at": "2026-03-20T11:00:00"}}]}],
				"price": {"total": "100.00"}
			}
		]
	}`

	resp, err := ParseOffersResponse([]byte(payload))
	require.NoError(t, err)

	records := Normalize(resp, logger.Nop())
	require.Len(t, records, 2)

	// provider listing order, not price order
	assert.Equal(t, "ZZ", records[0].Airline.Code)
	assert.Equal(t, "AA", records[1].Airline.Code)
}
