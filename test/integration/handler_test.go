package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-deals/flight-deal-radar/internal/adapter/http"
	"github.com/flight-deals/flight-deal-radar/internal/adapter/provider/amadeus"
	"github.com/flight-deals/flight-deal-radar/internal/infrastructure/logger"
	"github.com/flight-deals/flight-deal-radar/test/mock"
	"github.com/flight-deals/flight-deal-radar/test/testutil"
)

// TestSearchEndpoint_EndToEnd posts a search request and verifies the
// rendered report, using a recorded provider payload as the offer source.
func TestSearchEndpoint_EndToEnd(t *testing.T) {
	payload := testutil.LoadTestJSON(t, "amadeus_offers_response.json")
	resp, err := amadeus.ParseOffersResponse(payload)
	require.NoError(t, err)

	records := amadeus.Normalize(resp, logger.Nop())
	require.Len(t, records, 3)

	source := mock.NewSource().WithRecords("2026-03-20", records)
	server := NewTestServer(CreatePipeline(source, nil, nil))

	rec := server.PostSearch(map[string]string{
		"startDate": "2026-03-20",
		"endDate":   "2026-03-20",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body httpAdapter.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// defaults echoed back alongside the overridden dates
	assert.Equal(t, "YYZ", body.Criteria.Origin)
	assert.Equal(t, "MAA", body.Criteria.Destination)
	assert.Equal(t, "2026-03-20", body.Criteria.StartDate)

	// the Cathay offer is filtered, the other two survive
	require.Len(t, body.Days, 1)
	assert.Equal(t, 2, body.Days[0].Flights)

	assert.Contains(t, body.Summary, "Cheapest Day: 2026-03-20")
	assert.Contains(t, body.Report.Full, "EY — ETIHAD AIRWAYS")
	assert.Contains(t, body.Report.Full, "EK — EMIRATES")
	assert.NotContains(t, body.Report.Full, "CATHAY")

	// daily tables are fenced fixed-width blocks
	assert.Contains(t, body.Report.Daily, "```")
	assert.Contains(t, body.Report.Daily, "+-")
}

// TestSearchEndpoint_ValidationError verifies field errors surface as 400s.
func TestSearchEndpoint_ValidationError(t *testing.T) {
	server := NewTestServer(CreatePipeline(mock.NewSource(), nil, nil))

	rec := server.PostSearch(map[string]string{"origin": "not-a-code"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
	assert.Contains(t, rec.Body.String(), "origin")
}

// TestSearchEndpoint_EmptyRange verifies an all-empty range still renders a
// well-formed placeholder report over HTTP.
func TestSearchEndpoint_EmptyRange(t *testing.T) {
	server := NewTestServer(CreatePipeline(mock.NewSource(), nil, nil))

	rec := server.PostSearch(map[string]string{
		"startDate": "2026-03-20",
		"endDate":   "2026-03-21",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body httpAdapter.ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Contains(t, body.Report.BestDay, "No best-day summary available.")
	assert.Contains(t, body.Report.TopOverall, "No overall flight ranking available.")
	assert.Contains(t, body.Report.Carrier, "no flights found")
}
