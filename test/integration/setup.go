// Package integration provides helpers and integration tests for the flight
// deal radar. Integration tests verify that components work together
// correctly, including HTTP handlers, the pipeline, and mock offer sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-deals/flight-deal-radar/internal/adapter/http"
	"github.com/flight-deals/flight-deal-radar/internal/domain"
	"github.com/flight-deals/flight-deal-radar/internal/infrastructure/logger"
	"github.com/flight-deals/flight-deal-radar/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ReportHandler
}

// NewTestServer creates a new test server backed by the given report runner.
func NewTestServer(runner httpAdapter.ReportRunner) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewReportHandler(runner)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// PostSearch performs a POST /api/v1/reports/search with the given body.
func (s *TestServer) PostSearch(body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/search", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// CreatePipeline builds a pipeline with the reference configuration and a
// silent logger. history and notifier may be nil.
func CreatePipeline(source usecase.OfferSource, history usecase.DropDetector, notifier usecase.Notifier) *usecase.Pipeline {
	return usecase.NewPipeline(source, history, notifier, nil, usecase.DefaultPipelineConfig(), logger.Nop())
}

// Criteria builds search criteria for the reference route over a date range.
func Criteria(startDate, endDate string) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:      "YYZ",
		Destination: "MAA",
		StartDate:   startDate,
		EndDate:     endDate,
		Adults:      2,
		Children:    2,
	}
}
