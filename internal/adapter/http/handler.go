// Package http provides the HTTP handler layer for the flight deal radar API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-deals/flight-deal-radar/internal/adapter/http/response"
	"github.com/flight-deals/flight-deal-radar/internal/domain"
	"github.com/flight-deals/flight-deal-radar/internal/usecase"
)

// ReportRunner drives one full search-and-report run.
// The pipeline implements this interface.
type ReportRunner interface {
	Run(ctx context.Context, criteria domain.SearchCriteria) (*usecase.RunResult, error)
	DefaultCriteria() domain.SearchCriteria
}

// ReportHandler handles HTTP requests for report endpoints.
type ReportHandler struct {
	runner ReportRunner
}

// NewReportHandler creates a new ReportHandler with the given pipeline.
func NewReportHandler(runner ReportRunner) *ReportHandler {
	return &ReportHandler{
		runner: runner,
	}
}

// SearchReport handles POST /api/v1/reports/search
//
// @Summary Run a flight deal report
// @Description Searches the configured route and date range, ranks the results, and returns the rendered report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body SearchReportRequest true "Search criteria overrides (all fields optional)"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/reports/search [post]
func (h *ReportHandler) SearchReport(c echo.Context) error {
	var req SearchReportRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := req.Merge(h.runner.DefaultCriteria())

	result, err := h.runner.Run(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.ReportResults(c, ToReportResponse(criteria, result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ReportHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ReportHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrProviderUnavailable) {
		return response.ProviderUnavailable(c)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ReportHandler) Health(c echo.Context) error {
	return response.Health(c)
}
