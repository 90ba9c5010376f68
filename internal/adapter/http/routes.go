// Package http provides the HTTP handler layer for the flight deal radar API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all report API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ReportHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Reports group
	reports := api.Group("/reports")
	reports.POST("/search", h.SearchReport)
}
