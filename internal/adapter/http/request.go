// Package http provides the HTTP handler layer for the flight deal radar API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
)

// SearchReportRequest represents the request body for a report run.
// Every field is optional; absent fields fall back to the configured defaults.
type SearchReportRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "YYZ")
	Origin string `json:"origin,omitempty"`

	// Destination is the IATA code of the arrival airport (e.g., "MAA")
	Destination string `json:"destination,omitempty"`

	// StartDate is the first departure date to search in YYYY-MM-DD format
	StartDate string `json:"startDate,omitempty"`

	// EndDate is the last departure date to search in YYYY-MM-DD format
	EndDate string `json:"endDate,omitempty"`

	// Adults is the number of adult passengers (1-9)
	Adults int `json:"adults,omitempty"`

	// Children is the number of child passengers (0-8)
	Children int `json:"children,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the provided fields and returns any validation errors.
// Absent fields are not validated here; they are filled from defaults and
// checked again by the domain criteria validation.
func (r *SearchReportRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateAirport(errs, "origin", &r.Origin)
	r.validateAirport(errs, "destination", &r.Destination)

	if r.Origin != "" && r.Destination != "" && strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}

	r.validateDate(errs, "startDate", r.StartDate)
	r.validateDate(errs, "endDate", r.EndDate)

	if r.StartDate != "" && r.EndDate != "" && r.EndDate < r.StartDate {
		errs.Add("endDate", "endDate must not be before startDate")
	}

	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}
	if r.Children < 0 || r.Children > 8 {
		errs.Add("children", "children must be between 0 and 8")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchReportRequest) validateAirport(errs *ValidationErrors, field string, value *string) {
	if *value == "" {
		return
	}

	code := strings.ToUpper(*value)
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return
	}
	*value = code // Normalize to uppercase
}

func (r *SearchReportRequest) validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		return
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

// Merge overlays the provided fields onto the default criteria.
func (r *SearchReportRequest) Merge(defaults domain.SearchCriteria) domain.SearchCriteria {
	criteria := defaults

	if r.Origin != "" {
		criteria.Origin = r.Origin
	}
	if r.Destination != "" {
		criteria.Destination = r.Destination
	}
	if r.StartDate != "" {
		criteria.StartDate = r.StartDate
	}
	if r.EndDate != "" {
		criteria.EndDate = r.EndDate
	}
	if r.Adults > 0 {
		criteria.Adults = r.Adults
	}
	if r.Children > 0 {
		criteria.Children = r.Children
	}

	return criteria
}
