package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria defines the parameters for a date-range flight search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "YYZ")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "MAA")
	Destination string `json:"destination"`

	// StartDate is the first search date in YYYY-MM-DD format
	StartDate string `json:"startDate"`

	// EndDate is the last search date in YYYY-MM-DD format (inclusive)
	EndDate string `json:"endDate"`

	// Adults is the number of adult passengers (default: 2)
	Adults int `json:"adults"`

	// Children is the number of child passengers (default: 2)
	Children int `json:"children"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	start, err := s.parseDate("startDate", s.StartDate)
	if err != nil {
		return err
	}
	end, err := s.parseDate("endDate", s.EndDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidRequest)
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidRequest)
	}
	if s.Adults+s.Children > 9 {
		return fmt.Errorf("%w: total passengers cannot exceed 9", ErrInvalidRequest)
	}

	return nil
}

// parseDate validates one YYYY-MM-DD date field.
func (s *SearchCriteria) parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
	}
	if !dateRegex.MatchString(value) {
		return time.Time{}, fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return t, nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 2
	}
}

// Dates expands the criteria's date range into an ordered list of
// YYYY-MM-DD strings, inclusive on both ends. Call Validate first;
// invalid dates yield an empty list.
func (s *SearchCriteria) Dates() []string {
	start, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", s.EndDate)
	if err != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format("2006-01-02"))
	}
	return dates
}
