// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
)

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	// Get the path to testdata relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Price builds a decimal price from a string, failing the test on bad input.
func Price(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("Failed to parse price %s: %v", value, err)
	}
	return d
}

// Flight builds a flight record with sensible defaults for tests.
// durationMinutes feeds both the total and the formatted duration.
func Flight(t *testing.T, code, name, price string, durationMinutes int, layoverCity string, layoverHours float64) domain.FlightRecord {
	t.Helper()

	stops := 0
	if layoverCity != "" {
		stops = 1
	}

	return domain.FlightRecord{
		Airline: domain.AirlineInfo{Code: code, Name: name},
		Price:   Price(t, price),
		Duration: domain.DurationInfo{
			TotalMinutes: durationMinutes,
			Formatted:    domain.FormatMinutes(durationMinutes),
		},
		Stops:        stops,
		LayoverCity:  layoverCity,
		LayoverHours: layoverHours,
	}
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
