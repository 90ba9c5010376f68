// Package mock provides test doubles for the flight deal radar.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, per-date responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
)

// Source is a configurable mock implementation of the pipeline's offer
// source. It supports per-date responses, errors, and delays for testing
// various scenarios including skipped dates and cancellation.
type Source struct {
	records   map[string][]domain.FlightRecord
	errs      map[string]error
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock offer source.
// The source is configured using the builder pattern methods.
func NewSource() *Source {
	return &Source{
		records: make(map[string][]domain.FlightRecord),
		errs:    make(map[string]error),
	}
}

// WithRecords configures the records returned for one date.
func (s *Source) WithRecords(date string, records []domain.FlightRecord) *Source {
	s.records[date] = records
	return s
}

// WithDateError configures an error for one specific date.
func (s *Source) WithDateError(date string, err error) *Source {
	s.errs[date] = err
	return s
}

// WithError configures the source to fail every search.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait before responding.
// This is useful for testing cancellation behavior.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// SearchFlights implements the offer source interface.
func (s *Source) SearchFlights(ctx context.Context, _ domain.SearchCriteria, date string) ([]domain.FlightRecord, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if s.err != nil {
		return nil, s.err
	}
	if err, ok := s.errs[date]; ok {
		return nil, err
	}
	return s.records[date], nil
}

// CallCount returns how many searches were performed.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}
