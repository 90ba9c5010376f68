package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the flight deal radar.
var (
	// ErrInvalidRequest indicates a request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNoData indicates the whole date range produced no usable flight records.
	ErrNoData = errors.New("no flight data for the requested date range")

	// ErrProviderUnavailable indicates the upstream search provider could not be reached.
	ErrProviderUnavailable = errors.New("flight search provider unavailable")
)

// ParseError describes a per-record parse failure during normalization.
// A ParseError is fatal for the single record it occurred on, never for the batch.
type ParseError struct {
	// Field is the record field that failed to parse (e.g., "duration", "price")
	Field string

	// Value is the raw value that could not be parsed
	Value string

	// Err is the underlying parse error, if any
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s %q", e.Field, e.Value)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ProviderError wraps an error from the upstream search provider with context.
type ProviderError struct {
	// Provider is the provider name
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the operation may succeed on retry
	Retryable bool
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a retryable provider error.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}
