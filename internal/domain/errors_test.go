package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name         string
		err          *ParseError
		wantContains []string
		wantUnwrap   error
	}{
		{
			name:         "with underlying error",
			err:          &ParseError{Field: "duration", Value: "xxh", Err: errors.New("invalid syntax")},
			wantContains: []string{"duration", "xxh", "invalid syntax"},
			wantUnwrap:   nil, // checked separately below
		},
		{
			name:         "without underlying error",
			err:          &ParseError{Field: "price", Value: "abc"},
			wantContains: []string{"price", "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.wantContains {
				assert.Contains(t, tt.err.Error(), want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	underlying := errors.New("invalid syntax")
	err := &ParseError{Field: "duration", Value: "xxh", Err: underlying}

	assert.True(t, errors.Is(err, underlying))

	var parseErr *ParseError
	assert.True(t, errors.As(error(err), &parseErr))
}

func TestProviderError(t *testing.T) {
	tests := []struct {
		name          string
		provider      string
		underlyingErr error
		retryable     bool
	}{
		{
			name:          "non-retryable by default",
			provider:      "amadeus",
			underlyingErr: errors.New("status 400"),
			retryable:     false,
		},
		{
			name:          "retryable constructor",
			provider:      "amadeus",
			underlyingErr: errors.New("connection reset"),
			retryable:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err *ProviderError
			if tt.retryable {
				err = NewRetryableProviderError(tt.provider, tt.underlyingErr)
			} else {
				err = NewProviderError(tt.provider, tt.underlyingErr)
			}

			assert.Contains(t, err.Error(), tt.provider)
			assert.Contains(t, err.Error(), tt.underlyingErr.Error())
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.Equal(t, tt.retryable, err.Retryable)
		})
	}
}
