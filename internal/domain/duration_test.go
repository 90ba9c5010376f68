package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "hours and minutes", input: "17h 50m", want: 1070},
		{name: "minutes only", input: "45m", want: 45},
		{name: "hours only", input: "3h", want: 180},
		{name: "no whitespace", input: "2h30m", want: 150},
		{name: "uppercase units", input: "2H 30M", want: 150},
		{name: "zero duration", input: "0m", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "bare unit suffixes", input: "h m", want: 0},
		{name: "malformed hours", input: "xxh 30m", wantErr: true},
		{name: "malformed minutes", input: "2h yym", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDurationMinutes(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationMinutes_RoundTrip(t *testing.T) {
	// parse(render(h, m)) == h*60+m for any h >= 0, 0 <= m < 60
	for _, h := range []int{0, 1, 2, 9, 17, 23, 48} {
		for _, m := range []int{0, 1, 5, 30, 50, 59} {
			rendered := FormatMinutes(h*60 + m)
			got, err := ParseDurationMinutes(rendered)
			require.NoError(t, err, "rendered %q", rendered)
			assert.Equal(t, h*60+m, got, "round trip of %dh %dm via %q", h, m, rendered)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 1070, want: "17h 50m"},
		{minutes: 60, want: "1h"},
		{minutes: 45, want: "45m"},
		{minutes: 0, want: "0m"},
		{minutes: 61, want: "1h 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestHumanizeISODuration(t *testing.T) {
	tests := []struct {
		iso  string
		want string
	}{
		{iso: "PT17H50M", want: "17h 50m"},
		{iso: "PT2H", want: "2h"},
		{iso: "PT45M", want: "45m"},
		{iso: "P1DT5H30M", want: "29h 30m"},
		{iso: "P2DT30M", want: "48h 30m"},
		{iso: "P1D", want: "24h"},
		{iso: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.iso), func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeISODuration(tt.iso))
		})
	}
}

func TestNewDurationInfo(t *testing.T) {
	info, err := NewDurationInfo("PT17H50M")
	require.NoError(t, err)
	assert.Equal(t, 1070, info.TotalMinutes)
	assert.Equal(t, "17h 50m", info.Formatted)

	_, err = NewDurationInfo("PTxxH")
	require.Error(t, err)
}
