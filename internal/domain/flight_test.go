package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAirlineInfoDisplay(t *testing.T) {
	tests := []struct {
		name    string
		airline AirlineInfo
		want    string
	}{
		{
			name:    "code with resolved name",
			airline: AirlineInfo{Code: "EY", Name: "Etihad Airways"},
			want:    "EY — Etihad Airways",
		},
		{
			name:    "bare code when name unresolved",
			airline: AirlineInfo{Code: "XX"},
			want:    "XX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.airline.Display())
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Cheapest Day", CategoryCheapest.Label())
	assert.Equal(t, "Shortest Duration", CategoryShortestDuration.Label())
	assert.Equal(t, "Shortest Layover", CategoryShortestLayover.Label())
	assert.Equal(t, "custom", Category("custom").Label())
}

func TestRankingResultHasData(t *testing.T) {
	empty := &RankingResult{}
	assert.False(t, empty.HasData())

	withCategory := &RankingResult{
		Cheapest: &BestDayEntry{
			Category: CategoryCheapest,
			Date:     "2026-03-20",
			Price:    decimal.NewFromInt(500),
		},
	}
	assert.True(t, withCategory.HasData())

	withTopOnly := &RankingResult{
		TopOverall: []RankedFlight{{Date: "2026-03-20", Score: 1.5}},
	}
	assert.True(t, withTopOnly.HasData())
}

func TestReportFull(t *testing.T) {
	r := &Report{
		BestDaySection:    "best",
		TopOverallSection: "top",
		CarrierSection:    "carrier",
		DailySection:      "daily",
	}

	full := r.Full()
	assert.Equal(t, "best\n\ntop\n\ncarrier\n\ndaily", full)
}
