// Package usecase provides the business logic for the flight deal radar:
// record filtering, best-day ranking, report assembly, and pipeline orchestration.
package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
)

// Composite score divisors.
// The score blends three incommensurate units into one scalar:
// price dominates at three digits of precision, duration and layover act as
// secondary signals. Reports depend on these exact values.
const (
	// DefaultPriceDivisor scales the price contribution.
	DefaultPriceDivisor = 1000.0

	// DefaultDurationDivisor scales the duration-in-minutes contribution.
	DefaultDurationDivisor = 1000.0

	// DefaultLayoverDivisor scales the layover-hours contribution.
	DefaultLayoverDivisor = 10.0

	// DefaultTopN is the size of the overall ranked list.
	DefaultTopN = 3
)

// RankingConfig holds the ranking weights and list size.
type RankingConfig struct {
	// PriceDivisor divides the price before it enters the score
	PriceDivisor float64

	// DurationDivisor divides the duration in minutes before it enters the score
	DurationDivisor float64

	// LayoverDivisor divides the layover hours before it enters the score
	LayoverDivisor float64

	// TopN is how many overall flights to retain, lowest score first
	TopN int
}

// DefaultRankingConfig returns the reference ranking configuration.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		PriceDivisor:    DefaultPriceDivisor,
		DurationDivisor: DefaultDurationDivisor,
		LayoverDivisor:  DefaultLayoverDivisor,
		TopN:            DefaultTopN,
	}
}

// Score computes the composite score for one flight record. Lower is better.
func (c RankingConfig) Score(f domain.FlightRecord) float64 {
	return f.Price.InexactFloat64()/c.PriceDivisor +
		float64(f.Duration.TotalMinutes)/c.DurationDivisor +
		f.LayoverHours/c.LayoverDivisor
}

// RankDays consumes per-day flight records (already filtered by the caller)
// and computes the three best-day category entries, the top-N overall list,
// and a short plain-text summary.
//
// Behavior:
//   - Each category fold uses strict less-than replacement, so the first-seen
//     day wins ties.
//   - The overall list is sorted ascending by score with a stable sort; ties
//     preserve encounter order (earlier date, earlier within-day position).
//   - Days with zero records contribute nothing; if all days are empty the
//     result has nil category entries and an empty list, never an error.
//   - Does NOT mutate the input day buckets.
func RankDays(days []domain.DayBucket, cfg RankingConfig) *domain.RankingResult {
	result := &domain.RankingResult{}

	var scored []domain.RankedFlight
	bestDurationMin := 0

	for _, day := range days {
		if len(day.Records) == 0 {
			continue
		}

		cheapest := minRecord(day.Records, func(a, b domain.FlightRecord) bool {
			return a.Price.LessThan(b.Price)
		})
		if result.Cheapest == nil || cheapest.Price.LessThan(result.Cheapest.Price) {
			result.Cheapest = newBestDayEntry(domain.CategoryCheapest, day.Date, cheapest)
		}

		shortest := minRecord(day.Records, func(a, b domain.FlightRecord) bool {
			return a.Duration.TotalMinutes < b.Duration.TotalMinutes
		})
		if result.ShortestDuration == nil || shortest.Duration.TotalMinutes < bestDurationMin {
			result.ShortestDuration = newBestDayEntry(domain.CategoryShortestDuration, day.Date, shortest)
			bestDurationMin = shortest.Duration.TotalMinutes
		}

		quickest := minRecord(day.Records, func(a, b domain.FlightRecord) bool {
			return a.LayoverHours < b.LayoverHours
		})
		if result.ShortestLayover == nil || quickest.LayoverHours < result.ShortestLayover.LayoverHours {
			result.ShortestLayover = newBestDayEntry(domain.CategoryShortestLayover, day.Date, quickest)
		}

		for _, f := range day.Records {
			scored = append(scored, domain.RankedFlight{
				FlightRecord: f,
				Date:         day.Date,
				Score:        cfg.Score(f),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})

	topN := cfg.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(scored) > topN {
		scored = scored[:topN]
	}
	result.TopOverall = scored

	result.TextSummary = buildTextSummary(result)
	return result
}

// minRecord returns the first record that no other record strictly beats.
func minRecord(records []domain.FlightRecord, less func(a, b domain.FlightRecord) bool) domain.FlightRecord {
	best := records[0]
	for _, f := range records[1:] {
		if less(f, best) {
			best = f
		}
	}
	return best
}

// newBestDayEntry builds a category entry from a winning record.
func newBestDayEntry(category domain.Category, date string, f domain.FlightRecord) *domain.BestDayEntry {
	return &domain.BestDayEntry{
		Category:     category,
		Date:         date,
		Price:        f.Price,
		Airline:      f.Airline.Display(),
		Duration:     f.Duration.Formatted,
		LayoverCity:  f.LayoverCity,
		LayoverHours: f.LayoverHours,
	}
}

// buildTextSummary renders one summary line per present category.
func buildTextSummary(r *domain.RankingResult) string {
	var parts []string
	if r.Cheapest != nil {
		parts = append(parts, fmt.Sprintf("Cheapest Day: %s — $%s", r.Cheapest.Date, r.Cheapest.Price.StringFixed(2)))
	}
	if r.ShortestDuration != nil {
		parts = append(parts, fmt.Sprintf("Shortest Duration: %s — %s", r.ShortestDuration.Date, r.ShortestDuration.Duration))
	}
	if r.ShortestLayover != nil {
		parts = append(parts, fmt.Sprintf("Shortest Layover: %s — %.1fh", r.ShortestLayover.Date, r.ShortestLayover.LayoverHours))
	}
	return strings.Join(parts, "\n")
}
