package usecase

import (
	"strings"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
)

// Reference filter defaults.
const (
	// DefaultMaxLayoverHours is the layover ceiling applied to every record.
	DefaultMaxLayoverHours = 6.0
)

// DefaultExcludedCarriers is the reference carrier denylist (Cathay Pacific, Air India).
var DefaultExcludedCarriers = []string{"CX", "AI"}

// FilterConfig holds the record-level filtering policy. It is applied exactly
// once, upstream of both ranking and report assembly.
type FilterConfig struct {
	// ExcludedCarriers is a denylist of IATA carrier codes
	ExcludedCarriers []string

	// MaxLayoverHours excludes records with a longer first layover.
	// Zero or negative disables the ceiling.
	MaxLayoverHours float64
}

// DefaultFilterConfig returns the reference filtering policy.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		ExcludedCarriers: DefaultExcludedCarriers,
		MaxLayoverHours:  DefaultMaxLayoverHours,
	}
}

// ApplyFilters returns the records that pass the carrier denylist and the
// layover ceiling. Does NOT mutate the input slice.
func ApplyFilters(records []domain.FlightRecord, cfg FilterConfig) []domain.FlightRecord {
	excluded := buildCarrierSet(cfg.ExcludedCarriers)

	result := make([]domain.FlightRecord, 0, len(records))
	for _, f := range records {
		if isCarrierExcluded(f.Airline.Code, excluded) {
			continue
		}
		if cfg.MaxLayoverHours > 0 && f.LayoverHours > cfg.MaxLayoverHours {
			continue
		}
		result = append(result, f)
	}
	return result
}

// buildCarrierSet creates a case-insensitive lookup set from carrier codes.
func buildCarrierSet(carriers []string) map[string]struct{} {
	set := make(map[string]struct{}, len(carriers))
	for _, code := range carriers {
		set[strings.ToUpper(code)] = struct{}{}
	}
	return set
}

// isCarrierExcluded checks the denylist case-insensitively.
func isCarrierExcluded(code string, set map[string]struct{}) bool {
	_, exists := set[strings.ToUpper(code)]
	return exists
}
