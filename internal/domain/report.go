package domain

import "strings"

// Report is the assembled textual output of one pipeline run.
// It is purely derived from ranking output and day buckets and is never persisted.
type Report struct {
	// BestDaySection is the best-day category table
	BestDaySection string `json:"bestDaySection"`

	// TopOverallSection is the top-N overall table
	TopOverallSection string `json:"topOverallSection"`

	// CarrierSection is the target-carrier subsection
	CarrierSection string `json:"carrierSection"`

	// DailySection contains one table per date, dates ascending
	DailySection string `json:"dailySection"`
}

// Full joins all sections into the complete report string, in fixed order.
func (r *Report) Full() string {
	sections := []string{
		r.BestDaySection,
		r.TopOverallSection,
		r.CarrierSection,
		r.DailySection,
	}
	return strings.TrimRight(strings.Join(sections, "\n\n"), "\n")
}
