package http

import (
	"github.com/flight-deals/flight-deal-radar/internal/domain"
	"github.com/flight-deals/flight-deal-radar/internal/usecase"
)

// ReportResponse is the API payload for one report run.
type ReportResponse struct {
	// Criteria echoes the effective search criteria after defaults were applied
	Criteria CriteriaDTO `json:"criteria"`

	// Summary is the one-line-per-category best-day text summary
	Summary string `json:"summary"`

	// Report holds the rendered report sections
	Report ReportDTO `json:"report"`

	// Days lists how many flights each searched date yielded after filtering
	Days []DaySummaryDTO `json:"days"`

	// DropAlerts are the price-drop messages raised during the run
	DropAlerts []string `json:"dropAlerts,omitempty"`
}

// CriteriaDTO mirrors the effective search criteria.
type CriteriaDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
}

// ReportDTO carries the rendered report, whole and by section.
type ReportDTO struct {
	// Full is the complete report text, sections joined by blank lines
	Full string `json:"full"`

	BestDay    string `json:"bestDay"`
	TopOverall string `json:"topOverall"`
	Carrier    string `json:"carrier"`
	Daily      string `json:"daily"`
}

// DaySummaryDTO summarizes one searched date.
type DaySummaryDTO struct {
	Date    string `json:"date"`
	Flights int    `json:"flights"`
}

// ToReportResponse converts a pipeline run result into the API payload.
func ToReportResponse(criteria domain.SearchCriteria, result *usecase.RunResult) *ReportResponse {
	days := make([]DaySummaryDTO, 0, len(result.Days))
	for _, day := range result.Days {
		days = append(days, DaySummaryDTO{
			Date:    day.Date,
			Flights: len(day.Records),
		})
	}

	return &ReportResponse{
		Criteria: CriteriaDTO{
			Origin:      criteria.Origin,
			Destination: criteria.Destination,
			StartDate:   criteria.StartDate,
			EndDate:     criteria.EndDate,
			Adults:      criteria.Adults,
			Children:    criteria.Children,
		},
		Summary: result.Ranking.TextSummary,
		Report: ReportDTO{
			Full:       result.Report.Full(),
			BestDay:    result.Report.BestDaySection,
			TopOverall: result.Report.TopOverallSection,
			Carrier:    result.Report.CarrierSection,
			Daily:      result.Report.DailySection,
		},
		Days:       days,
		DropAlerts: result.DropAlerts,
	}
}
