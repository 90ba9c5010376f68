package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
	"github.com/flight-deals/flight-deal-radar/internal/render"
)

// Reference report defaults.
const (
	// DefaultPerDayCap is how many records each per-day table lists.
	DefaultPerDayCap = 10

	// DefaultTargetCarrier is the carrier of the dedicated report subsection.
	DefaultTargetCarrier = "Etihad"
)

// Report section placeholders. Absent data always renders an explicit line,
// never an empty or malformed section.
const (
	placeholderBestDay = "No best-day summary available."
	placeholderOverall = "No overall flight ranking available."
	placeholderDaily   = "No daily flight data available."
	placeholderDay     = "No flights available."
)

// ReportConfig holds the report assembly policy.
type ReportConfig struct {
	// TargetCarrier is matched case-insensitively against resolved airline names
	// to build the dedicated carrier subsection
	TargetCarrier string

	// PerDayCap limits how many records each per-day table lists
	PerDayCap int
}

// DefaultReportConfig returns the reference report configuration.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		TargetCarrier: DefaultTargetCarrier,
		PerDayCap:     DefaultPerDayCap,
	}
}

// BuildReport assembles the full multi-section report from ranking output and
// the complete per-day record sequences. Records must already be filtered;
// the assembler never re-applies the carrier denylist or layover ceiling.
func BuildReport(ranking *domain.RankingResult, days []domain.DayBucket, cfg ReportConfig) *domain.Report {
	if cfg.PerDayCap <= 0 {
		cfg.PerDayCap = DefaultPerDayCap
	}
	if cfg.TargetCarrier == "" {
		cfg.TargetCarrier = DefaultTargetCarrier
	}

	return &domain.Report{
		BestDaySection:    buildBestDaySection(ranking),
		TopOverallSection: buildTopOverallSection(ranking),
		CarrierSection:    buildCarrierSection(days, cfg.TargetCarrier),
		DailySection:      buildDailySection(days, cfg.PerDayCap),
	}
}

// buildBestDaySection renders one row per present best-day category.
func buildBestDaySection(ranking *domain.RankingResult) string {
	var rows [][]string
	for _, entry := range []*domain.BestDayEntry{ranking.Cheapest, ranking.ShortestDuration, ranking.ShortestLayover} {
		if entry == nil {
			continue
		}
		rows = append(rows, []string{
			entry.Category.Label(),
			entry.Date,
			entry.Price.StringFixed(2),
			entry.Airline,
			fmt.Sprintf("%s — %.1fh", entry.LayoverCity, entry.LayoverHours),
		})
	}

	if len(rows) == 0 {
		return placeholderBestDay
	}

	headers := []string{"Category", "Date", "Price", "Airline", "Layover"}
	aligns := []render.Alignment{render.AlignLeft, render.AlignLeft, render.AlignRight, render.AlignLeft, render.AlignLeft}
	table := render.AutoTable(headers, rows, aligns)

	return "BEST DAY TO FLY SUMMARY\n\n" + render.MonospaceBlock(table)
}

// buildTopOverallSection renders the top-N overall ranked list.
func buildTopOverallSection(ranking *domain.RankingResult) string {
	if len(ranking.TopOverall) == 0 {
		return placeholderOverall
	}

	headers := []string{"Date", "Score", "Price", "Airline", "Duration", "Layover Hours", "Layover City"}
	aligns := []render.Alignment{
		render.AlignLeft, render.AlignRight, render.AlignRight, render.AlignLeft,
		render.AlignLeft, render.AlignRight, render.AlignLeft,
	}

	rows := make([][]string, 0, len(ranking.TopOverall))
	for _, f := range ranking.TopOverall {
		rows = append(rows, []string{
			f.Date,
			fmt.Sprintf("%.2f", f.Score),
			f.Price.StringFixed(2),
			f.Airline.Display(),
			f.Duration.Formatted,
			fmt.Sprintf("%.1fh", f.LayoverHours),
			f.LayoverCity,
		})
	}

	title := fmt.Sprintf("TOP %d BEST OVERALL FLIGHTS", len(ranking.TopOverall))
	return title + "\n\n" + render.MonospaceBlock(render.AutoTable(headers, rows, aligns))
}

// carrierRow is one row of the target-carrier subsection.
type carrierRow struct {
	date   string
	record domain.FlightRecord
}

// buildCarrierSection renders flights whose resolved airline name contains the
// target carrier, sorted ascending by price.
func buildCarrierSection(days []domain.DayBucket, target string) string {
	needle := strings.ToLower(target)

	var matches []carrierRow
	for _, day := range days {
		for _, f := range day.Records {
			if strings.Contains(strings.ToLower(f.Airline.Display()), needle) {
				matches = append(matches, carrierRow{date: day.Date, record: f})
			}
		}
	}

	title := strings.ToUpper(target) + " FLIGHTS"
	if len(matches) == 0 {
		return fmt.Sprintf("%s — no flights found for this date range.", title)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].record.Price.LessThan(matches[j].record.Price)
	})

	headers := []string{"Date", "Price", "Duration", "Layover"}
	aligns := []render.Alignment{render.AlignLeft, render.AlignRight, render.AlignLeft, render.AlignRight}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []string{
			m.date,
			m.record.Price.StringFixed(2),
			m.record.Duration.Formatted,
			fmt.Sprintf("%.1fh", m.record.LayoverHours),
		})
	}

	return title + "\n\n" + render.MonospaceBlock(render.AutoTable(headers, rows, aligns))
}

// buildDailySection renders one table per date in ascending date order,
// capped at perDayCap rows per day.
func buildDailySection(days []domain.DayBucket, perDayCap int) string {
	if len(days) == 0 {
		return placeholderDaily
	}

	ordered := make([]domain.DayBucket, len(days))
	copy(ordered, days)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	var parts []string
	for _, day := range ordered {
		parts = append(parts, buildDayTable(day, perDayCap))
	}
	return strings.Join(parts, "\n\n")
}

// buildDayTable renders a single day's option table.
func buildDayTable(day domain.DayBucket, perDayCap int) string {
	if len(day.Records) == 0 {
		return day.Date + "\n" + placeholderDay
	}

	records := day.Records
	if len(records) > perDayCap {
		records = records[:perDayCap]
	}

	headers := []string{"Option", "Airline", "Price", "Duration", "Stops", "Layover City", "Layover Hours", "Departure", "Arrival"}
	aligns := []render.Alignment{
		render.AlignRight, render.AlignLeft, render.AlignRight, render.AlignLeft, render.AlignRight,
		render.AlignLeft, render.AlignRight, render.AlignLeft, render.AlignLeft,
	}

	rows := make([][]string, 0, len(records))
	for i, f := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			f.Airline.Display(),
			f.Price.StringFixed(2),
			f.Duration.Formatted,
			strconv.Itoa(f.Stops),
			f.LayoverCity,
			fmt.Sprintf("%.1fh", f.LayoverHours),
			f.Departure,
			f.Arrival,
		})
	}

	return day.Date + "\n" + render.MonospaceBlock(render.AutoTable(headers, rows, aligns))
}
