package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
	"github.com/flight-deals/flight-deal-radar/internal/infrastructure/timeutil"
)

//go:generate mockgen -source=pipeline.go -destination=mock_pipeline.go -package=usecase

// DefaultSearchDays is the length of the default search window.
const DefaultSearchDays = 5

// OfferSource provides normalized flight records for one route and date.
// The Amadeus provider adapter implements this interface.
type OfferSource interface {
	// SearchFlights returns the normalized records for the given date,
	// in provider listing order. An error means the whole date is unavailable;
	// individual bad offers are skipped inside the source.
	SearchFlights(ctx context.Context, criteria domain.SearchCriteria, date string) ([]domain.FlightRecord, error)
}

// DropDetector reports price drops against the last observed price per date.
// The price history store implements this interface.
type DropDetector interface {
	// DetectDrop records the current price for the date and returns a
	// notification message when it is lower than the previous observation.
	DetectDrop(date string, current decimal.Decimal) (string, bool)
}

// Notifier delivers short messages to an external channel.
type Notifier interface {
	// Send delivers one message. Failures are best-effort for the pipeline.
	Send(ctx context.Context, message string) error
}

// PipelineConfig holds the pipeline's search defaults and policy knobs.
type PipelineConfig struct {
	// Origin and Destination are the default route (IATA codes)
	Origin      string
	Destination string

	// Days is the default search window length starting tomorrow
	Days int

	// Adults and Children are the default passenger counts
	Adults   int
	Children int

	Filter  FilterConfig
	Ranking RankingConfig
	Report  ReportConfig
}

// DefaultPipelineConfig returns the reference pipeline configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Origin:      "YYZ",
		Destination: "MAA",
		Days:        DefaultSearchDays,
		Adults:      2,
		Children:    2,
		Filter:      DefaultFilterConfig(),
		Ranking:     DefaultRankingConfig(),
		Report:      DefaultReportConfig(),
	}
}

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	// Report is the assembled multi-section report (placeholder sections when empty)
	Report *domain.Report

	// Ranking is the raw ranking output behind the report
	Ranking *domain.RankingResult

	// Days are the filtered day buckets the report was built from
	Days []domain.DayBucket

	// DropAlerts are the price-drop messages raised during the run
	DropAlerts []string
}

// Pipeline drives one full run: search each date, normalize (inside the
// source), filter once, rank, assemble the report, and detect price drops.
// The pipeline is synchronous; the only side effects are the price-history
// write-through and best-effort notifications.
type Pipeline struct {
	source   OfferSource
	history  DropDetector
	notifier Notifier
	clock    timeutil.Clock
	cfg      PipelineConfig
	log      zerolog.Logger
}

// NewPipeline creates a pipeline. history and notifier may be nil, which
// disables price-drop detection and delivery respectively.
func NewPipeline(source OfferSource, history DropDetector, notifier Notifier, clock timeutil.Clock, cfg PipelineConfig, log zerolog.Logger) *Pipeline {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &Pipeline{
		source:   source,
		history:  history,
		notifier: notifier,
		clock:    clock,
		cfg:      cfg,
		log:      log,
	}
}

// DefaultCriteria builds the configured default search: the configured route
// over a window starting tomorrow.
func (p *Pipeline) DefaultCriteria() domain.SearchCriteria {
	days := p.cfg.Days
	if days <= 0 {
		days = DefaultSearchDays
	}

	start := p.clock.Now().AddDate(0, 0, 1)
	end := start.AddDate(0, 0, days-1)

	return domain.SearchCriteria{
		Origin:      p.cfg.Origin,
		Destination: p.cfg.Destination,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Adults:      p.cfg.Adults,
		Children:    p.cfg.Children,
	}
}

// Run executes one full pipeline pass for the given criteria.
// Dates whose search fails are logged and skipped; an all-empty range still
// yields a well-formed placeholder report, never an error.
func (p *Pipeline) Run(ctx context.Context, criteria domain.SearchCriteria) (*RunResult, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	var days []domain.DayBucket
	for _, date := range criteria.Dates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := p.source.SearchFlights(ctx, criteria, date)
		if err != nil {
			p.log.Warn().Err(err).Str("date", date).Msg("Search failed, skipping date")
			continue
		}

		filtered := ApplyFilters(records, p.cfg.Filter)
		p.log.Debug().
			Str("date", date).
			Int("records", len(records)).
			Int("after_filter", len(filtered)).
			Msg("Date processed")

		days = append(days, domain.DayBucket{Date: date, Records: filtered})
	}

	ranking := RankDays(days, p.cfg.Ranking)
	report := BuildReport(ranking, days, p.cfg.Report)

	alerts := p.detectDrops(days)
	p.deliver(ctx, alerts)

	if !ranking.HasData() {
		p.log.Info().Msg("No flight data for the requested date range")
	}

	return &RunResult{
		Report:     report,
		Ranking:    ranking,
		Days:       days,
		DropAlerts: alerts,
	}, nil
}

// detectDrops runs price-drop detection once per date, using the day's
// cheapest observed price as the candidate.
func (p *Pipeline) detectDrops(days []domain.DayBucket) []string {
	if p.history == nil {
		return nil
	}

	var alerts []string
	for _, day := range days {
		if len(day.Records) == 0 {
			continue
		}

		cheapest := day.Records[0].Price
		for _, f := range day.Records[1:] {
			if f.Price.LessThan(cheapest) {
				cheapest = f.Price
			}
		}

		if msg, ok := p.history.DetectDrop(day.Date, cheapest); ok {
			p.log.Info().Str("date", day.Date).Msg("Price drop detected")
			alerts = append(alerts, msg)
		}
	}
	return alerts
}

// deliver sends drop alerts through the notifier, best-effort.
func (p *Pipeline) deliver(ctx context.Context, alerts []string) {
	if p.notifier == nil {
		return
	}
	for _, alert := range alerts {
		if err := p.notifier.Send(ctx, alert); err != nil {
			p.log.Warn().Err(err).Msg("Failed to deliver price-drop alert")
		}
	}
}
