// Package domain contains the core business entities and rules for the flight deal radar.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AirlineInfo identifies the operating airline of a flight record.
type AirlineInfo struct {
	// Code is the IATA airline code (e.g., "EY")
	Code string `json:"code"`

	// Name is the resolved airline name (e.g., "Etihad Airways"), empty if unknown
	Name string `json:"name,omitempty"`
}

// Display returns the airline in report form: "EY — Etihad Airways",
// or the bare code when the name could not be resolved.
func (a AirlineInfo) Display() string {
	if a.Name == "" {
		return a.Code
	}
	return fmt.Sprintf("%s — %s", a.Code, a.Name)
}

// DurationInfo contains the total outbound duration of a flight record.
type DurationInfo struct {
	// TotalMinutes is the itinerary duration in whole minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is the human-readable form (e.g., "17h 50m")
	Formatted string `json:"formatted"`
}

// FlightRecord is one normalized flight option for a single search date.
// It is created by the provider normalizer and immutable thereafter.
type FlightRecord struct {
	// Airline is the carrier of the first segment
	Airline AirlineInfo `json:"airline"`

	// Price is the offer's total price (currency-less decimal)
	Price decimal.Decimal `json:"price"`

	// Duration is the total outbound duration
	Duration DurationInfo `json:"duration"`

	// Stops is the number of stops (segments - 1)
	Stops int `json:"stops"`

	// LayoverCity is the IATA code of the first layover airport, empty for direct flights
	LayoverCity string `json:"layoverCity,omitempty"`

	// LayoverHours is the first layover length in hours, rounded to one decimal
	LayoverHours float64 `json:"layoverHours"`

	// Departure is the first segment's departure instant, kept as an opaque display string
	Departure string `json:"departure"`

	// Arrival is the last segment's arrival instant, kept as an opaque display string
	Arrival string `json:"arrival"`
}

// DayBucket holds all normalized flight records for one calendar date.
// Record order is the provider's listing order, not significance order.
type DayBucket struct {
	// Date is the search date in YYYY-MM-DD form
	Date string `json:"date"`

	// Records are the day's flight options in provider order
	Records []FlightRecord `json:"records"`
}

// Category identifies a best-day ranking dimension.
type Category string

// Best-day categories.
const (
	CategoryCheapest         Category = "cheapest"
	CategoryShortestDuration Category = "shortest_duration"
	CategoryShortestLayover  Category = "shortest_layover"
)

// Label returns the report heading for the category.
func (c Category) Label() string {
	switch c {
	case CategoryCheapest:
		return "Cheapest Day"
	case CategoryShortestDuration:
		return "Shortest Duration"
	case CategoryShortestLayover:
		return "Shortest Layover"
	default:
		return string(c)
	}
}

// BestDayEntry is the winning flight of one category across the whole date range.
type BestDayEntry struct {
	Category     Category        `json:"category"`
	Date         string          `json:"date"`
	Price        decimal.Decimal `json:"price"`
	Airline      string          `json:"airline"`
	Duration     string          `json:"duration"`
	LayoverCity  string          `json:"layoverCity,omitempty"`
	LayoverHours float64         `json:"layoverHours"`
}

// RankedFlight is a flight record annotated with its composite score and source date.
// Lower scores are better.
type RankedFlight struct {
	FlightRecord

	// Date is the search date the record belongs to
	Date string `json:"date"`

	// Score is the composite ranking score (price, duration, and layover blended)
	Score float64 `json:"score"`
}

// RankingResult is the Ranking Engine's output for one run.
// Category entries are nil when no day had any record.
type RankingResult struct {
	Cheapest         *BestDayEntry  `json:"cheapest,omitempty"`
	ShortestDuration *BestDayEntry  `json:"shortestDuration,omitempty"`
	ShortestLayover  *BestDayEntry  `json:"shortestLayover,omitempty"`
	TopOverall       []RankedFlight `json:"topOverall"`

	// TextSummary is a short plain-text summary, one line per present category
	TextSummary string `json:"textSummary"`
}

// HasData reports whether any day contributed at least one record.
func (r *RankingResult) HasData() bool {
	return r.Cheapest != nil || r.ShortestDuration != nil || r.ShortestLayover != nil || len(r.TopOverall) > 0
}
