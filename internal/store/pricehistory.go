// Package store persists the price history: the last observed price per
// search date, kept in a single JSON file and written through on every update.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultHistoryFile is the default price-history file path.
const DefaultHistoryFile = "price_history.json"

// PriceHistory tracks the last observed price per date in a JSON file.
// A missing or corrupt file is treated as an empty history, never an error.
// Write failures are logged and otherwise ignored: storage trouble must not
// suppress a price comparison that was already computed.
//
// Concurrent use across processes is not supported; callers serialize access.
type PriceHistory struct {
	path string
	log  zerolog.Logger
}

// NewPriceHistory creates a history backed by the given file path.
func NewPriceHistory(path string, log zerolog.Logger) *PriceHistory {
	if path == "" {
		path = DefaultHistoryFile
	}
	return &PriceHistory{path: path, log: log}
}

// DetectDrop records the current price for the date and reports a drop.
// The stored price is unconditionally overwritten and persisted immediately.
// The message is non-empty only when current < previous; the first observation
// for a date and any rise or equality report nothing.
func (s *PriceHistory) DetectDrop(date string, current decimal.Decimal) (string, bool) {
	history := s.load()

	previous, seen := history[date]
	history[date] = current
	s.save(history)

	if !seen || !current.LessThan(previous) {
		return "", false
	}

	diff := previous.Sub(current)
	msg := fmt.Sprintf("Price drop on %s: was $%s, now $%s (down $%s)",
		date, previous.StringFixed(2), current.StringFixed(2), diff.StringFixed(2))
	return msg, true
}

// Previous returns the last stored price for a date without updating it.
func (s *PriceHistory) Previous(date string) (decimal.Decimal, bool) {
	price, ok := s.load()[date]
	return price, ok
}

// load reads the history file. Missing or unreadable content yields an empty map.
func (s *PriceHistory) load() map[string]decimal.Decimal {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("Failed to read price history, starting empty")
		}
		return map[string]decimal.Decimal{}
	}

	var history map[string]decimal.Decimal
	if err := json.Unmarshal(data, &history); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("Corrupt price history, starting empty")
		return map[string]decimal.Decimal{}
	}
	if history == nil {
		history = map[string]decimal.Decimal{}
	}
	return history
}

// save writes the history file, best-effort.
func (s *PriceHistory) save(history map[string]decimal.Decimal) {
	data, err := json.Marshal(history)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to encode price history")
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("Failed to write price history")
	}
}
