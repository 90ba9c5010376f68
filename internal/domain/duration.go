package domain

import (
	"strconv"
	"strings"
)

// ParseDurationMinutes converts a textual duration using the h/m suffix
// convention ("17h 50m", "45m", "3h") into total whole minutes.
// Missing units default to zero. A unit value that cannot be parsed as an
// integer returns a *ParseError; callers treat that as fatal for the single
// record only.
func ParseDurationMinutes(s string) (int, error) {
	compact := strings.ReplaceAll(strings.ToLower(s), " ", "")

	hours := 0
	minutes := 0

	if i := strings.Index(compact, "h"); i >= 0 {
		if part := compact[:i]; part != "" {
			h, err := strconv.Atoi(part)
			if err != nil {
				return 0, &ParseError{Field: "duration", Value: s, Err: err}
			}
			hours = h
		}
		compact = compact[i+1:]
	}

	if i := strings.Index(compact, "m"); i >= 0 {
		if part := compact[:i]; part != "" {
			m, err := strconv.Atoi(part)
			if err != nil {
				return 0, &ParseError{Field: "duration", Value: s, Err: err}
			}
			minutes = m
		}
	}

	return hours*60 + minutes, nil
}

// FormatMinutes renders whole minutes as "<h>h <m>m", the external duration form.
// Zero-valued components are elided except for the zero duration itself.
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}

// HumanizeISODuration converts an ISO-8601 duration ("PT17H50M") into the
// display form used across reports ("17h 50m"). A day component is folded
// into the hours ("P1DT5H30M" renders as "29h 30m").
func HumanizeISODuration(iso string) string {
	s := strings.ToLower(iso)
	s = strings.TrimPrefix(s, "p")

	days := 0
	if i := strings.Index(s, "d"); i >= 0 {
		if d, err := strconv.Atoi(s[:i]); err == nil {
			days = d
			s = s[i+1:]
		}
	}
	s = strings.TrimPrefix(s, "t")

	if days > 0 {
		hours := 0
		rest := s
		if i := strings.Index(s, "h"); i >= 0 {
			if h, err := strconv.Atoi(s[:i]); err == nil {
				hours = h
			}
			rest = s[i+1:]
		}
		s = strconv.Itoa(days*24+hours) + "h" + rest
	}

	s = strings.ReplaceAll(s, "h", "h ")
	return strings.TrimSpace(s)
}

// NewDurationInfo builds a DurationInfo from an ISO-8601 duration string.
// The formatted form comes from the ISO string directly; the minute count is
// parsed back out of it so display and scoring always agree.
func NewDurationInfo(iso string) (DurationInfo, error) {
	formatted := HumanizeISODuration(iso)
	minutes, err := ParseDurationMinutes(formatted)
	if err != nil {
		return DurationInfo{}, err
	}
	return DurationInfo{
		TotalMinutes: minutes,
		Formatted:    formatted,
	}, nil
}
