package ingest

import (
	"fmt"
	"strings"
	"time"
)

// Accepted date layouts, tried in order. Congressional disclosures and the
// sentiment series arrive with inconsistent formats across vintages.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"2006/01/02",
}

// ParseDate parses a date cell and normalizes it to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseAnchor parses a user-supplied center date. Unlike row dates, an
// unparseable anchor is fatal for the whole stage.
func ParseAnchor(s string) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse anchor date %q (try YYYY-MM-DD or MM/DD/YYYY): %w", s, err)
	}
	return t, nil
}

// Normalize truncates a timestamp to UTC midnight.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FindColumn resolves the first matching candidate name in a CSV header.
// Matching is exact; candidate order encodes preference.
func FindColumn(header []string, candidates []string) (int, string, bool) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	for _, c := range candidates {
		if i, ok := index[c]; ok {
			return i, c, true
		}
	}
	return -1, "", false
}

// RequireColumn resolves a single required column or fails with ErrMissingColumn.
func RequireColumn(header []string, name string) (int, error) {
	i, _, ok := FindColumn(header, []string{name})
	if !ok {
		return -1, fmt.Errorf("%w: %q (found columns: %v)", ErrMissingColumn, name, header)
	}
	return i, nil
}
