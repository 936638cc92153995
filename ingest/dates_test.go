package ingest

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	expected := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	for _, s := range []string{
		"2024-01-15",
		"2024-01-15 10:30:00",
		"1/15/2024",
		"01/15/2024",
		"1/15/24",
		"2024/01/15",
	} {
		parsed, err := ParseDate(s)
		if err != nil {
			t.Errorf("Failed to parse %q: %v", s, err)
			continue
		}
		if !parsed.Equal(expected) {
			t.Errorf("Expected %v for %q, got %v", expected, s, parsed)
		}
	}
}

func TestParseDateNormalizesToMidnight(t *testing.T) {
	parsed, err := ParseDate("2024-06-01 15:04:05")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if parsed.Hour() != 0 || parsed.Minute() != 0 {
		t.Errorf("Expected midnight, got %v", parsed)
	}
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("not-a-date")
	if err == nil {
		t.Fatal("Expected error for invalid date, got nil")
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected ErrInvalidDate, got %v", err)
	}

	if _, err := ParseDate(""); err == nil {
		t.Error("Expected error for empty date, got nil")
	}
}

func TestFindColumnPreference(t *testing.T) {
	header := []string{"Name", "Date", "Traded", "Ticker"}

	idx, name, ok := FindColumn(header, CongressDateCandidates)
	if !ok {
		t.Fatal("Expected to find a date column")
	}
	if name != "Traded" || idx != 2 {
		t.Errorf("Expected Traded at index 2, got %s at %d", name, idx)
	}
}

func TestRequireColumnMissing(t *testing.T) {
	_, err := RequireColumn([]string{"A", "B"}, "Ticker")
	if err == nil {
		t.Fatal("Expected error for missing column, got nil")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("Expected ErrMissingColumn, got %v", err)
	}
}
