package ingest

import (
	"testing"
)

func TestParseTradeSizeRange(t *testing.T) {
	mid, ok := ParseTradeSize("$1,001 - $15,000")
	if !ok {
		t.Fatal("Expected range to parse")
	}
	if mid != 8000.5 {
		t.Errorf("Expected midpoint 8000.5, got %f", mid)
	}
}

func TestParseTradeSizeSingleValue(t *testing.T) {
	mid, ok := ParseTradeSize("$50,000")
	if !ok {
		t.Fatal("Expected single value to parse")
	}
	if mid != 50000.0 {
		t.Errorf("Expected 50000.0, got %f", mid)
	}
}

func TestParseTradeSizeLargeRange(t *testing.T) {
	mid, ok := ParseTradeSize("$1,000,001 - $5,000,000")
	if !ok {
		t.Fatal("Expected range to parse")
	}
	if mid != 3000000.5 {
		t.Errorf("Expected midpoint 3000000.5, got %f", mid)
	}
}

func TestParseTradeSizeExtraNumbers(t *testing.T) {
	// Only the first two numbers form the low/high pair.
	mid, ok := ParseTradeSize("$1,000 - $2,000 (reported 3 times)")
	if !ok {
		t.Fatal("Expected value to parse")
	}
	if mid != 1500.0 {
		t.Errorf("Expected midpoint 1500.0, got %f", mid)
	}
}

func TestParseTradeSizeMissing(t *testing.T) {
	for _, s := range []string{"Unknown", "", "N/A", "--"} {
		if _, ok := ParseTradeSize(s); ok {
			t.Errorf("Expected %q to be missing", s)
		}
	}
}
