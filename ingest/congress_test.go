package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/calebk/congresspanel/logger"
)

const congressFixture = `Traded,Ticker,Trade_Size_USD,Transaction,Name
2024-01-15,aapl,"$1,001 - $15,000",Purchase,Doe
2024-01-16,MSFT,"$50,000",Sale,Doe
bad-date,TSLA,"$1,001 - $15,000",Purchase,Smith
2024-01-17,,"$1,001 - $15,000",Purchase,Smith
2024-01-18,NVDA,Unknown,Purchase,Smith
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestLoadCongressTrades(t *testing.T) {
	path := writeFixture(t, "congress.csv", congressFixture)

	rows, err := LoadCongressTrades(path, logger.Get())
	if err != nil {
		t.Fatalf("Failed to load trades: %v", err)
	}

	// Bad date, missing ticker, and unparseable size rows are dropped.
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}

	if rows[0].Ticker != "AAPL" {
		t.Errorf("Expected standardized ticker AAPL, got %s", rows[0].Ticker)
	}
	if rows[0].SizeMidUSD != 8000.5 {
		t.Errorf("Expected midpoint 8000.5, got %f", rows[0].SizeMidUSD)
	}
	expectedDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !rows[0].Date.Equal(expectedDate) {
		t.Errorf("Expected date %v, got %v", expectedDate, rows[0].Date)
	}
	if rows[0].Member != "Doe" {
		t.Errorf("Expected member Doe, got %s", rows[0].Member)
	}

	if rows[1].Ticker != "MSFT" || rows[1].SizeMidUSD != 50000.0 {
		t.Errorf("Unexpected second row: %+v", rows[1])
	}
}

func TestLoadCongressTradesMissingColumn(t *testing.T) {
	path := writeFixture(t, "congress.csv", "Traded,Trade_Size_USD\n2024-01-15,\"$50,000\"\n")

	_, err := LoadCongressTrades(path, logger.Get())
	if err == nil {
		t.Fatal("Expected error for missing ticker column, got nil")
	}
}

func TestFilterCongressCSV(t *testing.T) {
	in := writeFixture(t, "congress.csv", congressFixture)
	out := filepath.Join(t.TempDir(), "filtered.csv")

	allowed := map[string]struct{}{"AAPL": {}, "NVDA": {}}
	stats, err := FilterCongressCSV(in, out, allowed, logger.Get())
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}

	if stats.Pre.Rows != 5 {
		t.Errorf("Expected 5 rows before filtering, got %d", stats.Pre.Rows)
	}
	if stats.Post.Rows != 2 {
		t.Errorf("Expected 2 rows after filtering, got %d", stats.Post.Rows)
	}
	if stats.DateColumn != "Traded" {
		t.Errorf("Expected date column Traded, got %s", stats.DateColumn)
	}

	kept, err := LoadCongressTrades(out, logger.Get())
	if err != nil {
		t.Fatalf("Failed to reload filtered file: %v", err)
	}
	// NVDA row survives filtering but has no parseable size.
	if len(kept) != 1 || kept[0].Ticker != "AAPL" {
		t.Errorf("Unexpected filtered rows: %+v", kept)
	}
}

func TestFilterCongressCSVCountsRaggedRows(t *testing.T) {
	in := writeFixture(t, "congress.csv", `Traded,Ticker,Trade_Size_USD
2024-01-15,AAPL,"$1,001 - $15,000"
2024-01-16
2024-01-17,MSFT,"$50,000"
`)
	out := filepath.Join(t.TempDir(), "filtered.csv")

	allowed := map[string]struct{}{"AAPL": {}, "MSFT": {}}
	stats, err := FilterCongressCSV(in, out, allowed, logger.Get())
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}

	if stats.SkippedRows != 1 {
		t.Errorf("Expected 1 skipped ragged row, got %d", stats.SkippedRows)
	}
	if stats.Pre.Rows != 2 || stats.Post.Rows != 2 {
		t.Errorf("Expected 2 well-formed rows pre and post, got %d/%d", stats.Pre.Rows, stats.Post.Rows)
	}
}
