package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/models"
)

const stockFixture = `Date,Ticker,Open,High,Low,Close,Volume,Dividends,Stock Splits
2011-12-30,aapl,10,11,9,10.5,1000,0,0
2012-01-03,AAPL,10,11,9,10.5,2000,0,0
2012-01-03,spy,100,101,99,100.5,5000000,0,0
2013-06-01,MSFT,20,21,19,20.5,3000,0,0
`

func TestFilterStockCSV(t *testing.T) {
	in := writeFixture(t, "stock.csv", stockFixture)
	out := filepath.Join(t.TempDir(), "filtered.csv")

	cutoff := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
	stats, err := FilterStockCSV(in, out, cutoff, logger.Get())
	if err != nil {
		t.Fatalf("Failed to filter: %v", err)
	}

	if stats.RowsPre != 4 || stats.RowsPost != 3 {
		t.Errorf("Expected 4 rows before and 3 after, got %d/%d", stats.RowsPre, stats.RowsPost)
	}
	if _, ok := stats.TickersPost["AAPL"]; !ok {
		t.Error("Expected AAPL in post-filter tickers")
	}
	if !stats.DateMinPost.Equal(cutoff.AddDate(0, 0, 2)) {
		t.Errorf("Expected post-filter min date 2012-01-03, got %v", stats.DateMinPost)
	}

	tickers, err := CollectStockTickers(out)
	if err != nil {
		t.Fatalf("Failed to collect tickers: %v", err)
	}
	if len(tickers) != 3 {
		t.Errorf("Expected 3 tickers, got %d", len(tickers))
	}
	if _, ok := tickers["SPY"]; !ok {
		t.Error("Expected standardized SPY ticker")
	}
}

func TestLoadIndexVolumes(t *testing.T) {
	path := writeFixture(t, "stock.csv", stockFixture)

	records, err := LoadIndexVolumes(path, logger.Get())
	if err != nil {
		t.Fatalf("Failed to load volumes: %v", err)
	}

	// Only SPY is a tracked index ticker.
	if len(records) != 1 {
		t.Fatalf("Expected 1 index record, got %d", len(records))
	}
	if records[0].Category != "SPY" || records[0].Value != 5000000 {
		t.Errorf("Unexpected record: %+v", records[0])
	}
}

func TestAppendStockBars(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.csv")

	bars := []models.StockBar{
		{
			Date:   time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
			Ticker: "AAPL",
			Open:   70, High: 75, Low: 69, Close: 74.5,
			Volume: 100000, Dividends: 0.25, StockSplits: 0,
		},
	}

	if err := AppendStockBars(path, bars); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}
	if err := AppendStockBars(path, bars); err != nil {
		t.Fatalf("Failed to append again: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to read: %v", err)
	}

	// Header once, then one row per append.
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][8] != "Stock Splits" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][1] != "AAPL" || rows[1][3] != "75" {
		t.Errorf("Unexpected row: %v", rows[1])
	}
}
