package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebk/congresspanel/ingest"
)

func TestWriteFilterReport(t *testing.T) {
	congress := ingest.CongressFilterStats{
		Pre: ingest.TableSummary{
			Rows:    1234567,
			Tickers: map[string]struct{}{"AAPL": {}, "MSFT": {}},
			Members: map[string]struct{}{"Doe": {}},
			DateMin: time.Date(2013, 1, 2, 0, 0, 0, 0, time.UTC),
			DateMax: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		},
		Post: ingest.TableSummary{
			Rows:    1000000,
			Tickers: map[string]struct{}{"AAPL": {}},
			Members: map[string]struct{}{"Doe": {}},
		},
		DateColumn:   "Traded",
		MemberColumn: "Name",
	}
	stock := ingest.StockFilterStats{
		RowsPre:     5000,
		RowsPost:    4000,
		TickersPre:  map[string]struct{}{"AAPL": {}},
		TickersPost: map[string]struct{}{"AAPL": {}},
	}

	var buf bytes.Buffer
	cutoff := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, WriteFilterReport(&buf, congress, stock, cutoff))

	out := buf.String()
	assert.Contains(t, out, "# Data Filtering Summary")
	assert.Contains(t, out, "1,234,567", "counts are humanized")
	assert.Contains(t, out, "2013-01-02 to 2024-06-30")
	assert.Contains(t, out, "cutoff 2012-01-01")
	assert.Contains(t, out, "`Traded`")
	assert.Contains(t, out, "n/a", "missing date range renders as n/a")
}

func TestWriteFetchReport(t *testing.T) {
	stats := FetchStats{
		Requested: 120,
		Skipped:   30,
		Fetched:   80,
		Empty:     8,
		Failed:    []string{"XYZ"},
	}

	var buf bytes.Buffer
	start := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, WriteFetchReport(&buf, stats, start, end))

	out := buf.String()
	assert.Contains(t, out, "# Price History Backfill")
	assert.Contains(t, out, "2012-01-01 to 2024-12-31")
	assert.Contains(t, out, "| Fetched | 80 |")
	assert.Contains(t, out, "- XYZ")
}
