package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/calebk/congresspanel/logger"
)

// Date column aliases for congressional disclosures, in preference order.
var CongressDateCandidates = []string{"Traded", "Date", "date"}

// Member ID column aliases. BioGuideID is stable across name changes, so it
// wins when both are present.
var memberCandidates = []string{"BioGuideID", "Name"}

const (
	TickerColumn    = "Ticker"
	TradeSizeColumn = "Trade_Size_USD"
	TransactionCol  = "Transaction"
)

// TradeRow is one cleaned congressional trade ready for aggregation. Both
// purchases and sales carry the midpoint as a positive magnitude.
type TradeRow struct {
	Date        time.Time
	Ticker      string
	Member      string
	Transaction string
	SizeMidUSD  float64
}

// TableSummary captures the row/ticker/member statistics the filtering
// report is built from.
type TableSummary struct {
	Rows    int
	Tickers map[string]struct{}
	Members map[string]struct{}
	DateMin time.Time
	DateMax time.Time
}

func newTableSummary() TableSummary {
	return TableSummary{
		Tickers: make(map[string]struct{}),
		Members: make(map[string]struct{}),
	}
}

func (s *TableSummary) observe(date time.Time, ticker, member string) {
	s.Rows++
	if ticker != "" {
		s.Tickers[ticker] = struct{}{}
	}
	if member != "" {
		s.Members[member] = struct{}{}
	}
	if date.IsZero() {
		return
	}
	if s.DateMin.IsZero() || date.Before(s.DateMin) {
		s.DateMin = date
	}
	if s.DateMax.IsZero() || date.After(s.DateMax) {
		s.DateMax = date
	}
}

// LoadCongressTrades reads a congressional trading CSV into cleaned rows.
// Rows with unparseable dates, missing tickers, or unparseable trade sizes
// are dropped with logged counts; a wholly missing required column aborts.
func LoadCongressTrades(path string, log *logger.Logger) ([]TradeRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open congress data: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read congress header: %w", err)
	}

	dateIdx, dateCol, ok := FindColumn(header, CongressDateCandidates)
	if !ok {
		return nil, fmt.Errorf("%w: no date column (expected one of %v, found %v)",
			ErrMissingColumn, CongressDateCandidates, header)
	}
	tickerIdx, err := RequireColumn(header, TickerColumn)
	if err != nil {
		return nil, err
	}
	sizeIdx, err := RequireColumn(header, TradeSizeColumn)
	if err != nil {
		return nil, err
	}
	txIdx, _, hasTx := FindColumn(header, []string{TransactionCol})
	memberIdx, _, hasMember := FindColumn(header, memberCandidates)

	var rows []TradeRow
	var droppedDates, droppedTickers, droppedSizes int

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read congress row: %w", err)
		}
		if len(record) <= dateIdx || len(record) <= tickerIdx || len(record) <= sizeIdx {
			droppedDates++
			continue
		}

		date, err := ParseDate(record[dateIdx])
		if err != nil {
			droppedDates++
			continue
		}
		ticker := NormalizeTicker(record[tickerIdx])
		if ticker == "" {
			droppedTickers++
			continue
		}
		mid, ok := ParseTradeSize(record[sizeIdx])
		if !ok {
			droppedSizes++
			continue
		}

		row := TradeRow{Date: date, Ticker: ticker, SizeMidUSD: mid}
		if hasTx && len(record) > txIdx {
			row.Transaction = record[txIdx]
		}
		if hasMember && len(record) > memberIdx {
			row.Member = record[memberIdx]
		}
		rows = append(rows, row)
	}

	if droppedDates > 0 {
		log.Warnf("dropped %d rows with invalid dates", droppedDates)
	}
	if droppedTickers > 0 {
		log.Warnf("dropped %d rows with missing tickers", droppedTickers)
	}
	if droppedSizes > 0 {
		log.Warnf("dropped %d rows with unparseable trade sizes", droppedSizes)
	}
	log.Infof("loaded %d congress trades from %s (date column %q)", len(rows), path, dateCol)

	return rows, nil
}

// CongressFilterStats summarizes a ticker-alignment pass for the report.
type CongressFilterStats struct {
	Pre          TableSummary
	Post         TableSummary
	SkippedRows  int // ragged records too short to carry a ticker
	MemberColumn string
	DateColumn   string
}

// FilterCongressCSV streams a raw congressional CSV and writes only the rows
// whose standardized ticker appears in allowed, keeping every original
// column. Ticker cells are rewritten in standardized form.
func FilterCongressCSV(inPath, outPath string, allowed map[string]struct{}, log *logger.Logger) (CongressFilterStats, error) {
	stats := CongressFilterStats{Pre: newTableSummary(), Post: newTableSummary()}

	in, err := os.Open(inPath)
	if err != nil {
		return stats, fmt.Errorf("failed to open congress data: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create filtered congress file: %w", err)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header, err := reader.Read()
	if err != nil {
		return stats, fmt.Errorf("failed to read congress header: %w", err)
	}
	tickerIdx, err := RequireColumn(header, TickerColumn)
	if err != nil {
		return stats, err
	}
	dateIdx, dateCol, hasDate := FindColumn(header, CongressDateCandidates)
	memberIdx, memberCol, hasMember := FindColumn(header, memberCandidates)
	stats.DateColumn = dateCol
	stats.MemberColumn = memberCol

	if err := writer.Write(header); err != nil {
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read congress row: %w", err)
		}
		if len(record) <= tickerIdx {
			stats.SkippedRows++
			continue
		}

		ticker := NormalizeTicker(record[tickerIdx])
		record[tickerIdx] = ticker

		var date time.Time
		if hasDate && len(record) > dateIdx {
			if d, err := ParseDate(record[dateIdx]); err == nil {
				date = d
			}
		}
		var member string
		if hasMember && len(record) > memberIdx {
			member = record[memberIdx]
		}

		stats.Pre.observe(date, ticker, member)

		if _, ok := allowed[ticker]; !ok {
			continue
		}
		stats.Post.observe(date, ticker, member)
		if err := writer.Write(record); err != nil {
			return stats, fmt.Errorf("failed to write filtered row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("failed to flush filtered congress file: %w", err)
	}

	if stats.SkippedRows > 0 {
		log.Warnf("dropped %d malformed congress rows", stats.SkippedRows)
	}
	removed := stats.Pre.Rows - stats.Post.Rows
	if removed > 0 {
		log.Warnf("dropped %d congress trades without matching stock data", removed)
	}
	return stats, nil
}
