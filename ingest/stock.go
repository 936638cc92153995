package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/models"
	"github.com/calebk/congresspanel/window"
)

// StockColumns is the fixed column order of the historical stock CSV.
var StockColumns = []string{
	"Date", "Ticker", "Open", "High", "Low", "Close",
	"Volume", "Dividends", "Stock Splits",
}

const (
	stockDateColumn   = "Date"
	stockVolumeColumn = "Volume"
)

// StockFilterStats summarizes a date-cutoff filtering pass over the stock
// dataset.
type StockFilterStats struct {
	RowsPre     int
	RowsPost    int
	TickersPre  map[string]struct{}
	TickersPost map[string]struct{}
	DateMinPre  time.Time
	DateMaxPre  time.Time
	DateMinPost time.Time
	DateMaxPost time.Time
}

// FilterStockCSV streams the stock dataset row by row, keeps rows dated on
// or after cutoff, standardizes tickers, and writes the result
// incrementally. Rows are never buffered in bulk, so arbitrarily large
// inputs stay within a fixed memory footprint.
func FilterStockCSV(inPath, outPath string, cutoff time.Time, log *logger.Logger) (StockFilterStats, error) {
	stats := StockFilterStats{
		TickersPre:  make(map[string]struct{}),
		TickersPost: make(map[string]struct{}),
	}

	in, err := os.Open(inPath)
	if err != nil {
		return stats, fmt.Errorf("failed to open stock data: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create filtered stock file: %w", err)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header, err := reader.Read()
	if err != nil {
		return stats, fmt.Errorf("failed to read stock header: %w", err)
	}
	dateIdx, err := RequireColumn(header, stockDateColumn)
	if err != nil {
		return stats, err
	}
	tickerIdx, err := RequireColumn(header, TickerColumn)
	if err != nil {
		return stats, err
	}

	headerCopy := make([]string, len(header))
	copy(headerCopy, header)
	if err := writer.Write(headerCopy); err != nil {
		return stats, fmt.Errorf("failed to write header: %w", err)
	}

	var droppedDates int
	rowOut := make([]string, 0, len(header))

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read stock row: %w", err)
		}
		if len(record) <= dateIdx || len(record) <= tickerIdx {
			droppedDates++
			continue
		}

		date, err := ParseDate(record[dateIdx])
		if err != nil {
			droppedDates++
			continue
		}
		ticker := NormalizeTicker(record[tickerIdx])

		stats.RowsPre++
		if ticker != "" {
			stats.TickersPre[ticker] = struct{}{}
		}
		observeRange(&stats.DateMinPre, &stats.DateMaxPre, date)

		if date.Before(cutoff) {
			continue
		}

		stats.RowsPost++
		if ticker != "" {
			stats.TickersPost[ticker] = struct{}{}
		}
		observeRange(&stats.DateMinPost, &stats.DateMaxPost, date)

		rowOut = rowOut[:0]
		rowOut = append(rowOut, record...)
		rowOut[dateIdx] = date.Format("2006-01-02")
		rowOut[tickerIdx] = ticker
		if err := writer.Write(rowOut); err != nil {
			return stats, fmt.Errorf("failed to write filtered stock row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("failed to flush filtered stock file: %w", err)
	}

	if droppedDates > 0 {
		log.Warnf("dropped %d stock rows with invalid dates", droppedDates)
	}
	return stats, nil
}

// CollectStockTickers streams the stock dataset and returns the set of
// standardized tickers present.
func CollectStockTickers(path string) (map[string]struct{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stock data: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read stock header: %w", err)
	}
	tickerIdx, err := RequireColumn(header, TickerColumn)
	if err != nil {
		return nil, err
	}

	tickers := make(map[string]struct{})
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read stock row: %w", err)
		}
		if len(record) <= tickerIdx {
			continue
		}
		if t := NormalizeTicker(record[tickerIdx]); t != "" {
			tickers[t] = struct{}{}
		}
	}
	return tickers, nil
}

// LoadIndexVolumes reads Date/Ticker/Volume for the tracked index ETFs.
// Rows with unparseable dates or volumes are dropped with logged counts.
func LoadIndexVolumes(path string, log *logger.Logger) ([]window.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stock data: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read stock header: %w", err)
	}
	dateIdx, err := RequireColumn(header, stockDateColumn)
	if err != nil {
		return nil, err
	}
	tickerIdx, err := RequireColumn(header, TickerColumn)
	if err != nil {
		return nil, err
	}
	volumeIdx, err := RequireColumn(header, stockVolumeColumn)
	if err != nil {
		return nil, err
	}

	var records []window.Record
	var droppedDates, droppedVolumes int

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read stock row: %w", err)
		}
		if len(record) <= dateIdx || len(record) <= tickerIdx || len(record) <= volumeIdx {
			droppedDates++
			continue
		}

		ticker := NormalizeTicker(record[tickerIdx])
		if _, ok := window.IndexTickers[ticker]; !ok {
			continue
		}
		date, err := ParseDate(record[dateIdx])
		if err != nil {
			droppedDates++
			continue
		}
		volume, err := strconv.ParseFloat(record[volumeIdx], 64)
		if err != nil {
			droppedVolumes++
			continue
		}
		records = append(records, window.Record{Date: date, Category: ticker, Value: volume})
	}

	if droppedDates > 0 {
		log.Warnf("dropped %d index rows with invalid dates", droppedDates)
	}
	if droppedVolumes > 0 {
		log.Warnf("dropped %d index rows with non-numeric volumes", droppedVolumes)
	}
	if len(records) == 0 {
		log.Warnf("no data found for index tickers; market volume window will be zero-filled")
	}
	return records, nil
}

// AppendStockBars appends fetched bars to the stock CSV in the fixed column
// order, writing the header first when the file is new or empty.
func AppendStockBars(path string, bars []models.StockBar) error {
	info, err := os.Stat(path)
	needHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat stock file: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open stock file for append: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if needHeader {
		if err := writer.Write(StockColumns); err != nil {
			return fmt.Errorf("failed to write stock header: %w", err)
		}
	}

	for _, b := range bars {
		row := []string{
			b.Date.Format("2006-01-02"),
			b.Ticker,
			formatFloat(b.Open),
			formatFloat(b.High),
			formatFloat(b.Low),
			formatFloat(b.Close),
			formatFloat(b.Volume),
			formatFloat(b.Dividends),
			formatFloat(b.StockSplits),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to append stock row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func observeRange(min, max *time.Time, date time.Time) {
	if min.IsZero() || date.Before(*min) {
		*min = date
	}
	if max.IsZero() || date.After(*max) {
		*max = date
	}
}
