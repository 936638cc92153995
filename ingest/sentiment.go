package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/calebk/congresspanel/logger"
)

// Accepted aliases for the sentiment value column, in preference order.
var SentimentCandidates = []string{"News.Sentiment", "News Sentiment", "sentiment", "News_Sentiment"}

// Accepted aliases for the sentiment date column.
var sentimentDateCandidates = []string{"date", "date_clean"}

const yearColumn = "yr"

// SentimentTable holds the sentiment series sorted by date, along with the
// original CSV rows so the annotated output can echo every input column.
type SentimentTable struct {
	Header []string
	Rows   [][]string // sorted by date, aligned with Dates/Values/Years
	Dates  []time.Time
	Values []float64
	Years  []int
}

// LoadSentiment reads the sentiment series. The value column is resolved
// from SentimentCandidates and the date column from date/date_clean; a
// missing column of either kind is fatal. Rows with unparseable dates or
// values are dropped with logged counts. The year is taken from a "yr"
// column when present (two-digit years widened) and derived from the date
// otherwise.
func LoadSentiment(path string, log *logger.Logger) (*SentimentTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sentiment data: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read sentiment header: %w", err)
	}

	valueIdx, valueCol, ok := FindColumn(header, SentimentCandidates)
	if !ok {
		return nil, fmt.Errorf("%w: no sentiment column (expected one of %v, found %v)",
			ErrMissingColumn, SentimentCandidates, header)
	}
	dateIdx, dateCol, ok := FindColumn(header, sentimentDateCandidates)
	if !ok {
		return nil, fmt.Errorf("%w: no date column (expected one of %v, found %v)",
			ErrMissingColumn, sentimentDateCandidates, header)
	}
	yearIdx, _, hasYear := FindColumn(header, []string{yearColumn})

	table := &SentimentTable{Header: header}
	var droppedDates, droppedValues int

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read sentiment row: %w", err)
		}
		if len(record) <= dateIdx || len(record) <= valueIdx {
			droppedDates++
			continue
		}

		date, err := ParseDate(record[dateIdx])
		if err != nil {
			droppedDates++
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[valueIdx]), 64)
		if err != nil {
			droppedValues++
			continue
		}

		year := date.Year()
		if hasYear && len(record) > yearIdx {
			if y, err := strconv.Atoi(strings.TrimSpace(record[yearIdx])); err == nil {
				year = widenYear(y)
			}
		}

		table.Rows = append(table.Rows, record)
		table.Dates = append(table.Dates, date)
		table.Values = append(table.Values, value)
		table.Years = append(table.Years, year)
	}

	table.sortByDate()

	if droppedDates > 0 {
		log.Warnf("dropped %d sentiment rows with invalid dates", droppedDates)
	}
	if droppedValues > 0 {
		log.Warnf("dropped %d sentiment rows with non-numeric values", droppedValues)
	}
	if len(table.Dates) > 0 {
		log.Infof("loaded %d sentiment observations from %s to %s (columns %q/%q)",
			len(table.Dates),
			table.Dates[0].Format("2006-01-02"),
			table.Dates[len(table.Dates)-1].Format("2006-01-02"),
			dateCol, valueCol)
	}

	return table, nil
}

func (t *SentimentTable) sortByDate() {
	order := make([]int, len(t.Dates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.Dates[order[a]].Before(t.Dates[order[b]])
	})

	rows := make([][]string, len(order))
	dates := make([]time.Time, len(order))
	values := make([]float64, len(order))
	years := make([]int, len(order))
	for i, j := range order {
		rows[i] = t.Rows[j]
		dates[i] = t.Dates[j]
		values[i] = t.Values[j]
		years[i] = t.Years[j]
	}
	t.Rows, t.Dates, t.Values, t.Years = rows, dates, values, years
}

// widenYear turns a two-digit year into a four-digit one; years below 50
// land in the 2000s, the rest in the 1900s.
func widenYear(y int) int {
	if y >= 100 {
		return y
	}
	if y < 50 {
		return 2000 + y
	}
	return 1900 + y
}
