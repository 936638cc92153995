package window

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const (
	DateColumn  = "Date"
	TotalColumn = "Total_Trade_Size_USD"
)

const dateLayout = "2006-01-02"

// WriteShares writes the congressional aggregation in wide format: Date,
// Total_Trade_Size_USD, then one percentage column per ticker in
// alphabetical order. An empty window produces just the Date and total
// columns, zero-filled; no ticker columns are invented.
func (w *Window) WriteShares(out io.Writer) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := append([]string{DateColumn, TotalColumn}, w.Categories...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	shares := w.Shares()
	row := make([]string, len(header))
	for i, day := range w.Days {
		row[0] = day.Format(dateLayout)
		row[1] = formatValue(w.Totals[i])
		for j, c := range w.Categories {
			row[2+j] = formatValue(shares[c][i])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteValues writes the raw per-category sums (used for index volumes):
// Date, then one column per category in alphabetical order.
func (w *Window) WriteValues(out io.Writer) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := append([]string{DateColumn}, w.Categories...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(header))
	for i, day := range w.Days {
		row[0] = day.Format(dateLayout)
		for j, c := range w.Categories {
			row[1+j] = formatValue(w.Values[c][i])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
