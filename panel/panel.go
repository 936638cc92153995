// Package panel stacks per-event date windows of congressional trade
// totals and market index volumes into one long-format table for the
// downstream difference-in-differences regression.
package panel

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/window"
)

const (
	EventTypeMin = "min"
	EventTypeMax = "max"
)

// Event is one selected sentiment extremum, identified by a synthetic
// sequential id. Minima are numbered first in chronological order; maxima
// continue the sequence, so the first maximum is event_M when there are M
// minima.
type Event struct {
	ID   int
	Type string
	Date time.Time
}

// Treat returns the synthetic treatment label used in the panel.
func (e Event) Treat() string {
	return fmt.Sprintf("event_%d", e.ID)
}

// ReadEvents extracts the selected events from an annotated sentiment CSV
// (the output of the events stage) and assigns ids: minima first, then
// maxima, both in chronological order. A flagged row that cannot be parsed
// is fatal: losing an event would renumber every later id and silently
// desynchronize the panel from the event maps. Unflagged bad rows are
// dropped with a logged count.
func ReadEvents(path string, log *logger.Logger) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open events data: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read events header: %w", err)
	}

	dateIdx, _, ok := ingest.FindColumn(header, []string{"date", "date_clean", "Date"})
	if !ok {
		return nil, fmt.Errorf("%w: no date column in events file", ingest.ErrMissingColumn)
	}
	minIdx, err := ingest.RequireColumn(header, "local_min")
	if err != nil {
		return nil, err
	}
	maxIdx, err := ingest.RequireColumn(header, "local_max")
	if err != nil {
		return nil, err
	}

	var minDates, maxDates []time.Time
	var droppedRows int
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read events row: %w", err)
		}
		rowNum++

		if len(record) <= dateIdx || len(record) <= minIdx || len(record) <= maxIdx {
			return nil, fmt.Errorf("events row %d has %d fields, too short for the flag columns", rowNum, len(record))
		}
		flaggedMin := record[minIdx] == "1"
		flaggedMax := record[maxIdx] == "1"

		date, err := ingest.ParseDate(record[dateIdx])
		if err != nil {
			if flaggedMin || flaggedMax {
				return nil, fmt.Errorf("events row %d is flagged but its date is unparseable: %w", rowNum, err)
			}
			droppedRows++
			continue
		}
		if flaggedMin {
			minDates = append(minDates, date)
		}
		if flaggedMax {
			maxDates = append(maxDates, date)
		}
	}
	if droppedRows > 0 {
		log.Warnf("dropped %d unflagged event rows with invalid dates", droppedRows)
	}

	sort.Slice(minDates, func(i, j int) bool { return minDates[i].Before(minDates[j]) })
	sort.Slice(maxDates, func(i, j int) bool { return maxDates[i].Before(maxDates[j]) })

	events := make([]Event, 0, len(minDates)+len(maxDates))
	for _, d := range minDates {
		events = append(events, Event{ID: len(events), Type: EventTypeMin, Date: d})
	}
	for _, d := range maxDates {
		events = append(events, Event{ID: len(events), Type: EventTypeMax, Date: d})
	}
	return events, nil
}

// Row is one day of one event window in the assembled panel.
type Row struct {
	Date    time.Time
	Total   float64
	Treat   string
	Volumes []float64 // aligned with Panel.VolumeColumns
	Event   string
}

// Panel is the long-format concatenation of all event windows.
type Panel struct {
	VolumeColumns []string
	Rows          []Row
}

// Assemble builds the panel: for every event, the congressional trade
// window and the market volume window are computed over the same dense
// ±halfWidth range and joined day by day. Missing index columns in a
// window are zero-filled so every row carries the full set of tracked
// indices and no NaN or gap survives into the output.
func Assemble(events []Event, trades, volumes []window.Record, halfWidthDays int) *Panel {
	columns := make([]string, 0, len(window.IndexTickers))
	for _, name := range window.IndexTickers {
		columns = append(columns, name)
	}
	sort.Strings(columns)

	p := &Panel{VolumeColumns: columns}

	for _, e := range events {
		cong := window.Aggregate(trades, e.Date, halfWidthDays)
		market := window.MarketVolumes(volumes, e.Date, halfWidthDays)

		for i, day := range cong.Days {
			row := Row{
				Date:    day,
				Total:   cong.Totals[i],
				Treat:   e.Treat(),
				Volumes: make([]float64, len(columns)),
				Event:   e.Type,
			}
			for j, name := range columns {
				if col, ok := market.Values[name]; ok {
					row.Volumes[j] = col[i]
				}
			}
			p.Rows = append(p.Rows, row)
		}
	}
	return p
}

// WriteCSV writes the long-format panel:
// Date,Total_Trade_Size_USD,treat,<index columns...>,event.
func (p *Panel) WriteCSV(out io.Writer) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := append([]string{window.DateColumn, window.TotalColumn, "treat"}, p.VolumeColumns...)
	header = append(header, "event")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, len(header))
	for _, r := range p.Rows {
		row[0] = r.Date.Format("2006-01-02")
		row[1] = strconv.FormatFloat(r.Total, 'f', -1, 64)
		row[2] = r.Treat
		for j, v := range r.Volumes {
			row[3+j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		row[len(row)-1] = r.Event
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteEventMaps writes the id-to-date lookup tables downstream scripts
// use to recover an event's date from its treatment label.
func WriteEventMaps(minPath, maxPath string, events []Event) error {
	minMap := make(map[string]string)
	maxMap := make(map[string]string)
	for _, e := range events {
		switch e.Type {
		case EventTypeMin:
			minMap[strconv.Itoa(e.ID)] = e.Date.Format("2006-01-02")
		case EventTypeMax:
			maxMap[strconv.Itoa(e.ID)] = e.Date.Format("2006-01-02")
		}
	}

	if err := writeJSON(minPath, minMap); err != nil {
		return err
	}
	return writeJSON(maxPath, maxMap)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal event map: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write event map: %w", err)
	}
	return nil
}
