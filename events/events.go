// Package events finds extreme sentiment-reversal events: it smooths the
// sentiment series, flags local extrema, scores each extremum by the
// largest forward reversal that follows it, and keeps the top K per
// calendar year of each type.
package events

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
)

// Params are the tunable knobs of event identification.
type Params struct {
	SmoothingWindow     int // centered moving average width; 1 disables smoothing
	ComparisonHalfWidth int // days on each side for the extrema comparison
	ReversalDays        int // N in the N-day forward change
	HorizonDays         int // bounded lookahead for reversal scanning
	TopK                int // events kept per type per calendar year
}

// Result bundles everything event identification produced for one series.
type Result struct {
	Table     *ingest.SentimentTable
	Smoothed  []float64
	Detection Detection
	Scores    Scores
	Selection Selection
	TopK      int
}

// Identify runs the full extraction over a loaded sentiment table:
// smoothing, detection on the smoothed series, scoring on the raw series,
// per-year selection, and the final self-consistency check.
func Identify(table *ingest.SentimentTable, p Params, log *logger.Logger) (*Result, error) {
	smoothed := Smooth(table.Values, p.SmoothingWindow)
	if p.SmoothingWindow > 1 {
		log.Infof("applied %d-day centered moving average", p.SmoothingWindow)
	}

	det := DetectExtrema(smoothed, p.ComparisonHalfWidth)
	nMins, nMaxs := countFlags(det.IsMin), countFlags(det.IsMax)
	log.Infof("found %d local minima and %d local maxima (window=%d days)",
		nMins, nMaxs, p.ComparisonHalfWidth)

	scores := ScoreExtremity(table.Values, det, p.ReversalDays, p.HorizonDays)
	sel := SelectTopPerYear(table.Dates, table.Years, det, scores, p.TopK)

	if err := Validate(table.Years, det, sel, p.TopK); err != nil {
		return nil, fmt.Errorf("event selection failed validation: %w", err)
	}

	return &Result{
		Table:     table,
		Smoothed:  smoothed,
		Detection: det,
		Scores:    scores,
		Selection: sel,
		TopK:      p.TopK,
	}, nil
}

// WriteCSV writes the annotated series: every original column, then
// local_min, local_max (0/1) and extremity_score, which is populated only
// on selected rows.
func (r *Result) WriteCSV(out io.Writer) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	header := append(append([]string{}, r.Table.Header...), "local_min", "local_max", "extremity_score")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range r.Table.Rows {
		row := append(append([]string{}, record...), "0", "0", "")
		score := ""
		if r.Selection.Min[i] {
			row[len(row)-3] = "1"
			score = strconv.FormatFloat(r.Scores.Min[i], 'f', -1, 64)
		}
		if r.Selection.Max[i] {
			row[len(row)-2] = "1"
			score = strconv.FormatFloat(r.Scores.Max[i], 'f', -1, 64)
		}
		row[len(row)-1] = score
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// LogSummary prints the per-year selection counts the way the pipeline
// reports every stage.
func (r *Result) LogSummary(log *logger.Logger) {
	perYearMin := make(map[int]int)
	perYearMax := make(map[int]int)
	for i, y := range r.Table.Years {
		if r.Selection.Min[i] {
			perYearMin[y]++
		}
		if r.Selection.Max[i] {
			perYearMax[y]++
		}
	}

	years := make([]int, 0, len(perYearMin)+len(perYearMax))
	seen := make(map[int]struct{})
	for _, y := range r.Table.Years {
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	sort.Ints(years)

	log.Infof("selected events by year:")
	for _, y := range years {
		log.Infof("  %d: %d minima, %d maxima", y, perYearMin[y], perYearMax[y])
	}
	log.Infof("total events: %d minima, %d maxima",
		countFlags(r.Selection.Min), countFlags(r.Selection.Max))
}

func countFlags(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
