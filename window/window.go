package window

import (
	"sort"
	"time"
)

// Record is one dated, categorized value: a congressional trade midpoint
// keyed by ticker, or an index ETF volume keyed by symbol.
type Record struct {
	Date     time.Time
	Category string
	Value    float64
}

// Window is a dense ±N-day aggregation around an anchor date. It always
// spans exactly 2*halfWidth+1 calendar days; days without activity are
// zero-filled, never omitted.
type Window struct {
	Anchor     time.Time
	Start      time.Time
	End        time.Time
	Days       []time.Time
	Categories []string             // alphabetical, only categories seen in the window
	Values     map[string][]float64 // per-category daily sums, aligned with Days
	Totals     []float64            // per-day total across categories
}

// Aggregate sums records by (day, category) over the inclusive calendar
// window [anchor-halfWidth, anchor+halfWidth]. Duplicate (day, category)
// pairs are summed. A window with no records still comes back with the full
// dense day range and zeroed totals, so callers can merge it without
// special-casing.
func Aggregate(records []Record, anchor time.Time, halfWidthDays int) *Window {
	anchor = midnight(anchor)
	start := anchor.AddDate(0, 0, -halfWidthDays)
	end := anchor.AddDate(0, 0, halfWidthDays)

	numDays := 2*halfWidthDays + 1
	days := make([]time.Time, numDays)
	dayIndex := make(map[time.Time]int, numDays)
	for i := range days {
		d := start.AddDate(0, 0, i)
		days[i] = d
		dayIndex[d] = i
	}

	values := make(map[string][]float64)
	for _, r := range records {
		d := midnight(r.Date)
		i, ok := dayIndex[d]
		if !ok {
			continue
		}
		col, ok := values[r.Category]
		if !ok {
			col = make([]float64, numDays)
			values[r.Category] = col
		}
		col[i] += r.Value
	}

	categories := make([]string, 0, len(values))
	for c := range values {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	totals := make([]float64, numDays)
	for _, col := range values {
		for i, v := range col {
			totals[i] += v
		}
	}

	return &Window{
		Anchor:     anchor,
		Start:      start,
		End:        end,
		Days:       days,
		Categories: categories,
		Values:     values,
		Totals:     totals,
	}
}

// Shares converts the per-category sums to percentage shares of each day's
// total on a 0-100 scale. A day with zero total yields all-zero shares via
// an explicit branch, so NaN never enters the output.
func (w *Window) Shares() map[string][]float64 {
	shares := make(map[string][]float64, len(w.Values))
	for c, col := range w.Values {
		s := make([]float64, len(col))
		for i, v := range col {
			if w.Totals[i] > 0 {
				s[i] = v / w.Totals[i] * 100.0
			}
		}
		shares[c] = s
	}
	return shares
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
