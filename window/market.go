package window

import (
	"sort"
	"time"
)

// IndexTickers maps the tracked market index ETFs to their output column
// names in the volume window.
var IndexTickers = map[string]string{
	"SPY": "S&P_500_Volume",
	"DIA": "Dow_Jones_Volume",
	"QQQ": "NASDAQ_100_Volume",
	"IWM": "Russell_2000_Volume",
	"VOO": "Vanguard_SP500_Volume",
	"VTI": "Total_Market_Volume",
}

// MarketVolumes aggregates index ETF volumes over a ±N-day window, with
// category names mapped from ticker symbols to the output column names. A
// window with no data carries all tracked index columns, zero-filled, so
// downstream joins always see the same shape.
func MarketVolumes(records []Record, anchor time.Time, halfWidthDays int) *Window {
	w := Aggregate(records, anchor, halfWidthDays)

	renamed := make(map[string][]float64, len(w.Values))
	for ticker, col := range w.Values {
		name, ok := IndexTickers[ticker]
		if !ok {
			name = ticker
		}
		renamed[name] = col
	}

	if len(renamed) == 0 {
		zeros := make([]float64, len(w.Days))
		for _, name := range IndexTickers {
			col := make([]float64, len(zeros))
			copy(col, zeros)
			renamed[name] = col
		}
	}

	categories := make([]string, 0, len(renamed))
	for name := range renamed {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	w.Values = renamed
	w.Categories = categories
	return w
}
