// Package report writes the human-readable markdown summaries that
// accompany the filtering and backfill stages, so a reviewer can audit
// how much data each pass kept without rerunning it.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/calebk/congresspanel/ingest"
)

// WriteFilterReport summarizes the ticker-alignment and date-cutoff pass:
// row, ticker, and member counts before and after, plus date coverage.
func WriteFilterReport(out io.Writer, congress ingest.CongressFilterStats, stock ingest.StockFilterStats, cutoff time.Time) error {
	w := &errWriter{out: out}

	w.printf("# Data Filtering Summary\n\n")
	w.printf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	w.printf("## Congressional Trades\n\n")
	w.printf("| Metric | Before | After |\n")
	w.printf("|--------|--------|-------|\n")
	w.printf("| Rows | %s | %s |\n",
		humanize.Comma(int64(congress.Pre.Rows)), humanize.Comma(int64(congress.Post.Rows)))
	w.printf("| Unique tickers | %s | %s |\n",
		humanize.Comma(int64(len(congress.Pre.Tickers))), humanize.Comma(int64(len(congress.Post.Tickers))))
	w.printf("| Unique members | %s | %s |\n",
		humanize.Comma(int64(len(congress.Pre.Members))), humanize.Comma(int64(len(congress.Post.Members))))
	w.printf("| Date range | %s | %s |\n\n",
		dateRange(congress.Pre.DateMin, congress.Pre.DateMax),
		dateRange(congress.Post.DateMin, congress.Post.DateMax))
	if congress.DateColumn != "" {
		w.printf("Date column: `%s`", congress.DateColumn)
		if congress.MemberColumn != "" {
			w.printf(", member column: `%s`", congress.MemberColumn)
		}
		w.printf("\n\n")
	}

	w.printf("## Stock Prices (cutoff %s)\n\n", cutoff.Format("2006-01-02"))
	w.printf("| Metric | Before | After |\n")
	w.printf("|--------|--------|-------|\n")
	w.printf("| Rows | %s | %s |\n",
		humanize.Comma(int64(stock.RowsPre)), humanize.Comma(int64(stock.RowsPost)))
	w.printf("| Unique tickers | %s | %s |\n",
		humanize.Comma(int64(len(stock.TickersPre))), humanize.Comma(int64(len(stock.TickersPost))))
	w.printf("| Date range | %s | %s |\n",
		dateRange(stock.DateMinPre, stock.DateMaxPre),
		dateRange(stock.DateMinPost, stock.DateMaxPost))

	return w.err
}

// FetchStats counts the outcomes of a price-history backfill run.
type FetchStats struct {
	Requested int
	Skipped   int // rejected by symbol screening
	Fetched   int
	Empty     int
	Failed    []string
}

// WriteFetchReport summarizes a backfill run over missing tickers.
func WriteFetchReport(out io.Writer, stats FetchStats, start, end time.Time) error {
	w := &errWriter{out: out}

	w.printf("# Price History Backfill\n\n")
	w.printf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	w.printf("Window: %s to %s\n\n", start.Format("2006-01-02"), end.Format("2006-01-02"))

	w.printf("| Outcome | Tickers |\n")
	w.printf("|---------|--------|\n")
	w.printf("| Requested | %s |\n", humanize.Comma(int64(stats.Requested)))
	w.printf("| Skipped (not an equity symbol) | %s |\n", humanize.Comma(int64(stats.Skipped)))
	w.printf("| Fetched | %s |\n", humanize.Comma(int64(stats.Fetched)))
	w.printf("| No data returned | %s |\n", humanize.Comma(int64(stats.Empty)))
	w.printf("| Failed | %s |\n\n", humanize.Comma(int64(len(stats.Failed))))

	if len(stats.Failed) > 0 {
		w.printf("## Failed Tickers\n\n")
		for _, t := range stats.Failed {
			w.printf("- %s\n", t)
		}
	}
	return w.err
}

type errWriter struct {
	out io.Writer
	err error
}

func (w *errWriter) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func dateRange(min, max time.Time) string {
	if min.IsZero() || max.IsZero() {
		return "n/a"
	}
	return fmt.Sprintf("%s to %s", min.Format("2006-01-02"), max.Format("2006-01-02"))
}
