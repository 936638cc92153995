package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/report"
	"github.com/calebk/congresspanel/yahoo"
)

var (
	fetchCongressPath string
	fetchStockPath    string
	fetchStart        string
	fetchEnd          string
	fetchReportPath   string
	fetchLimit        int
)

var fetchCMD = &cobra.Command{
	Use:   "fetch",
	Short: "Backfill price history for tickers missing from the stock dataset",
	Long: `Find tickers that appear in congressional disclosures but have no rows
in the stock dataset, screen out instruments that are not equity symbols
(CUSIPs, bonds, foreign listings), and fetch daily history for the rest from
Yahoo Finance. Fetched bars are appended to the stock CSV in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		stockPath := orDefault(fetchStockPath, cfg.Data.StockCSV)
		reportPath := orDefault(fetchReportPath, filepath.Join(cfg.Data.Dir, "fetch_summary.md"))

		start, err := ingest.ParseAnchor(orDefault(fetchStart, cfg.Data.StockDateCutoff))
		if err != nil {
			return err
		}
		end, err := ingest.ParseAnchor(orDefault(fetchEnd, cfg.Data.StockDateEnd))
		if err != nil {
			return err
		}
		// The chart API treats period2 as exclusive.
		end = end.AddDate(0, 0, 1)

		missing, err := missingTickers(fetchCongressPath, stockPath, log)
		if err != nil {
			return err
		}
		log.Infof("%d tickers in congress data have no stock history", len(missing))
		if fetchLimit > 0 && len(missing) > fetchLimit {
			missing = missing[:fetchLimit]
			log.Infof("limiting this run to %d tickers", fetchLimit)
		}

		client := yahoo.NewClient(cfg.Yahoo)
		stats := report.FetchStats{Requested: len(missing)}

		for _, ticker := range missing {
			if !yahoo.IsLikelySymbol(ticker) {
				log.Debugf("skipping %s: not an equity symbol", ticker)
				stats.Skipped++
				continue
			}
			symbol := yahoo.ToYahooSymbol(ticker)

			bars, err := client.DailyHistory(cmd.Context(), symbol, start, end)
			if errors.Is(err, yahoo.ErrNotFound) {
				log.Warnf("no data for %s", symbol)
				stats.Empty++
				continue
			}
			if err != nil {
				log.Errorf("fetch failed for %s: %v", symbol, err)
				stats.Failed = append(stats.Failed, ticker)
				continue
			}
			if len(bars) == 0 {
				stats.Empty++
				continue
			}

			// Bars are written under the disclosed ticker so the later
			// join against congress data lines up.
			for i := range bars {
				bars[i].Ticker = ticker
			}
			if err := ingest.AppendStockBars(stockPath, bars); err != nil {
				return err
			}
			log.Infof("fetched %d bars for %s", len(bars), ticker)
			stats.Fetched++
		}

		out, err := os.Create(reportPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := report.WriteFetchReport(out, stats, start, end.AddDate(0, 0, -1)); err != nil {
			return err
		}
		log.Infof("backfill done: %d fetched, %d skipped, %d empty, %d failed",
			stats.Fetched, stats.Skipped, stats.Empty, len(stats.Failed))
		return nil
	},
}

// missingTickers returns congress tickers absent from the stock dataset,
// in deterministic order.
func missingTickers(congressPath, stockPath string, log *logger.Logger) ([]string, error) {
	trades, err := ingest.LoadCongressTrades(congressPath, log)
	if err != nil {
		return nil, err
	}
	have, err := ingest.CollectStockTickers(stockPath)
	if errors.Is(err, os.ErrNotExist) {
		have = make(map[string]struct{})
	} else if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var missing []string
	for _, t := range trades {
		if _, ok := have[t.Ticker]; ok {
			continue
		}
		if _, ok := seen[t.Ticker]; ok {
			continue
		}
		seen[t.Ticker] = struct{}{}
		missing = append(missing, t.Ticker)
	}
	return missing, nil
}

func init() {
	fetchCMD.Flags().StringVar(&fetchCongressPath, "congress", "data/raw/congress_trading.csv", "congressional trading CSV (pre-filtering, so dropped tickers are seen)")
	fetchCMD.Flags().StringVar(&fetchStockPath, "stock", "", "stock price CSV to append to (default STOCK_CSV)")
	fetchCMD.Flags().StringVar(&fetchStart, "start", "", "history start date (default STOCK_DATE_CUTOFF)")
	fetchCMD.Flags().StringVar(&fetchEnd, "end", "", "history end date (default STOCK_DATE_END)")
	fetchCMD.Flags().StringVar(&fetchReportPath, "report", "", "markdown report path (default under DATA_DIR)")
	fetchCMD.Flags().IntVar(&fetchLimit, "limit", 0, "fetch at most this many tickers (0 = all)")
}
