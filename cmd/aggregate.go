package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/window"
)

var (
	aggDate      string
	aggHalfWidth int
	aggInPath    string
	aggOutPath   string
)

var aggregateCMD = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate congressional trading around a date",
	Long: `Sum congressional trade midpoints per day and ticker over a ±N-day
window around the given date, and write per-ticker percentage shares of each
day's total. Every day in the window appears in the output, zero-filled when
nothing traded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		anchor, err := ingest.ParseAnchor(aggDate)
		if err != nil {
			return err
		}

		inPath := orDefault(aggInPath, cfg.Data.CongressCSV)
		outPath := orDefault(aggOutPath, filepath.Join(cfg.Data.Dir, "congress_window.csv"))

		trades, err := ingest.LoadCongressTrades(inPath, log)
		if err != nil {
			return err
		}

		records := make([]window.Record, len(trades))
		for i, t := range trades {
			records[i] = window.Record{Date: t.Date, Category: t.Ticker, Value: t.SizeMidUSD}
		}

		w := window.Aggregate(records, anchor, aggHalfWidth)
		log.Infof("aggregated %d days around %s: %d tickers active",
			len(w.Days), anchor.Format("2006-01-02"), len(w.Categories))

		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := w.WriteShares(out); err != nil {
			return err
		}
		log.Infof("wrote aggregation to %s", outPath)
		return nil
	},
}

func init() {
	aggregateCMD.Flags().StringVar(&aggDate, "date", "", "center date of the window (YYYY-MM-DD)")
	aggregateCMD.Flags().IntVar(&aggHalfWidth, "window", 30, "days on each side of the center date")
	aggregateCMD.Flags().StringVar(&aggInPath, "in", "", "congressional trading CSV (default CONGRESS_CSV)")
	aggregateCMD.Flags().StringVar(&aggOutPath, "out", "", "output CSV (default under DATA_DIR)")
	_ = aggregateCMD.MarkFlagRequired("date")
}
