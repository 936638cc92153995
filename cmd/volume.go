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
	volDate      string
	volHalfWidth int
	volInPath    string
	volOutPath   string
)

var volumeCMD = &cobra.Command{
	Use:   "volume",
	Short: "Aggregate market index volumes around a date",
	Long: `Sum daily trading volumes of the tracked market index ETFs over a
±N-day window around the given date. Output columns use the index names
rather than ticker symbols.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		anchor, err := ingest.ParseAnchor(volDate)
		if err != nil {
			return err
		}

		inPath := orDefault(volInPath, cfg.Data.StockCSV)
		outPath := orDefault(volOutPath, filepath.Join(cfg.Data.Dir, "market_volume_window.csv"))

		records, err := ingest.LoadIndexVolumes(inPath, log)
		if err != nil {
			return err
		}

		w := window.MarketVolumes(records, anchor, volHalfWidth)
		log.Infof("aggregated %d days of index volume around %s",
			len(w.Days), anchor.Format("2006-01-02"))

		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := w.WriteValues(out); err != nil {
			return err
		}
		log.Infof("wrote volume aggregation to %s", outPath)
		return nil
	},
}

func init() {
	volumeCMD.Flags().StringVar(&volDate, "date", "", "center date of the window (YYYY-MM-DD)")
	volumeCMD.Flags().IntVar(&volHalfWidth, "window", 30, "days on each side of the center date")
	volumeCMD.Flags().StringVar(&volInPath, "in", "", "stock price CSV (default STOCK_CSV)")
	volumeCMD.Flags().StringVar(&volOutPath, "out", "", "output CSV (default under DATA_DIR)")
	_ = volumeCMD.MarkFlagRequired("date")
}
