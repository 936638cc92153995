package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/report"
)

var (
	filterCongressIn  string
	filterStockIn     string
	filterCongressOut string
	filterStockOut    string
	filterCutoff      string
	filterReportPath  string
)

var filterCMD = &cobra.Command{
	Use:   "filter",
	Short: "Filter the raw congressional and stock datasets",
	Long: `Filter the raw datasets down to usable rows: stock prices are cut off
before the configured start date, tickers are standardized on both sides, and
congressional trades whose ticker has no stock data are dropped. A markdown
report summarizes what each pass kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		congressOut := orDefault(filterCongressOut, cfg.Data.CongressCSV)
		stockOut := orDefault(filterStockOut, cfg.Data.StockCSV)
		cutoffStr := orDefault(filterCutoff, cfg.Data.StockDateCutoff)
		reportPath := orDefault(filterReportPath, filepath.Join(cfg.Data.Dir, "filtering_summary.md"))

		cutoff, err := ingest.ParseAnchor(cutoffStr)
		if err != nil {
			return err
		}

		log.Infof("filtering stock data from %s (cutoff %s)", filterStockIn, cutoffStr)
		stockStats, err := ingest.FilterStockCSV(filterStockIn, stockOut, cutoff, log)
		if err != nil {
			return err
		}
		log.Infof("stock rows: %d before, %d after", stockStats.RowsPre, stockStats.RowsPost)

		allowed, err := ingest.CollectStockTickers(stockOut)
		if err != nil {
			return err
		}
		log.Infof("found %d tickers with stock data", len(allowed))

		log.Infof("filtering congress data from %s", filterCongressIn)
		congressStats, err := ingest.FilterCongressCSV(filterCongressIn, congressOut, allowed, log)
		if err != nil {
			return err
		}
		log.Infof("congress rows: %d before, %d after", congressStats.Pre.Rows, congressStats.Post.Rows)

		out, err := os.Create(reportPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := report.WriteFilterReport(out, congressStats, stockStats, cutoff); err != nil {
			return err
		}
		log.Infof("wrote filtering report to %s", reportPath)
		return nil
	},
}

func init() {
	filterCMD.Flags().StringVar(&filterCongressIn, "congress-in", "data/raw/congress_trading.csv", "raw congressional trading CSV")
	filterCMD.Flags().StringVar(&filterStockIn, "stock-in", "data/raw/all_stock_data.csv", "raw stock price CSV")
	filterCMD.Flags().StringVar(&filterCongressOut, "congress-out", "", "filtered congressional output (default CONGRESS_CSV)")
	filterCMD.Flags().StringVar(&filterStockOut, "stock-out", "", "filtered stock output (default STOCK_CSV)")
	filterCMD.Flags().StringVar(&filterCutoff, "cutoff", "", "drop stock rows before this date (default STOCK_DATE_CUTOFF)")
	filterCMD.Flags().StringVar(&filterReportPath, "report", "", "markdown report path (default under DATA_DIR)")
}
