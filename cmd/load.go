package cmd

import (
	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/database"
	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/models"
)

var loadCongressPath string

var loadCMD = &cobra.Command{
	Use:   "load",
	Short: "Load congressional trades into the warehouse",
	Long: `Load the filtered congressional trading CSV into Postgres and rebuild
the per-day, per-ticker aggregate table so the API can answer statistics
queries without scanning raw trades.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		log.Infof("initializing database...")
		if err := database.InitDB(cfg.Postgres); err != nil {
			return err
		}

		rows, err := ingest.LoadCongressTrades(orDefault(loadCongressPath, cfg.Data.CongressCSV), log)
		if err != nil {
			return err
		}

		trades := make([]models.CongressTrade, len(rows))
		for i, r := range rows {
			trades[i] = models.CongressTrade{
				Traded:      r.Date,
				Ticker:      r.Ticker,
				Member:      r.Member,
				Transaction: r.Transaction,
				SizeMidUSD:  r.SizeMidUSD,
			}
		}

		if err := database.DB.CreateInBatches(trades, 1000).Error; err != nil {
			return err
		}
		log.Infof("loaded %d trades", len(trades))

		if err := rebuildDailyAggregates(); err != nil {
			return err
		}
		log.Infof("daily aggregates rebuilt")
		return nil
	},
}

// rebuildDailyAggregates recomputes the daily_aggregates table from scratch
// inside one statement; the unique (date, ticker) index guards against
// duplicates from repeated loads.
func rebuildDailyAggregates() error {
	db := database.DB

	if err := db.Exec(`DELETE FROM daily_aggregates`).Error; err != nil {
		return err
	}
	return db.Exec(`
		INSERT INTO daily_aggregates (date, ticker, total_size_usd, trade_count, created_at)
		SELECT traded, ticker, SUM(size_mid_usd), COUNT(*), NOW()
		FROM congress_trades
		GROUP BY traded, ticker
	`).Error
}

func init() {
	loadCMD.Flags().StringVar(&loadCongressPath, "congress", "", "congressional trading CSV (default CONGRESS_CSV)")
}
