package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
	"github.com/calebk/congresspanel/panel"
	"github.com/calebk/congresspanel/window"
)

var (
	panelEventsPath   string
	panelCongressPath string
	panelStockPath    string
	panelOutPath      string
	panelHalfWidth    int
	panelMinMapPath   string
	panelMaxMapPath   string
)

var panelCMD = &cobra.Command{
	Use:   "panel",
	Short: "Assemble the event-study panel",
	Long: `Read the selected sentiment events, aggregate congressional trading
totals and market index volumes over a ±N-day window around each, and stack
the windows into one long-format panel CSV. Minima are labeled event_0
onward in chronological order; maxima continue the numbering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		eventsPath := orDefault(panelEventsPath, cfg.Data.EventsCSV)
		congressPath := orDefault(panelCongressPath, cfg.Data.CongressCSV)
		stockPath := orDefault(panelStockPath, cfg.Data.StockCSV)
		outPath := orDefault(panelOutPath, cfg.Data.PanelCSV)
		minMapPath := orDefault(panelMinMapPath, filepath.Join(cfg.Data.Dir, "min_maps.json"))
		maxMapPath := orDefault(panelMaxMapPath, filepath.Join(cfg.Data.Dir, "max_maps.json"))

		evts, err := panel.ReadEvents(eventsPath, log)
		if err != nil {
			return err
		}
		log.Infof("loaded %d events from %s", len(evts), eventsPath)

		trades, err := ingest.LoadCongressTrades(congressPath, log)
		if err != nil {
			return err
		}
		tradeRecords := make([]window.Record, len(trades))
		for i, t := range trades {
			tradeRecords[i] = window.Record{Date: t.Date, Category: t.Ticker, Value: t.SizeMidUSD}
		}

		volumes, err := ingest.LoadIndexVolumes(stockPath, log)
		if err != nil {
			return err
		}

		p := panel.Assemble(evts, tradeRecords, volumes, panelHalfWidth)
		log.Infof("assembled panel: %d rows across %d events", len(p.Rows), len(evts))

		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := p.WriteCSV(out); err != nil {
			return err
		}

		if err := panel.WriteEventMaps(minMapPath, maxMapPath, evts); err != nil {
			return err
		}
		log.Infof("wrote panel to %s", outPath)
		return nil
	},
}

func init() {
	panelCMD.Flags().StringVar(&panelEventsPath, "events", "", "annotated sentiment CSV (default EVENTS_CSV)")
	panelCMD.Flags().StringVar(&panelCongressPath, "congress", "", "congressional trading CSV (default CONGRESS_CSV)")
	panelCMD.Flags().StringVar(&panelStockPath, "stock", "", "stock price CSV (default STOCK_CSV)")
	panelCMD.Flags().StringVar(&panelOutPath, "out", "", "panel output CSV (default PANEL_CSV)")
	panelCMD.Flags().IntVar(&panelHalfWidth, "window", 30, "days on each side of each event date")
	panelCMD.Flags().StringVar(&panelMinMapPath, "min-map", "", "minima id-to-date map (default under DATA_DIR)")
	panelCMD.Flags().StringVar(&panelMaxMapPath, "max-map", "", "maxima id-to-date map (default under DATA_DIR)")
}
