package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/calebk/congresspanel/events"
	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
)

var (
	eventsInPath    string
	eventsOutPath   string
	eventsSmoothing int
	eventsWindow    int
	eventsReversal  int
	eventsHorizon   int
	eventsTopK      int
)

var eventsCMD = &cobra.Command{
	Use:   "events",
	Short: "Identify extreme sentiment-reversal events",
	Long: `Smooth the daily news sentiment series, detect local extrema, score
each by the strength of the reversal that follows, and keep the top K minima
and maxima per calendar year. The output echoes every input column and adds
local_min, local_max, and extremity_score.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.Get()

		inPath := orDefault(eventsInPath, cfg.Data.SentimentCSV)
		outPath := orDefault(eventsOutPath, cfg.Data.EventsCSV)

		table, err := ingest.LoadSentiment(inPath, log)
		if err != nil {
			return err
		}

		result, err := events.Identify(table, events.Params{
			SmoothingWindow:     eventsSmoothing,
			ComparisonHalfWidth: eventsWindow,
			ReversalDays:        eventsReversal,
			HorizonDays:         eventsHorizon,
			TopK:                eventsTopK,
		}, log)
		if err != nil {
			return err
		}

		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := result.WriteCSV(out); err != nil {
			return err
		}

		result.LogSummary(log)
		log.Infof("wrote annotated sentiment series to %s", outPath)
		return nil
	},
}

func init() {
	eventsCMD.Flags().StringVar(&eventsInPath, "in", "", "daily sentiment CSV (default SENTIMENT_CSV)")
	eventsCMD.Flags().StringVar(&eventsOutPath, "out", "", "annotated output CSV (default EVENTS_CSV)")
	eventsCMD.Flags().IntVar(&eventsSmoothing, "smoothing", 5, "centered moving average width in days (1 disables)")
	eventsCMD.Flags().IntVar(&eventsWindow, "window", 20, "days on each side for the extrema comparison")
	eventsCMD.Flags().IntVar(&eventsReversal, "reversal-days", 10, "length in days of the forward change used for scoring")
	eventsCMD.Flags().IntVar(&eventsHorizon, "horizon", 200, "bounded lookahead in days when scanning for reversals")
	eventsCMD.Flags().IntVar(&eventsTopK, "top-k", 1, "events kept per type per calendar year")
}
