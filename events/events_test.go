package events

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebk/congresspanel/ingest"
	"github.com/calebk/congresspanel/logger"
)

func sentimentTable(values []float64) *ingest.SentimentTable {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	table := &ingest.SentimentTable{Header: []string{"date", "News.Sentiment"}}
	for i, v := range values {
		d := start.AddDate(0, 0, i)
		table.Dates = append(table.Dates, d)
		table.Values = append(table.Values, v)
		table.Years = append(table.Years, d.Year())
		table.Rows = append(table.Rows, []string{
			d.Format("2006-01-02"),
			strconv.FormatFloat(v, 'f', -1, 64),
		})
	}
	return table
}

func TestIdentifyEndToEnd(t *testing.T) {
	table := sentimentTable([]float64{5, 4, 3, 1, 3, 4, 5, 7, 9, 7, 5})

	result, err := Identify(table, Params{
		SmoothingWindow:     1,
		ComparisonHalfWidth: 2,
		ReversalDays:        1,
		HorizonDays:         200,
		TopK:                1,
	}, logger.Get())
	require.NoError(t, err)

	assert.True(t, result.Selection.Min[3])
	assert.True(t, result.Selection.Max[8])
	assert.Equal(t, 2.0, result.Scores.Min[3])
}

func TestIdentifySmoothingSuppressesNoise(t *testing.T) {
	// A one-day spike inside a falling run disappears under a 3-day average.
	table := sentimentTable([]float64{9, 8, 7, 6, 9, 5, 4, 3, 2, 1, 0})

	result, err := Identify(table, Params{
		SmoothingWindow:     3,
		ComparisonHalfWidth: 2,
		ReversalDays:        1,
		HorizonDays:         200,
		TopK:                1,
	}, logger.Get())
	require.NoError(t, err)

	assert.False(t, result.Detection.IsMax[4], "spike should be smoothed away")
}

func TestResultWriteCSV(t *testing.T) {
	table := sentimentTable([]float64{5, 4, 3, 1, 3, 4, 5, 7, 9, 7, 5})

	result, err := Identify(table, Params{
		SmoothingWindow:     1,
		ComparisonHalfWidth: 2,
		ReversalDays:        1,
		HorizonDays:         200,
		TopK:                1,
	}, logger.Get())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 12)

	assert.Equal(t, []string{"date", "News.Sentiment", "local_min", "local_max", "extremity_score"}, rows[0])

	// Selected minimum row carries flags and a score.
	assert.Equal(t, "1", rows[4][2])
	assert.Equal(t, "0", rows[4][3])
	assert.Equal(t, "2", rows[4][4])

	// Unselected rows keep an empty score.
	assert.Equal(t, "0", rows[1][2])
	assert.Equal(t, "", rows[1][4])
}
