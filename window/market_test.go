package window

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketVolumesRenamesTickers(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{Date: anchor, Category: "SPY", Value: 1000},
		{Date: anchor, Category: "QQQ", Value: 2000},
	}

	w := MarketVolumes(records, anchor, 1)

	assert.Equal(t, []string{"NASDAQ_100_Volume", "S&P_500_Volume"}, w.Categories)
	assert.Equal(t, 1000.0, w.Values["S&P_500_Volume"][1])
	assert.Equal(t, 2000.0, w.Values["NASDAQ_100_Volume"][1])
}

func TestMarketVolumesEmptyWindowZeroFillsAllIndices(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	w := MarketVolumes(nil, anchor, 2)

	require.Len(t, w.Categories, len(IndexTickers), "empty window carries every tracked index")
	for _, name := range w.Categories {
		for _, v := range w.Values[name] {
			assert.Equal(t, 0.0, v)
		}
	}
}

func TestMarketVolumesWriteValues(t *testing.T) {
	anchor := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{Date: anchor, Category: "SPY", Value: 12345},
	}

	var buf bytes.Buffer
	w := MarketVolumes(records, anchor, 0)
	require.NoError(t, w.WriteValues(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Date", "S&P_500_Volume"}, rows[0])
	assert.Equal(t, []string{"2024-03-15", "12345"}, rows[1])
}
