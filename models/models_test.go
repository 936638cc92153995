package models

import (
	"testing"
	"time"
)

func TestCongressTradeModel(t *testing.T) {
	trade := CongressTrade{
		Traded:      time.Now(),
		Ticker:      "AAPL",
		Member:      "B001234",
		Transaction: "Purchase",
		SizeMidUSD:  8000.5,
	}

	if trade.Ticker != "AAPL" {
		t.Errorf("Expected ticker AAPL, got %s", trade.Ticker)
	}

	if trade.SizeMidUSD != 8000.5 {
		t.Errorf("Expected midpoint 8000.5, got %f", trade.SizeMidUSD)
	}
}

func TestDailyAggregateModel(t *testing.T) {
	aggregate := DailyAggregate{
		Date:         time.Now(),
		Ticker:       "MSFT",
		TotalSizeUSD: 150000,
		TradeCount:   3,
	}

	if aggregate.TotalSizeUSD != 150000 {
		t.Errorf("Expected total 150000, got %f", aggregate.TotalSizeUSD)
	}
}

func TestTradeStats(t *testing.T) {
	stats := TradeStats{
		Ticker:           "AAPL",
		MaxTradeSizeUSD:  250000,
		MaxDailyTotalUSD: 1000000,
	}

	if stats.Ticker != "AAPL" {
		t.Errorf("Expected ticker AAPL, got %s", stats.Ticker)
	}
}
