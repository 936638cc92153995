package models

import (
	"time"
)

// CongressTrade is one cleaned congressional disclosure record. SizeMidUSD
// is the midpoint of the disclosed dollar range, parsed upstream; rows
// without a parseable size never reach the warehouse.
type CongressTrade struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Traded      time.Time `gorm:"index:idx_traded_ticker" json:"traded"`
	Ticker      string    `gorm:"index:idx_traded_ticker;size:20" json:"ticker"`
	Member      string    `gorm:"size:128" json:"member"`
	Transaction string    `gorm:"size:32" json:"transaction"`
	SizeMidUSD  float64   `json:"size_mid_usd"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyAggregate stores per-day, per-ticker trade totals rebuilt from the
// congress_trades table after every load.
type DailyAggregate struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"index:idx_daily_ticker;uniqueIndex:uidx_date_ticker" json:"date"`
	Ticker       string    `gorm:"index:idx_daily_ticker;size:20;uniqueIndex:uidx_date_ticker" json:"ticker"`
	TotalSizeUSD float64   `json:"total_size_usd"`
	TradeCount   int64     `json:"trade_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// StockBar is one daily OHLCV row in the historical stock dataset. The
// column order of the CSV artifact is fixed:
// Date,Ticker,Open,High,Low,Close,Volume,Dividends,Stock Splits.
type StockBar struct {
	Date        time.Time
	Ticker      string
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Volume      float64
	Dividends   float64
	StockSplits float64
}

// TradeStats is the aggregated answer returned by the API.
type TradeStats struct {
	Ticker           string  `json:"ticker"`
	MaxTradeSizeUSD  float64 `json:"max_trade_size_usd"`
	MaxDailyTotalUSD float64 `json:"max_daily_total_usd"`
}
