package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/calebk/congresspanel/logger"
)

// OptimizeIndexes creates the composite indexes the stats queries depend on.
func OptimizeIndexes(db *gorm.DB) error {
	// Composite index: ticker first, then date (more selective)
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trades_ticker_traded
		ON congress_trades (ticker, traded DESC)
	`).Error; err != nil {
		return fmt.Errorf("failed to create congress trades index: %w", err)
	}

	// Index for midpoint sizes (used in MAX queries)
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trades_ticker_size
		ON congress_trades (ticker, size_mid_usd DESC)
		WHERE size_mid_usd IS NOT NULL
	`).Error; err != nil {
		return fmt.Errorf("failed to create trade size index: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_daily_ticker_date
		ON daily_aggregates (ticker, date DESC)
	`).Error; err != nil {
		return fmt.Errorf("failed to create daily aggregates index: %w", err)
	}

	// Index for totals (used in MAX queries)
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_daily_ticker_total
		ON daily_aggregates (ticker, total_size_usd DESC)
		WHERE total_size_usd IS NOT NULL
	`).Error; err != nil {
		return fmt.Errorf("failed to create daily total index: %w", err)
	}

	logger.Infof("database indexes optimized")
	return nil
}
