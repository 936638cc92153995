package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/calebk/congresspanel/database"
	"github.com/calebk/congresspanel/models"
)

type QueryParams struct {
	Ticker string `form:"ticker" binding:"required"`
	Start  string `form:"start"`
}

func GetTradeStats(c *gin.Context) {
	var params QueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var startDate time.Time
	var err error

	if params.Start != "" {
		startDate, err = time.Parse("2006-01-02", params.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
	} else {
		// Default to the trailing year
		startDate = time.Now().AddDate(-1, 0, 0)
	}

	stats, err := calculateStats(params.Ticker, startDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func calculateStats(ticker string, startDate time.Time) (*models.TradeStats, error) {
	db := database.DB

	type StatsResult struct {
		MaxTradeSize float64
		MaxDailyUSD  float64
	}

	var result StatsResult

	// Combined query with subqueries so both maxima come back in one round trip
	err := db.Raw(`
		SELECT
			COALESCE((SELECT MAX(size_mid_usd) FROM congress_trades
				WHERE ticker = ? AND traded >= ?), 0) as max_trade_size,
			COALESCE((SELECT MAX(total_size_usd) FROM daily_aggregates
				WHERE ticker = ? AND date >= ?), 0) as max_daily_usd
	`, ticker, startDate, ticker, startDate).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	return &models.TradeStats{
		Ticker:           ticker,
		MaxTradeSizeUSD:  result.MaxTradeSize,
		MaxDailyTotalUSD: result.MaxDailyUSD,
	}, nil
}

func SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/trades/stats", GetTradeStats)

	return r
}
