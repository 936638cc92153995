package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries everything the pipeline stages need. It is built once in
// the root command and passed down explicitly; there is no mutable
// process-wide path state.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Data     DataConfig
	Yahoo    YahooConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"congresspanel"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type PostgresConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"password"`
	Database string `envconfig:"DB_NAME" default:"congresspanel"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxConns int    `envconfig:"DB_MAX_CONNS" default:"25"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// DataConfig holds the default artifact locations. Every path can still be
// overridden per invocation with command flags.
type DataConfig struct {
	Dir              string `envconfig:"DATA_DIR" default:"data/derived"`
	CongressCSV      string `envconfig:"CONGRESS_CSV" default:"data/derived/congress_trading_filtered_enhanced.csv"`
	StockCSV         string `envconfig:"STOCK_CSV" default:"data/derived/all_stock_data_filtered_enhanced.csv"`
	SentimentCSV     string `envconfig:"SENTIMENT_CSV" default:"data/derived/news_sentiment_filtered.csv"`
	EventsCSV        string `envconfig:"EVENTS_CSV" default:"data/derived/news_sentiment_with_events.csv"`
	PanelCSV         string `envconfig:"PANEL_CSV" default:"data/derived/panel.csv"`
	StockDateCutoff  string `envconfig:"STOCK_DATE_CUTOFF" default:"2012-01-01"`
	StockDateEnd     string `envconfig:"STOCK_DATE_END" default:"2024-12-31"`
}

type YahooConfig struct {
	BaseURL        string `envconfig:"YAHOO_BASE_URL" default:"https://query1.finance.yahoo.com"`
	RequestsPerSec int    `envconfig:"YAHOO_RPS" default:"5"`
	TimeoutSec     int    `envconfig:"YAHOO_TIMEOUT_SEC" default:"30"`
}

// Load reads configuration from the environment, picking up a .env file
// first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
