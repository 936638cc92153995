package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Name != "congresspanel" {
		t.Errorf("Expected default app name congresspanel, got %q", cfg.App.Name)
	}
	if cfg.Data.CongressCSV != "data/derived/congress_trading_filtered_enhanced.csv" {
		t.Errorf("Unexpected default congress CSV: %q", cfg.Data.CongressCSV)
	}
	if cfg.Data.StockDateCutoff != "2012-01-01" {
		t.Errorf("Unexpected default stock date cutoff: %q", cfg.Data.StockDateCutoff)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONGRESS_CSV", "/tmp/congress.csv")
	t.Setenv("STOCK_DATE_END", "2025-06-30")
	t.Setenv("APP_NAME", "panelsvc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.CongressCSV != "/tmp/congress.csv" {
		t.Errorf("Expected CONGRESS_CSV override, got %q", cfg.Data.CongressCSV)
	}
	if cfg.Data.StockDateEnd != "2025-06-30" {
		t.Errorf("Expected STOCK_DATE_END override, got %q", cfg.Data.StockDateEnd)
	}
	if cfg.App.Name != "panelsvc" {
		t.Errorf("Expected APP_NAME override, got %q", cfg.App.Name)
	}
}

func TestPostgresDSN(t *testing.T) {
	pg := PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "etl",
		Password: "secret",
		Database: "panels",
		SSLMode:  "require",
	}
	want := "host=db.internal port=5433 user=etl password=secret dbname=panels sslmode=require TimeZone=UTC"
	if got := pg.DSN(); got != want {
		t.Errorf("DSN mismatch:\n got %q\nwant %q", got, want)
	}
}
