package cmd

import "testing"

func TestOrDefault(t *testing.T) {
	if got := orDefault("flag-value", "configured"); got != "flag-value" {
		t.Errorf("Expected the flag value to win, got %q", got)
	}
	if got := orDefault("", "configured"); got != "configured" {
		t.Errorf("Expected the configured fallback, got %q", got)
	}
}
