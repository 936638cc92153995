package ingest

import (
	"strings"
)

// NormalizeTicker standardizes a ticker symbol to an uppercase, trimmed
// string. Blank or whitespace-only cells come back empty and are treated as
// missing by callers.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
