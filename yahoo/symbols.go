package yahoo

import (
	"regexp"
	"strings"
)

// Disclosure filings carry plenty of non-equity instruments in the ticker
// column: bond CUSIPs, treasury notes, foreign listings, free-text notes.
// None of those resolve on the chart API, so they are screened out before
// any request is made.

var (
	numericOnly = regexp.MustCompile(`^[0-9]+$`)
	longDigits  = regexp.MustCompile(`[0-9]{9,}`)

	dateKeywords = []string{"DUE", "MATURE", "WEEK", "MONTH", "/"}

	invalidKeywords = []string{
		"BOND", "NOTE", "BILL", "TREASURY", "MUNICIPAL",
		"CORP", "CD", "CERTIFICATE", "DEPOSIT", "ANNUITY",
	}

	foreignSuffixes = []string{
		".IL", ".MI", ".TI", ".PA", ".SG", ".V", ".AS", ".MU", ".F", ".BE", ".SW",
	}
)

// IsLikelySymbol reports whether a disclosed ticker plausibly names a
// US-listed equity worth querying.
func IsLikelySymbol(ticker string) bool {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" || t == "--" {
		return false
	}

	// Bare numbers and 9+ digit runs are CUSIPs, not tickers.
	if numericOnly.MatchString(t) || longDigits.MatchString(t) {
		return false
	}
	// Treasury CUSIP prefixes.
	if strings.HasPrefix(t, "912") || strings.HasPrefix(t, "9142") {
		return false
	}
	for _, kw := range dateKeywords {
		if strings.Contains(t, kw) {
			return false
		}
	}
	for _, kw := range invalidKeywords {
		if strings.Contains(t, kw) {
			return false
		}
	}
	for _, suffix := range foreignSuffixes {
		if strings.HasSuffix(t, suffix) {
			return false
		}
	}
	if strings.ContainsAny(t, "%^") {
		return false
	}
	if len(t) > 10 {
		return false
	}
	return true
}

// ToYahooSymbol rewrites a disclosed ticker into the chart API's spelling:
// preferred-share and share-class punctuation differs between filings and
// Yahoo ("BAC$" and "BAC.P" are "BAC-P", "BRK.B" is "BRK-B").
func ToYahooSymbol(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))

	if strings.HasSuffix(t, "$") {
		return strings.TrimSuffix(t, "$") + "-P"
	}
	if strings.HasSuffix(t, ".P") {
		return strings.TrimSuffix(t, ".P") + "-P"
	}
	if strings.HasSuffix(t, "-PA") {
		return strings.TrimSuffix(t, "-PA") + "-P-A"
	}
	if strings.HasSuffix(t, "-PB") {
		return strings.TrimSuffix(t, "-PB") + "-P-B"
	}
	for _, class := range []string{"A", "B", "C"} {
		if strings.HasSuffix(t, "."+class) {
			return strings.TrimSuffix(t, "."+class) + "-" + class
		}
	}
	return t
}
