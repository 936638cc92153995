package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches dollar amounts like "1,001", "15,000" or "8000.5" inside the
// free-text disclosure ranges.
var numberPattern = regexp.MustCompile(`[0-9][0-9,]*\.?[0-9]*`)

// ParseTradeSize converts a free-text disclosure range to a numeric
// midpoint:
//
//	"$1,001 - $15,000" -> 8000.5
//	"$50,000"          -> 50000.0
//	"Unknown"          -> missing
//
// With two or more numbers the first two are assumed to be the low/high
// pair and averaged. A value that yields no number at all is missing, never
// zero; callers drop such rows with a logged count.
func ParseTradeSize(s string) (float64, bool) {
	matches := numberPattern.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0, false
	}

	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		nums = append(nums, v)
	}
	if len(nums) == 0 {
		return 0, false
	}

	if len(nums) >= 2 {
		return (nums[0] + nums[1]) / 2.0, true
	}
	return nums[0], true
}
