package events

import (
	"fmt"
)

// Validate re-checks the self-consistency of a finished selection: no year
// may carry more than topK events of either type, and every selected event
// must also be a detected raw extremum of the same type. Violations are
// implementation bugs, so the caller is expected to abort on error.
func Validate(years []int, det Detection, sel Selection, topK int) error {
	minsPerYear := make(map[int]int)
	maxsPerYear := make(map[int]int)

	for i, y := range years {
		if sel.Min[i] {
			if !det.IsMin[i] {
				return fmt.Errorf("selected minimum at index %d is not a detected local minimum", i)
			}
			minsPerYear[y]++
		}
		if sel.Max[i] {
			if !det.IsMax[i] {
				return fmt.Errorf("selected maximum at index %d is not a detected local maximum", i)
			}
			maxsPerYear[y]++
		}
	}

	for y, n := range minsPerYear {
		if n > topK {
			return fmt.Errorf("year %d has %d selected minima (limit %d)", y, n, topK)
		}
	}
	for y, n := range maxsPerYear {
		if n > topK {
			return fmt.Errorf("year %d has %d selected maxima (limit %d)", y, n, topK)
		}
	}
	return nil
}
