package events

import (
	"sort"
	"time"
)

// Selection marks which detected extrema survived top-K-per-year
// selection. Selected flags are always a subset of the detection flags.
type Selection struct {
	Min []bool
	Max []bool
}

// SelectTopPerYear keeps, independently for minima and maxima, the topK
// highest-scoring extrema within each calendar year. Ties are broken by
// earliest date so repeated runs select the same events.
func SelectTopPerYear(dates []time.Time, years []int, det Detection, scores Scores, topK int) Selection {
	n := len(dates)
	sel := Selection{
		Min: make([]bool, n),
		Max: make([]bool, n),
	}
	if topK < 1 {
		return sel
	}

	byYear := make(map[int][]int)
	for i, y := range years {
		byYear[y] = append(byYear[y], i)
	}

	for _, indices := range byYear {
		pick(indices, det.IsMin, scores.Min, dates, topK, sel.Min)
		pick(indices, det.IsMax, scores.Max, dates, topK, sel.Max)
	}
	return sel
}

func pick(indices []int, flagged []bool, score []float64, dates []time.Time, topK int, out []bool) {
	candidates := make([]int, 0, len(indices))
	for _, i := range indices {
		if flagged[i] {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		ia, ib := candidates[a], candidates[b]
		if score[ia] != score[ib] {
			return score[ia] > score[ib]
		}
		return dates[ia].Before(dates[ib])
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	for _, i := range candidates {
		out[i] = true
	}
}
