package events

// Scores holds the per-point extremity scores. Only flagged extrema carry
// meaningful values; every other entry stays zero.
type Scores struct {
	Min []float64
	Max []float64
}

// ScoreExtremity measures how decisively the raw series reversed after
// each flagged extremum: the largest reversalDays-day change inside a
// bounded forward horizon that moves away from the extremum. For a
// minimum that is the largest positive change, for a maximum the absolute
// value of the most negative change. When no qualifying change exists the
// score is zero, not missing.
//
// Scoring runs on the raw series even though detection runs on the
// smoothed one; the reversal magnitude should reflect what sentiment
// actually did. The horizon bound keeps cost linear; extrema close to the
// end of the series see a truncated lookahead, which biases their scores
// downward.
func ScoreExtremity(raw []float64, det Detection, reversalDays, horizonDays int) Scores {
	n := len(raw)
	s := Scores{
		Min: make([]float64, n),
		Max: make([]float64, n),
	}
	if reversalDays < 1 || n <= reversalDays {
		return s
	}

	for i := 0; i < n-reversalDays; i++ {
		if !det.IsMin[i] && !det.IsMax[i] {
			continue
		}

		end := i + horizonDays
		if end > n {
			end = n
		}

		maxPositive := 0.0
		minNegative := 0.0
		for j := i + reversalDays; j < end; j++ {
			change := raw[j] - raw[j-reversalDays]
			if change > maxPositive {
				maxPositive = change
			}
			if change < minNegative {
				minNegative = change
			}
		}

		if det.IsMin[i] {
			s.Min[i] = maxPositive
		}
		if det.IsMax[i] {
			s.Max[i] = -minNegative
		}
	}
	return s
}
