package events

// Smooth applies a centered moving average of the given window width.
// Edge points average over however many neighbors fall inside the series,
// down to a minimum window of one, so the output always has the same
// length as the input. A width of one or less returns a copy.
//
// For even widths the window extends one position further to the left,
// covering [i-width/2, i+width-1-width/2].
func Smooth(values []float64, width int) []float64 {
	out := make([]float64, len(values))
	if width <= 1 {
		copy(out, values)
		return out
	}

	left := width / 2
	right := width - 1 - left

	for i := range values {
		lo := i - left
		if lo < 0 {
			lo = 0
		}
		hi := i + right
		if hi > len(values)-1 {
			hi = len(values) - 1
		}

		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}
