package events

// Detection flags raw local extrema in a series. The two flag slices are
// aligned with the input; strict comparisons make them mutually exclusive
// by construction.
type Detection struct {
	IsMin []bool
	IsMax []bool
}

// DetectExtrema flags local minima and maxima of a (smoothed) series using
// a symmetric comparison window. Point i is a minimum when its value is
// strictly less than every other value within halfWidth positions on both
// sides; maxima symmetrically. Strict inequality means flat runs produce
// no flags at all.
//
// Points without a full neighborhood (within halfWidth of either end)
// are never flagged, so a series shorter than 2*halfWidth+1 yields zero
// flags rather than an error.
func DetectExtrema(values []float64, halfWidth int) Detection {
	n := len(values)
	d := Detection{
		IsMin: make([]bool, n),
		IsMax: make([]bool, n),
	}
	if halfWidth < 1 || n < 2*halfWidth+1 {
		return d
	}

	for i := halfWidth; i < n-halfWidth; i++ {
		isMin, isMax := true, true
		for j := i - halfWidth; j <= i+halfWidth; j++ {
			if j == i {
				continue
			}
			if values[i] >= values[j] {
				isMin = false
			}
			if values[i] <= values[j] {
				isMax = false
			}
			if !isMin && !isMax {
				break
			}
		}
		d.IsMin[i] = isMin
		d.IsMax[i] = isMax
	}
	return d
}
