package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothWidthOneIsCopy(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5}
	out := Smooth(in, 1)
	assert.Equal(t, in, out)

	out[0] = 99
	assert.Equal(t, 3.0, in[0], "must not alias the input")
}

func TestSmoothConstantSeries(t *testing.T) {
	in := []float64{2, 2, 2, 2, 2, 2}
	assert.Equal(t, in, Smooth(in, 5))
}

func TestSmoothCenteredAverage(t *testing.T) {
	in := []float64{0, 3, 6, 9, 12}
	out := Smooth(in, 3)

	// Interior points average their immediate neighborhood.
	assert.Equal(t, 3.0, out[1])
	assert.Equal(t, 6.0, out[2])
	// Edges shrink the window instead of padding.
	assert.Equal(t, 1.5, out[0])
	assert.Equal(t, 10.5, out[4])
}

func TestSmoothPreservesLength(t *testing.T) {
	in := []float64{1, 2}
	assert.Len(t, Smooth(in, 9), 2)
}
