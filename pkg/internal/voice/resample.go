package voice

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Resample converts samples from rate from to rate to by piecewise-linear interpolation.
// Equal rates return the input unchanged.
func Resample(samples []float64, from, to int) []float64 {
	if from == to || from <= 0 || to <= 0 || len(samples) == 0 {
		return samples
	}
	n := int(math.Round(float64(len(samples)) * float64(to) / float64(from)))
	out := make([]float64, n)
	if len(samples) == 1 {
		for i := range out {
			out[i] = samples[0]
		}
		return out
	}

	xs := make([]float64, len(samples))
	for i := range xs {
		xs[i] = float64(i) / float64(from)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, samples); err != nil {
		return samples
	}
	for i := range out {
		out[i] = pl.Predict(float64(i) / float64(to))
	}
	return out
}
