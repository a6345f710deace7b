package util

import (
	"math/rand"
)

func RandomiseSaturation(r *rand.Rand, min float64, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// GenerateLut samples f into a table that rises from f(0) towards f(1) over
// the first half and mirrors back down over the second.
func GenerateLut(length int, f func(float64) float64) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}

	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := f(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	if length%2 == 1 {
		lut[length/2] = f(1)
	}
	return lut
}
