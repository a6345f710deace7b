// Package smooth holds smoothing functions that remap normalized progress.
//
// Every Func takes a progress value t, normally in [0, 1], and returns the
// shaped progress. The normal family satisfies f(0) = 0 and f(1) = 1. Sigmoid,
// Arctan and Bounce overshoot or undershoot a little between the endpoints.
package smooth

import (
	"math"
)

// Func maps normalized time to normalized progress.
type Func func(t float64) float64

// DefaultArctanK approximates Sigmoid when passed to GeneralizedArctan.
const DefaultArctanK = 6.0

var (
	Linear Func = func(t float64) float64 { return t }
	Sqrt   Func = math.Sqrt
	Sin    Func = func(t float64) float64 { return math.Sin(t * math.Pi / 2) }

	Sigmoid Func = func(t float64) float64 {
		return 1.036/(1+math.Exp(4-8*t)) - 0.018
	}

	Arctan Func = func(t float64) float64 {
		return math.Atan(8*t-4)/(2*math.Atan(4)) + 0.5
	}

	Circle Func = func(t float64) float64 { return math.Sqrt(2*t - t*t) }
	Bounce Func = GeneralizedBounce(2)
)

// Polynomial returns sum(cs[i] * t^i). With no coefficients it is t^2.
func Polynomial(cs ...float64) Func {
	if len(cs) == 0 {
		cs = []float64{0, 0, 1}
	}
	cs = append([]float64(nil), cs...)
	return func(t float64) float64 {
		sum := 0.0
		for i, c := range cs {
			sum += c * math.Pow(t, float64(i))
		}
		return sum
	}
}

// InversePolynomial returns cs[0] + sum(cs[i] * t^(1/i)) for i >= 1.
// With no coefficients it is sqrt(t).
func InversePolynomial(cs ...float64) Func {
	if len(cs) == 0 {
		cs = []float64{0, 0, 1}
	}
	cs = append([]float64(nil), cs...)
	return func(t float64) float64 {
		sum := cs[0]
		for i, c := range cs[1:] {
			sum += c * math.Pow(t, 1/float64(i+1))
		}
		return sum
	}
}

// GeneralizedArctan is an arctan curve with smoothing constant k. Larger k
// gives a steeper middle.
func GeneralizedArctan(k float64) Func {
	a := 1 / (2 * math.Atan(k/2))
	return func(t float64) float64 {
		return a*math.Atan(k*(t-0.5)) + 0.5
	}
}

// GeneralizedBounce tends to t as k grows and gets wild as k approaches 0.
func GeneralizedBounce(k float64) Func {
	return func(t float64) float64 {
		return -math.Sin(2*math.Pi*t)/k + t
	}
}
