// Package interp interpolates scalar and vector values along smoothing curves.
package interp

import (
	"fmt"

	"github.com/matt-g-everett/animtx/core"
	"github.com/matt-g-everett/animtx/smooth"
)

// Interpolate returns p + f(t)*(q-p), component-wise for vectors.
// t is not clamped.
func Interpolate(p, q Value, t float64, f smooth.Func) (Value, error) {
	if !p.SameShape(q) {
		return Value{}, fmt.Errorf("interpolate %v to %v: %w", p, q, core.ErrShapeMismatch)
	}
	return lerp(p, q, f(t)), nil
}

func lerp(p, q Value, k float64) Value {
	if !p.isVec {
		return Scalar(p.scalar + k*(q.scalar-p.scalar))
	}
	out := make([]float64, len(p.vector))
	for i := range p.vector {
		out[i] = p.vector[i] + k*(q.vector[i]-p.vector[i])
	}
	return Value{vector: out, isVec: true}
}

// A Window interpolates between two values over the time span [tMin, tMax].
// Times outside the span are clamped to it.
type Window struct {
	p, q       Value
	tMin, tMax float64
	f          smooth.Func
}

// NewWindow creates a Window. tMax must be greater than tMin and p and q must
// have the same shape.
func NewWindow(p, q Value, tMin, tMax float64, f smooth.Func) (*Window, error) {
	if !(tMax > tMin) {
		return nil, fmt.Errorf("window [%v, %v]: %w", tMin, tMax, core.ErrInvalidConfiguration)
	}
	if f == nil {
		return nil, fmt.Errorf("window without smoothing function: %w", core.ErrInvalidConfiguration)
	}
	if !p.SameShape(q) {
		return nil, fmt.Errorf("window %v to %v: %w", p, q, core.ErrShapeMismatch)
	}

	w := new(Window)
	w.p = p
	w.q = q
	w.tMin = tMin
	w.tMax = tMax
	w.f = f

	return w, nil
}

// At returns the interpolated value at time t.
func (w *Window) At(t float64) Value {
	t = max(w.tMin, min(w.tMax, t))
	return lerp(w.p, w.q, w.f((t-w.tMin)/(w.tMax-w.tMin)))
}

// Start is the value at or before tMin.
func (w *Window) Start() Value {
	return w.p
}

// End is the target value at or after tMax.
func (w *Window) End() Value {
	return w.q
}
