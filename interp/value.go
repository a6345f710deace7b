package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animtx/core"
)

// Value is either a scalar or a fixed-length vector of numbers.
// The zero Value is the scalar 0.
type Value struct {
	scalar float64
	vector []float64
	isVec  bool
}

// Scalar creates a scalar Value.
func Scalar(x float64) Value {
	return Value{scalar: x}
}

// Vector creates a vector Value. The components are copied.
func Vector(xs ...float64) Value {
	return Value{vector: append([]float64{}, xs...), isVec: true}
}

// Colour creates an (R, G, B) vector Value from a colour.
func Colour(c colorful.Color) Value {
	return Vector(c.R, c.G, c.B)
}

func (v Value) IsVector() bool {
	return v.isVec
}

// Len is 0 for scalars and the number of components for vectors.
func (v Value) Len() int {
	return len(v.vector)
}

// Float returns the scalar. It is 0 for vectors.
func (v Value) Float() float64 {
	return v.scalar
}

// Floats returns a copy of the vector components, or nil for scalars.
func (v Value) Floats() []float64 {
	if !v.isVec {
		return nil
	}
	return append([]float64{}, v.vector...)
}

// At returns component i of a vector.
func (v Value) At(i int) float64 {
	return v.vector[i]
}

// Colour reads a 3-vector back as a colour.
func (v Value) Colour() (colorful.Color, error) {
	if !v.isVec || len(v.vector) != 3 {
		return colorful.Color{}, fmt.Errorf("colour from %v: %w", v, core.ErrShapeMismatch)
	}
	return colorful.Color{R: v.vector[0], G: v.vector[1], B: v.vector[2]}, nil
}

// SameShape reports whether v and o are both scalars or vectors of equal length.
func (v Value) SameShape(o Value) bool {
	return v.isVec == o.isVec && len(v.vector) == len(o.vector)
}

func (v Value) Equal(o Value) bool {
	if !v.SameShape(o) {
		return false
	}
	if !v.isVec {
		return v.scalar == o.scalar
	}
	for i := range v.vector {
		if v.vector[i] != o.vector[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	if !v.isVec {
		return strconv.FormatFloat(v.scalar, 'g', -1, 64)
	}
	parts := make([]string, len(v.vector))
	for i, x := range v.vector {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// MarshalJSON encodes scalars as numbers and vectors as arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.isVec {
		return []byte(strconv.FormatFloat(v.scalar, 'g', -1, 64)), nil
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.vector {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(']')
	return []byte(b.String()), nil
}
