package smooth

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/matt-g-everett/animtx/core"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNormalFamily_Endpoints(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		tol  float64
	}{
		{"linear", Linear, 1e-12},
		{"sqrt", Sqrt, 1e-12},
		{"sin", Sin, 1e-12},
		{"sigmoid", Sigmoid, 1e-3},
		{"arctan", Arctan, 1e-12},
		{"circle", Circle, 1e-12},
		{"bounce", Bounce, 1e-12},
		{"inOutQuad", mustByName("inOutQuad"), 1e-12},
		{"inOutSine", mustByName("inOutSine"), 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(0); !approx(got, 0, tt.tol) {
				t.Errorf("Expected f(0)=0, got %v", got)
			}
			if got := tt.f(1); !approx(got, 1, tt.tol) {
				t.Errorf("Expected f(1)=1, got %v", got)
			}
		})
	}
}

func mustByName(name string) Func {
	f, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return f
}

func TestPolynomial(t *testing.T) {
	square := Polynomial()
	if got := square(0.5); !approx(got, 0.25, 1e-12) {
		t.Errorf("Expected default polynomial to be t^2, got %v at 0.5", got)
	}

	cubic := Polynomial(1, 2, 0, 3)
	// 1 + 2*2 + 3*8
	if got := cubic(2); !approx(got, 29, 1e-12) {
		t.Errorf("Expected 29, got %v", got)
	}

	cs := []float64{0, 1}
	f := Polynomial(cs...)
	cs[1] = 100
	if got := f(0.5); !approx(got, 0.5, 1e-12) {
		t.Errorf("Expected coefficients to be captured at construction, got %v", got)
	}
}

func TestInversePolynomial(t *testing.T) {
	root := InversePolynomial()
	if got := root(0.25); !approx(got, 0.5, 1e-12) {
		t.Errorf("Expected default inverse polynomial to be sqrt(t), got %v at 0.25", got)
	}

	// 1 + 2*t + 4*sqrt(t) + 8*cbrt(t) at t=1
	f := InversePolynomial(1, 2, 4, 8)
	if got := f(1); !approx(got, 15, 1e-12) {
		t.Errorf("Expected 15, got %v", got)
	}
}

func TestGeneralizedArctan(t *testing.T) {
	for _, k := range []float64{1, DefaultArctanK, 20} {
		f := GeneralizedArctan(k)
		if got := f(0); !approx(got, 0, 1e-12) {
			t.Errorf("k=%v: expected f(0)=0, got %v", k, got)
		}
		if got := f(0.5); !approx(got, 0.5, 1e-12) {
			t.Errorf("k=%v: expected f(0.5)=0.5, got %v", k, got)
		}
		if got := f(1); !approx(got, 1, 1e-12) {
			t.Errorf("k=%v: expected f(1)=1, got %v", k, got)
		}
	}
}

func TestGeneralizedBounce(t *testing.T) {
	f := GeneralizedBounce(1e9)
	if got := f(0.3); !approx(got, 0.3, 1e-6) {
		t.Errorf("Expected a large k to approach t, got %v", got)
	}

	wild := GeneralizedBounce(0.5)
	if got := wild(0.25); !approx(got, -1.75, 1e-12) {
		t.Errorf("Expected -1.75, got %v", got)
	}
}

func TestByName(t *testing.T) {
	f, err := ByName("sin")
	if err != nil {
		t.Fatalf("Expected sin to be registered, got %v", err)
	}
	if got := f(1); !approx(got, 1, 1e-12) {
		t.Errorf("Expected sin(1)=1, got %v", got)
	}

	_, err = ByName("wobble")
	if !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
	for _, name := range names {
		if _, err := ByName(name); err != nil {
			t.Errorf("Expected %q to resolve, got %v", name, err)
		}
	}
}
