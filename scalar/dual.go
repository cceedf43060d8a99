package scalar

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// Dual is a forward-mode differentiable scalar backed by a gonum dual
// number. The Emag component carries the derivative of the value with
// respect to a single independent variable, and every arithmetic operation
// propagates it by the chain rule.
type Dual struct {
	dual.Number
}

// NewDual returns a dual scalar with the given value and derivative.
func NewDual(value, deriv float64) Dual {
	return Dual{dual.Number{Real: value, Emag: deriv}}
}

// Deriv returns the derivative component of d.
func (d Dual) Deriv() float64 { return d.Emag }

// FromFloat builds a Dual constant; constants have zero derivative.
func (d Dual) FromFloat(x float64) Dual {
	return Dual{dual.Number{Real: x}}
}

// Add returns d + o.
func (d Dual) Add(o Dual) Dual { return Dual{dual.Add(d.Number, o.Number)} }

// Sub returns d - o.
func (d Dual) Sub(o Dual) Dual { return Dual{dual.Sub(d.Number, o.Number)} }

// Mul returns d * o.
func (d Dual) Mul(o Dual) Dual { return Dual{dual.Mul(d.Number, o.Number)} }

// Div returns d / o.
func (d Dual) Div(o Dual) Dual {
	return Dual{dual.Mul(d.Number, dual.Inv(o.Number))}
}

// Neg returns -d.
func (d Dual) Neg() Dual { return Dual{dual.Scale(-1, d.Number)} }

// Abs returns |d|, with the derivative sign flipped where the value is
// negative.
func (d Dual) Abs() Dual { return Dual{dual.Abs(d.Number)} }

// IsNaN reports whether either component of d is NaN.
func (d Dual) IsNaN() bool {
	return math.IsNaN(d.Number.Real) || math.IsNaN(d.Emag)
}

// IsInf reports whether either component of d is infinite.
func (d Dual) IsInf() bool {
	return math.IsInf(d.Number.Real, 0) || math.IsInf(d.Emag, 0)
}

// IsZero reports whether both components of d are exactly zero.
func (d Dual) IsZero() bool { return d.Number.Real == 0 && d.Emag == 0 }

// Real returns the value component of d, discarding the derivative. Dual
// numbers are ordered by their value component, so real-valued comparison
// is supported.
func (d Dual) Real() (float64, bool) { return d.Number.Real, true }
