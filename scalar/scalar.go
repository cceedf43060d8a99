// Package scalar abstracts the numeric representation used by the inertia
// algebra, so the same tensor code runs over plain real numbers and over
// differentiable scalar types carrying derivative information.
package scalar

import "math"

// Scalar is the constraint satisfied by every numeric type the inertia
// algebra can be instantiated over. Arithmetic is closed over the type and
// never mutates the receiver.
//
// Real is a type-level capability probe: its boolean result is constant for
// a given type. Types that report false have no real-valued ordering, so
// validity and scale checks over them are elided, and operations that must
// produce real numbers (such as principal-moment extraction) fail instead.
type Scalar[T any] interface {
	// FromFloat builds a value of the scalar type from a real constant.
	// The receiver is only used for method dispatch; its value is ignored.
	FromFloat(float64) T

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T

	IsNaN() bool
	IsInf() bool
	IsZero() bool

	// Real reports the real-number value of the scalar and whether the
	// scalar type supports real-valued comparison at all.
	Real() (float64, bool)
}

// Float is the plain real scalar type.
type Float float64

// FromFloat builds a Float from a real constant.
func (f Float) FromFloat(x float64) Float { return Float(x) }

// Add returns f + o.
func (f Float) Add(o Float) Float { return f + o }

// Sub returns f - o.
func (f Float) Sub(o Float) Float { return f - o }

// Mul returns f * o.
func (f Float) Mul(o Float) Float { return f * o }

// Div returns f / o.
func (f Float) Div(o Float) Float { return f / o }

// Neg returns -f.
func (f Float) Neg() Float { return -f }

// Abs returns |f|.
func (f Float) Abs() Float { return Float(math.Abs(float64(f))) }

// IsNaN reports whether f is NaN.
func (f Float) IsNaN() bool { return math.IsNaN(float64(f)) }

// IsInf reports whether f is infinite.
func (f Float) IsInf() bool { return math.IsInf(float64(f), 0) }

// IsZero reports whether f is exactly zero.
func (f Float) IsZero() bool { return f == 0 }

// Real returns the float64 value of f. Float always supports real-valued
// comparison.
func (f Float) Real() (float64, bool) { return float64(f), true }
