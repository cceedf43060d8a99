package inertia

import (
	"github.com/golang/geo/r3"

	"github.com/mechkit/massmath/scalar"
)

// Vector is a 3-vector over the scalar type T. It exists so the algebra can
// run over differentiable scalars; the float64 path converts to and from
// r3.Vector at the package boundary.
type Vector[T scalar.Scalar[T]] struct {
	X, Y, Z T
}

// Add returns v + o.
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	return Vector[T]{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

// Sub returns v - o.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	return Vector[T]{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

// Mul returns v scaled by s.
func (v Vector[T]) Mul(s T) Vector[T] {
	return Vector[T]{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{v.X.Neg(), v.Y.Neg(), v.Z.Neg()}
}

// Dot returns the dot product of v and o.
func (v Vector[T]) Dot(o Vector[T]) T {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// VectorFromR3 converts an r3 vector to the generic float vector type.
func VectorFromR3(v r3.Vector) Vector[scalar.Float] {
	return Vector[scalar.Float]{scalar.Float(v.X), scalar.Float(v.Y), scalar.Float(v.Z)}
}

// VectorToR3 converts a generic float vector back to an r3 vector.
func VectorToR3(v Vector[scalar.Float]) r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
