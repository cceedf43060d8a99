package inertia

import (
	"github.com/golang/geo/r3"

	"github.com/mechkit/massmath/scalar"
)

// RotationMatrix is an orthonormal 3x3 rotation matrix over the scalar type
// T, stored in row-major order. Orthonormality is the caller's
// responsibility; the constructors here do not verify it.
type RotationMatrix[T scalar.Scalar[T]] struct {
	mat [9]T
}

// NewRotationMatrix constructs a rotation matrix from row-major components.
func NewRotationMatrix[T scalar.Scalar[T]](m [9]T) RotationMatrix[T] {
	return RotationMatrix[T]{mat: m}
}

// NewIdentityRotationMatrix returns the identity rotation.
func NewIdentityRotationMatrix[T scalar.Scalar[T]]() RotationMatrix[T] {
	var z T
	zero, one := z.FromFloat(0), z.FromFloat(1)
	return RotationMatrix[T]{mat: [9]T{
		one, zero, zero,
		zero, one, zero,
		zero, zero, one,
	}}
}

// NewRotationMatrixFromRows builds a float rotation matrix from three r3 row
// vectors.
func NewRotationMatrixFromRows(r0, r1, r2 r3.Vector) RotationMatrix[scalar.Float] {
	return RotationMatrix[scalar.Float]{mat: [9]scalar.Float{
		scalar.Float(r0.X), scalar.Float(r0.Y), scalar.Float(r0.Z),
		scalar.Float(r1.X), scalar.Float(r1.Y), scalar.Float(r1.Z),
		scalar.Float(r2.X), scalar.Float(r2.Y), scalar.Float(r2.Z),
	}}
}

// At returns the matrix element at the given row and column.
func (r RotationMatrix[T]) At(row, col int) T {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic("inertia: rotation matrix index out of range")
	}
	return r.mat[3*row+col]
}

// Row returns the rm'th row of the matrix.
func (r RotationMatrix[T]) Row(row int) Vector[T] {
	return Vector[T]{r.mat[3*row], r.mat[3*row+1], r.mat[3*row+2]}
}

// Col returns the col'th column of the matrix.
func (r RotationMatrix[T]) Col(col int) Vector[T] {
	return Vector[T]{r.mat[col], r.mat[col+3], r.mat[col+6]}
}

// MulVector rotates v, returning R * v.
func (r RotationMatrix[T]) MulVector(v Vector[T]) Vector[T] {
	return Vector[T]{r.Row(0).Dot(v), r.Row(1).Dot(v), r.Row(2).Dot(v)}
}

// Transpose returns the transposed (inverse) rotation.
func (r RotationMatrix[T]) Transpose() RotationMatrix[T] {
	return RotationMatrix[T]{mat: [9]T{
		r.mat[0], r.mat[3], r.mat[6],
		r.mat[1], r.mat[4], r.mat[7],
		r.mat[2], r.mat[5], r.mat[8],
	}}
}
