// Package inertia models the mass distribution (rotational inertia) of a
// rigid or composite body about a chosen reference point, expressed in a
// chosen reference frame.
//
// A tensor is six independent scalars forming a symmetric 3x3 matrix: three
// moments of inertia on the diagonal (Ixx, Iyy, Izz) and three products of
// inertia off it (Ixy, Ixz, Iyz). Products use the negated sign convention,
// so that angular momentum h = I * w. The about-point and expressed-in frame
// are NOT stored: callers must ensure operands share them before combining
// tensors. That discipline is documented, not enforced.
//
// All operations are pure value transformations. Checked operations either
// fully complete or leave the receiver untouched.
package inertia

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/mechkit/massmath/scalar"
)

// RotationalInertia describes a body's mass distribution about an implicit
// about-point, expressed in an implicit frame. The zero value is a zero
// tensor; prefer NewNaNRotationalInertia when a sentinel for "uninitialized"
// is wanted.
type RotationalInertia[T scalar.Scalar[T]] struct {
	ixx, iyy, izz T // moments of inertia
	ixy, ixz, iyz T // products of inertia, negated-integral convention
}

// Inertia is the plain-real instantiation used by most callers.
type Inertia = RotationalInertia[scalar.Float]

// NewNaNRotationalInertia returns a tensor with every component set to NaN,
// which helps surface use of uninitialized values.
func NewNaNRotationalInertia[T scalar.Scalar[T]]() RotationalInertia[T] {
	var z T
	nan := z.FromFloat(math.NaN())
	return RotationalInertia[T]{nan, nan, nan, nan, nan, nan}
}

// NewZeroRotationalInertia returns a tensor with every component zero, e.g.
// as the starting accumulator for a composite body.
func NewZeroRotationalInertia[T scalar.Scalar[T]]() RotationalInertia[T] {
	return RotationalInertia[T]{}
}

// newUnchecked assembles a tensor without any validity test. Intermediate
// results of shift computations are allowed to be invalid, so internal
// algebra goes through here.
func newUnchecked[T scalar.Scalar[T]](ixx, iyy, izz, ixy, ixz, iyz T) RotationalInertia[T] {
	return RotationalInertia[T]{ixx: ixx, iyy: iyy, izz: izz, ixy: ixy, ixz: ixz, iyz: iyz}
}

// NewRotationalInertiaFromMoments creates a tensor with the given moments of
// inertia and zero products of inertia.
func NewRotationalInertiaFromMoments[T scalar.Scalar[T]](ixx, iyy, izz T) (RotationalInertia[T], error) {
	var z T
	zero := z.FromFloat(0)
	return NewRotationalInertia(ixx, iyy, izz, zero, zero, zero)
}

// NewRotationalInertia creates a tensor with the given moments and products
// of inertia and verifies it could be physically valid.
func NewRotationalInertia[T scalar.Scalar[T]](ixx, iyy, izz, ixy, ixz, iyz T) (RotationalInertia[T], error) {
	i := newUnchecked(ixx, iyy, izz, ixy, ixz, iyz)
	if err := i.invalidityReport(); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return i, nil
}

// MakeFromMomentsAndProducts creates a tensor from its six components. When
// skipValidityCheck is true the physical-plausibility test is bypassed,
// trading safety for speed; the caller accepts the risk of holding a
// non-physical tensor until the next checked operation.
func MakeFromMomentsAndProducts[T scalar.Scalar[T]](
	ixx, iyy, izz, ixy, ixz, iyz T,
	skipValidityCheck bool,
) (RotationalInertia[T], error) {
	i := newUnchecked(ixx, iyy, izz, ixy, ixz, iyz)
	if skipValidityCheck {
		return i, nil
	}
	if err := i.invalidityReport(); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return i, nil
}

// NewTriaxiallySymmetric creates a tensor with three equal moments of
// inertia and zero products, e.g. for a uniform-density sphere or cube.
func NewTriaxiallySymmetric[T scalar.Scalar[T]](moment T) (RotationalInertia[T], error) {
	return NewRotationalInertiaFromMoments(moment, moment, moment)
}

// pointMassUnchecked builds the inertia contribution m*(|d|^2 I - d d^T) of
// a point mass, taking the pre-scaled vector mp = mass*d alongside d so the
// same code serves the unit-mass shift primitive. Negating d does not change
// the result.
func pointMassUnchecked[T scalar.Scalar[T]](mp, p Vector[T]) RotationalInertia[T] {
	mxx := mp.X.Mul(p.X)
	myy := mp.Y.Mul(p.Y)
	mzz := mp.Z.Mul(p.Z)
	return newUnchecked(
		myy.Add(mzz),
		mxx.Add(mzz),
		mxx.Add(myy),
		mp.X.Mul(p.Y).Neg(),
		mp.X.Mul(p.Z).Neg(),
		mp.Y.Mul(p.Z).Neg(),
	)
}

// NewPointMassInertia creates the rotational inertia of a point mass at
// position offset p from the about-point, expressed in the same frame as p.
// A negative mass fails the validity check.
func NewPointMassInertia[T scalar.Scalar[T]](mass T, p Vector[T]) (RotationalInertia[T], error) {
	i := pointMassUnchecked(p.Mul(mass), p)
	if err := i.invalidityReport(); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return i, nil
}

// Moments returns the moments of inertia [Ixx, Iyy, Izz].
func (i RotationalInertia[T]) Moments() Vector[T] {
	return Vector[T]{i.ixx, i.iyy, i.izz}
}

// Products returns the products of inertia [Ixy, Ixz, Iyz].
func (i RotationalInertia[T]) Products() Vector[T] {
	return Vector[T]{i.ixy, i.ixz, i.iyz}
}

// Trace returns Ixx + Iyy + Izz. The trace is invariant to the expressed-in
// frame.
func (i RotationalInertia[T]) Trace() T {
	return i.ixx.Add(i.iyy).Add(i.izz)
}

// MaxPossibleMoment returns half the absolute trace, an upper bound on any
// single element a valid tensor could have for any expressed-in frame.
func (i RotationalInertia[T]) MaxPossibleMoment() T {
	var z T
	return z.FromFloat(0.5).Mul(i.Trace().Abs())
}

// At returns the (row, col) element of the symmetric tensor. Indices are
// reflected into the canonical lower-triangular half, so At(0, 2) and
// At(2, 0) read the same stored value. Element access is read-only; mutation
// happens only through the algebra, which keeps the tensor symmetric.
func (i RotationalInertia[T]) At(row, col int) T {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		panic("inertia: tensor index out of range")
	}
	if row < col {
		row, col = col, row
	}
	switch 3*row + col {
	case 0:
		return i.ixx
	case 3:
		return i.ixy
	case 4:
		return i.iyy
	case 6:
		return i.ixz
	case 7:
		return i.iyz
	default: // 8
		return i.izz
	}
}

// Matrix materializes the full symmetric 3x3 matrix, mirrors included.
func (i RotationalInertia[T]) Matrix() [3][3]T {
	return [3][3]T{
		{i.ixx, i.ixy, i.ixz},
		{i.ixy, i.iyy, i.iyz},
		{i.ixz, i.iyz, i.izz},
	}
}

// RealSymmetric materializes the tensor as a gonum symmetric matrix for
// downstream linear algebra. It fails with ErrNonRealScalar if the scalar
// type cannot be converted to real numbers.
func (i RotationalInertia[T]) RealSymmetric() (*mat.SymDense, error) {
	c, ok := i.realComponents()
	if !ok {
		return nil, errors.Wrap(ErrNonRealScalar, "cannot materialize symmetric matrix")
	}
	s := mat.NewSymDense(3, nil)
	s.SetSym(0, 0, c[0])
	s.SetSym(1, 1, c[1])
	s.SetSym(2, 2, c[2])
	s.SetSym(0, 1, c[3])
	s.SetSym(0, 2, c[4])
	s.SetSym(1, 2, c[5])
	return s, nil
}

// String renders the six components in fixed order for logging and
// diagnostics.
func (i RotationalInertia[T]) String() string {
	return fmt.Sprintf("Moments: Ixx:%v, Iyy:%v, Izz:%v | Products: Ixy:%v, Ixz:%v, Iyz:%v",
		i.ixx, i.iyy, i.izz, i.ixy, i.ixz, i.iyz)
}

// AddInPlace adds another tensor to the receiver. Both operands must share
// the same about-point and expressed-in frame (not verified). The sum of two
// physically valid tensors is always valid, so no check is performed.
func (i *RotationalInertia[T]) AddInPlace(o RotationalInertia[T]) {
	i.ixx = i.ixx.Add(o.ixx)
	i.iyy = i.iyy.Add(o.iyy)
	i.izz = i.izz.Add(o.izz)
	i.ixy = i.ixy.Add(o.ixy)
	i.ixz = i.ixz.Add(o.ixz)
	i.iyz = i.iyz.Add(o.iyz)
}

// Add returns the sum of the receiver and o. See AddInPlace.
func (i RotationalInertia[T]) Add(o RotationalInertia[T]) RotationalInertia[T] {
	sum := i
	sum.AddInPlace(o)
	return sum
}

// subUncheckedInPlace subtracts without validating the result. Intermediate
// results of a shift computation need not themselves be valid inertias.
func (i *RotationalInertia[T]) subUncheckedInPlace(o RotationalInertia[T]) {
	i.ixx = i.ixx.Sub(o.ixx)
	i.iyy = i.iyy.Sub(o.iyy)
	i.izz = i.izz.Sub(o.izz)
	i.ixy = i.ixy.Sub(o.ixy)
	i.ixz = i.ixz.Sub(o.ixz)
	i.iyz = i.iyz.Sub(o.iyz)
}

// SubInPlace subtracts another tensor from the receiver and verifies the
// result could be physically valid. On failure the receiver is untouched.
// Subtraction is useful e.g. for the inertia of a body with a hole: compute
// the solid body's tensor, then subtract the hole's.
func (i *RotationalInertia[T]) SubInPlace(o RotationalInertia[T]) error {
	res := *i
	res.subUncheckedInPlace(o)
	if err := res.invalidityReport(); err != nil {
		return err
	}
	*i = res
	return nil
}

// Sub returns the difference of the receiver and o, verifying the result
// could be physically valid.
func (i RotationalInertia[T]) Sub(o RotationalInertia[T]) (RotationalInertia[T], error) {
	diff := i
	if err := diff.SubInPlace(o); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return diff, nil
}

// MulScalarUnchecked scales the tensor by s with no sign check. This works
// even if s is negative or the receiver is invalid, which is useful for
// intermediate shift algebra and for error reporting.
func (i RotationalInertia[T]) MulScalarUnchecked(s T) RotationalInertia[T] {
	return newUnchecked(
		i.ixx.Mul(s), i.iyy.Mul(s), i.izz.Mul(s),
		i.ixy.Mul(s), i.ixz.Mul(s), i.iyz.Mul(s),
	)
}

// MulScalar scales the tensor by a non-negative scalar. A negative scale
// would invert the tensor into an unphysical one, so it fails with
// ErrNegativeScalar. The sign check is elided for scalar types without
// real-valued ordering.
func (i RotationalInertia[T]) MulScalar(s T) (RotationalInertia[T], error) {
	if v, ok := s.Real(); ok && v < 0 {
		return NewNaNRotationalInertia[T](), errors.Wrapf(ErrNegativeScalar, "scale %v", v)
	}
	return i.MulScalarUnchecked(s), nil
}

// MulScalarInPlace scales the receiver by a non-negative scalar.
func (i *RotationalInertia[T]) MulScalarInPlace(s T) error {
	res, err := i.MulScalar(s)
	if err != nil {
		return err
	}
	*i = res
	return nil
}

// DivScalar divides the tensor by a strictly positive scalar, failing with
// ErrNonPositiveScalar otherwise. The sign check is elided for scalar types
// without real-valued ordering.
func (i RotationalInertia[T]) DivScalar(s T) (RotationalInertia[T], error) {
	if v, ok := s.Real(); ok && v <= 0 {
		return NewNaNRotationalInertia[T](), errors.Wrapf(ErrNonPositiveScalar, "divisor %v", v)
	}
	var z T
	return i.MulScalarUnchecked(z.FromFloat(1).Div(s)), nil
}

// DivScalarInPlace divides the receiver by a strictly positive scalar.
func (i *RotationalInertia[T]) DivScalarInPlace(s T) error {
	res, err := i.DivScalar(s)
	if err != nil {
		return err
	}
	*i = res
	return nil
}

// MulVector treats the tensor as a linear operator and applies it to w,
// which must be expressed in the same frame. The product is computed
// directly from the six stored values without materializing the mirrored
// entries, which keeps it cheap for inner-loop use (angular momentum,
// kinetic energy).
func (i RotationalInertia[T]) MulVector(w Vector[T]) Vector[T] {
	return Vector[T]{
		i.ixx.Mul(w.X).Add(i.ixy.Mul(w.Y)).Add(i.ixz.Mul(w.Z)),
		i.ixy.Mul(w.X).Add(i.iyy.Mul(w.Y)).Add(i.iyz.Mul(w.Z)),
		i.ixz.Mul(w.X).Add(i.iyz.Mul(w.Y)).Add(i.izz.Mul(w.Z)),
	}
}

// ConvertScalar rebuilds a tensor over a different scalar type by converting
// each stored component through the given element conversion. The validity
// check is skipped since the source tensor's plausibility is representation
// independent.
func ConvertScalar[From scalar.Scalar[From], To scalar.Scalar[To]](
	i RotationalInertia[From],
	convert func(From) To,
) RotationalInertia[To] {
	return newUnchecked(
		convert(i.ixx), convert(i.iyy), convert(i.izz),
		convert(i.ixy), convert(i.ixz), convert(i.iyz),
	)
}
