package inertia

import (
	"github.com/mechkit/massmath/scalar"
)

// Shift methods move a body's rotational inertia from one about-point to
// another via the parallel-axis theorem. The expressed-in frame never
// changes. Every shift is built from one primitive: the point-mass
// contribution m*(|d|^2 I - d d^T), which depends only on d d^T, so negating
// any offset vector never changes the result.

// ShiftFromCenterOfMassInPlace shifts the receiver, which must be about the
// body's center of mass, to be about a point Q at offset pBcmQ from the
// center of mass.
func (i *RotationalInertia[T]) ShiftFromCenterOfMassInPlace(mass T, pBcmQ Vector[T]) error {
	shift, err := NewPointMassInertia(mass, pBcmQ)
	if err != nil {
		return err
	}
	i.AddInPlace(shift)
	return nil
}

// ShiftFromCenterOfMass returns the receiver, which must be about the body's
// center of mass, shifted to be about a point Q at offset pBcmQ.
func (i RotationalInertia[T]) ShiftFromCenterOfMass(mass T, pBcmQ Vector[T]) (RotationalInertia[T], error) {
	res := i
	if err := res.ShiftFromCenterOfMassInPlace(mass, pBcmQ); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return res, nil
}

// ShiftToCenterOfMassInPlace shifts the receiver, which must be about some
// point Q, to be about the body's center of mass at offset pQBcm from Q.
// Only the final result is validated.
func (i *RotationalInertia[T]) ShiftToCenterOfMassInPlace(mass T, pQBcm Vector[T]) error {
	return i.SubInPlace(pointMassUnchecked(pQBcm.Mul(mass), pQBcm))
}

// ShiftToCenterOfMass returns the receiver, which must be about some point
// Q, shifted to be about the body's center of mass at offset pQBcm from Q.
func (i RotationalInertia[T]) ShiftToCenterOfMass(mass T, pQBcm Vector[T]) (RotationalInertia[T], error) {
	res := i
	if err := res.ShiftToCenterOfMassInPlace(mass, pQBcm); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return res, nil
}

// shiftUnitMassToThenAwayFromCenterOfMass computes the tensor that must be
// added to a unit-mass body's inertia about P to obtain its inertia about Q,
// where pPBcm and pQBcm are the offsets from P and Q to the center of mass.
// The intermediate difference of two point-mass tensors need not itself be a
// valid inertia, so the subtraction is unchecked.
func shiftUnitMassToThenAwayFromCenterOfMass[T scalar.Scalar[T]](pPBcm, pQBcm Vector[T]) RotationalInertia[T] {
	// Concept: shift towards then away from the center of mass.
	// Math: shift away from then towards the center of mass.
	away := pointMassUnchecked(pQBcm, pQBcm)
	towards := pointMassUnchecked(pPBcm, pPBcm)
	away.subUncheckedInPlace(towards)
	return away
}

// ShiftToThenAwayFromCenterOfMassInPlace shifts the receiver, which must be
// about a point P, to be about a point Q via the center of mass. pPBcm and
// pQBcm are the offsets from P and Q to the center of mass. This is cheaper
// than shifting to the center of mass and away again as two public calls,
// because the intermediate is never validated or normalized; only the final
// result is checked. On failure the receiver is untouched.
func (i *RotationalInertia[T]) ShiftToThenAwayFromCenterOfMassInPlace(mass T, pPBcm, pQBcm Vector[T]) error {
	delta, err := shiftUnitMassToThenAwayFromCenterOfMass(pPBcm, pQBcm).MulScalar(mass)
	if err != nil {
		return err
	}
	res := *i
	res.AddInPlace(delta)
	if err := res.invalidityReport(); err != nil {
		return err
	}
	*i = res
	return nil
}

// ShiftToThenAwayFromCenterOfMass returns the receiver, which must be about
// a point P, shifted to be about a point Q via the center of mass.
func (i RotationalInertia[T]) ShiftToThenAwayFromCenterOfMass(mass T, pPBcm, pQBcm Vector[T]) (RotationalInertia[T], error) {
	res := i
	if err := res.ShiftToThenAwayFromCenterOfMassInPlace(mass, pPBcm, pQBcm); err != nil {
		return NewNaNRotationalInertia[T](), err
	}
	return res, nil
}
