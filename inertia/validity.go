package inertia

import (
	"math"

	"github.com/pkg/errors"
)

// validityPrecision scales the tolerance used by the physical-plausibility
// checks to the tensor's own magnitude, so very small negative moments and
// near-degenerate triangle inequalities arising from round-off (e.g. after
// re-expression in another frame) still pass.
const validityPrecision = 1e-13

// realComponents reduces the six stored values to float64s in the order
// [Ixx, Iyy, Izz, Ixy, Ixz, Iyz]. ok is false when the scalar type has no
// real-valued conversion, in which case checks over the tensor are elided.
func (i RotationalInertia[T]) realComponents() ([6]float64, bool) {
	var c [6]float64
	for k, s := range []T{i.ixx, i.iyy, i.izz, i.ixy, i.ixz, i.iyz} {
		v, ok := s.Real()
		if !ok {
			return c, false
		}
		c[k] = v
	}
	return c, true
}

// invalidityReport returns a non-nil error describing how the tensor is
// verifiably invalid, or nil. A nil report does not guarantee validity: the
// checks are necessary conditions only, since the type does not know its own
// about-point (see CouldBePhysicallyValid).
func (i RotationalInertia[T]) invalidityReport() error {
	c, ok := i.realComponents()
	if !ok {
		// Checks are elided for scalar types without real-valued ordering.
		return nil
	}
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrNotPhysicallyValid, "non-finite component in %s", i.String())
		}
	}
	ixx, iyy, izz := c[0], c[1], c[2]
	epsilon := validityPrecision * 0.5 * math.Abs(ixx+iyy+izz)
	if ixx+epsilon < 0 || iyy+epsilon < 0 || izz+epsilon < 0 {
		return errors.Wrapf(ErrNotPhysicallyValid, "negative moment of inertia in %s", i.String())
	}
	if ixx+iyy+epsilon < izz || ixx+izz+epsilon < iyy || iyy+izz+epsilon < ixx {
		return errors.Wrapf(ErrNotPhysicallyValid, "moments violate the triangle inequality in %s", i.String())
	}
	return nil
}

// CouldBePhysicallyValid performs necessary (but NOT sufficient) checks for
// the tensor to describe a real mass distribution: every stored value is
// finite, every moment is non-negative within a scale-relative tolerance,
// and the moments pairwise satisfy the triangle inequality within the same
// tolerance. The sufficient condition additionally requires the checks to
// hold with the about-point at the body's center of mass, which this type
// cannot evaluate because it does not track its about-point.
//
// For scalar types without real-valued ordering the checks are elided and
// the result is always true.
func (i RotationalInertia[T]) CouldBePhysicallyValid() bool {
	return i.invalidityReport() == nil
}

// IsFinite reports whether every stored value is finite.
func (i RotationalInertia[T]) IsFinite() bool {
	for _, s := range []T{i.ixx, i.iyy, i.izz, i.ixy, i.ixz, i.iyz} {
		if s.IsNaN() || s.IsInf() {
			return false
		}
	}
	return true
}

// IsNaN reports whether any stored value is NaN.
func (i RotationalInertia[T]) IsNaN() bool {
	for _, s := range []T{i.ixx, i.iyy, i.izz, i.ixy, i.ixz, i.iyz} {
		if s.IsNaN() {
			return true
		}
	}
	return false
}

// IsZero reports whether every stored value is exactly zero.
func (i RotationalInertia[T]) IsZero() bool {
	for _, s := range []T{i.ixx, i.iyy, i.izz, i.ixy, i.ixz, i.iyz} {
		if !s.IsZero() {
			return false
		}
	}
	return true
}

// IsNearlyEqualTo compares the receiver to other elementwise. The absolute
// tolerance used is precision * min(MaxPossibleMoment(i),
// MaxPossibleMoment(other)), which makes the comparison scale invariant and
// frame invariant. It fails with ErrNonRealScalar if the components cannot
// be reduced to real numbers.
func (i RotationalInertia[T]) IsNearlyEqualTo(other RotationalInertia[T], precision float64) (bool, error) {
	a, okA := i.realComponents()
	b, okB := other.realComponents()
	if !okA || !okB {
		return false, errors.Wrap(ErrNonRealScalar, "cannot compare rotational inertias")
	}
	maxA := 0.5 * math.Abs(a[0]+a[1]+a[2])
	maxB := 0.5 * math.Abs(b[0]+b[1]+b[2])
	epsilon := precision * math.Min(maxA, maxB)
	for k := range a {
		// written so a NaN component or tolerance compares unequal
		if !(math.Abs(a[k]-b[k]) <= epsilon) {
			return false, nil
		}
	}
	return true, nil
}
