package inertia

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/mechkit/massmath/scalar"
)

func mustNearlyEqual(t *testing.T, got, want Inertia, precision float64) {
	t.Helper()
	equal, err := got.IsNearlyEqualTo(want, precision)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, equal, test.ShouldBeTrue)
}

func TestShiftRoundTrip(t *testing.T) {
	mass := scalar.Float(3)
	offset := VectorFromR3(r3.Vector{X: 0.5, Y: -1, Z: 2})
	aboutCOM := mustInertia(t, 4, 5, 6, 1, -1, 0.5)

	aboutQ, err := aboutCOM.ShiftFromCenterOfMass(mass, offset)
	test.That(t, err, test.ShouldBeNil)

	back, err := aboutQ.ShiftToCenterOfMass(mass, offset)
	test.That(t, err, test.ShouldBeNil)
	mustNearlyEqual(t, back, aboutCOM, 1e-12)
}

func TestShiftOffsetSignInvariance(t *testing.T) {
	// the shift depends only on d d^T, so negating the offset is a no-op
	mass := scalar.Float(2)
	offset := VectorFromR3(r3.Vector{X: 1, Y: 2, Z: -3})
	aboutCOM := mustInertia(t, 10, 11, 12, 0, 0, 0)

	plus, err := aboutCOM.ShiftFromCenterOfMass(mass, offset)
	test.That(t, err, test.ShouldBeNil)
	minus, err := aboutCOM.ShiftFromCenterOfMass(mass, offset.Neg())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, minus, test.ShouldResemble, plus)
}

func TestShiftToCenterOfMassMinimizesMoments(t *testing.T) {
	// of all about-points, the center of mass gives the smallest trace
	mass := scalar.Float(2)
	offset := VectorFromR3(r3.Vector{X: 1, Y: 1, Z: 0})
	aboutCOM := mustInertia(t, 3, 3, 3, 0, 0, 0)

	aboutQ, err := aboutCOM.ShiftFromCenterOfMass(mass, offset)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, float64(aboutQ.Trace()), test.ShouldBeGreaterThan, float64(aboutCOM.Trace()))
}

func TestShiftToCenterOfMassRejectsOvershoot(t *testing.T) {
	// shifting a COM inertia "to the COM" again subtracts a point-mass term
	// it does not contain, so the result fails the validity check
	aboutCOM := mustInertia(t, 1, 1, 1, 0, 0, 0)
	offset := VectorFromR3(r3.Vector{X: 2})

	_, err := aboutCOM.ShiftToCenterOfMass(scalar.Float(5), offset)
	test.That(t, errors.Is(err, ErrNotPhysicallyValid), test.ShouldBeTrue)

	// a failed in-place shift leaves the receiver untouched
	cp := aboutCOM
	err = cp.ShiftToCenterOfMassInPlace(scalar.Float(5), offset)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, cp, test.ShouldResemble, aboutCOM)
}

func TestShiftToThenAwayFromCenterOfMass(t *testing.T) {
	mass := scalar.Float(3)
	pPBcm := VectorFromR3(r3.Vector{X: 1, Y: 0.5, Z: -0.25})
	pQBcm := VectorFromR3(r3.Vector{X: -0.5, Y: 2, Z: 1})
	aboutP, err := mustInertia(t, 4, 5, 6, 1, -1, 0.5).
		ShiftFromCenterOfMass(mass, pPBcm)
	test.That(t, err, test.ShouldBeNil)

	t.Run("matches the two-call sequence", func(t *testing.T) {
		direct, err := aboutP.ShiftToThenAwayFromCenterOfMass(mass, pPBcm, pQBcm)
		test.That(t, err, test.ShouldBeNil)

		aboutCOM, err := aboutP.ShiftToCenterOfMass(mass, pPBcm)
		test.That(t, err, test.ShouldBeNil)
		sequential, err := aboutCOM.ShiftFromCenterOfMass(mass, pQBcm)
		test.That(t, err, test.ShouldBeNil)

		mustNearlyEqual(t, direct, sequential, 1e-12)
	})

	t.Run("identity when both offsets agree", func(t *testing.T) {
		same, err := aboutP.ShiftToThenAwayFromCenterOfMass(mass, pPBcm, pPBcm)
		test.That(t, err, test.ShouldBeNil)
		mustNearlyEqual(t, same, aboutP, 1e-12)
	})

	t.Run("failure leaves the receiver untouched", func(t *testing.T) {
		// a tiny inertia cannot absorb a large shift towards the COM
		small := mustInertia(t, 0.01, 0.01, 0.01, 0, 0, 0)
		cp := small
		err := cp.ShiftToThenAwayFromCenterOfMassInPlace(
			mass, VectorFromR3(r3.Vector{X: 10}), VectorFromR3(r3.Vector{}))
		test.That(t, errors.Is(err, ErrNotPhysicallyValid), test.ShouldBeTrue)
		test.That(t, cp, test.ShouldResemble, small)
	})

	t.Run("negative mass rejected", func(t *testing.T) {
		_, err := aboutP.ShiftToThenAwayFromCenterOfMass(scalar.Float(-1), pPBcm, pQBcm)
		test.That(t, errors.Is(err, ErrNegativeScalar), test.ShouldBeTrue)
	})
}

func TestShiftPointMassConsistency(t *testing.T) {
	// a point mass about its own location has zero inertia, so shifting
	// the zero tensor away from the COM must reproduce NewPointMassInertia
	mass := scalar.Float(2)
	offset := VectorFromR3(r3.Vector{X: 1, Y: 1})

	shifted, err := NewZeroRotationalInertia[scalar.Float]().
		ShiftFromCenterOfMass(mass, offset)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, shifted, test.ShouldResemble, mustPointMass(t, 2, r3.Vector{X: 1, Y: 1}))
}
