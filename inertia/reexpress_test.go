package inertia

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/mechkit/massmath/scalar"
	"github.com/mechkit/massmath/utils"
)

func rotZ(theta float64) RotationMatrix[scalar.Float] {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewRotationMatrixFromRows(
		r3.Vector{X: c, Y: -s},
		r3.Vector{X: s, Y: c},
		r3.Vector{Z: 1},
	)
}

func TestReExpressIdentity(t *testing.T) {
	i := mustInertia(t, 4, 5, 6, 1, -1, 0.5)
	same, err := i.ReExpress(NewIdentityRotationMatrix[scalar.Float]())
	test.That(t, err, test.ShouldBeNil)
	mustNearlyEqual(t, same, i, 1e-12)
}

func TestReExpressQuarterTurn(t *testing.T) {
	// a quarter turn about z swaps the x and y moments of a diagonal tensor
	i := mustInertia(t, 1, 2, 3, 0, 0, 0)
	rotated, err := i.ReExpress(rotZ(math.Pi / 2))
	test.That(t, err, test.ShouldBeNil)
	checkComponents(t, rotated, r3.Vector{X: 2, Y: 1, Z: 3}, r3.Vector{})
}

func TestReExpressMatchesPointMass(t *testing.T) {
	// re-expressing a point-mass inertia is the same as rotating the
	// position vector first
	rAE := rotZ(0.7)
	d := VectorFromR3(r3.Vector{X: 1, Y: -2, Z: 0.5})
	mass := scalar.Float(3)

	inE := mustPointMass(t, 3, VectorToR3(d))
	got, err := inE.ReExpress(rAE)
	test.That(t, err, test.ShouldBeNil)

	want, err := NewPointMassInertia(mass, rAE.MulVector(d))
	test.That(t, err, test.ShouldBeNil)
	mustNearlyEqual(t, got, want, 1e-12)
}

func TestReExpressInvariants(t *testing.T) {
	i := mustInertia(t, 4, 5, 6, 1, -1, 0.5)
	rAE := rotZ(1.1)

	t.Run("trace is preserved", func(t *testing.T) {
		rotated, err := i.ReExpress(rAE)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, utils.Float64AlmostEqual(
			float64(rotated.Trace()), float64(i.Trace()), 1e-12), test.ShouldBeTrue)
	})

	t.Run("transpose round trip", func(t *testing.T) {
		rotated, err := i.ReExpress(rAE)
		test.That(t, err, test.ShouldBeNil)
		back, err := rotated.ReExpress(rAE.Transpose())
		test.That(t, err, test.ShouldBeNil)
		mustNearlyEqual(t, back, i, 1e-12)
	})

	t.Run("in-place matches value form", func(t *testing.T) {
		rotated, err := i.ReExpress(rAE)
		test.That(t, err, test.ShouldBeNil)
		cp := i
		test.That(t, cp.ReExpressInPlace(rAE), test.ShouldBeNil)
		test.That(t, cp, test.ShouldResemble, rotated)
	})
}
