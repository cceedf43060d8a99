package inertia

import (
	"github.com/golang/geo/r3"

	"github.com/mechkit/massmath/scalar"
	"github.com/mechkit/massmath/utils"
)

// Closed-form rotational inertias of uniform-density solids about their
// centers of mass, expressed in the solid's own axis-aligned frame.

// NewSolidSphereInertia returns the inertia of a uniform solid sphere:
// 2/5 m r^2 about every axis.
func NewSolidSphereInertia(mass, radius float64) (Inertia, error) {
	if mass < 0 || radius < 0 {
		return NewNaNRotationalInertia[scalar.Float](), newBadSolidDimensionsError("sphere")
	}
	return NewTriaxiallySymmetric(scalar.Float(0.4 * mass * utils.Square(radius)))
}

// NewSolidBoxInertia returns the inertia of a uniform solid box with full
// side lengths dims, axes through its center parallel to its edges.
func NewSolidBoxInertia(mass float64, dims r3.Vector) (Inertia, error) {
	if mass < 0 || dims.X < 0 || dims.Y < 0 || dims.Z < 0 {
		return NewNaNRotationalInertia[scalar.Float](), newBadSolidDimensionsError("box")
	}
	xx, yy, zz := utils.Square(dims.X), utils.Square(dims.Y), utils.Square(dims.Z)
	k := mass / 12.
	return NewRotationalInertiaFromMoments(
		scalar.Float(k*(yy+zz)),
		scalar.Float(k*(xx+zz)),
		scalar.Float(k*(xx+yy)),
	)
}

// NewSolidCylinderInertia returns the inertia of a uniform solid cylinder
// with its symmetry axis along Z.
func NewSolidCylinderInertia(mass, radius, length float64) (Inertia, error) {
	if mass < 0 || radius < 0 || length < 0 {
		return NewNaNRotationalInertia[scalar.Float](), newBadSolidDimensionsError("cylinder")
	}
	rr, ll := utils.Square(radius), utils.Square(length)
	return NewRotationalInertiaFromMoments(
		scalar.Float(mass/12.*(3*rr+ll)),
		scalar.Float(mass/12.*(3*rr+ll)),
		scalar.Float(mass/2.*rr),
	)
}
