// Package massprops is the model-build-time layer over the inertia algebra:
// it parses user-supplied mass properties from config files, rejects
// malformed ones, and assembles composite bodies.
//
// The inertia tensor type does not track its about-point or expressed-in
// frame; this package supplies that discipline by convention: a
// MassProperties' inertia is always about the body's origin, expressed in
// the body's own frame.
package massprops

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mechkit/massmath/inertia"
	"github.com/mechkit/massmath/scalar"
)

// MassProperties fully describes the mass distribution of a rigid body:
// its mass, the position of its center of mass from the body origin Bo, and
// its rotational inertia about Bo. All vectors and tensors are expressed in
// the body frame.
type MassProperties struct {
	Name         string
	Mass         float64
	CenterOfMass r3.Vector
	Inertia      inertia.Inertia
}

// Validate rejects malformed mass properties: negative or non-finite mass,
// non-finite center of mass, or an inertia failing the physical-plausibility
// checks.
func (mp MassProperties) Validate() error {
	if math.IsNaN(mp.Mass) || math.IsInf(mp.Mass, 0) || mp.Mass < 0 {
		return errors.Errorf("body %q has invalid mass %v", mp.Name, mp.Mass)
	}
	for _, v := range []float64{mp.CenterOfMass.X, mp.CenterOfMass.Y, mp.CenterOfMass.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Errorf("body %q has non-finite center of mass %v", mp.Name, mp.CenterOfMass)
		}
	}
	if !mp.Inertia.CouldBePhysicallyValid() {
		return errors.Wrapf(inertia.ErrNotPhysicallyValid, "body %q", mp.Name)
	}
	return nil
}

// String renders the mass properties for logging.
func (mp MassProperties) String() string {
	return fmt.Sprintf("%s: Mass: %.4f | COM: X:%.4f, Y:%.4f, Z:%.4f | %s",
		mp.Name, mp.Mass, mp.CenterOfMass.X, mp.CenterOfMass.Y, mp.CenterOfMass.Z, mp.Inertia.String())
}

// AboutCenterOfMass returns the body's inertia shifted from the body origin
// to its center of mass.
func (mp MassProperties) AboutCenterOfMass() (inertia.Inertia, error) {
	return mp.Inertia.ShiftToCenterOfMass(scalar.Float(mp.Mass), inertia.VectorFromR3(mp.CenterOfMass))
}

// AboutPoint returns the body's inertia about an arbitrary point p (given
// from the body origin, in the body frame), shifting via the center of mass
// in a single pass.
func (mp MassProperties) AboutPoint(p r3.Vector) (inertia.Inertia, error) {
	return mp.Inertia.ShiftToThenAwayFromCenterOfMass(
		scalar.Float(mp.Mass),
		inertia.VectorFromR3(mp.CenterOfMass),
		inertia.VectorFromR3(mp.CenterOfMass.Sub(p)),
	)
}

// Combine assembles the mass properties of a composite body from its parts.
// Every part must share the composite's origin and frame (the caller's
// responsibility, as with the tensor algebra itself). Validation failures
// across parts are aggregated so a model file reports all bad bodies at
// once.
func Combine(name string, bodies ...MassProperties) (MassProperties, error) {
	var errs error
	for _, b := range bodies {
		errs = multierr.Append(errs, b.Validate())
	}
	if errs != nil {
		return MassProperties{}, errs
	}

	composite := MassProperties{Name: name, Inertia: inertia.NewZeroRotationalInertia[scalar.Float]()}
	var weightedCOM r3.Vector
	for _, b := range bodies {
		composite.Mass += b.Mass
		weightedCOM = weightedCOM.Add(b.CenterOfMass.Mul(b.Mass))
		composite.Inertia.AddInPlace(b.Inertia)
	}
	if composite.Mass > 0 {
		composite.CenterOfMass = weightedCOM.Mul(1 / composite.Mass)
	}
	return composite, nil
}
