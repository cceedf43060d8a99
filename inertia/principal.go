package inertia

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/mechkit/massmath/scalar"
)

// PrincipalMoments returns the three principal moments of inertia of the
// tensor, sorted ascending. It fails with ErrNonRealScalar if the stored
// values cannot be reduced to finite real numbers (e.g. a NaN component or a
// scalar type with no real conversion).
func (i RotationalInertia[T]) PrincipalMoments() (r3.Vector, error) {
	moments, _, err := i.principalMomentsAndMaybeAxes(false)
	return moments, err
}

// PrincipalMomentsAndAxes returns the three principal moments of inertia
// sorted ascending, together with the rotation matrix R_EA whose columns are
// the matching orthonormal principal directions expressed in the tensor's
// frame E. Columns are ordered to match the ascending moments and oriented
// so that R_EA is a proper rotation (determinant +1). If all three moments
// coincide, the identity rotation is returned by convention.
func (i RotationalInertia[T]) PrincipalMomentsAndAxes() (r3.Vector, RotationMatrix[scalar.Float], error) {
	return i.principalMomentsAndMaybeAxes(true)
}

func (i RotationalInertia[T]) principalMomentsAndMaybeAxes(
	wantAxes bool,
) (r3.Vector, RotationMatrix[scalar.Float], error) {
	identity := NewIdentityRotationMatrix[scalar.Float]()
	c, ok := i.realComponents()
	if !ok {
		return r3.Vector{}, identity, errors.Wrap(ErrNonRealScalar, "cannot compute principal moments")
	}
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return r3.Vector{}, identity, errors.Wrapf(ErrNonRealScalar,
				"non-finite component in %s", i.String())
		}
	}

	sym := mat.NewSymDense(3, nil)
	sym.SetSym(0, 0, c[0])
	sym.SetSym(1, 1, c[1])
	sym.SetSym(2, 2, c[2])
	sym.SetSym(0, 1, c[3])
	sym.SetSym(0, 2, c[4])
	sym.SetSym(1, 2, c[5])

	var es mat.EigenSym
	if !es.Factorize(sym, wantAxes) {
		return r3.Vector{}, identity, errors.Wrapf(errEigenFailed, "for %s", i.String())
	}
	vals := es.Values(nil) // ascending
	moments := r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]}
	if !wantAxes {
		return moments, identity, nil
	}

	// Coincident principal moments leave the directions arbitrary; return
	// the identity by convention.
	maxAbs := math.Max(math.Abs(vals[0]), math.Abs(vals[2]))
	if vals[2]-vals[0] <= validityPrecision*math.Max(1, maxAbs) {
		return moments, identity, nil
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)
	// Force a proper rotation: an eigenvector's sign is arbitrary, so flip
	// the last column if the determinant is -1.
	if det3(&vecs) < 0 {
		for row := 0; row < 3; row++ {
			vecs.Set(row, 2, -vecs.At(row, 2))
		}
	}
	rEA := NewRotationMatrixFromRows(
		r3.Vector{X: vecs.At(0, 0), Y: vecs.At(0, 1), Z: vecs.At(0, 2)},
		r3.Vector{X: vecs.At(1, 0), Y: vecs.At(1, 1), Z: vecs.At(1, 2)},
		r3.Vector{X: vecs.At(2, 0), Y: vecs.At(2, 1), Z: vecs.At(2, 2)},
	)
	return moments, rEA, nil
}

func det3(m *mat.Dense) float64 {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1)) -
		m.At(0, 1)*(m.At(1, 0)*m.At(2, 2)-m.At(1, 2)*m.At(2, 0)) +
		m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(1, 1)*m.At(2, 0))
}
