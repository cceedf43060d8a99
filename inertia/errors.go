package inertia

import "github.com/pkg/errors"

var (
	// ErrNotPhysicallyValid is returned when a construction or operation
	// produces a tensor that fails the CouldBePhysicallyValid checks.
	ErrNotPhysicallyValid = errors.New("rotational inertia could not be physically valid")

	// ErrNegativeScalar is returned when a rotational inertia is multiplied
	// by a negative scalar.
	ErrNegativeScalar = errors.New("rotational inertia multiplied by a negative scalar")

	// ErrNonPositiveScalar is returned when a rotational inertia is divided
	// by zero or a negative scalar.
	ErrNonPositiveScalar = errors.New("rotational inertia divided by a non-positive scalar")

	// ErrNonRealScalar is returned when an operation needs finite real
	// numbers but the scalar values cannot be reduced to them.
	ErrNonRealScalar = errors.New("scalar values cannot be reduced to finite real numbers")

	errEigenFailed = errors.New("symmetric eigenvalue decomposition failed")
)

// newBadSolidDimensionsError returns an error indicating that a solid-body
// constructor was given dimensions that cannot describe a real solid.
func newBadSolidDimensionsError(shape string) error {
	return errors.Errorf("%s dimensions must be non-negative", shape)
}
