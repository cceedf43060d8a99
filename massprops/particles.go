package massprops

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mechkit/massmath/inertia"
	"github.com/mechkit/massmath/scalar"
)

// Particle is one point mass of a particle-cloud model, positioned from the
// cloud origin in the cloud frame.
type Particle struct {
	MassKg float64 `csv:"mass_kg"`
	XM     float64 `csv:"x_m"`
	YM     float64 `csv:"y_m"`
	ZM     float64 `csv:"z_m"`
}

// Position returns the particle's offset from the cloud origin.
func (p Particle) Position() r3.Vector {
	return r3.Vector{X: p.XM, Y: p.YM, Z: p.ZM}
}

// ReadParticlesCSV parses a particle cloud from CSV data with a
// mass_kg,x_m,y_m,z_m header row.
func ReadParticlesCSV(r io.Reader) ([]Particle, error) {
	var records []*Particle
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal particle csv")
	}
	particles := make([]Particle, 0, len(records))
	for _, rec := range records {
		particles = append(particles, *rec)
	}
	return particles, nil
}

// ReadParticlesFile loads a particle cloud from a CSV file.
func ReadParticlesFile(path string) ([]Particle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadParticlesCSV(f)
}

// ParticleCloudMassProperties sums a cloud of point masses into the mass
// properties of the rigid body they model: total mass, mass-weighted center
// of mass, and the summed point-mass inertias about the cloud origin.
// Particles with invalid mass are reported together.
func ParticleCloudMassProperties(name string, particles []Particle) (MassProperties, error) {
	if len(particles) == 0 {
		return MassProperties{}, ErrNoModelInformation
	}
	composite := MassProperties{Name: name, Inertia: inertia.NewZeroRotationalInertia[scalar.Float]()}
	var errs error
	var weightedCOM r3.Vector
	for k, p := range particles {
		contribution, err := inertia.NewPointMassInertia(scalar.Float(p.MassKg), inertia.VectorFromR3(p.Position()))
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "particle %d", k))
			continue
		}
		composite.Mass += p.MassKg
		weightedCOM = weightedCOM.Add(p.Position().Mul(p.MassKg))
		composite.Inertia.AddInPlace(contribution)
	}
	if errs != nil {
		return MassProperties{}, errs
	}
	if composite.Mass > 0 {
		composite.CenterOfMass = weightedCOM.Mul(1 / composite.Mass)
	}
	return composite, nil
}
