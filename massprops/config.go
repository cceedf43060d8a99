package massprops

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/mechkit/massmath/inertia"
	"github.com/mechkit/massmath/scalar"
)

// ErrNoModelInformation is used when a model file contains no bodies.
var ErrNoModelInformation = errors.New("no mass-properties information")

// BodyConfig represents one body's user-supplied mass properties in a model
// file. Moments are [Ixx, Iyy, Izz] and products [Ixy, Ixz, Iyz], both about
// the body origin in the body frame, with the negated product convention.
type BodyConfig struct {
	Name          string     `json:"name" yaml:"name"`
	MassKg        float64    `json:"mass_kg" yaml:"mass_kg"`
	CenterOfMassM [3]float64 `json:"center_of_mass_m" yaml:"center_of_mass_m"`
	MomentsKgm2   [3]float64 `json:"moments_kgm2" yaml:"moments_kgm2"`
	ProductsKgm2  [3]float64 `json:"products_kgm2" yaml:"products_kgm2"`
}

// ModelConfig represents all supported fields in a mass-properties model
// file.
type ModelConfig struct {
	Name   string       `json:"name" yaml:"name"`
	Bodies []BodyConfig `json:"bodies" yaml:"bodies"`
}

// ParseConfig converts a BodyConfig into validated MassProperties. The
// inertia construction is checked, so physically implausible user input is
// rejected here, at model-build time.
func (cfg *BodyConfig) ParseConfig() (MassProperties, error) {
	tensor, err := inertia.NewRotationalInertia(
		scalar.Float(cfg.MomentsKgm2[0]), scalar.Float(cfg.MomentsKgm2[1]), scalar.Float(cfg.MomentsKgm2[2]),
		scalar.Float(cfg.ProductsKgm2[0]), scalar.Float(cfg.ProductsKgm2[1]), scalar.Float(cfg.ProductsKgm2[2]),
	)
	if err != nil {
		return MassProperties{}, errors.Wrapf(err, "body %q", cfg.Name)
	}
	mp := MassProperties{
		Name:         cfg.Name,
		Mass:         cfg.MassKg,
		CenterOfMass: r3.Vector{X: cfg.CenterOfMassM[0], Y: cfg.CenterOfMassM[1], Z: cfg.CenterOfMassM[2]},
		Inertia:      tensor,
	}
	if err := mp.Validate(); err != nil {
		return MassProperties{}, err
	}
	return mp, nil
}

// ParseConfig converts a ModelConfig into the validated mass properties of
// its bodies, aggregating the validation failures of all bad bodies.
func (cfg *ModelConfig) ParseConfig() ([]MassProperties, error) {
	if len(cfg.Bodies) == 0 {
		return nil, ErrNoModelInformation
	}
	var errs error
	bodies := make([]MassProperties, 0, len(cfg.Bodies))
	for i := range cfg.Bodies {
		mp, err := cfg.Bodies[i].ParseConfig()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		bodies = append(bodies, mp)
	}
	if errs != nil {
		return nil, errs
	}
	return bodies, nil
}

// UnmarshalModelJSON parses JSON model data into validated mass properties.
func UnmarshalModelJSON(jsonData []byte) ([]MassProperties, error) {
	if len(jsonData) == 0 {
		return nil, ErrNoModelInformation
	}
	var cfg ModelConfig
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal json model file")
	}
	return cfg.ParseConfig()
}

// UnmarshalModelYAML parses YAML model data into validated mass properties.
func UnmarshalModelYAML(yamlData []byte) ([]MassProperties, error) {
	if len(yamlData) == 0 {
		return nil, ErrNoModelInformation
	}
	var cfg ModelConfig
	if err := yaml.Unmarshal(yamlData, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal yaml model file")
	}
	return cfg.ParseConfig()
}

// ReadModelFile loads a mass-properties model from a JSON or YAML file,
// dispatching on the file extension.
func ReadModelFile(path string) ([]MassProperties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return UnmarshalModelJSON(data)
	case ".yaml", ".yml":
		return UnmarshalModelYAML(data)
	default:
		return nil, errors.Errorf("unsupported model file extension %q", filepath.Ext(path))
	}
}
