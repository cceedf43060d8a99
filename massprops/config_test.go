package massprops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"

	"github.com/mechkit/massmath/inertia"
)

const modelJSON = `{
	"name": "rover",
	"bodies": [
		{
			"name": "chassis",
			"mass_kg": 12,
			"center_of_mass_m": [0, 0, 0.1],
			"moments_kgm2": [13, 10, 5],
			"products_kgm2": [0, 0, 0]
		},
		{
			"name": "arm",
			"mass_kg": 3,
			"center_of_mass_m": [0.5, 0, 0.3],
			"moments_kgm2": [0.4, 0.5, 0.6],
			"products_kgm2": [0.05, -0.05, 0.01]
		}
	]
}`

const modelYAML = `name: rover
bodies:
  - name: chassis
    mass_kg: 12
    center_of_mass_m: [0, 0, 0.1]
    moments_kgm2: [13, 10, 5]
    products_kgm2: [0, 0, 0]
  - name: arm
    mass_kg: 3
    center_of_mass_m: [0.5, 0, 0.3]
    moments_kgm2: [0.4, 0.5, 0.6]
    products_kgm2: [0.05, -0.05, 0.01]
`

func TestUnmarshalModel(t *testing.T) {
	fromJSON, err := UnmarshalModelJSON([]byte(modelJSON))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(fromJSON), test.ShouldEqual, 2)
	test.That(t, fromJSON[0].Name, test.ShouldEqual, "chassis")
	test.That(t, fromJSON[0].Mass, test.ShouldEqual, 12.)
	test.That(t, fromJSON[0].CenterOfMass, test.ShouldResemble, r3.Vector{Z: 0.1})
	checkInertiaComponents(t, fromJSON[0].Inertia, r3.Vector{X: 13, Y: 10, Z: 5}, r3.Vector{})

	t.Run("yaml parses to the same model", func(t *testing.T) {
		fromYAML, err := UnmarshalModelYAML([]byte(modelYAML))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, fromYAML, test.ShouldResemble, fromJSON)
	})

	t.Run("empty data", func(t *testing.T) {
		_, err := UnmarshalModelJSON(nil)
		test.That(t, errors.Is(err, ErrNoModelInformation), test.ShouldBeTrue)
		_, err = UnmarshalModelYAML(nil)
		test.That(t, errors.Is(err, ErrNoModelInformation), test.ShouldBeTrue)
	})

	t.Run("no bodies", func(t *testing.T) {
		_, err := UnmarshalModelJSON([]byte(`{"name": "empty", "bodies": []}`))
		test.That(t, errors.Is(err, ErrNoModelInformation), test.ShouldBeTrue)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := UnmarshalModelJSON([]byte(`{"bodies": [`))
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestParseConfigRejectsBadBodies(t *testing.T) {
	t.Run("implausible tensor names the body", func(t *testing.T) {
		cfg := BodyConfig{Name: "lump", MassKg: 1, MomentsKgm2: [3]float64{10, 10, 30}}
		_, err := cfg.ParseConfig()
		test.That(t, errors.Is(err, inertia.ErrNotPhysicallyValid), test.ShouldBeTrue)
		test.That(t, err.Error(), test.ShouldContainSubstring, `body "lump"`)
	})

	t.Run("negative mass", func(t *testing.T) {
		cfg := BodyConfig{Name: "lump", MassKg: -1, MomentsKgm2: [3]float64{1, 1, 1}}
		_, err := cfg.ParseConfig()
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("all bad bodies are reported together", func(t *testing.T) {
		cfg := ModelConfig{Bodies: []BodyConfig{
			{Name: "first", MassKg: 1, MomentsKgm2: [3]float64{10, 10, 30}},
			{Name: "ok", MassKg: 1, MomentsKgm2: [3]float64{1, 1, 1}},
			{Name: "second", MassKg: -1, MomentsKgm2: [3]float64{1, 1, 1}},
		}}
		_, err := cfg.ParseConfig()
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 2)
		test.That(t, err.Error(), test.ShouldContainSubstring, "first")
		test.That(t, err.Error(), test.ShouldContainSubstring, "second")
	})
}

func TestReadModelFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		test.That(t, os.WriteFile(path, []byte(data), 0o600), test.ShouldBeNil)
		return path
	}

	jsonBodies, err := ReadModelFile(write("model.json", modelJSON))
	test.That(t, err, test.ShouldBeNil)
	yamlBodies, err := ReadModelFile(write("model.yaml", modelYAML))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, yamlBodies, test.ShouldResemble, jsonBodies)

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ReadModelFile(write("model.toml", "name = \"rover\"\n"))
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadModelFile(filepath.Join(dir, "nope.json"))
		test.That(t, err, test.ShouldNotBeNil)
	})
}
