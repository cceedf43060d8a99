// Package main provides the massinfo CLI for inspecting mass-properties
// model files and particle clouds.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/edaniels/golog"

	"github.com/mechkit/massmath/massprops"
)

var logger = golog.NewDevelopmentLogger("massinfo")

func main() {
	if len(os.Args) <= 1 {
		fmt.Println("usage: massinfo <model.json|model.yaml|cloud.csv>")
		os.Exit(1)
	}
	path := os.Args[1]

	var bodies []massprops.MassProperties
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		particles, err := massprops.ReadParticlesFile(path)
		if err != nil {
			logger.Fatal(err)
		}
		cloud, err := massprops.ParticleCloudMassProperties(filepath.Base(path), particles)
		if err != nil {
			logger.Fatal(err)
		}
		bodies = []massprops.MassProperties{cloud}
	default:
		var err error
		bodies, err = massprops.ReadModelFile(path)
		if err != nil {
			logger.Fatal(err)
		}
	}

	for _, body := range bodies {
		report(body)
	}
	if len(bodies) > 1 {
		composite, err := massprops.Combine("composite", bodies...)
		if err != nil {
			logger.Fatal(err)
		}
		report(composite)
	}
}

func report(body massprops.MassProperties) {
	logger.Info(body.String())
	aboutCOM, err := body.AboutCenterOfMass()
	if err != nil {
		logger.Fatalw("inertia is not valid about the center of mass", "body", body.Name, "error", err)
	}
	moments, axes, err := aboutCOM.PrincipalMomentsAndAxes()
	if err != nil {
		logger.Fatalw("cannot diagonalize inertia", "body", body.Name, "error", err)
	}
	logger.Infof("%s: principal moments about COM: [%.6f %.6f %.6f]", body.Name, moments.X, moments.Y, moments.Z)
	for row := 0; row < 3; row++ {
		logger.Infof("%s: principal axes row %d: [%8.5f %8.5f %8.5f]",
			body.Name, row, axes.At(row, 0), axes.At(row, 1), axes.At(row, 2))
	}
}
