package properties

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"

// newSS304L builds the stainless-steel 304L model following the same
// tabulated-spline scheme as Copper (spec §4.1: "Other materials follow
// the same scheme"), valid 250-1000 K.
func newSS304L() Solid {
	kNodesT := []float64{250, 300, 400, 500, 600, 700, 800, 900, 1000}
	kNodesV := []float64{14.0, 14.6, 15.8, 17.0, 18.3, 19.5, 20.8, 22.0, 23.3}

	cpNodesT := []float64{250, 300, 400, 500, 600, 700, 800, 900, 1000}
	cpNodesV := []float64{470, 500, 512, 525, 540, 557, 575, 590, 605}

	return newSplineSolid("SS304L", units.NewKelvin(250), units.NewKelvin(1000), 8000, 1.5e-6,
		kNodesT, kNodesV, nil, cpNodesT, cpNodesV)
}
