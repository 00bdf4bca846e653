package properties

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"

// newFiberglass builds the Fiberglass insulation model (spec §4.1):
// rho = 20 kg/m3; cp = 844 J/(kg K) constant; k by natural cubic spline
// over 250-600 K; h = 844*(T - 273.15).
func newFiberglass() Solid {
	kNodesT := []float64{250, 300, 350, 400, 450, 500, 550, 600}
	kNodesV := []float64{0.030, 0.033, 0.036, 0.040, 0.045, 0.051, 0.058, 0.066}
	cpConst := 844.0

	s := newSplineSolid("Fiberglass", units.NewKelvin(250), units.NewKelvin(600), 20, 5e-5,
		kNodesT, kNodesV, &cpConst, nil, nil)
	s.enthalpyOverride = func(Tk float64) float64 { return 844 * (Tk - units.AbsoluteZeroOffsetK) }
	return s
}
