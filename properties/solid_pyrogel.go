package properties

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"

// newPyrogelHPS builds the Pyrogel HPS aerogel insulation model,
// following the same tabulated-spline scheme as Fiberglass, valid
// 250-920 K (Pyrogel HPS is rated to much higher temperatures than
// fiberglass, which is why it appears as a separate catalogue entry).
func newPyrogelHPS() Solid {
	kNodesT := []float64{250, 300, 400, 500, 600, 700, 800, 920}
	kNodesV := []float64{0.018, 0.021, 0.026, 0.032, 0.040, 0.050, 0.062, 0.078}
	cpConst := 1040.0

	s := newSplineSolid("PyrogelHPS", units.NewKelvin(250), units.NewKelvin(920), 150, 2e-5,
		kNodesT, kNodesV, &cpConst, nil, nil)
	s.enthalpyOverride = func(Tk float64) float64 { return 1040 * (Tk - 250) }
	return s
}
