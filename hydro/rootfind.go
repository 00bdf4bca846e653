package hydro

import (
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
)

// bracketEscalation finds [lo,hi] such that f(lo) and f(hi) have opposite
// signs, widening the bracket per spec §4.7's "[-10,+10] then [-1e4,+1e4]
// then [-2e7,+2e7]" escalation ladder.
func bracketEscalation(f func(float64) float64) (lo, hi float64, err error) {
	rungs := [][2]float64{{-10, 10}, {-1e4, 1e4}, {-2e7, 2e7}}
	for _, r := range rungs {
		flo, fhi := f(r[0]), f(r[1])
		if (flo > 0) != (fhi > 0) {
			return r[0], r[1], nil
		}
	}
	return 0, 0, tuaserr.New(tuaserr.GenericString, "hydro: failed to bracket a root within the [-2e7,2e7] escalation ladder")
}

// solveBrent70 runs Brent's method with the spec's standard tolerance
// (1e-8) and iteration cap (70) over an escalated bracket.
func solveBrent70(f func(float64) float64) (float64, error) {
	lo, hi, err := bracketEscalation(f)
	if err != nil {
		return 0, err
	}
	brent := num.NewBrent(f, &num.BrentParams{Tol: 1e-8, MaxIt: 70})
	root, err := brent.Root(lo, hi)
	if err != nil {
		return 0, tuaserr.New(tuaserr.GenericString, "hydro: Brent root-find failed: %v", err)
	}
	if math.IsNaN(root) {
		return 0, tuaserr.New(tuaserr.GenericString, "hydro: Brent returned NaN")
	}
	return root, nil
}
