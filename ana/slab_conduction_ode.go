package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// SemiInfiniteSlabConductionODE numerically cross-checks
// SemiInfiniteSlabConduction.Calc by integrating the similarity-variable
// ODE T'' + 2η·T' = 0 (the reduction of the 1-D diffusion PDE under
// η = x/(2·sqrt(alpha·t))) with gosl/ode's Radau5 integrator, mirroring
// ColumnFluidPressure's Init(withNum)/CalcNum pattern: a pseudo-time
// variable T' runs over [0,1] and is rescaled to the true similarity
// variable via an arg, exactly as ColumnFluidPressure rescales its
// pseudo-time to Δz.
type SemiInfiniteSlabConductionODE struct {
	Closed SemiInfiniteSlabConduction
	sol    ode.ODE
}

// Init builds the Radau5 solver for ξ := {T, dT/dη}.
func (o *SemiInfiniteSlabConductionODE) Init() {
	silent := true
	o.sol.Init("Radau5", 2, func(f []float64, dT, T float64, ξ []float64, args ...interface{}) error {
		etaTarget := args[0].(float64)
		eta := T * etaTarget
		dTdEta := ξ[1]
		f[0] = dTdEta * etaTarget       // d(T_field)/d(pseudo time)
		f[1] = -2 * eta * dTdEta * etaTarget // d(dT/deta)/d(pseudo time)
		return nil
	}, nil, nil, nil, silent)
	o.sol.Distr = false
}

// CalcNum integrates from η=0 (T=Ts, T'(0) derived analytically from the
// closed-form erf solution) out to η = x/(2·sqrt(alpha·t)), returning the
// numerically-integrated temperature for comparison against Calc.
func (o *SemiInfiniteSlabConductionODE) CalcNum(x, t float64) (float64, error) {
	s := o.Closed
	if t <= 0 {
		return s.InitialTemperature, nil
	}
	etaTarget := x / (2 * math.Sqrt(s.Diffusivity*t))
	dTdEta0 := (s.InitialTemperature - s.SurfaceTemperature) * 2 / math.Sqrt(math.Pi)
	xi := []float64{s.SurfaceTemperature, dTdEta0}
	if err := o.sol.Solve(xi, 0, 1, 1, false, etaTarget); err != nil {
		return 0, chk.Err("SemiInfiniteSlabConductionODE.CalcNum failed: %v", err)
	}
	return xi[0], nil
}
