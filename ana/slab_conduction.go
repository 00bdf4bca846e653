// Package ana holds closed-form analytic reference solutions used to
// cross-check the discretized solver (spec §8), mirroring
// ana.ColumnFluidPressure's "closed form plus an optional ODE-integrated
// numerical companion" shape from the teacher repository.
package ana

import "math"

// SemiInfiniteSlabConduction is the classic 1-D transient conduction
// solution for a semi-infinite solid whose surface is suddenly held at a
// fixed temperature at t=0 (spec §8 scenario 1: a finite slab is short
// enough relative to the conduction timescale under test that the
// semi-infinite approximation holds at the probed depth).
type SemiInfiniteSlabConduction struct {
	InitialTemperature float64 // Ti, deg C or K (consistent with SurfaceTemperature)
	SurfaceTemperature float64 // Ts, suddenly imposed at x=0, t=0
	Diffusivity        float64 // alpha = k/(rho*cp), m^2/s
}

// Calc returns the temperature at depth x and time t:
//
//	T(x,t) = Ts + (Ti - Ts)*erf(x / (2*sqrt(alpha*t)))
//
// which is equivalent to the usual erfc form
// (T(x,t)-Ti)/(Ts-Ti) = erfc(x/(2*sqrt(alpha*t))).
func (s SemiInfiniteSlabConduction) Calc(x, t float64) float64 {
	if t <= 0 {
		return s.InitialTemperature
	}
	eta := x / (2 * math.Sqrt(s.Diffusivity*t))
	return s.SurfaceTemperature + (s.InitialTemperature-s.SurfaceTemperature)*math.Erf(eta)
}

// SurfaceHeatFlux returns the instantaneous conductive flux at x=0:
// q''(t) = k*(Ts-Ti)/sqrt(pi*alpha*t), using the supplied conductivity k.
func (s SemiInfiniteSlabConduction) SurfaceHeatFlux(k, t float64) float64 {
	if t <= 0 {
		return math.Inf(1)
	}
	return k * (s.SurfaceTemperature - s.InitialTemperature) / math.Sqrt(math.Pi*s.Diffusivity*t)
}
