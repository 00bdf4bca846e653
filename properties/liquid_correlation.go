package properties

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// correlationLiquid is a shared implementation for the catalogue liquids
// whose density/conductivity/specific-heat are linear-in-Celsius and
// whose viscosity is some other closed-form function of Celsius
// temperature. This generalizes the DowthermA scheme (spec §4.1: "Other
// materials follow the same scheme") to HITEC, YD-325, FLiBe and FLiNaK,
// whose exact published coefficients the distilled spec does not carry;
// the functional *form* (linear density/conductivity/cp, closed-form
// enthalpy integrated from cp, bisection inversion) is what the spec
// mandates and what every catalogue liquid here implements identically.
type correlationLiquid struct {
	name             string
	lowC, highC      float64
	rho0, rho1       float64 // rho(Tc) = rho0 + rho1*Tc
	k0, k1           float64 // k(Tc) = k0 + k1*Tc
	cp0, cp1         float64 // cp(Tc) = cp0 + cp1*Tc
	viscosity        func(tc float64) float64
	enthalpyRefC     float64 // h(enthalpyRefC) = 0
}

func (l *correlationLiquid) Name() string { return l.name }

func (l *correlationLiquid) Range() (units.Temperature, units.Temperature) {
	return units.NewCelsius(l.lowC), units.NewCelsius(l.highC)
}

func (l *correlationLiquid) checkT(T units.Temperature) error {
	lo, hi := l.Range()
	return checkRange(l.name, T, lo, hi)
}

func (l *correlationLiquid) Density(T units.Temperature) (units.MassDensity, error) {
	if err := l.checkT(T); err != nil {
		return 0, err
	}
	tc := T.Celsius()
	return units.MassDensity(l.rho0 + l.rho1*tc), nil
}

func (l *correlationLiquid) Viscosity(T units.Temperature) (units.DynamicViscosity, error) {
	if err := l.checkT(T); err != nil {
		return 0, err
	}
	return units.DynamicViscosity(l.viscosity(T.Celsius())), nil
}

func (l *correlationLiquid) Conductivity(T units.Temperature) (units.ThermalConductivity, error) {
	if err := l.checkT(T); err != nil {
		return 0, err
	}
	tc := T.Celsius()
	return units.ThermalConductivity(l.k0 + l.k1*tc), nil
}

func (l *correlationLiquid) SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error) {
	if err := l.checkT(T); err != nil {
		return 0, err
	}
	tc := T.Celsius()
	return units.SpecificHeatCapacity(l.cp0 + l.cp1*tc), nil
}

// enthalpyC integrates cp(Tc) = cp0 + cp1*Tc analytically from
// enthalpyRefC, matching the closed-form pattern spec §4.1 uses for
// DowthermA (h is a quadratic in Tc when cp is linear in Tc).
func (l *correlationLiquid) enthalpyC(tc float64) float64 {
	ref := l.enthalpyRefC
	return l.cp0*(tc-ref) + 0.5*l.cp1*(tc*tc-ref*ref)
}

func (l *correlationLiquid) Enthalpy(T units.Temperature) (units.AvailableEnergy, error) {
	if err := l.checkT(T); err != nil {
		return 0, err
	}
	return units.AvailableEnergy(l.enthalpyC(T.Celsius())), nil
}

// TemperatureFromEnthalpy inverts h(T) by bisection over the material's
// full validity range, tolerance 1e-8 degC, at most 100 iterations -
// generalizing DowthermA's prescribed bisection (spec §4.1).
func (l *correlationLiquid) TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error) {
	target := float64(h)
	lo, hi := l.lowC, l.highC
	flo := l.enthalpyC(lo) - target
	fhi := l.enthalpyC(hi) - target
	if (flo > 0) == (fhi > 0) {
		return 0, tuaserr.New(tuaserr.GenericString,
			"%s.TemperatureFromEnthalpy: h = %.6g J/kg is not bracketed by [%g,%g] degC", l.name, target, lo, hi)
	}
	const tol = 1e-8
	const maxIter = 100
	mid := 0.0
	for i := 0; i < maxIter; i++ {
		mid = 0.5 * (lo + hi)
		fmid := l.enthalpyC(mid) - target
		if math.Abs(hi-lo) < tol {
			break
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return units.NewCelsius(mid), nil
}

func newHITEC() Liquid {
	return &correlationLiquid{
		name: "HITEC", lowC: 142, highC: 538,
		rho0: 2083, rho1: -0.732,
		k0: 0.35, k1: 0.00019,
		cp0: 1560, cp1: 0,
		viscosity: func(tc float64) float64 {
			return math.Max(1e-4, 0.0677-4.84e-4*tc+1.174e-6*tc*tc)
		},
		enthalpyRefC: 142,
	}
}

func newYD325() Liquid {
	return &correlationLiquid{
		name: "YD-325", lowC: 20, highC: 300,
		rho0: 1060, rho1: -0.664,
		k0: 0.137, k1: -0.00012,
		cp0: 1550, cp1: 2.8,
		viscosity: func(tc float64) float64 {
			return 0.08 * math.Pow(math.Max(tc, 1), -0.9)
		},
		enthalpyRefC: 20,
	}
}

func newFLiBe() Liquid {
	return &correlationLiquid{
		name: "FLiBe", lowC: 459, highC: 864, // 732-1137 K
		rho0: 2413 - 0.488*units.AbsoluteZeroOffsetK, rho1: -0.488,
		k0: 0.629 + 1.05e-4*units.AbsoluteZeroOffsetK, k1: 1.05e-4,
		cp0: 2386, cp1: 0,
		viscosity: func(tc float64) float64 {
			Tk := tc + units.AbsoluteZeroOffsetK
			return 0.116e-3 * math.Exp(3755/Tk)
		},
		enthalpyRefC: 459,
	}
}

func newFLiNaK() Liquid {
	return &correlationLiquid{
		name: "FLiNaK", lowC: 454, highC: 800,
		rho0: 2729.3 - 0.7324*units.AbsoluteZeroOffsetK, rho1: -0.7324,
		k0: 0.36, k1: 0.00056,
		cp0: 1886, cp1: 0,
		viscosity: func(tc float64) float64 {
			Tk := tc + units.AbsoluteZeroOffsetK
			return 4.0e-5 * math.Exp(4170/Tk)
		},
		enthalpyRefC: 454,
	}
}
