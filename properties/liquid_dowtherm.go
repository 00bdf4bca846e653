package properties

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// dowthermA implements the DowthermA/TherminolVP1 correlation set (spec
// §4.1), valid 20-180 degC. TherminolVP1 is a synonym catalogued under a
// different name but backed by the same formulas (original Rust
// boussinesq_thermophysical_properties/liquid_database/dowtherm_a.rs
// treats the two as one substance).
type dowthermA struct {
	name string
}

func newDowthermA(name string) *dowthermA { return &dowthermA{name: name} }

func (d *dowthermA) Name() string { return d.name }

func (d *dowthermA) Range() (units.Temperature, units.Temperature) {
	return units.NewCelsius(20), units.NewCelsius(180)
}

func (d *dowthermA) checkT(T units.Temperature) error {
	lo, hi := d.Range()
	return checkRange(d.name, T, lo, hi)
}

func (d *dowthermA) Density(T units.Temperature) (units.MassDensity, error) {
	if err := d.checkT(T); err != nil {
		return 0, err
	}
	tc := T.Celsius()
	return units.MassDensity(1078 - 0.85*tc), nil
}

func (d *dowthermA) Viscosity(T units.Temperature) (units.DynamicViscosity, error) {
	if err := d.checkT(T); err != nil {
		return 0, err
	}
	tc := T.Celsius()
	return units.DynamicViscosity(0.130 * math.Pow(tc, -1.072)), nil
}

func (d *dowthermA) Conductivity(T units.Temperature) (units.ThermalConductivity, error) {
	if err := d.checkT(T); err != nil {
		return 0, err
	}
	tc := T.Celsius()
	return units.ThermalConductivity(0.142 - 0.00016*tc), nil
}

func (d *dowthermA) SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error) {
	if err := d.checkT(T); err != nil {
		return 0, err
	}
	tc := T.Celsius()
	return units.SpecificHeatCapacity(1518 + 2.82*tc), nil
}

// dowthermEnthalpyC is the closed-form h(T_C) with reference h(20 degC) = 0.
func dowthermEnthalpyC(tc float64) float64 {
	return 1518*tc + 1.41*tc*tc - 30924
}

func (d *dowthermA) Enthalpy(T units.Temperature) (units.AvailableEnergy, error) {
	if err := d.checkT(T); err != nil {
		return 0, err
	}
	return units.AvailableEnergy(dowthermEnthalpyC(T.Celsius())), nil
}

// TemperatureFromEnthalpy inverts h(T) by bisection in [20, 180] degC with
// tolerance 1e-8 and at most 100 iterations, per spec §4.1.
func (d *dowthermA) TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error) {
	target := float64(h)
	lo, hi := 20.0, 180.0
	flo := dowthermEnthalpyC(lo) - target
	fhi := dowthermEnthalpyC(hi) - target
	if flo > 0 == fhi > 0 {
		return 0, tuaserr.New(tuaserr.GenericString,
			"%s.TemperatureFromEnthalpy: h = %.6g J/kg is not bracketed by the material's [20,180] degC range", d.name, target)
	}
	const tol = 1e-8
	const maxIter = 100
	mid := 0.0
	for i := 0; i < maxIter; i++ {
		mid = 0.5 * (lo + hi)
		fmid := dowthermEnthalpyC(mid) - target
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
