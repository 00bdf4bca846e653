package properties

import (
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// CustomLiquid carries user-supplied property closures (spec §3:
// "CustomLiquid with the analogous closures"). Enthalpy is derived by
// numerically integrating SpecificHeat from LowT unless an explicit
// EnthalpyFn is supplied; TemperatureFromEnthalpy falls back to a
// Brent root-find on Enthalpy(T) - h = 0, bracketed by the declared range,
// for materials whose enthalpy is not analytically invertible.
type CustomLiquid struct {
	MaterialName string
	LowT, HighT  units.Temperature
	DensityFn    func(units.Temperature) units.MassDensity
	ViscosityFn  func(units.Temperature) units.DynamicViscosity
	ConductFn    func(units.Temperature) units.ThermalConductivity
	SpecificHeatFn func(units.Temperature) units.SpecificHeatCapacity
	EnthalpyFn   func(units.Temperature) units.AvailableEnergy // optional
}

// NewCustomLiquid validates the closures are present and returns a Liquid.
func NewCustomLiquid(c CustomLiquid) (Liquid, error) {
	if c.DensityFn == nil || c.ViscosityFn == nil || c.ConductFn == nil || c.SpecificHeatFn == nil {
		return nil, tuaserr.New(tuaserr.GenericString, "CustomLiquid %q: all of Density/Viscosity/Conduct/SpecificHeat closures are required", c.MaterialName)
	}
	if c.HighT <= c.LowT {
		return nil, tuaserr.New(tuaserr.GenericString, "CustomLiquid %q: HighT must exceed LowT", c.MaterialName)
	}
	cc := c
	return &cc, nil
}

func (c *CustomLiquid) Name() string { return c.MaterialName }

func (c *CustomLiquid) Range() (units.Temperature, units.Temperature) { return c.LowT, c.HighT }

func (c *CustomLiquid) checkT(T units.Temperature) error {
	return checkRange(c.MaterialName, T, c.LowT, c.HighT)
}

func (c *CustomLiquid) Density(T units.Temperature) (units.MassDensity, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	return c.DensityFn(T), nil
}

func (c *CustomLiquid) Viscosity(T units.Temperature) (units.DynamicViscosity, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	return c.ViscosityFn(T), nil
}

func (c *CustomLiquid) Conductivity(T units.Temperature) (units.ThermalConductivity, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	return c.ConductFn(T), nil
}

func (c *CustomLiquid) SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	return c.SpecificHeatFn(T), nil
}

func (c *CustomLiquid) Enthalpy(T units.Temperature) (units.AvailableEnergy, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	if c.EnthalpyFn != nil {
		return c.EnthalpyFn(T), nil
	}
	// numerically integrate cp from LowT using the trapezoid rule over
	// a fine subdivision; adequate since CustomLiquid closures are
	// typically smooth engineering correlations.
	const n = 200
	lo, hi := c.LowT.Kelvin(), T.Kelvin()
	step := (hi - lo) / n
	sum := 0.0
	prev, _ := c.SpecificHeatFn(units.NewKelvin(lo)), error(nil)
	for i := 1; i <= n; i++ {
		tk := lo + float64(i)*step
		cur := c.SpecificHeatFn(units.NewKelvin(tk))
		sum += 0.5 * (float64(prev) + float64(cur)) * step
		prev = cur
	}
	return units.AvailableEnergy(sum), nil
}

func (c *CustomLiquid) TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error) {
	target := float64(h)
	f := func(tk float64) float64 {
		hv, _ := c.Enthalpy(units.NewKelvin(tk))
		return float64(hv) - target
	}
	lo, hi := c.LowT.Kelvin(), c.HighT.Kelvin()
	flo, fhi := f(lo), f(hi)
	if (flo > 0) == (fhi > 0) {
		return 0, tuaserr.New(tuaserr.GenericString,
			"%s.TemperatureFromEnthalpy: h = %.6g J/kg not bracketed by [%g,%g] K", c.MaterialName, target, lo, hi)
	}
	brent := num.NewBrent(f, nil)
	root, err := brent.Root(lo, hi)
	if err != nil {
		return 0, tuaserr.New(tuaserr.GenericString, "%s.TemperatureFromEnthalpy: Brent refinement failed: %v", c.MaterialName, err)
	}
	if math.IsNaN(root) {
		return 0, tuaserr.New(tuaserr.GenericString, "%s.TemperatureFromEnthalpy: Brent returned NaN", c.MaterialName)
	}
	return units.NewKelvin(root), nil
}
