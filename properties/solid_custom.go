package properties

import (
	"github.com/cpmech/gosl/num"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// CustomSolid carries (low_T, high_T) bounds and cp(T)/k(T)/rho(T)/
// roughness closures supplied by the caller (spec §3).
type CustomSolid struct {
	MaterialName   string
	LowT, HighT    units.Temperature
	DensityFn      func(units.Temperature) units.MassDensity
	ConductFn      func(units.Temperature) units.ThermalConductivity
	SpecificHeatFn func(units.Temperature) units.SpecificHeatCapacity
	RoughnessValue units.Length
	EnthalpyFn     func(units.Temperature) units.AvailableEnergy // optional
}

// NewCustomSolid validates the closures are present and returns a Solid.
func NewCustomSolid(c CustomSolid) (Solid, error) {
	if c.DensityFn == nil || c.ConductFn == nil || c.SpecificHeatFn == nil {
		return nil, tuaserr.New(tuaserr.GenericString, "CustomSolid %q: Density/Conduct/SpecificHeat closures are required", c.MaterialName)
	}
	if c.HighT <= c.LowT {
		return nil, tuaserr.New(tuaserr.GenericString, "CustomSolid %q: HighT must exceed LowT", c.MaterialName)
	}
	cc := c
	return &cc, nil
}

func (c *CustomSolid) Name() string { return c.MaterialName }
func (c *CustomSolid) Range() (units.Temperature, units.Temperature) { return c.LowT, c.HighT }
func (c *CustomSolid) Roughness() units.Length { return c.RoughnessValue }

func (c *CustomSolid) checkT(T units.Temperature) error {
	return checkRange(c.MaterialName, T, c.LowT, c.HighT)
}

func (c *CustomSolid) Density(T units.Temperature) (units.MassDensity, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	return c.DensityFn(T), nil
}

func (c *CustomSolid) Conductivity(T units.Temperature) (units.ThermalConductivity, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	return c.ConductFn(T), nil
}

func (c *CustomSolid) SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	return c.SpecificHeatFn(T), nil
}

func (c *CustomSolid) Enthalpy(T units.Temperature) (units.AvailableEnergy, error) {
	if err := c.checkT(T); err != nil {
		return 0, err
	}
	if c.EnthalpyFn != nil {
		return c.EnthalpyFn(T), nil
	}
	const n = 200
	lo, hi := c.LowT.Kelvin(), T.Kelvin()
	step := (hi - lo) / n
	sum := 0.0
	prev := c.SpecificHeatFn(units.NewKelvin(lo))
	for i := 1; i <= n; i++ {
		tk := lo + float64(i)*step
		cur := c.SpecificHeatFn(units.NewKelvin(tk))
		sum += 0.5 * (float64(prev) + float64(cur)) * step
		prev = cur
	}
	return units.AvailableEnergy(sum), nil
}

func (c *CustomSolid) TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error) {
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
	brent := num.NewBrent(f, &num.BrentParams{Tol: 1e-8, MaxIt: 30})
	root, err := brent.Root(lo, hi)
	if err != nil {
		return 0, tuaserr.New(tuaserr.GenericString, "%s.TemperatureFromEnthalpy: Brent failed: %v", c.MaterialName, err)
	}
	return units.NewKelvin(root), nil
}
