package hydro

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// FluidComponentCollection is a series chain of FluidComponents whose
// pressure changes add along the flow path (spec §4.7).
type FluidComponentCollection struct {
	Components []FluidComponent
	Tref       units.Temperature
}

// NewSeries builds a FluidComponentCollection from zero or more
// components evaluated at a common reference temperature.
func NewSeries(tref units.Temperature, components ...FluidComponent) *FluidComponentCollection {
	return &FluidComponentCollection{Components: append([]FluidComponent(nil), components...), Tref: tref}
}

// Add appends a component to the series chain.
func (c *FluidComponentCollection) Add(fc FluidComponent) {
	c.Components = append(c.Components, fc)
}

// GetPressureChange sums each component's pressure change at mass
// flowrate m (spec §4.7 "series collection: pressure change adds along
// the chain").
func (c *FluidComponentCollection) GetPressureChange(m units.MassRate) (units.Pressure, error) {
	total := 0.0
	for _, comp := range c.Components {
		dp, err := comp.GetPressureChange(m, c.Tref)
		if err != nil {
			return 0, err
		}
		total += float64(dp)
	}
	return units.Pressure(total), nil
}

// GetMassFlowrate inverts GetPressureChange via Brent root-finding on
// Δp(m) - Δp_target = 0, with bracket escalation and a manometer-error
// short-circuit: if |Δp_target - Δp(0)| < 9 Pa, returns m = 0 directly
// (spec §4.7).
func (c *FluidComponentCollection) GetMassFlowrate(target units.Pressure) (units.MassRate, error) {
	dp0, err := c.GetPressureChange(0)
	if err != nil {
		return 0, err
	}
	if math.Abs(float64(target)-float64(dp0)) < 9.0 {
		return 0, nil
	}
	f := func(m float64) float64 {
		dp, err := c.GetPressureChange(units.MassRate(m))
		if err != nil {
			return math.NaN()
		}
		return float64(dp) - float64(target)
	}
	root, err := solveBrent70(f)
	if err != nil {
		return 0, err
	}
	return units.MassRate(root), nil
}
