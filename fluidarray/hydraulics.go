package fluidarray

import (
	"math"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/corr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// GetPressureChange implements the per-component hydraulics formula of
// spec §4.7 at reference temperature Tref (used for evaluating rho and
// mu), satisfying hydro.FluidComponent without fluidarray importing
// hydro. Sign of the friction term is preserved through v*|v| so reverse
// flow yields the mirrored pressure change, per spec "for laminar
// Re->|Re|, sign preserved for forward/reverse flow".
func (fa *FluidArray) GetPressureChange(m units.MassRate, Tref units.Temperature) (units.Pressure, error) {
	liquid, err := fa.Material.AsLiquid()
	if err != nil {
		return 0, err
	}
	rho, err := liquid.Density(Tref)
	if err != nil {
		return 0, err
	}
	mu, err := liquid.Viscosity(Tref)
	if err != nil {
		return 0, err
	}
	dh := float64(fa.HydraulicDiameter())
	v := float64(m) / (float64(rho) * float64(fa.FlowArea))
	re := float64(rho) * v * dh / float64(mu)

	var f, k float64
	if fa.Loss != nil {
		f = fa.Loss.DarcyFrictionFactor(re)
		k = fa.Loss.FormLossCoefficient(re)
	}
	friction := 0.5 * float64(rho) * v * math.Abs(v) * (f*float64(fa.Length)/dh + k)
	hydrostatic := float64(rho) * corr.StandardGravity * float64(fa.Length) * math.Sin(fa.Incline.Radians())

	return units.Pressure(float64(fa.InternalPressureSource) - hydrostatic - friction), nil
}
