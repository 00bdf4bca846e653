package precomp

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/fluidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/htc"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/solidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// NonInsulatedFluidComponent is a bare pipe: a FluidArray wetting the
// inside of a pipe-shell SolidArray, losing heat directly to ambient air
// through the shell's outer surface (spec §4.8).
type NonInsulatedFluidComponent struct {
	Fluid     *fluidarray.FluidArray
	PipeShell *solidarray.SolidArray

	PipeInnerDiameter, PipeOuterDiameter units.Length

	AmbientTemperature units.Temperature
	AmbientH           units.HeatTransferCoefficient

	nusseltFactor float64
}

// NewNonInsulatedFluidComponent builds a bare-pipe component. fluid and
// pipeShell must share the same node count.
func NewNonInsulatedFluidComponent(fluid *fluidarray.FluidArray, pipeShell *solidarray.SolidArray, pipeInnerDiameter, pipeOuterDiameter units.Length, ambientT units.Temperature, ambientH units.HeatTransferCoefficient) *NonInsulatedFluidComponent {
	return &NonInsulatedFluidComponent{
		Fluid:              fluid,
		PipeShell:          pipeShell,
		PipeInnerDiameter:  pipeInnerDiameter,
		PipeOuterDiameter:  pipeOuterDiameter,
		AmbientTemperature: ambientT,
		AmbientH:           ambientH,
		nusseltFactor:      1.0,
	}
}

// SetNusseltCalibrationFactor scales the fluid side's Nusselt-correlation
// output via calibrate, which replaces the factor of an already
// calibrated correlation or wraps a PipeGnielinskiGeneric (spec §4.8
// calibration knob (b)).
func (c *NonInsulatedFluidComponent) SetNusseltCalibrationFactor(factor float64) {
	c.nusseltFactor = factor
	c.Fluid.Nusselt = calibrate(c.Fluid.Nusselt, factor)
}

// SetInsulationThickness is a no-op for a non-insulated component,
// present only so callers iterating over the precomp.FluidComponent-ish
// catalogue interface can call it uniformly; a bare pipe has no
// insulation layer to resize.
func (c *NonInsulatedFluidComponent) SetInsulationThickness(units.Length) error { return nil }

// GetPressureChange delegates to the fluid side, satisfying
// hydro.FluidComponent.
func (c *NonInsulatedFluidComponent) GetPressureChange(m units.MassRate, Tref units.Temperature) (units.Pressure, error) {
	return c.Fluid.GetPressureChange(m, Tref)
}

// AdvanceTimestep performs the lateral fluid<->shell and shell<->ambient
// couplings, then advances both arrays (spec §5 ordering: all link_*
// calls complete before advance_timestep).
func (c *NonInsulatedFluidComponent) AdvanceTimestep(dt units.Time, m units.MassRate) error {
	G, err := fluidToSolidConductance(c.Fluid, c.PipeShell, c.PipeInnerDiameter, c.PipeOuterDiameter, htc.LiquidInside)
	if err != nil {
		return err
	}
	if err := linkFluidSolid(c.Fluid, c.PipeShell, G); err != nil {
		return err
	}
	if err := linkAmbientLoss(c.PipeShell, c.PipeOuterDiameter, c.AmbientTemperature, c.AmbientH); err != nil {
		return err
	}
	if err := c.Fluid.AdvanceTimestepWithMassFlowrate(dt, m); err != nil {
		return err
	}
	return c.PipeShell.AdvanceTimestep(dt)
}
