package precomp

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/fluidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/htc"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/solidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// InsulatedFluidComponent is a FluidArray wetting a pipe-shell SolidArray
// wrapped by an insulation SolidArray, losing heat to ambient through the
// insulation's outer surface (spec §4.8): three parallel lateral-linked
// arrays.
type InsulatedFluidComponent struct {
	Fluid      *fluidarray.FluidArray
	PipeShell  *solidarray.SolidArray
	Insulation *solidarray.SolidArray

	PipeInnerDiameter, PipeOuterDiameter units.Length
	InsulationMaterial                  properties.Material
	InsulationThickness                 units.Length

	AmbientTemperature units.Temperature
	AmbientH           units.HeatTransferCoefficient
}

// NewInsulatedFluidComponent builds a fully-insulated pipe component; the
// insulation SolidArray is sized from pipeOuterDiameter and
// insulationThickness at construction time.
func NewInsulatedFluidComponent(fluid *fluidarray.FluidArray, pipeShell *solidarray.SolidArray, pipeInnerDiameter, pipeOuterDiameter units.Length, insulationMaterial properties.Material, insulationThickness units.Length, innerNodeCount int, ambientT units.Temperature, ambientH units.HeatTransferCoefficient) (*InsulatedFluidComponent, error) {
	insulationOD := units.Length(float64(pipeOuterDiameter) + 2*float64(insulationThickness))
	insulation, err := solidarray.NewCylindricalShell(insulationMaterial, pipeOuterDiameter, insulationOD, fluid.Length, innerNodeCount, pipeShell.GetTemperatureVector()[0])
	if err != nil {
		return nil, err
	}
	return &InsulatedFluidComponent{
		Fluid:               fluid,
		PipeShell:           pipeShell,
		Insulation:          insulation,
		PipeInnerDiameter:   pipeInnerDiameter,
		PipeOuterDiameter:   pipeOuterDiameter,
		InsulationMaterial:  insulationMaterial,
		InsulationThickness: insulationThickness,
		AmbientTemperature:  ambientT,
		AmbientH:            ambientH,
	}, nil
}

func (c *InsulatedFluidComponent) insulationOuterDiameter() units.Length {
	return units.Length(float64(c.PipeOuterDiameter) + 2*float64(c.InsulationThickness))
}

// SetInsulationThickness rebuilds the insulation SolidArray's geometry in
// place at the new thickness, preserving its current node temperatures
// (spec §4.8 calibration knob (a)).
func (c *InsulatedFluidComponent) SetInsulationThickness(thickness units.Length) error {
	c.InsulationThickness = thickness
	rebuilt, err := solidarray.NewCylindricalShell(c.InsulationMaterial, c.PipeOuterDiameter, c.insulationOuterDiameter(), c.Fluid.Length, c.Insulation.N()-2, c.Insulation.GetTemperatureVector()[0])
	if err != nil {
		return err
	}
	temps := c.Insulation.GetTemperatureVector()
	for i, t := range temps {
		rebuilt.SetNodeTemperature(i, t)
	}
	c.Insulation = rebuilt
	return nil
}

// SetNusseltCalibrationFactor scales the fluid side's Nusselt-correlation
// output (spec §4.8 calibration knob (b)).
func (c *InsulatedFluidComponent) SetNusseltCalibrationFactor(factor float64) {
	c.Fluid.Nusselt = calibrate(c.Fluid.Nusselt, factor)
}

// GetPressureChange delegates to the fluid side, satisfying
// hydro.FluidComponent.
func (c *InsulatedFluidComponent) GetPressureChange(m units.MassRate, Tref units.Temperature) (units.Pressure, error) {
	return c.Fluid.GetPressureChange(m, Tref)
}

// AdvanceTimestep performs the fluid<->shell, shell<->insulation and
// insulation<->ambient lateral couplings, then advances all three arrays.
func (c *InsulatedFluidComponent) AdvanceTimestep(dt units.Time, m units.MassRate) error {
	Gfs, err := fluidToSolidConductance(c.Fluid, c.PipeShell, c.PipeInnerDiameter, c.PipeOuterDiameter, htc.LiquidInside)
	if err != nil {
		return err
	}
	if err := linkFluidSolid(c.Fluid, c.PipeShell, Gfs); err != nil {
		return err
	}

	pipeThickness := units.Length((float64(c.PipeOuterDiameter) - float64(c.PipeInnerDiameter)) / 2)
	insulationThickness := c.InsulationThickness
	Gsi, err := solidToSolidConductance(c.PipeShell, c.Insulation, c.PipeInnerDiameter, pipeThickness, insulationThickness)
	if err != nil {
		return err
	}
	if err := linkSolidSolid(c.PipeShell, c.Insulation, Gsi); err != nil {
		return err
	}

	if err := linkAmbientLoss(c.Insulation, c.insulationOuterDiameter(), c.AmbientTemperature, c.AmbientH); err != nil {
		return err
	}

	if err := c.Fluid.AdvanceTimestepWithMassFlowrate(dt, m); err != nil {
		return err
	}
	if err := c.PipeShell.AdvanceTimestep(dt); err != nil {
		return err
	}
	return c.Insulation.AdvanceTimestep(dt)
}
