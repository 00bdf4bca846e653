package precomp

import (
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/fluidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/htc"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/solidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// ShellAndTubeHeatExchanger couples a shell-side FluidArray to a
// tube-side FluidArray through a TubeWall SolidArray, with the tube-wall
// conductance scaled by NumberOfTubes (the tubes are assumed identical
// and thermally independent, so their wall conductances add in
// parallel). Insulation on the shell's outer wall is optional (spec
// §4.8 "optional insulation, optional inner-tube SA").
type ShellAndTubeHeatExchanger struct {
	Shell *fluidarray.FluidArray
	Tube  *fluidarray.FluidArray

	TubeWall      *solidarray.SolidArray
	NumberOfTubes int

	TubeInnerDiameter, TubeOuterDiameter units.Length

	Insulation          *solidarray.SolidArray
	InsulationMaterial  properties.Material
	InsulationThickness units.Length
	ShellOuterDiameter  units.Length
	AmbientTemperature  units.Temperature
	AmbientH            units.HeatTransferCoefficient
}

// NewShellAndTubeHeatExchanger builds the two-fluid assembly without
// insulation; call AddInsulation afterward to wrap the shell side.
func NewShellAndTubeHeatExchanger(shell, tube *fluidarray.FluidArray, tubeWall *solidarray.SolidArray, numberOfTubes int, tubeInnerDiameter, tubeOuterDiameter units.Length) *ShellAndTubeHeatExchanger {
	return &ShellAndTubeHeatExchanger{
		Shell:             shell,
		Tube:              tube,
		TubeWall:          tubeWall,
		NumberOfTubes:     numberOfTubes,
		TubeInnerDiameter: tubeInnerDiameter,
		TubeOuterDiameter: tubeOuterDiameter,
	}
}

// AddInsulation wraps the shell side's outer wall in insulation, losing
// heat to ambient beyond it.
func (x *ShellAndTubeHeatExchanger) AddInsulation(shellOuterDiameter units.Length, material properties.Material, thickness units.Length, innerNodeCount int, ambientT units.Temperature, ambientH units.HeatTransferCoefficient) error {
	insulationOD := units.Length(float64(shellOuterDiameter) + 2*float64(thickness))
	insulation, err := solidarray.NewCylindricalShell(material, shellOuterDiameter, insulationOD, x.Shell.Length, innerNodeCount, x.Shell.GetTemperatureVector()[0])
	if err != nil {
		return err
	}
	x.Insulation = insulation
	x.InsulationMaterial = material
	x.InsulationThickness = thickness
	x.ShellOuterDiameter = shellOuterDiameter
	x.AmbientTemperature = ambientT
	x.AmbientH = ambientH
	return nil
}

// SetInsulationThickness resizes the insulation layer, if present (spec
// §4.8 calibration knob (a)).
func (x *ShellAndTubeHeatExchanger) SetInsulationThickness(thickness units.Length) error {
	if x.Insulation == nil {
		return nil
	}
	x.InsulationThickness = thickness
	insulationOD := units.Length(float64(x.ShellOuterDiameter) + 2*float64(thickness))
	rebuilt, err := solidarray.NewCylindricalShell(x.InsulationMaterial, x.ShellOuterDiameter, insulationOD, x.Shell.Length, x.Insulation.N()-2, x.Insulation.GetTemperatureVector()[0])
	if err != nil {
		return err
	}
	for i, t := range x.Insulation.GetTemperatureVector() {
		rebuilt.SetNodeTemperature(i, t)
	}
	x.Insulation = rebuilt
	return nil
}

// SetNusseltCalibrationFactor scales the tube-side Nusselt correlation,
// the dominant resistance in most shell-and-tube duty cycles (spec §4.8
// calibration knob (b)).
func (x *ShellAndTubeHeatExchanger) SetNusseltCalibrationFactor(factor float64) {
	x.Tube.Nusselt = calibrate(x.Tube.Nusselt, factor)
}

// GetPressureChange reports the tube side's pressure change, satisfying
// hydro.FluidComponent for the branch this exchanger sits on; the shell
// side is wired into the hydraulic network as its own component since
// the two sides belong to different flow loops.
func (x *ShellAndTubeHeatExchanger) GetPressureChange(m units.MassRate, Tref units.Temperature) (units.Pressure, error) {
	return x.Tube.GetPressureChange(m, Tref)
}

// AdvanceTimestep couples tube<->wall<->shell, optionally wall-insulation
// on the shell side, then advances all arrays.
func (x *ShellAndTubeHeatExchanger) AdvanceTimestep(dt units.Time, tubeMassFlowrate, shellMassFlowrate units.MassRate) error {
	n := x.NumberOfTubes
	if n < 1 {
		n = 1
	}

	Gtube, err := fluidToSolidConductance(x.Tube, x.TubeWall, x.TubeInnerDiameter, x.TubeOuterDiameter, htc.LiquidInside)
	if err != nil {
		return err
	}
	if err := linkFluidSolid(x.Tube, x.TubeWall, units.ThermalConductance(float64(Gtube)*float64(n))); err != nil {
		return err
	}

	Gshell, err := fluidToSolidConductance(x.Shell, x.TubeWall, x.TubeInnerDiameter, x.TubeOuterDiameter, htc.LiquidOutside)
	if err != nil {
		return err
	}
	if err := linkFluidSolid(x.Shell, x.TubeWall, units.ThermalConductance(float64(Gshell)*float64(n))); err != nil {
		return err
	}

	if x.Insulation != nil {
		shellThickness := units.Length((float64(x.ShellOuterDiameter) - float64(x.TubeOuterDiameter)) / 2)
		Gsi, err := solidToSolidConductance(x.TubeWall, x.Insulation, x.TubeOuterDiameter, shellThickness, x.InsulationThickness)
		if err != nil {
			return err
		}
		if err := linkSolidSolid(x.TubeWall, x.Insulation, Gsi); err != nil {
			return err
		}
		insulationOD := units.Length(float64(x.ShellOuterDiameter) + 2*float64(x.InsulationThickness))
		if err := linkAmbientLoss(x.Insulation, insulationOD, x.AmbientTemperature, x.AmbientH); err != nil {
			return err
		}
	}

	if err := x.Tube.AdvanceTimestepWithMassFlowrate(dt, tubeMassFlowrate); err != nil {
		return err
	}
	if err := x.Shell.AdvanceTimestepWithMassFlowrate(dt, shellMassFlowrate); err != nil {
		return err
	}
	if err := x.TubeWall.AdvanceTimestep(dt); err != nil {
		return err
	}
	if x.Insulation != nil {
		return x.Insulation.AdvanceTimestep(dt)
	}
	return nil
}
