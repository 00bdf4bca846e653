package precomp

import (
	"testing"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/fluidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/solidarray"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

func newTherminolFluid(t *testing.T, innerNodes int, T0C float64) *fluidarray.FluidArray {
	t.Helper()
	mat, err := properties.NewLiquidMaterialFromKind(properties.TherminolVP1)
	if err != nil {
		t.Fatalf("NewLiquidMaterialFromKind: %v", err)
	}
	loss := fluidarray.ChurchillLoss{RelativeRoughness: 1e-5}
	nu := fluidarray.PipeGnielinskiGeneric{RelativeRoughness: 1e-5}
	fa, err := fluidarray.NewCylinder(mat, 0.02, 1.0, innerNodes, loss, nu, units.NewCelsius(T0C), 101325, 0)
	if err != nil {
		t.Fatalf("NewCylinder: %v", err)
	}
	return fa
}

func newSteelShell(t *testing.T, innerNodes int, T0C float64) *solidarray.SolidArray {
	t.Helper()
	mat, err := properties.NewSolidMaterialFromKind(properties.SS304L)
	if err != nil {
		t.Fatalf("NewSolidMaterialFromKind: %v", err)
	}
	sa, err := solidarray.NewCylindricalShell(mat, 0.02, 0.025, 1.0, innerNodes, units.NewCelsius(T0C))
	if err != nil {
		t.Fatalf("NewCylindricalShell: %v", err)
	}
	return sa
}

func TestNonInsulatedAdvanceTimestepRuns(t *testing.T) {
	fluid := newTherminolFluid(t, 3, 90)
	shell := newSteelShell(t, 3, 60)
	c := NewNonInsulatedFluidComponent(fluid, shell, 0.02, 0.025, units.NewCelsius(20), 15)

	if err := c.AdvanceTimestep(0.5, 0.05); err != nil {
		t.Fatalf("AdvanceTimestep: %v", err)
	}
	shellTemps := shell.GetTemperatureVector()
	for i, T := range shellTemps {
		if T <= units.NewCelsius(60) {
			t.Fatalf("shell node %d should warm toward the hotter fluid, got %v", i, T.Celsius())
		}
	}
}

func TestNonInsulatedPressureChangeDelegatesToFluid(t *testing.T) {
	fluid := newTherminolFluid(t, 3, 80)
	shell := newSteelShell(t, 3, 80)
	c := NewNonInsulatedFluidComponent(fluid, shell, 0.02, 0.025, units.NewCelsius(20), 15)

	viaComponent, err := c.GetPressureChange(0.05, units.NewCelsius(80))
	if err != nil {
		t.Fatalf("GetPressureChange: %v", err)
	}
	viaFluid, err := fluid.GetPressureChange(0.05, units.NewCelsius(80))
	if err != nil {
		t.Fatalf("GetPressureChange: %v", err)
	}
	if viaComponent != viaFluid {
		t.Fatalf("expected component pressure change to equal the fluid array's own: %v vs %v", viaComponent, viaFluid)
	}
}

func TestInsulatedFluidComponentBuildsAndAdvances(t *testing.T) {
	fluid := newTherminolFluid(t, 3, 90)
	shell := newSteelShell(t, 3, 60)
	insulationMat, err := properties.NewSolidMaterialFromKind(properties.Fiberglass)
	if err != nil {
		t.Fatalf("NewSolidMaterialFromKind: %v", err)
	}
	c, err := NewInsulatedFluidComponent(fluid, shell, 0.02, 0.025, insulationMat, 0.05, 3, units.NewCelsius(20), 10)
	if err != nil {
		t.Fatalf("NewInsulatedFluidComponent: %v", err)
	}
	if err := c.AdvanceTimestep(0.5, 0.05); err != nil {
		t.Fatalf("AdvanceTimestep: %v", err)
	}
}

func TestInsulatedFluidComponentSetInsulationThicknessPreservesNodeCount(t *testing.T) {
	fluid := newTherminolFluid(t, 3, 90)
	shell := newSteelShell(t, 3, 60)
	insulationMat, err := properties.NewSolidMaterialFromKind(properties.Fiberglass)
	if err != nil {
		t.Fatalf("NewSolidMaterialFromKind: %v", err)
	}
	c, err := NewInsulatedFluidComponent(fluid, shell, 0.02, 0.025, insulationMat, 0.05, 3, units.NewCelsius(20), 10)
	if err != nil {
		t.Fatalf("NewInsulatedFluidComponent: %v", err)
	}
	before := c.Insulation.N()
	if err := c.SetInsulationThickness(0.10); err != nil {
		t.Fatalf("SetInsulationThickness: %v", err)
	}
	if c.Insulation.N() != before {
		t.Fatalf("expected node count to survive a thickness change: before=%d after=%d", before, c.Insulation.N())
	}
}

func TestSetNusseltCalibrationFactorWrapsGenericCorrelation(t *testing.T) {
	fluid := newTherminolFluid(t, 3, 90)
	shell := newSteelShell(t, 3, 60)
	c := NewNonInsulatedFluidComponent(fluid, shell, 0.02, 0.025, units.NewCelsius(20), 15)
	c.SetNusseltCalibrationFactor(1.25)
	calibrated, ok := fluid.Nusselt.(fluidarray.PipeGnielinskiCalibrated)
	if !ok {
		t.Fatalf("expected fluid.Nusselt to become PipeGnielinskiCalibrated, got %T", fluid.Nusselt)
	}
	if calibrated.Factor != 1.25 {
		t.Fatalf("expected calibration factor 1.25, got %v", calibrated.Factor)
	}
}

func TestShellAndTubeHeatExchangerAdvancesBothSides(t *testing.T) {
	tube := newTherminolFluid(t, 3, 90)
	shell := newTherminolFluid(t, 3, 30)
	wall := newSteelShell(t, 3, 60)
	x := NewShellAndTubeHeatExchanger(shell, tube, wall, 12, 0.02, 0.025)

	if err := x.AdvanceTimestep(0.5, 0.05, 0.05); err != nil {
		t.Fatalf("AdvanceTimestep: %v", err)
	}
	tubeTemps := tube.GetTemperatureVector()
	for i, T := range tubeTemps {
		if T > units.NewCelsius(90) {
			t.Fatalf("tube node %d should not have warmed past its inlet temperature when shell side is colder, got %v", i, T.Celsius())
		}
	}
}

func TestShellAndTubeInsulationCalibration(t *testing.T) {
	tube := newTherminolFluid(t, 3, 90)
	shell := newTherminolFluid(t, 3, 30)
	wall := newSteelShell(t, 3, 60)
	x := NewShellAndTubeHeatExchanger(shell, tube, wall, 12, 0.02, 0.025)

	insulationMat, err := properties.NewSolidMaterialFromKind(properties.Fiberglass)
	if err != nil {
		t.Fatalf("NewSolidMaterialFromKind: %v", err)
	}
	if err := x.AddInsulation(0.03, insulationMat, 0.04, 3, units.NewCelsius(20), 10); err != nil {
		t.Fatalf("AddInsulation: %v", err)
	}
	before := x.Insulation.N()
	if err := x.SetInsulationThickness(0.08); err != nil {
		t.Fatalf("SetInsulationThickness: %v", err)
	}
	if x.Insulation.N() != before {
		t.Fatalf("expected insulation node count unchanged after resizing")
	}
	if err := x.AdvanceTimestep(0.5, 0.05, 0.05); err != nil {
		t.Fatalf("AdvanceTimestep with insulation: %v", err)
	}
}
