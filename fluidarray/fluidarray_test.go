package fluidarray

import (
	"math"
	"testing"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

func newTherminolArray(t *testing.T, innerNodes int, T0C float64) *FluidArray {
	t.Helper()
	mat, err := properties.NewLiquidMaterialFromKind(properties.TherminolVP1)
	if err != nil {
		t.Fatalf("NewLiquidMaterialFromKind: %v", err)
	}
	loss := ChurchillLoss{RelativeRoughness: 1e-5}
	nu := PipeGnielinskiGeneric{RelativeRoughness: 1e-5}
	fa, err := NewCylinder(mat, 0.02, 1.0, innerNodes, loss, nu, units.NewCelsius(T0C), 101325, 0)
	if err != nil {
		t.Fatalf("NewCylinder: %v", err)
	}
	return fa
}

func TestAdvanceTimestepZeroIsNoOp(t *testing.T) {
	fa := newTherminolArray(t, 3, 60)
	before := fa.GetTemperatureVector()
	if err := fa.AdvanceTimestepWithMassFlowrate(0, 0); err != nil {
		t.Fatalf("AdvanceTimestepWithMassFlowrate(0): %v", err)
	}
	after := fa.GetTemperatureVector()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("node %d temperature changed on zero-dt advance: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestEnergyConservationNoForcingNoFlow(t *testing.T) {
	fa := newTherminolArray(t, 4, 80)
	var totalEnergy0 float64
	for i := 0; i < fa.N(); i++ {
		rho, _ := fa.Material.Density(fa.temperatures[i])
		cp, _ := fa.Material.SpecificHeat(fa.temperatures[i])
		vol := fa.nodeVolume(i)
		totalEnergy0 += float64(rho) * float64(vol) * float64(cp) * fa.temperatures[i].Kelvin()
	}

	for step := 0; step < 5; step++ {
		if err := fa.AdvanceTimestepWithMassFlowrate(1.0, 0); err != nil {
			t.Fatalf("AdvanceTimestepWithMassFlowrate: %v", err)
		}
	}

	var totalEnergy1 float64
	for i := 0; i < fa.N(); i++ {
		rho, _ := fa.Material.Density(fa.temperatures[i])
		cp, _ := fa.Material.SpecificHeat(fa.temperatures[i])
		vol := fa.nodeVolume(i)
		totalEnergy1 += float64(rho) * float64(vol) * float64(cp) * fa.temperatures[i].Kelvin()
	}

	rel := math.Abs(totalEnergy1-totalEnergy0) / math.Abs(totalEnergy0)
	if rel > 1e-6 {
		t.Fatalf("energy not conserved with adiabatic zero-flow BCs: rel err = %v", rel)
	}
}

func TestAdvectionPullsHotFluidDownstream(t *testing.T) {
	fa := newTherminolArray(t, 4, 50)
	for i := range fa.temperatures {
		fa.temperatures[i] = units.NewCelsius(50)
	}
	fa.LinkToBack(50000) // heats the back boundary node directly
	if err := fa.AdvanceTimestepWithMassFlowrate(2.0, 0.05); err != nil {
		t.Fatalf("AdvanceTimestepWithMassFlowrate: %v", err)
	}
	temps := fa.GetTemperatureVector()
	if temps[0] <= units.NewCelsius(50) {
		t.Fatalf("back node should have heated up, got %v", temps[0].Celsius())
	}
	if temps[1] <= units.NewCelsius(50) {
		t.Fatalf("downstream node 1 should have warmed from advected heat, got %v", temps[1].Celsius())
	}
}

func TestLinkLateralLengthMismatch(t *testing.T) {
	fa := newTherminolArray(t, 3, 50)
	if err := fa.LinkLateral(make([]units.Temperature, 2), make([]units.ThermalConductance, 5)); err == nil {
		t.Fatalf("expected error for mismatched lateral array lengths")
	}
}

func TestAddQFractionsMustSumToOne(t *testing.T) {
	fa := newTherminolArray(t, 3, 50)
	bad := make([]units.Ratio, fa.N())
	bad[0] = 0.5
	if err := fa.AddQ(1000, bad); err == nil {
		t.Fatalf("expected error for fractions not summing to 1")
	}
	good := make([]units.Ratio, fa.N())
	for i := range good {
		good[i] = units.Ratio(1.0 / float64(fa.N()))
	}
	if err := fa.AddQ(1000, good); err != nil {
		t.Fatalf("AddQ with valid fractions: %v", err)
	}
}

func TestGetMaxTimestepPositive(t *testing.T) {
	fa := newTherminolArray(t, 3, 80)
	fa.SetMassFlowrate(0.05)
	dt, err := fa.GetMaxTimestep(5)
	if err != nil {
		t.Fatalf("GetMaxTimestep: %v", err)
	}
	if dt <= 0 {
		t.Fatalf("expected positive max timestep, got %v", dt)
	}
}

func TestGetPressureChangeSignFlipsOnReverseFlow(t *testing.T) {
	fa := newTherminolArray(t, 3, 80)
	fwd, err := fa.GetPressureChange(0.05, units.NewCelsius(80))
	if err != nil {
		t.Fatalf("GetPressureChange forward: %v", err)
	}
	rev, err := fa.GetPressureChange(-0.05, units.NewCelsius(80))
	if err != nil {
		t.Fatalf("GetPressureChange reverse: %v", err)
	}
	if math.Abs(float64(fwd)+float64(rev)) > 1e-6 {
		t.Fatalf("expected antisymmetric pressure change about m=0, got fwd=%v rev=%v", fwd, rev)
	}
}
