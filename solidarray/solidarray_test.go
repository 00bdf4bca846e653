package solidarray

import (
	"math"
	"testing"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

func newCopperBlock(t *testing.T, innerNodes int, T0C float64) *SolidArray {
	t.Helper()
	mat, err := properties.NewSolidMaterialFromKind(properties.Copper)
	if err != nil {
		t.Fatalf("NewSolidMaterialFromKind: %v", err)
	}
	sa, err := NewBlock(mat, 0.05, 0.01, 1.0, innerNodes, units.NewCelsius(T0C))
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	return sa
}

func TestAdvanceTimestepZeroIsNoOp(t *testing.T) {
	sa := newCopperBlock(t, 4, 100)
	before := sa.GetTemperatureVector()
	if err := sa.AdvanceTimestep(0); err != nil {
		t.Fatalf("AdvanceTimestep(0): %v", err)
	}
	after := sa.GetTemperatureVector()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("node %d changed on zero-dt advance", i)
		}
	}
}

func TestAxialConductionSmoothsGradient(t *testing.T) {
	sa := newCopperBlock(t, 5, 100)
	sa.temperatures[0] = units.NewCelsius(200)
	for step := 0; step < 50; step++ {
		if err := sa.AdvanceTimestep(0.05); err != nil {
			t.Fatalf("AdvanceTimestep: %v", err)
		}
	}
	temps := sa.GetTemperatureVector()
	for i := 1; i < len(temps); i++ {
		if temps[i] > temps[i-1] {
			t.Fatalf("expected monotonic decrease away from hot end, node %d (%v) > node %d (%v)", i, temps[i].Celsius(), i-1, temps[i-1].Celsius())
		}
	}
}

func TestEnergyConservationAdiabaticNoQ(t *testing.T) {
	sa := newCopperBlock(t, 4, 150)
	sa.temperatures[0] = units.NewCelsius(300)

	energy := func() float64 {
		sum := 0.0
		for i := 0; i < sa.N(); i++ {
			rho, _ := sa.Material.Density(sa.temperatures[i])
			cp, _ := sa.Material.SpecificHeat(sa.temperatures[i])
			vol := sa.nodeVolume(i)
			sum += float64(rho) * float64(vol) * float64(cp) * sa.temperatures[i].Kelvin()
		}
		return sum
	}

	e0 := energy()
	for step := 0; step < 10; step++ {
		if err := sa.AdvanceTimestep(0.1); err != nil {
			t.Fatalf("AdvanceTimestep: %v", err)
		}
	}
	e1 := energy()
	rel := math.Abs(e1-e0) / math.Abs(e0)
	if rel > 1e-6 {
		t.Fatalf("energy not conserved under adiabatic axial conduction: rel err = %v", rel)
	}
}

func TestCylindricalShellArea(t *testing.T) {
	mat, _ := properties.NewSolidMaterialFromKind(properties.SS304L)
	sa, err := NewCylindricalShell(mat, 0.05, 0.06, 1.0, 2, units.NewCelsius(300))
	if err != nil {
		t.Fatalf("NewCylindricalShell: %v", err)
	}
	want := math.Pi / 4 * (0.06*0.06 - 0.05*0.05)
	if math.Abs(float64(sa.Area)-want) > 1e-12 {
		t.Fatalf("annular area = %v, want %v", sa.Area, want)
	}
}

func TestAddQFractionsMustSumToOne(t *testing.T) {
	sa := newCopperBlock(t, 3, 100)
	bad := make([]units.Ratio, sa.N())
	bad[0] = 0.9
	if err := sa.AddQ(500, bad); err == nil {
		t.Fatalf("expected error for fractions not summing to 1")
	}
}
