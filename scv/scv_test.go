package scv

import (
	"math"
	"testing"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

func newTherminolSCV(t *testing.T, Tc float64) *SingleCVNode {
	t.Helper()
	mat, err := properties.NewLiquidMaterialFromKind(properties.TherminolVP1)
	if err != nil {
		t.Fatalf("NewLiquidMaterialFromKind: %v", err)
	}
	cv, err := NewSphere(mat, 0.05, units.NewCelsius(Tc), 101325)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return cv
}

func TestAdvanceTimestepZeroIsNoOp(t *testing.T) {
	cv := newTherminolSCV(t, 50)
	T0 := cv.Temperature()
	if err := cv.AdvanceTimestep(0); err != nil {
		t.Fatalf("AdvanceTimestep(0): %v", err)
	}
	if err := cv.AdvanceTimestep(0); err != nil {
		t.Fatalf("AdvanceTimestep(0) second call: %v", err)
	}
	if cv.Temperature() != T0 {
		t.Fatalf("temperature changed on zero-rate zero-dt advance: %v -> %v", T0, cv.Temperature())
	}
}

func TestAdvanceTimestepHeatsUp(t *testing.T) {
	cv := newTherminolSCV(t, 50)
	T0 := cv.Temperature()
	cv.PushEnthalpyRate(1000) // 1 kW in
	if err := cv.AdvanceTimestep(1); err != nil {
		t.Fatalf("AdvanceTimestep: %v", err)
	}
	if cv.Temperature() <= T0 {
		t.Fatalf("expected temperature rise, got %v -> %v", T0, cv.Temperature())
	}
	if len(cv.RateEnthalpyChangeVector()) != 0 {
		t.Fatalf("accumulator not cleared after AdvanceTimestep")
	}
}

func TestMaxTimestepRequiresRegisteredRate(t *testing.T) {
	cv := newTherminolSCV(t, 50)
	if _, err := cv.MaxTimestep(5); err == nil {
		t.Fatalf("expected CourantMassFlowVectorEmpty when no rate registered")
	}
	cv.PushEnthalpyRate(500)
	dt, err := cv.MaxTimestep(5)
	if err != nil {
		t.Fatalf("MaxTimestep: %v", err)
	}
	if dt <= 0 || math.IsInf(float64(dt), 1) {
		t.Fatalf("unexpected MaxTimestep value: %v", dt)
	}
}
