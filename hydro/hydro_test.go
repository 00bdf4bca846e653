package hydro

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// constantDp is a trivial FluidComponent with a pressure change linear in
// mass flowrate, used to exercise the series/parallel algebra without
// pulling in fluidarray.
type constantDp struct {
	intercept float64
	slope     float64
}

func (c constantDp) GetPressureChange(m units.MassRate, Tref units.Temperature) (units.Pressure, error) {
	return units.Pressure(c.intercept + c.slope*float64(m)), nil
}

func TestSeriesPressureChangeSums(t *testing.T) {
	s := NewSeries(units.NewCelsius(21), constantDp{100, 50}, constantDp{-20, 10})
	dp, err := s.GetPressureChange(2.0)
	if err != nil {
		t.Fatalf("GetPressureChange: %v", err)
	}
	chk.Scalar(t, "series dp", 1e-9, float64(dp), (100+50*2)+(-20+10*2))
}

func TestSeriesManometerShortCircuit(t *testing.T) {
	s := NewSeries(units.NewCelsius(21), constantDp{1000, 50})
	dp0, err := s.GetPressureChange(0)
	if err != nil {
		t.Fatalf("GetPressureChange: %v", err)
	}
	m, err := s.GetMassFlowrate(dp0 + 5)
	if err != nil {
		t.Fatalf("GetMassFlowrate: %v", err)
	}
	chk.Scalar(t, "manometer short circuit mass flow", 1e-12, float64(m), 0)
}

func TestSeriesGetMassFlowrateInvertsGetPressureChange(t *testing.T) {
	s := NewSeries(units.NewCelsius(21), constantDp{0, 25})
	m, err := s.GetMassFlowrate(250)
	if err != nil {
		t.Fatalf("GetMassFlowrate: %v", err)
	}
	chk.Scalar(t, "inverted mass flowrate", 1e-5, float64(m), 10)
}

func TestBracketEscalationFindsSignChange(t *testing.T) {
	f := func(x float64) float64 { return x - 3.3 }
	lo, hi, err := bracketEscalation(f)
	if err != nil {
		t.Fatalf("bracketEscalation: %v", err)
	}
	if (f(lo) > 0) == (f(hi) > 0) {
		t.Fatalf("expected opposite-sign endpoints, got f(lo)=%v f(hi)=%v", f(lo), f(hi))
	}
}

func TestBracketEscalationFailsWhenNoRootExists(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	if _, _, err := bracketEscalation(f); err == nil {
		t.Fatalf("expected failure bracketing a function with no real root")
	}
}

func TestTwoBranchParallelSplitsEvenlyWhenIdentical(t *testing.T) {
	branchA := NewSeries(units.NewCelsius(21), constantDp{0, 20})
	branchB := NewSeries(units.NewCelsius(21), constantDp{0, 20})
	super := NewSuperCollection(units.NewCelsius(21), branchA, branchB)
	flows, err := super.SolveFlowDistribution(10.0)
	if err != nil {
		t.Fatalf("SolveFlowDistribution: %v", err)
	}
	if len(flows) != 2 {
		t.Fatalf("expected 2 branch flows, got %d", len(flows))
	}
	chk.Scalar(t, "branch A flow", 1e-4, float64(flows[0]), 5.0)
	chk.Scalar(t, "branch B flow", 1e-4, float64(flows[1]), 5.0)
}

func TestFourBranchParallelConservesTotalFlow(t *testing.T) {
	branches := []*FluidComponentCollection{
		NewSeries(units.NewCelsius(500), constantDp{0, 5}),
		NewSeries(units.NewCelsius(500), constantDp{0, 8}),
		NewSeries(units.NewCelsius(500), constantDp{0, 12}),
		NewSeries(units.NewCelsius(500), constantDp{0, 20}),
	}
	super := NewSuperCollection(units.NewCelsius(500), branches...)
	flows, err := super.SolveFlowDistribution(735.0)
	if err != nil {
		t.Fatalf("SolveFlowDistribution: %v", err)
	}
	total := 0.0
	for _, f := range flows {
		total += float64(f)
	}
	chk.Scalar(t, "four branch total flow", 1e-3, total, 735.0)
}

func TestFourBranchParallelZeroDemandGivesZeroFlow(t *testing.T) {
	branches := []*FluidComponentCollection{
		NewSeries(units.NewCelsius(500), constantDp{0, 5}),
		NewSeries(units.NewCelsius(500), constantDp{0, 8}),
		NewSeries(units.NewCelsius(500), constantDp{0, 12}),
		NewSeries(units.NewCelsius(500), constantDp{0, 20}),
	}
	super := NewSuperCollection(units.NewCelsius(500), branches...)
	flows, err := super.SolveFlowDistribution(0.0)
	if err != nil {
		t.Fatalf("SolveFlowDistribution: %v", err)
	}
	for i, f := range flows {
		if math.Abs(float64(f)) > 1e-5 {
			t.Fatalf("branch %d expected ~0 flow at zero demand, got %v", i, f)
		}
	}
}

func TestFlowDiodeClampsNegativeBranchToZero(t *testing.T) {
	// branch 0 has a large reverse bias built into its intercept so the
	// common-pressure solution drives it negative; the diode must clamp
	// it to zero and push the remainder through branch 1.
	branchA := NewSeries(units.NewCelsius(21), constantDp{5000, 20})
	branchB := NewSeries(units.NewCelsius(21), constantDp{0, 20})
	super := NewSuperCollection(units.NewCelsius(21), branchA, branchB)
	super.DiodeBranchIndex = 0

	flows, err := super.SolveFlowDistribution(5.0)
	if err != nil {
		t.Fatalf("SolveFlowDistribution: %v", err)
	}
	chk.Scalar(t, "diode branch clamped to zero", 1e-9, float64(flows[0]), 0)
	chk.Scalar(t, "remaining branch carries full demand", 1e-4, float64(flows[1]), 5.0)
}

func TestSolveShadowedMatchesSynchronousDiodeClamp(t *testing.T) {
	branchA := NewSeries(units.NewCelsius(21), constantDp{5000, 20})
	branchB := NewSeries(units.NewCelsius(21), constantDp{0, 20})
	super := NewSuperCollection(units.NewCelsius(21), branchA, branchB)
	super.DiodeBranchIndex = 0

	sync, err := super.SolveFlowDistribution(5.0)
	if err != nil {
		t.Fatalf("SolveFlowDistribution: %v", err)
	}
	shadowed, err := super.SolveShadowed(5.0)
	if err != nil {
		t.Fatalf("SolveShadowed: %v", err)
	}
	chk.Scalar(t, "shadowed branch 0", 1e-9, float64(shadowed[0]), float64(sync[0]))
	chk.Scalar(t, "shadowed branch 1", 1e-4, float64(shadowed[1]), float64(sync[1]))
}
