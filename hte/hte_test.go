package hte

import (
	"math"
	"testing"

	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/htc"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/properties"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/scv"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

func newCV(t *testing.T, Tc float64) *scv.SingleCVNode {
	t.Helper()
	mat, err := properties.NewLiquidMaterialFromKind(properties.TherminolVP1)
	if err != nil {
		t.Fatalf("NewLiquidMaterialFromKind: %v", err)
	}
	cv, err := scv.NewSphere(mat, 0.05, units.NewCelsius(Tc), 101325)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return cv
}

func TestLinkBCTemperatureToSCVReceivesPositiveWhenBCHotter(t *testing.T) {
	cold := newCV(t, 40)
	bc := FromBoundaryCondition(NewUserSpecifiedTemperature(units.NewCelsius(100)))
	cv := FromSingleCV(cold)
	interaction := htc.UserSpecifiedThermalConductance{G: 5}

	if err := Link(bc, cv, interaction); err != nil {
		t.Fatalf("Link: %v", err)
	}
	rates := cold.RateEnthalpyChangeVector()
	if len(rates) != 1 {
		t.Fatalf("expected 1 rate pushed, got %d", len(rates))
	}
	if rates[0] <= 0 {
		t.Fatalf("expected CV to gain heat from hotter BC reservoir, got rate=%v", rates[0])
	}
}

func TestLinkBCBCIsNotImplemented(t *testing.T) {
	a := FromBoundaryCondition(NewUserSpecifiedTemperature(units.NewCelsius(50)))
	b := FromBoundaryCondition(NewUserSpecifiedTemperature(units.NewCelsius(60)))
	err := Link(a, b, htc.UserSpecifiedThermalConductance{G: 1})
	if err == nil {
		t.Fatalf("expected NotImplementedForBoundaryConditions error")
	}
}

func TestLinkSCVSCVConductanceIsEqualAndOpposite(t *testing.T) {
	hot := newCV(t, 90)
	cold := newCV(t, 30)
	interaction := htc.UserSpecifiedThermalConductance{G: 3}
	if err := Link(FromSingleCV(hot), FromSingleCV(cold), interaction); err != nil {
		t.Fatalf("Link: %v", err)
	}
	rHot := hot.RateEnthalpyChangeVector()
	rCold := cold.RateEnthalpyChangeVector()
	if len(rHot) != 1 || len(rCold) != 1 {
		t.Fatalf("expected one rate pushed to each side")
	}
	if math.Abs(float64(rHot[0])+float64(rCold[0])) > 1e-9 {
		t.Fatalf("expected equal and opposite rates, got back=%v front=%v", rHot[0], rCold[0])
	}
}

func TestLinkAdvectionTransfersHeatDownstream(t *testing.T) {
	hot := newCV(t, 100)
	cold := newCV(t, 30)
	adv := htc.DataAdvection{MassFlowrate: 0.05}
	if err := Link(FromSingleCV(hot), FromSingleCV(cold), adv); err != nil {
		t.Fatalf("Link: %v", err)
	}
	rHot := hot.RateEnthalpyChangeVector()
	rCold := cold.RateEnthalpyChangeVector()
	if rHot[0] >= 0 {
		t.Fatalf("hot upstream node should lose enthalpy to advection, got %v", rHot[0])
	}
	if rCold[0] <= 0 {
		t.Fatalf("cold downstream node should gain enthalpy from advection, got %v", rCold[0])
	}
}

func TestTypeConversionErrors(t *testing.T) {
	e := FromSingleCV(newCV(t, 50))
	if _, err := e.AsFluidArray(); err == nil {
		t.Fatalf("expected TypeConversionHeatTransferEntity error narrowing SCV to FluidArray")
	}
	if _, err := e.AsSolidArray(); err == nil {
		t.Fatalf("expected TypeConversionHeatTransferEntity error narrowing SCV to SolidArray")
	}
	if _, err := e.AsBoundaryCondition(); err == nil {
		t.Fatalf("expected TypeConversionHeatTransferEntity error narrowing SCV to BoundaryCondition")
	}
}

func TestLinkHeatAdditionPushesToNonBCSide(t *testing.T) {
	cv := newCV(t, 50)
	bc := FromBoundaryCondition(NewUserSpecifiedHeatAddition(1500))
	if err := Link(bc, FromSingleCV(cv), htc.UserSpecifiedHeatAddition{Q: 1500}); err != nil {
		t.Fatalf("Link: %v", err)
	}
	rates := cv.RateEnthalpyChangeVector()
	if len(rates) != 1 || rates[0] != 1500 {
		t.Fatalf("expected CV to receive the full 1500 W addition, got %v", rates)
	}
}
