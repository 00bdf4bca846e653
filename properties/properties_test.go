package properties

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// TestDowthermEnthalpyRoundTrip is spec §8 scenario 2: h(30 degC) ~
// 15885 J/kg within 2%, and T_from_h of that value returns 303 K within
// 1%.
func TestDowthermEnthalpyRoundTrip(t *testing.T) {
	liq, err := NewLiquid(DowthermA)
	if err != nil {
		t.Fatalf("NewLiquid: %v", err)
	}
	h, err := liq.Enthalpy(units.NewCelsius(30))
	if err != nil {
		t.Fatalf("Enthalpy: %v", err)
	}
	wantH := 15885.0
	if math.Abs(float64(h)-wantH)/wantH > 0.02 {
		t.Fatalf("Enthalpy(30C) = %v, want ~%v within 2%%", h, wantH)
	}

	Tback, err := liq.TemperatureFromEnthalpy(h)
	if err != nil {
		t.Fatalf("TemperatureFromEnthalpy: %v", err)
	}
	wantT := 303.0
	if math.Abs(Tback.Kelvin()-wantT)/wantT > 0.01 {
		t.Fatalf("TemperatureFromEnthalpy round trip = %v K, want ~%v K within 1%%", Tback.Kelvin(), wantT)
	}
}

// TestEnthalpyTemperatureRoundTripAllLiquids is the general invariant from
// spec §8: for all T in range, T_from_h(h(T)) ~= T to 1e-3 K.
func TestEnthalpyTemperatureRoundTripAllLiquids(t *testing.T) {
	kinds := []LiquidKind{DowthermA, TherminolVP1, HITEC, YD325, FLiBe, FLiNaK}
	for _, k := range kinds {
		liq, err := NewLiquid(k)
		if err != nil {
			t.Fatalf("%v: NewLiquid: %v", k, err)
		}
		lo, hi := liq.Range()
		mid := units.NewKelvin(0.5 * (lo.Kelvin() + hi.Kelvin()))
		h, err := liq.Enthalpy(mid)
		if err != nil {
			t.Fatalf("%v: Enthalpy: %v", k, err)
		}
		got, err := liq.TemperatureFromEnthalpy(h)
		if err != nil {
			t.Fatalf("%v: TemperatureFromEnthalpy: %v", k, err)
		}
		chk.Scalar(t, k.String()+" T round trip", 1e-3, got.Kelvin(), mid.Kelvin())
	}
}

func TestEnthalpyTemperatureRoundTripAllSolids(t *testing.T) {
	kinds := []SolidKind{SS304L, Copper, Fiberglass, PyrogelHPS}
	for _, k := range kinds {
		sol, err := NewSolid(k)
		if err != nil {
			t.Fatalf("%v: NewSolid: %v", k, err)
		}
		lo, hi := sol.Range()
		mid := units.NewKelvin(0.5 * (lo.Kelvin() + hi.Kelvin()))
		h, err := sol.Enthalpy(mid)
		if err != nil {
			t.Fatalf("%v: Enthalpy: %v", k, err)
		}
		got, err := sol.TemperatureFromEnthalpy(h)
		if err != nil {
			t.Fatalf("%v: TemperatureFromEnthalpy: %v", k, err)
		}
		chk.Scalar(t, k.String()+" T round trip", 1e-2, got.Kelvin(), mid.Kelvin())
	}
}

// TestRangeCheckBoundary is spec §8 "Range-checks at exactly T_min and
// T_max succeed; at T_min-eps fail."
func TestRangeCheckBoundary(t *testing.T) {
	liq, _ := NewLiquid(DowthermA)
	lo, hi := liq.Range()
	if _, err := liq.Density(lo); err != nil {
		t.Fatalf("Density at T_min should succeed: %v", err)
	}
	if _, err := liq.Density(hi); err != nil {
		t.Fatalf("Density at T_max should succeed: %v", err)
	}
	if _, err := liq.Density(lo - 0.01); err == nil {
		t.Fatalf("Density at T_min-eps should fail")
	}
}
