package ana

// DowthermEnthalpyClosedForm re-derives DowthermA/TherminolVP1's
// enthalpy-temperature relation directly from its specific-heat
// correlation cp(Tc) = 1518 + 2.82*Tc (spec §4.1, §8 scenario 2), as an
// independent cross-check against properties.Material's own h(T):
// integrating cp from the 20 degC reference gives
//
//	h(Tc) = ∫[20,Tc] (1518 + 2.82*s) ds = 1518*(Tc-20) + 1.41*(Tc^2-400)
//
// which collapses to the same 1518*Tc + 1.41*Tc^2 - 30924 the properties
// package evaluates directly.
func DowthermEnthalpyClosedForm(tc float64) float64 {
	return 1518*(tc-20) + 1.41*(tc*tc-400)
}
