package properties

import (
	"math"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// splineSolid is the shared implementation for catalogue solids whose
// cp(T) and/or k(T) are given as natural cubic splines over tabulated
// nodes (spec §4.1: Copper, Fiberglass, and "other materials follow the
// same scheme" for SS304L and PyrogelHPS). Enthalpy is tabulated by
// trapezoid-integrating cp over the same node grid as cp, giving a
// monotone h(T) table; TemperatureFromEnthalpy builds an inverse spline
// from (h, T) for an initial guess, then refines with Brent root-finding
// on h(T) - target = 0 within [guess-30, guess+30] K, tolerance 1e-8,
// at most 30 iterations, per spec §4.1.
type splineSolid struct {
	name        string
	lowT, highT units.Temperature
	density     units.MassDensity
	roughness   units.Length

	kSpline *fun.CubicSpline

	cpConst   *float64 // non-nil if cp is a constant (e.g. Fiberglass)
	cpSpline  *fun.CubicSpline

	hNodesT []float64 // K, ascending, same grid as cp
	hNodesH []float64 // J/kg, h(hNodesT[0]) = 0
	hInv    *fun.CubicSpline // inverse spline: guess T from h

	// enthalpyOverride, when set, replaces the tabulated h entirely with
	// a closed form (Fiberglass: h = 844*(T-273.15)).
	enthalpyOverride func(Tk float64) float64
}

func newSplineSolid(name string, lowT, highT units.Temperature, density units.MassDensity, roughness units.Length,
	kNodesT, kNodesV []float64, cpConst *float64, cpNodesT, cpNodesV []float64) *splineSolid {

	s := &splineSolid{
		name: name, lowT: lowT, highT: highT, density: density, roughness: roughness,
		cpConst: cpConst,
	}
	s.kSpline = fun.NewCubicSpline(kNodesT, kNodesV)

	if cpConst == nil {
		s.cpSpline = fun.NewCubicSpline(cpNodesT, cpNodesV)
		s.hNodesT = cpNodesT
		s.hNodesH = integrateTrapezoid(cpNodesT, cpNodesV)
		s.hInv = fun.NewCubicSpline(s.hNodesH, s.hNodesT)
	}
	return s
}

// integrateTrapezoid returns cumulative ∫cp dT over nodes, zeroed at nodes[0].
func integrateTrapezoid(T, cp []float64) []float64 {
	h := make([]float64, len(T))
	for i := 1; i < len(T); i++ {
		h[i] = h[i-1] + 0.5*(cp[i-1]+cp[i])*(T[i]-T[i-1])
	}
	return h
}

func (s *splineSolid) Name() string { return s.name }
func (s *splineSolid) Range() (units.Temperature, units.Temperature) { return s.lowT, s.highT }
func (s *splineSolid) Roughness() units.Length { return s.roughness }

func (s *splineSolid) checkT(T units.Temperature) error {
	return checkRange(s.name, T, s.lowT, s.highT)
}

func (s *splineSolid) Density(T units.Temperature) (units.MassDensity, error) {
	if err := s.checkT(T); err != nil {
		return 0, err
	}
	return s.density, nil
}

func (s *splineSolid) Conductivity(T units.Temperature) (units.ThermalConductivity, error) {
	if err := s.checkT(T); err != nil {
		return 0, err
	}
	return units.ThermalConductivity(s.kSpline.Eval(T.Kelvin())), nil
}

func (s *splineSolid) SpecificHeat(T units.Temperature) (units.SpecificHeatCapacity, error) {
	if err := s.checkT(T); err != nil {
		return 0, err
	}
	if s.cpConst != nil {
		return units.SpecificHeatCapacity(*s.cpConst), nil
	}
	return units.SpecificHeatCapacity(s.cpSpline.Eval(T.Kelvin())), nil
}

func (s *splineSolid) Enthalpy(T units.Temperature) (units.AvailableEnergy, error) {
	if err := s.checkT(T); err != nil {
		return 0, err
	}
	Tk := T.Kelvin()
	if s.enthalpyOverride != nil {
		return units.AvailableEnergy(s.enthalpyOverride(Tk)), nil
	}
	if s.cpConst != nil {
		return units.AvailableEnergy(*s.cpConst * (Tk - s.lowT.Kelvin())), nil
	}
	return units.AvailableEnergy(hEvalMonotone(s.hNodesT, s.hNodesH, Tk)), nil
}

// hEvalMonotone linearly interpolates the tabulated h(T) for Enthalpy();
// the spline inverse (hInv) is only used as an initial guess generator for
// TemperatureFromEnthalpy, matching spec §4.1's "analytic formula when
// available, otherwise... spline interpolation with Brent root-refinement".
func hEvalMonotone(T, H []float64, Tk float64) float64 {
	n := len(T)
	if Tk <= T[0] {
		return H[0]
	}
	if Tk >= T[n-1] {
		return H[n-1]
	}
	for i := 1; i < n; i++ {
		if Tk <= T[i] {
			frac := (Tk - T[i-1]) / (T[i] - T[i-1])
			return H[i-1] + frac*(H[i]-H[i-1])
		}
	}
	return H[n-1]
}

func (s *splineSolid) TemperatureFromEnthalpy(h units.AvailableEnergy) (units.Temperature, error) {
	target := float64(h)

	if s.enthalpyOverride != nil {
		// the override is a closure rather than a stored linear model,
		// so it is inverted by a Brent solve over the material's full
		// validity range.
		const eps = 1e-3
		f := func(Tk float64) float64 { return s.enthalpyOverride(Tk) - target }
		return s.brentRefine(f, s.lowT.Kelvin(), s.highT.Kelvin())
	}
	if s.cpConst != nil {
		Tk := target / *s.cpConst + s.lowT.Kelvin()
		return units.NewKelvin(Tk), nil
	}

	guess := s.hInv.Eval(target)
	lo := math.Max(s.lowT.Kelvin(), guess-30)
	hi := math.Min(s.highT.Kelvin(), guess+30)
	f := func(Tk float64) float64 {
		return hEvalMonotone(s.hNodesT, s.hNodesH, Tk) - target
	}
	return s.brentRefine(f, lo, hi)
}

func (s *splineSolid) brentRefine(f func(float64) float64, lo, hi float64) (units.Temperature, error) {
	flo, fhi := f(lo), f(hi)
	if (flo > 0) == (fhi > 0) {
		// widen once to the full material range before giving up.
		lo, hi = s.lowT.Kelvin(), s.highT.Kelvin()
		flo, fhi = f(lo), f(hi)
		if (flo > 0) == (fhi > 0) {
			return 0, tuaserr.New(tuaserr.GenericString,
				"%s.TemperatureFromEnthalpy: target not bracketed within material range", s.name)
		}
	}
	brent := num.NewBrent(f, &num.BrentParams{Tol: 1e-8, MaxIt: 30})
	root, err := brent.Root(lo, hi)
	if err != nil {
		return 0, tuaserr.New(tuaserr.GenericString, "%s.TemperatureFromEnthalpy: Brent failed: %v", s.name, err)
	}
	return units.NewKelvin(root), nil
}
