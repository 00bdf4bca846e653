package hydro

import (
	"math"

	"github.com/cpmech/gosl/num"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"
	"github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"
)

// FluidComponentSuperCollection is a set of parallel branches sharing a
// common inlet/outlet pressure change (spec §4.7). DiodeBranchIndex
// names a branch that must never carry reverse flow (e.g. the DHX branch
// in CIET); -1 disables the diode behavior.
type FluidComponentSuperCollection struct {
	Branches         []*FluidComponentCollection
	Tref             units.Temperature
	DiodeBranchIndex int
}

// NewSuperCollection builds a parallel network with no flow-diode branch.
func NewSuperCollection(tref units.Temperature, branches ...*FluidComponentCollection) *FluidComponentSuperCollection {
	return &FluidComponentSuperCollection{Branches: branches, Tref: tref, DiodeBranchIndex: -1}
}

// pressureBracket implements spec §4.7 step 2: guess a per-branch mass
// flowrate, compute forward/backward pressure-change estimates across
// all branches, and form the bracketing interval from their average and
// spread, widening by 5 Pa if the interval would be empty.
func pressureBracket(branches []*FluidComponentCollection) (lo, hi float64) {
	const guess = 0.5
	min, max := math.Inf(1), math.Inf(-1)
	sum, n := 0.0, 0
	for _, b := range branches {
		if fwd, err := b.GetPressureChange(units.MassRate(guess)); err == nil {
			v := float64(fwd)
			sum += v
			n++
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		if back, err := b.GetPressureChange(units.MassRate(-guess)); err == nil {
			v := float64(back)
			sum += v
			n++
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if n == 0 {
		return -10, 10
	}
	avg := sum / float64(n)
	rng := (max - min) / 2
	lo, hi = avg-rng, avg+rng
	if lo == hi {
		lo -= 5
		hi += 5
	}
	return lo, hi
}

// gfhrRootTolerance is the mass-flow convergence guard spec §9 mandates
// inside the gFHR four-branch parallel solve's root function: earlier
// versions oscillate around |m|~1e-13 kg/s because Brent's
// bisection-switch heuristic keeps refining a residual that is already
// numerical noise. Any residual smaller than this in magnitude is
// snapped to exactly zero before it is handed back to Brent, so the
// root-find reports convergence instead of chasing the oscillation.
const gfhrRootTolerance = 1e-12

// solveCommonPressureChange finds Δp_common such that
// Σ branch.GetMassFlowrate(Δp_common) = mRequired (spec §4.7 parallel
// super-collection algorithm). Brent's method runs first at the standard
// tolerance; on failure the tolerance tightens to 1e-15 over the same
// bracket, mirroring the spec's "tolerance tightens to 1e-15 if all
// three fail after 70 iters" fallback. The residual itself is clamped at
// gfhrRootTolerance (spec §9) regardless of which tolerance tier is
// active.
func solveCommonPressureChange(branches []*FluidComponentCollection, mRequired units.MassRate) (units.Pressure, error) {
	f := func(dp float64) float64 {
		sum := 0.0
		for _, b := range branches {
			m, err := b.GetMassFlowrate(units.Pressure(dp))
			if err != nil {
				return math.NaN()
			}
			sum += float64(m)
		}
		residual := sum - float64(mRequired)
		if math.Abs(residual) < gfhrRootTolerance {
			return 0
		}
		return residual
	}
	lo, hi := pressureBracket(branches)
	if flo, fhi := f(lo), f(hi); (flo > 0) == (fhi > 0) {
		var err error
		lo, hi, err = bracketEscalation(f)
		if err != nil {
			return 0, err
		}
	}
	brent := num.NewBrent(f, &num.BrentParams{Tol: 1e-8, MaxIt: 70})
	root, err := brent.Root(lo, hi)
	if err != nil || math.IsNaN(root) {
		fineBrent := num.NewBrent(f, &num.BrentParams{Tol: 1e-15, MaxIt: 70})
		root, err = fineBrent.Root(lo, hi)
		if err != nil {
			return 0, tuaserr.New(tuaserr.GenericString, "hydro: parallel common-pressure solve failed even at tightened tolerance: %v", err)
		}
	}
	return units.Pressure(root), nil
}

// branchFlows evaluates every branch's mass flowrate at a given common
// pressure change.
func branchFlows(branches []*FluidComponentCollection, dp units.Pressure) ([]units.MassRate, error) {
	out := make([]units.MassRate, len(branches))
	for i, b := range branches {
		m, err := b.GetMassFlowrate(dp)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// SolveFlowDistribution returns the per-branch mass flowrates summing to
// mRequired, applying flow-diode clamping if DiodeBranchIndex >= 0. Spec
// §4.7 point 4 names distinct two-branch and three-branch (DHX/heater/
// CTAH) closed-form shortcuts; this solver does not implement either
// shortcut separately, because the bracket-escalation + Brent approach
// below handles 2, 3, or N branches identically and correctly — there is
// one path, not three.
func (s *FluidComponentSuperCollection) SolveFlowDistribution(mRequired units.MassRate) ([]units.MassRate, error) {
	return s.solveGeneral(s.Branches, mRequired)
}

// solveGeneral is the n-branch solve used for every branch count.
func (s *FluidComponentSuperCollection) solveGeneral(branches []*FluidComponentCollection, mRequired units.MassRate) ([]units.MassRate, error) {
	dp, err := solveCommonPressureChange(branches, mRequired)
	if err != nil {
		return nil, err
	}
	flows, err := branchFlows(branches, dp)
	if err != nil {
		return nil, err
	}

	diodeIdx := -1
	for i, b := range s.Branches {
		if b == nil {
			continue
		}
		if i < len(branches) && branches[i] == b && i == s.DiodeBranchIndex {
			diodeIdx = i
		}
	}
	if diodeIdx < 0 || diodeIdx >= len(flows) {
		return flows, nil
	}
	if flows[diodeIdx] >= 0 {
		return flows, nil
	}

	// flow-diode clamp: re-solve the remaining branches as a smaller
	// parallel problem carrying the full mRequired (spec §4.7 point 4).
	remaining := make([]*FluidComponentCollection, 0, len(branches)-1)
	for i, b := range branches {
		if i == diodeIdx {
			continue
		}
		remaining = append(remaining, b)
	}
	remFlows, err := s.solveGeneral(remaining, mRequired)
	if err != nil {
		return nil, err
	}
	out := make([]units.MassRate, len(branches))
	j := 0
	for i := range branches {
		if i == diodeIdx {
			out[i] = 0
			continue
		}
		out[i] = remFlows[j]
		j++
	}
	return out, nil
}

// SolveShadowed runs the nominal solve and the diode-excluded solve
// concurrently (spec §5 "flow-diode two-branch shadow solve"), returning
// whichever result is valid: the nominal result if the diode branch
// didn't need clamping, otherwise the shadow (pre-clamped) result.
func (s *FluidComponentSuperCollection) SolveShadowed(mRequired units.MassRate) ([]units.MassRate, error) {
	if s.DiodeBranchIndex < 0 || s.DiodeBranchIndex >= len(s.Branches) {
		return s.solveGeneral(s.Branches, mRequired)
	}

	type result struct {
		flows []units.MassRate
		err   error
	}
	nominalCh := make(chan result, 1)
	shadowCh := make(chan result, 1)

	go func() {
		dp, err := solveCommonPressureChange(s.Branches, mRequired)
		if err != nil {
			nominalCh <- result{nil, err}
			return
		}
		flows, err := branchFlows(s.Branches, dp)
		nominalCh <- result{flows, err}
	}()

	go func() {
		remaining := make([]*FluidComponentCollection, 0, len(s.Branches)-1)
		for i, b := range s.Branches {
			if i == s.DiodeBranchIndex {
				continue
			}
			remaining = append(remaining, b)
		}
		remFlows, err := s.solveGeneral(remaining, mRequired)
		if err != nil {
			shadowCh <- result{nil, err}
			return
		}
		out := make([]units.MassRate, len(s.Branches))
		j := 0
		for i := range s.Branches {
			if i == s.DiodeBranchIndex {
				out[i] = 0
				continue
			}
			out[i] = remFlows[j]
			j++
		}
		shadowCh <- result{out, nil}
	}()

	nominal := <-nominalCh
	shadow := <-shadowCh

	if nominal.err != nil {
		if shadow.err != nil {
			return nil, nominal.err
		}
		return shadow.flows, nil
	}
	if nominal.flows[s.DiodeBranchIndex] < 0 {
		if shadow.err != nil {
			return nil, shadow.err
		}
		return shadow.flows, nil
	}
	return nominal.flows, nil
}
