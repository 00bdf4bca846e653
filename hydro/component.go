// Package hydro implements the hydraulic network solver of spec §4.7:
// per-component pressure-drop evaluation, series collections inverted by
// Brent root-finding, and parallel super-collections solved for a common
// branch pressure change. Grounded on the teacher's fem.Solver
// assemble-then-iterate shape, adapted from a Newton residual update to
// a 1-D Brent bracket-and-refine loop, since the hydraulic network here
// is a single scalar unknown (mass flowrate or common pressure change)
// rather than a coupled Jacobian system.
package hydro

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/units"

// FluidComponent is any entity exposing a pressure-change-at-mass-
// flowrate relation (spec §4.7). FluidArray satisfies this structurally.
type FluidComponent interface {
	GetPressureChange(m units.MassRate, Tref units.Temperature) (units.Pressure, error)
}
