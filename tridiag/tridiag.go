// Package tridiag implements the Thomas algorithm, the direct tridiagonal
// solve shared by fluidarray and solidarray's implicit-Euler energy
// balance (spec §4.3, §4.4): lateral and external couplings always enter
// as explicit (lagged) source terms rather than additional off-diagonal
// matrix entries, so the per-timestep system is genuinely tridiagonal and
// a banded sparse solver like the teacher's la.LinSol is unnecessary.
package tridiag

import "github.com/theodoreOnzGit/tuas-boussinesq-solver-sub003/tuaserr"

// Solve solves sub[i]*x[i-1] + diag[i]*x[i] + super[i]*x[i+1] = rhs[i] for
// x, given sub[0] and super[n-1] are unused.
func Solve(sub, diag, super, rhs []float64) ([]float64, error) {
	n := len(diag)
	if n == 0 {
		return nil, tuaserr.New(tuaserr.Linalg, "tridiag.Solve: empty system")
	}
	cPrime := make([]float64, n)
	dPrime := make([]float64, n)
	if diag[0] == 0 {
		return nil, tuaserr.New(tuaserr.Linalg, "tridiag.Solve: zero pivot at node 0")
	}
	cPrime[0] = super[0] / diag[0]
	dPrime[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - sub[i]*cPrime[i-1]
		if denom == 0 {
			return nil, tuaserr.New(tuaserr.Linalg, "tridiag.Solve: zero pivot at node %d", i)
		}
		cPrime[i] = super[i] / denom
		dPrime[i] = (rhs[i] - sub[i]*dPrime[i-1]) / denom
	}
	x := make([]float64, n)
	x[n-1] = dPrime[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dPrime[i] - cPrime[i]*x[i+1]
	}
	return x, nil
}
