package tridiag

import "testing"

import "github.com/cpmech/gosl/chk"

func TestSolveMatchesKnownSystem(t *testing.T) {
	// 2x0 + x1 = 3 (diag-only first row, treated via sub[0] unused)
	// x0 + 2x1 + x2 = 6
	// x1 + 2x2 = 5
	sub := []float64{0, 1, 1}
	diag := []float64{2, 2, 2}
	super := []float64{1, 1, 0}
	rhs := []float64{3, 6, 5}

	x, err := Solve(sub, diag, super, rhs)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	chk.Scalar(t, "x0", 1e-9, x[0], 0.5)
	chk.Scalar(t, "x1", 1e-9, x[1], 2)
	chk.Scalar(t, "x2", 1e-9, x[2], 1.5)
}

func TestSolveRejectsEmptySystem(t *testing.T) {
	if _, err := Solve(nil, nil, nil, nil); err == nil {
		t.Fatalf("expected an error for an empty system")
	}
}

func TestSolveRejectsZeroPivot(t *testing.T) {
	sub := []float64{0, 1}
	diag := []float64{0, 2}
	super := []float64{1, 0}
	rhs := []float64{1, 1}
	if _, err := Solve(sub, diag, super, rhs); err == nil {
		t.Fatalf("expected a zero-pivot error")
	}
}
