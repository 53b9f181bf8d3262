package blend

import "math"

// Default solver configuration (spec.md §4.7: "tolerance and iteration cap
// are implementation choices, but the default must converge on test images
// of several hundred thousand unknowns").
const (
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 2000
)

// solveCG runs Conjugate Gradient on the symmetric positive-definite system
// a*x = b with a trivial (identity) preconditioner, stopping once the
// relative residual drops below tol or after maxIter iterations. The matvec
// comes from sparseMatrix, which wraps a compressed github.com/cpmech/gosl/la
// triplet; the iteration itself is ours, same division of labor as the
// original implementation's BiCGSTAB-over-Eigen.
func solveCG(a *sparseMatrix, b []float64, tol float64, maxIter int) (x []float64, iterations int, residual float64, err error) {
	n := len(b)
	x = make([]float64, n)

	bNorm := math.Sqrt(dot(b, b))
	if bNorm == 0 {
		return x, 0, 0, nil
	}

	r := make([]float64, n)
	copy(r, b)
	p := make([]float64, n)
	copy(p, r)
	rsOld := dot(r, r)

	for iter := 1; iter <= maxIter; iter++ {
		ap := a.matVec(p)
		denom := dot(p, ap)
		if denom == 0 {
			return nil, iter, math.Sqrt(rsOld) / bNorm, ErrNumericalDegeneracy
		}
		alpha := rsOld / denom
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rsNew := dot(r, r)
		resid := math.Sqrt(rsNew) / bNorm
		if resid < tol {
			return x, iter, resid, nil
		}
		beta := rsNew / rsOld
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rsOld = rsNew
	}
	resid := math.Sqrt(rsOld) / bNorm
	return x, maxIter, resid, &ErrSolverNonConvergence{Iterations: maxIter, Residual: resid}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
