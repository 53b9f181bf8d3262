package blend

import "github.com/cpmech/gosl/la"

// sparseMatrix wraps the compressed-column matrix produced from a
// github.com/cpmech/gosl/la triplet once accumulation is finished. The
// library supplies assembly (Triplet.Put) and CSC storage (CCMatrix); the
// matvec used by the Conjugate Gradient loop is hand-written directly over
// its Ap/Ai/Ax arrays, since the corpus only demonstrates the triplet
// assembly pattern, not a matvec call.
type sparseMatrix struct {
	n  int
	cc *la.CCMatrix
}

// compress finishes a triplet accumulation into compressed-column storage.
func compress(t *la.Triplet, n int) *sparseMatrix {
	return &sparseMatrix{n: n, cc: t.ToMatrix(nil)}
}

// matVec computes y = A*x over the CSC arrays.
func (m *sparseMatrix) matVec(x []float64) []float64 {
	y := make([]float64, m.n)
	ap, ai, ax := m.cc.Ap, m.cc.Ai, m.cc.Ax
	for j := 0; j < m.n; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		for p := ap[j]; p < ap[j+1]; p++ {
			y[ai[p]] += ax[p] * xj
		}
	}
	return y
}
