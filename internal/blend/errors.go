package blend

import "fmt"

// ErrInvalidGeometry is returned for non-positive canvas dimensions or an
// empty layer stack.
var ErrInvalidGeometry = fmt.Errorf("blend: invalid geometry")

// ErrNumericalDegeneracy is returned when the assembled normal-equations
// matrix is detected to be singular. The anchor row should prevent this;
// seeing it means assembly has a bug, not that the input is unusual.
var ErrNumericalDegeneracy = fmt.Errorf("blend: numerical degeneracy in normal equations")

// ErrSolverNonConvergence reports that Conjugate Gradient hit the iteration
// cap before reaching the requested tolerance.
type ErrSolverNonConvergence struct {
	Iterations int
	Residual   float64
}

func (e *ErrSolverNonConvergence) Error() string {
	return fmt.Sprintf("blend: solver did not converge after %d iterations (residual %g)", e.Iterations, e.Residual)
}
