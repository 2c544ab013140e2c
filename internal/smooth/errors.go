package smooth

import "fmt"

// InvalidParameterError reports a negative smoothing coefficient.
type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("smoothing coefficient %s = %g, must be >= 0", e.Name, e.Value)
}

// SolveError reports a failure of the banded Cholesky solve. For valid
// finite input this indicates an implementation defect, so callers
// should treat it as fatal rather than retry.
type SolveError struct {
	Reason string
}

func (e *SolveError) Error() string {
	return "sparse solve failed: " + e.Reason
}

// DivideByZeroError reports a relative-error computation against an
// all-zero reference grid.
type DivideByZeroError struct{}

func (e *DivideByZeroError) Error() string {
	return "relative error undefined for all-zero reference grid"
}
