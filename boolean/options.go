// Package boolean wires C1 through C5 into the top-level boolean mesh
// operation: PairIntersector, IntersectionGraph, TriangleSubdivider,
// PatchClassifier, and BooleanSelectorAssembler, in that order.
package boolean

import "github.com/jimmy-zhao-tainio/erratri-sub001/types"

// Options configures one Run call.
type Options struct {
	// Tolerances overrides the default epsilon bundle. The zero value
	// selects types.NewTolerances().
	Tolerances types.Tolerances

	// Cancel, when non-nil, is polled before each candidate pair and again
	// after graph construction and after subdivision; a closed or ready
	// channel aborts the run with ErrCancelled.
	Cancel <-chan struct{}

	// CaptureDiagnostics keeps the intermediate per-stage state
	// available via LastDiagnostics after Run returns.
	CaptureDiagnostics bool
}

func (o Options) tolerances() types.Tolerances {
	if o.Tolerances.MergeEpsilon == 0 {
		return types.NewTolerances()
	}
	return o.Tolerances
}

func (o Options) cancelled() bool {
	if o.Cancel == nil {
		return false
	}
	select {
	case <-o.Cancel:
		return true
	default:
		return false
	}
}
