package types

import "math"

// Tolerances bundles every epsilon controlling predicates and merging
// behavior throughout the boolean pipeline. Callers construct one with
// NewTolerances and override fields via Option; the zero value is not
// meaningful (use NewTolerances() for the documented defaults).
type Tolerances struct {
	PlaneSideEpsilon                   float64
	TrianglePredicateEpsilon           float64
	EpsVertex                          float64
	EpsArea                            float64
	EpsCorner                          float64
	EpsSide                            float64
	PSLGVertexMergeEpsilon             float64
	FeatureWorldDistanceEpsilonSquared float64
	BarycentricInsideEpsilon           float64
	FeatureBarycentricEpsilon          float64
	MergeEpsilon                       float64
	TEpsilon                           float64
}

// Option mutates a Tolerances value under construction.
type Option func(*Tolerances)

// NewTolerances builds a Tolerances bundle from the kernel's
// documented defaults, then applies opts in order.
func NewTolerances(opts ...Option) Tolerances {
	t := Tolerances{
		PlaneSideEpsilon:                   1e-12,
		TrianglePredicateEpsilon:           1e-12,
		EpsVertex:                          1e-12,
		EpsArea:                            1e-12,
		EpsCorner:                          1e-7,
		EpsSide:                            1e-7,
		PSLGVertexMergeEpsilon:             1e-7,
		FeatureWorldDistanceEpsilonSquared: 1e-24,
		BarycentricInsideEpsilon:           1e-9,
		FeatureBarycentricEpsilon:          1e-12,
		MergeEpsilon:                       1e-9,
		TEpsilon:                           1e-9,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// WithPlaneSideEpsilon overrides the plane-side coplanarity tolerance.
func WithPlaneSideEpsilon(v float64) Option {
	return func(t *Tolerances) { t.PlaneSideEpsilon = v }
}

// WithTrianglePredicateEpsilon overrides the general triangle-predicate
// tolerance (also used as the world-space vertex quantization cell size).
func WithTrianglePredicateEpsilon(v float64) Option {
	return func(t *Tolerances) { t.TrianglePredicateEpsilon = v }
}

// WithMergeEpsilon overrides the output vertex-weld tolerance.
func WithMergeEpsilon(v float64) Option {
	return func(t *Tolerances) { t.MergeEpsilon = v }
}

// WithPSLGVertexMergeEpsilon overrides the per-triangle PSLG vertex merge
// tolerance.
func WithPSLGVertexMergeEpsilon(v float64) Option {
	return func(t *Tolerances) { t.PSLGVertexMergeEpsilon = v }
}

// WithFeatureWorldDistanceEpsilon overrides the feature world-distance
// dedup tolerance (given un-squared; stored squared internally).
func WithFeatureWorldDistanceEpsilon(v float64) Option {
	return func(t *Tolerances) { t.FeatureWorldDistanceEpsilonSquared = v * v }
}

// MergeEpsilonSquared returns MergeEpsilon^2, satisfying call sites that
// historically referenced Tolerances.MergeEpsilonSquared directly.
func (t Tolerances) MergeEpsilonSquared() float64 {
	return t.MergeEpsilon * t.MergeEpsilon
}

// FeatureWorldDistanceEpsilon returns sqrt(FeatureWorldDistanceEpsilonSquared).
func (t Tolerances) FeatureWorldDistanceEpsilon() float64 {
	return math.Sqrt(t.FeatureWorldDistanceEpsilonSquared)
}

// EdgeInteriorDistance returns the perpendicular-distance threshold used
// when deciding whether a vertex lies interior to an edge during edge
// splitting: 10 * mergeEpsilon.
func (t Tolerances) EdgeInteriorDistance() float64 {
	return 10 * t.MergeEpsilon
}
