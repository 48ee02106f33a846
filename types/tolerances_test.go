package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTolerancesDefaults(t *testing.T) {
	tol := NewTolerances()
	require.Equal(t, 1e-12, tol.PlaneSideEpsilon)
	require.Equal(t, 1e-12, tol.TrianglePredicateEpsilon)
	require.Equal(t, 1e-7, tol.EpsCorner)
	require.Equal(t, 1e-7, tol.EpsSide)
	require.Equal(t, 1e-7, tol.PSLGVertexMergeEpsilon)
	require.Equal(t, 1e-24, tol.FeatureWorldDistanceEpsilonSquared)
	require.Equal(t, 1e-9, tol.BarycentricInsideEpsilon)
	require.Equal(t, 1e-12, tol.FeatureBarycentricEpsilon)
}

func TestTolerancesOptions(t *testing.T) {
	tol := NewTolerances(WithMergeEpsilon(1e-6), WithPlaneSideEpsilon(5e-10))
	require.Equal(t, 1e-6, tol.MergeEpsilon)
	require.Equal(t, 5e-10, tol.PlaneSideEpsilon)
	require.InDelta(t, 1e-12, tol.MergeEpsilonSquared(), 1e-20)
	require.InDelta(t, 1e-5, tol.EdgeInteriorDistance(), 1e-18)
}
