package pairintersect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

func tri(p0, p1, p2 types.Vec3) types.InputTriangle {
	return types.InputTriangle{
		P0:     [3]int64{int64(p0.X), int64(p0.Y), int64(p0.Z)},
		P1:     [3]int64{int64(p1.X), int64(p1.Y), int64(p1.Z)},
		P2:     [3]int64{int64(p2.X), int64(p2.Y), int64(p2.Z)},
	}
}

func TestIntersectDisjointIsNone(t *testing.T) {
	a := tri(types.Vec3{}, types.Vec3{X: 1}, types.Vec3{Y: 1})
	b := tri(types.Vec3{X: 100}, types.Vec3{X: 101}, types.Vec3{X: 100, Y: 1})

	res := Intersect(a, b, types.NewTolerances())
	require.Equal(t, types.KindNone, res.Kind)
	require.Empty(t, res.Features.Vertices)
	require.Empty(t, res.Features.Segments)
}

func TestIntersectSharedFaceIsArea(t *testing.T) {
	a := tri(types.Vec3{}, types.Vec3{X: 2}, types.Vec3{Y: 2})
	b := tri(types.Vec3{}, types.Vec3{X: 2}, types.Vec3{Y: 2})

	res := Intersect(a, b, types.NewTolerances())
	require.Equal(t, types.KindArea, res.Kind)
	require.GreaterOrEqual(t, len(res.Features.Vertices), 3)
	require.Equal(t, len(res.Features.Vertices), len(res.Features.Segments))
}

func TestIntersectCrossingTrianglesIsSegment(t *testing.T) {
	// Triangle in the XY plane at z=0, triangle crossing through it
	// tilted along Z, sharing an interior crossing segment.
	a := tri(types.Vec3{X: -2, Y: -2}, types.Vec3{X: 2, Y: -2}, types.Vec3{Y: 2})
	b := types.InputTriangle{
		P0: [3]int64{-2, 0, -2},
		P1: [3]int64{2, 0, -2},
		P2: [3]int64{0, 0, 2},
	}

	res := Intersect(a, b, types.NewTolerances())
	require.Equal(t, types.KindSegment, res.Kind)
	require.Len(t, res.Features.Segments, 1)
}
