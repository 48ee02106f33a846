package robust

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

func TestPlaneSideSign(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}

	above := types.Vec3{X: 0.2, Y: 0.2, Z: 1}
	below := types.Vec3{X: 0.2, Y: 0.2, Z: -1}
	onPlane := types.Vec3{X: 0.2, Y: 0.2, Z: 0}

	require.Equal(t, 1, PlaneSideSign(a, b, c, above))
	require.Equal(t, -1, PlaneSideSign(a, b, c, below))
	require.Equal(t, 0, PlaneSideSign(a, b, c, onPlane))
}

func TestBarycentricRoundTrip(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 2, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 2, Z: 0}

	p := types.Vec3{X: 0.5, Y: 0.5, Z: 0}
	bary, ok := Barycentric(a, b, c, p, types.ZeroDenominatorFail)
	require.True(t, ok)
	require.InDelta(t, 1.0, bary.U+bary.V+bary.W, 1e-9)

	reconstructed := a.Scale(bary.U).Add(b.Scale(bary.V)).Add(c.Scale(bary.W))
	require.InDelta(t, p.X, reconstructed.X, 1e-9)
	require.InDelta(t, p.Y, reconstructed.Y, 1e-9)
}

func TestBarycentricDegenerateFallback(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 2, Y: 0, Z: 0} // collinear, zero area

	bary, ok := Barycentric(a, b, c, types.Vec3{X: 0.5}, types.ZeroDenominatorFallback)
	require.True(t, ok)
	require.Equal(t, types.Bary{}, bary)

	_, ok = Barycentric(a, b, c, types.Vec3{X: 0.5}, types.ZeroDenominatorFail)
	require.False(t, ok)
}

func TestSegmentPlaneCross(t *testing.T) {
	a := types.Vec3{X: 0, Y: 0, Z: 0}
	b := types.Vec3{X: 1, Y: 0, Z: 0}
	c := types.Vec3{X: 0, Y: 1, Z: 0}

	p0 := types.Vec3{X: 0.2, Y: 0.2, Z: 2}
	p1 := types.Vec3{X: 0.2, Y: 0.2, Z: -2}

	tt, ok := SegmentPlaneCross(a, b, c, p0, p1)
	require.True(t, ok)
	require.InDelta(t, 0.5, tt, 1e-9)
}
