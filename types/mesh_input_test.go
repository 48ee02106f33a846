package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputTriangleWorld(t *testing.T) {
	tri := InputTriangle{
		P0:     [3]int64{0, 0, 0},
		P1:     [3]int64{2, 0, 0},
		P2:     [3]int64{0, 2, 0},
		Normal: Vec3{Z: 1},
	}
	p0, p1, p2 := tri.World()
	require.Equal(t, Vec3{0, 0, 0}, p0)
	require.Equal(t, Vec3{2, 0, 0}, p1)
	require.Equal(t, Vec3{0, 2, 0}, p2)
}

type fakeInsideTester struct{}

func (fakeInsideTester) IsInside(mesh MeshID, p Vec3) bool { return p.Z > 0 }

func TestInsideTesterInterface(t *testing.T) {
	var tester InsideTester = fakeInsideTester{}
	require.True(t, tester.IsInside(MeshA, Vec3{Z: 1}))
	require.False(t, tester.IsInside(MeshB, Vec3{Z: -1}))
}
