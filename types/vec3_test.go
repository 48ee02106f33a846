package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -1, Z: 0}

	require.Equal(t, Vec3{X: 5, Y: 1, Z: 3}, a.Add(b))
	require.Equal(t, Vec3{X: -3, Y: 3, Z: 3}, a.Sub(b))
	require.Equal(t, 2.0, a.Dot(Vec3{X: 2}))
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	require.Equal(t, Vec3{Z: 1}, x.Cross(y))
}

func TestVec3NormalizeZero(t *testing.T) {
	var z Vec3
	require.Equal(t, z, z.Normalize())
}

func TestVec3MaxAbsComponent(t *testing.T) {
	require.Equal(t, 2, Vec3{X: 1, Y: 1, Z: 5}.MaxAbsComponent())
	require.Equal(t, 0, Vec3{X: -9, Y: 1, Z: 1}.MaxAbsComponent())
}
