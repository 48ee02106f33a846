package boolean

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// halfSpaceTester answers containment through the caller-supplied
// insideA/insideB functions, with no real containment test; good enough
// to exercise Run's wiring without a full point-in-mesh implementation.
type halfSpaceTester struct {
	insideA func(types.Vec3) bool
	insideB func(types.Vec3) bool
}

func (h halfSpaceTester) IsInside(mesh types.MeshID, p types.Vec3) bool {
	if mesh == types.MeshA {
		return h.insideA(p)
	}
	return h.insideB(p)
}

func tetrahedron(offset types.Vec3) []types.InputTriangle {
	lattice := func(v types.Vec3) [3]int64 {
		return [3]int64{int64(v.X), int64(v.Y), int64(v.Z)}
	}
	p0 := offset
	p1 := offset.Add(types.Vec3{X: 1})
	p2 := offset.Add(types.Vec3{Y: 1})
	p3 := offset.Add(types.Vec3{Z: 1})

	faces := [][3]types.Vec3{
		{p0, p2, p1},
		{p0, p1, p3},
		{p0, p3, p2},
		{p1, p2, p3},
	}
	tris := make([]types.InputTriangle, len(faces))
	for i, f := range faces {
		tris[i] = types.InputTriangle{P0: lattice(f[0]), P1: lattice(f[1]), P2: lattice(f[2])}
	}
	return tris
}

func TestRunUnionOfDisjointTetrahedraKeepsBoth(t *testing.T) {
	meshA := tetrahedron(types.Vec3{})
	meshB := tetrahedron(types.Vec3{X: 100})

	tester := halfSpaceTester{
		insideA: func(types.Vec3) bool { return false },
		insideB: func(types.Vec3) bool { return false },
	}

	out, err := Run(meshA, meshB, types.Union, tester, Options{})
	require.NoError(t, err)
	require.Len(t, out.Triangles, 8)
}

func TestRunCancelledReturnsErrCancelled(t *testing.T) {
	meshA := tetrahedron(types.Vec3{})
	meshB := tetrahedron(types.Vec3{X: 100})

	cancel := make(chan struct{})
	close(cancel)

	_, err := Run(meshA, meshB, types.Union, halfSpaceTester{
		insideA: func(types.Vec3) bool { return false },
		insideB: func(types.Vec3) bool { return false },
	}, Options{Cancel: cancel})
	require.ErrorIs(t, err, ErrCancelled)
}
