package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

type fakeTester struct {
	insideX float64 // points with X < insideX are Inside
}

func (f fakeTester) IsInside(mesh types.MeshID, p types.Vec3) bool {
	return p.X < f.insideX
}

func patchAt(mesh types.MeshID, tri types.TriangleIndex, faceID int, x0 float64) types.TrianglePatch {
	return types.TrianglePatch{
		Mesh:     mesh,
		Triangle: tri,
		FaceID:   faceID,
		World: [3]types.Vec3{
			{X: x0, Y: 0, Z: 0},
			{X: x0 + 1, Y: 0, Z: 0},
			{X: x0, Y: 1, Z: 0},
		},
		IntersectionVertexIDs: [3]types.GlobalVertexID{types.NilGlobalVertex, types.NilGlobalVertex, types.NilGlobalVertex},
	}
}

func TestClassifySinglePatchInsideOutside(t *testing.T) {
	patches := []types.TrianglePatch{patchAt(types.MeshA, 0, 0, -5), patchAt(types.MeshA, 1, 0, 5)}
	infos := Classify(patches, types.MeshB, fakeTester{insideX: 0}, nil, types.NewTolerances())
	require.Equal(t, types.Inside, infos[0].Containment)
	require.Equal(t, types.Outside, infos[1].Containment)
}

func TestClassifyCoplanarPatchIsOn(t *testing.T) {
	p := patchAt(types.MeshA, 0, 0, -5)
	p.CoplanarOwner = types.OwnerMeshA
	infos := Classify([]types.TrianglePatch{p}, types.MeshB, fakeTester{insideX: 0}, nil, types.NewTolerances())
	require.Equal(t, types.On, infos[0].Containment)
}

func TestMajorityVotePrefersInsideOnTie(t *testing.T) {
	patches := []types.TrianglePatch{patchAt(types.MeshA, 0, 0, 0), patchAt(types.MeshA, 0, 0, 0)}
	raw := []types.Containment{types.Inside, types.Outside}
	winner := majorityVote(patches, raw, []int{0, 1})
	require.Equal(t, types.Inside, winner)
}
