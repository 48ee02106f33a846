package subdivide

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmy-zhao-tainio/erratri-sub001/graph"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// TestSubdivideTagsCoplanarOwnerForAreaPair verifies that a triangle
// participating in a KindArea pair comes out of Subdivide with every
// one of its patches carrying the calling mesh's CoplanarOwner tag,
// the mechanism that makes an On classification reachable at all.
func TestSubdivideTagsCoplanarOwnerForAreaPair(t *testing.T) {
	mesh := []types.InputTriangle{
		inputTri([3]int64{0, 0, 0}, [3]int64{1, 0, 0}, [3]int64{0, 1, 0}),
		inputTri([3]int64{5, 5, 0}, [3]int64{6, 5, 0}, [3]int64{5, 6, 0}),
	}

	g := &graph.Graph{
		PairFeatures: []graph.PairGlobalFeatures{
			{Kind: types.KindArea},
			{Kind: types.KindNone},
		},
	}
	pairRefs := []types.PairKey{
		{A: 0, B: 0},
		{A: 1, B: 0},
	}

	patches, err := Subdivide(mesh, types.MeshA, g, pairRefs, types.NewTolerances())
	require.NoError(t, err)
	require.NotEmpty(t, patches)

	for _, p := range patches {
		if p.Triangle == 0 {
			require.Equal(t, types.OwnerMeshA, p.CoplanarOwner)
		} else {
			require.Equal(t, types.OwnerNone, p.CoplanarOwner)
		}
	}
}
