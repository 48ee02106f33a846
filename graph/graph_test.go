package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmy-zhao-tainio/erratri-sub001/pairintersect"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

func vertex(id int, world types.Vec3) pairintersect.PairVertex {
	return pairintersect.PairVertex{ID: id, World: world}
}

func TestBuildDedupesSharedVertices(t *testing.T) {
	// Two pairs that share an intersection point at the origin should
	// collapse to a single global vertex.
	results := []pairintersect.Result{
		{
			Kind: types.KindSegment,
			Features: pairintersect.PairFeatures{
				Vertices: []pairintersect.PairVertex{
					vertex(0, types.Vec3{}),
					vertex(1, types.Vec3{X: 1}),
				},
				Segments: []pairintersect.PairSegment{{V1: 0, V2: 1}},
			},
		},
		{
			Kind: types.KindSegment,
			Features: pairintersect.PairFeatures{
				Vertices: []pairintersect.PairVertex{
					vertex(0, types.Vec3{}),
					vertex(1, types.Vec3{Y: 1}),
				},
				Segments: []pairintersect.PairSegment{{V1: 0, V2: 1}},
			},
		},
	}

	g := Build(results, types.NewTolerances())
	require.Len(t, g.VertexPositions, 3)
	require.Equal(t, g.PairFeatures[0].Vertices[0], g.PairFeatures[1].Vertices[0])
}

func TestBuildNoneKindProducesEmptyFeatures(t *testing.T) {
	g := Build([]pairintersect.Result{{Kind: types.KindNone}}, types.NewTolerances())
	require.Empty(t, g.VertexPositions)
	require.Empty(t, g.PairFeatures[0].Vertices)
	require.Empty(t, g.PairFeatures[0].Segments)
}

func TestSplitEdgeThroughInteriorVertex(t *testing.T) {
	results := []pairintersect.Result{
		{
			Kind: types.KindSegment,
			Features: pairintersect.PairFeatures{
				Vertices: []pairintersect.PairVertex{
					vertex(0, types.Vec3{X: 0}),
					vertex(1, types.Vec3{X: 1}),
					vertex(2, types.Vec3{X: 2}),
				},
				Segments: []pairintersect.PairSegment{{V1: 0, V2: 2}},
			},
		},
	}

	g := Build(results, types.NewTolerances())
	// The (0,2) edge should have been split through the interior vertex 1.
	require.Len(t, g.Edges, 2)
}
