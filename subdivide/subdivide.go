package subdivide

import (
	"fmt"

	"github.com/jimmy-zhao-tainio/erratri-sub001/graph"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// Subdivide builds every triangle's PSLG and emits the resulting
// TrianglePatches for one input mesh. Triangles untouched by any
// intersection are emitted unsubdivided via the same whole-triangle
// fast path.
func Subdivide(mesh []types.InputTriangle, meshID types.MeshID, g *graph.Graph, pairRefs []types.PairKey, tol types.Tolerances) ([]types.TrianglePatch, error) {
	idx := BuildTriangleIntersectionIndex(mesh, g.VertexPositions, tol)
	topo := BuildMeshTopology(g, pairRefs, meshID)
	coplanar := coplanarTriangles(g, pairRefs, meshID)
	owner := types.OwnerMeshA
	if meshID == types.MeshB {
		owner = types.OwnerMeshB
	}

	var patches []types.TrianglePatch
	for ti, tri := range mesh {
		triIdx := types.TriangleIndex(ti)
		attached := idx.Attached(triIdx)
		segments := topo.TriangleEdges[triIdx]

		pslg, _, err := BuildPSLG(attached, segments, tol)
		if err != nil {
			return nil, fmt.Errorf("subdivide: triangle %d: %w", ti, err)
		}

		triPatches, err := facesToPatches(pslg, meshID, triIdx, tri, tol)
		if err != nil {
			return nil, fmt.Errorf("subdivide: triangle %d: %w", ti, err)
		}
		if coplanar[triIdx] {
			for i := range triPatches {
				triPatches[i].CoplanarOwner = owner
			}
		}
		patches = append(patches, triPatches...)
	}
	return patches, nil
}

// coplanarTriangles reports, for side's mesh, which triangles
// participate in at least one KindArea pair with the opposite mesh —
// a coplanar overlap region whose patches must carry a CoplanarOwner
// tag so C4/C5 can recognize and reconcile the two meshes' coincident
// faces instead of treating them as an ordinary Inside/Outside split.
func coplanarTriangles(g *graph.Graph, pairRefs []types.PairKey, side types.MeshID) map[types.TriangleIndex]bool {
	out := make(map[types.TriangleIndex]bool)
	for pairIdx, pf := range g.PairFeatures {
		if pf.Kind != types.KindArea {
			continue
		}
		if pairIdx >= len(pairRefs) {
			continue
		}
		if side == types.MeshA {
			out[pairRefs[pairIdx].A] = true
		} else {
			out[pairRefs[pairIdx].B] = true
		}
	}
	return out
}
