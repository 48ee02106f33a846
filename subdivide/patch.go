package subdivide

import (
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// facesToPatches triangulates every face of a triangle's PSLG into
// TrianglePatches, assigning consecutive face IDs and reconstructing
// each corner's world position from the owning input triangle.
func facesToPatches(p *PSLG, mesh types.MeshID, triIdx types.TriangleIndex, tri types.InputTriangle, tol types.Tolerances) ([]types.TrianglePatch, error) {
	p0, p1, p2 := tri.World()

	var patches []types.TrianglePatch
	for faceID, f := range p.Faces {
		tris, err := TriangulateFace(p, f, tol)
		if err != nil {
			return nil, err
		}
		for _, ft := range tris {
			var world [3]types.Vec3
			var gids [3]types.GlobalVertexID
			for i, vi := range ft {
				v := p.Vertices[vi]
				bary := types.BaryFromUV(v.UV)
				world[i] = p0.Scale(bary.U).Add(p1.Scale(bary.V)).Add(p2.Scale(bary.W))
				gids[i] = v.Global
			}
			patches = append(patches, types.TrianglePatch{
				Mesh:                  mesh,
				Triangle:              triIdx,
				FaceID:                faceID,
				World:                 world,
				IntersectionVertexIDs: gids,
			})
		}
	}
	return patches, nil
}
