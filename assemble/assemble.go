package assemble

import "github.com/jimmy-zhao-tainio/erratri-sub001/types"

// Run selects, welds, and assembles the classified patches of both
// input meshes into the OutputMesh for one boolean operation.
func Run(op types.BooleanOperationType, aInfos, bInfos []types.PatchInfo, tol types.Tolerances) (types.OutputMesh, types.BooleanPatchSet, error) {
	selA := selectSide(aInfos, op, types.MeshA)
	selB := selectSide(bInfos, op, types.MeshB)

	all := make([]selected, 0, len(selA)+len(selB))
	all = append(all, selA...)
	all = append(all, selB...)

	weld := weldVertices(all, tol)

	tris := make([]types.OutputTriangle, 0, len(all))
	for pi, s := range all {
		v0 := weld.vertexOf[cornerKey{patch: pi, corner: 0}]
		v1 := weld.vertexOf[cornerKey{patch: pi, corner: 1}]
		v2 := weld.vertexOf[cornerKey{patch: pi, corner: 2}]
		tri := types.OutputTriangle{v0, v1, v2}
		if s.flipped {
			tri = types.OutputTriangle{v0, v2, v1}
		}
		if isDegenerate(tri) {
			continue
		}
		tris = append(tris, tri)
	}
	tris = dedupeTriangles(tris)

	if err := validateManifold(tris); err != nil {
		return types.OutputMesh{}, types.BooleanPatchSet{}, err
	}

	patchSet := types.BooleanPatchSet{
		FromA: patchesOf(selA),
		FromB: patchesOf(selB),
	}
	mesh := types.OutputMesh{Vertices: weld.positions, Triangles: tris}
	return mesh, patchSet, nil
}

func patchesOf(sel []selected) []types.TrianglePatch {
	out := make([]types.TrianglePatch, len(sel))
	for i, s := range sel {
		out[i] = s.patch
	}
	return out
}
