package assemble

import (
	"github.com/jimmy-zhao-tainio/erratri-sub001/spatial"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// weldVertices assigns a shared output vertex ID to every corner of
// every selected patch, merging a corner into the first previously added
// vertex found in any grid cell overlapping the box of half-width
// MergeEpsilon around it, and returns the merged vertex positions alongside a
// lookup keyed by original (patch index, corner) pairs.
type weldResult struct {
	positions []types.Vec3
	vertexOf  map[cornerKey]types.VertexID
}

type cornerKey struct {
	patch  int
	corner int
}

func weldVertices(patches []selected, tol types.Tolerances) weldResult {
	size := tol.MergeEpsilon
	if size <= 0 {
		size = 1e-9
	}
	grid := spatial.NewHashGrid3(size)
	radius := size

	res := weldResult{vertexOf: make(map[cornerKey]types.VertexID)}

	for pi, s := range patches {
		for c := 0; c < 3; c++ {
			pos := s.patch.World[c]
			var id types.VertexID
			if near := grid.FindNear(pos, radius); len(near) > 0 {
				id = types.VertexID(near[0])
			} else {
				id = types.VertexID(len(res.positions))
				res.positions = append(res.positions, pos)
				grid.Add(int(id), pos)
			}
			res.vertexOf[cornerKey{patch: pi, corner: c}] = id
		}
	}
	return res
}
