package assemble

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// validateManifold counts how many triangles use each undirected edge
// and fails if any edge is used a number of times other than exactly
// two, the signature of a non-closed or self-intersecting result.
func validateManifold(tris []types.OutputTriangle) error {
	counts := make(map[[2]types.VertexID]int)
	for _, tri := range tris {
		for e := 0; e < 3; e++ {
			a, b := tri[e], tri[(e+1)%3]
			if a > b {
				a, b = b, a
			}
			counts[[2]types.VertexID{a, b}]++
		}
	}

	bad := make(map[[2]types.VertexID]int)
	for edge, n := range counts {
		if n != 2 {
			bad[edge] = n
		}
	}
	if len(bad) == 0 {
		return nil
	}
	want := make(map[[2]types.VertexID]int, len(bad))
	for edge := range bad {
		want[edge] = 2
	}
	return fmt.Errorf("assemble: result is not edge-manifold, edge use counts want vs got:\n%s", cmp.Diff(want, bad))
}
