package assemble

import "github.com/jimmy-zhao-tainio/erratri-sub001/types"

// canonicalTriangleKey identifies a triangle independent of winding or
// starting corner, so an accidental duplicate (e.g. a coincident patch
// selected from both sides) can be recognized and dropped.
func canonicalTriangleKey(tri types.OutputTriangle) [3]types.VertexID {
	a, b, c := tri[0], tri[1], tri[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]types.VertexID{a, b, c}
}

// windingParity reports whether tri's cyclic vertex order matches the
// ascending rotation of its three vertices (true) or the descending one
// (false), distinguishing the two possible windings of the same three
// vertices.
func windingParity(tri types.OutputTriangle) bool {
	a, b, c := tri[0], tri[1], tri[2]
	for !(a <= b && a <= c) {
		a, b, c = b, c, a
	}
	return b < c
}

// dedupeTriangles collapses triangles sharing the same three vertices.
// A pair with opposite winding is a zero-net-area coincident face (one
// mesh's surface touching the other's from the inside) and both copies
// are removed; any same-winding duplicates left beyond that collapse to
// a single survivor.
func dedupeTriangles(tris []types.OutputTriangle) []types.OutputTriangle {
	type occurrence struct {
		index int
		even  bool
	}
	groups := make(map[[3]types.VertexID][]occurrence, len(tris))
	for i, tri := range tris {
		key := canonicalTriangleKey(tri)
		groups[key] = append(groups[key], occurrence{index: i, even: windingParity(tri)})
	}

	keep := make([]bool, len(tris))
	for _, occs := range groups {
		var evens, odds []int
		for _, o := range occs {
			if o.even {
				evens = append(evens, o.index)
			} else {
				odds = append(odds, o.index)
			}
		}
		n := len(evens)
		if len(odds) < n {
			n = len(odds)
		}
		if extra := evens[n:]; len(extra) > 0 {
			keep[extra[0]] = true
		}
		if extra := odds[n:]; len(extra) > 0 {
			keep[extra[0]] = true
		}
	}

	out := make([]types.OutputTriangle, 0, len(tris))
	for i, tri := range tris {
		if keep[i] {
			out = append(out, tri)
		}
	}
	return out
}

func isDegenerate(tri types.OutputTriangle) bool {
	return tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0]
}
