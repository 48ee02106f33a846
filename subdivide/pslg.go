package subdivide

import "github.com/jimmy-zhao-tainio/erratri-sub001/types"

// PSLGVertex is one vertex of a per-triangle planar straight-line graph,
// in barycentric (u,v) chart coordinates.
type PSLGVertex struct {
	UV       types.Point
	IsCorner bool
	Global   types.GlobalVertexID // NilGlobalVertex for original triangle corners
}

// PSLGEdge is an undirected edge between two PSLG vertex indices.
type PSLGEdge struct {
	V1, V2   int
	Boundary bool
}

// HalfEdge is one directed view of a PSLGEdge.
type HalfEdge struct {
	From, To  int
	Twin      int
	Next      int
	EdgeIndex int
}

// Face is one cycle of half-edges bounding a region of the subdivision,
// with zero or more interior cycles (holes).
type Face struct {
	Outer      []int // half-edge indices, CCW
	Holes      [][]int
	SignedArea float64 // area of the Outer cycle; hole areas are not subtracted
}

// PSLG is the per-triangle subdivision state: vertices in barycentric
// (u,v) chart coordinates, the boundary and interior edges between
// them, their half-edge views, and the faces those half-edges bound.
type PSLG struct {
	Vertices  []PSLGVertex
	Edges     []PSLGEdge
	HalfEdges []HalfEdge
	Faces     []Face
}

func (p *PSLG) addVertex(v PSLGVertex) int {
	p.Vertices = append(p.Vertices, v)
	return len(p.Vertices) - 1
}

func edgeKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
