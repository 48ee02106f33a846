// Package subdivide implements C3, the TriangleSubdivider: for each
// input triangle touched by an intersection, it builds a PSLG in
// barycentric 2D and emits subdivision patches with face IDs.
package subdivide

import (
	"sort"

	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/robust"
	"github.com/jimmy-zhao-tainio/erratri-sub001/graph"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// meshEdgeKey canonicalizes a mesh-local edge by its integer lattice
// corner pair, giving input vertices a stable identity independent of
// triangle winding or array order.
type meshEdgeKey struct {
	a, b [3]int64
}

func newMeshEdgeKey(a, b [3]int64) meshEdgeKey {
	if lessLattice(a, b) {
		return meshEdgeKey{a: a, b: b}
	}
	return meshEdgeKey{a: b, b: a}
}

func lessLattice(a, b [3]int64) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	return a[2] < b[2]
}

// meshAdjacency maps a mesh-local edge to the (at most two) triangles
// that share it, used to propagate attached vertices across shared mesh
// edges.
type meshAdjacency map[meshEdgeKey][]types.TriangleIndex

func buildMeshAdjacency(mesh []types.InputTriangle) meshAdjacency {
	adj := make(meshAdjacency)
	for i, t := range mesh {
		corners := [3][3]int64{t.P0, t.P1, t.P2}
		for e := 0; e < 3; e++ {
			key := newMeshEdgeKey(corners[e], corners[(e+1)%3])
			adj[key] = append(adj[key], types.TriangleIndex(i))
		}
	}
	return adj
}

// AttachedVertex is a global intersection vertex attached to a
// particular triangle, expressed in that triangle's barycentric
// coordinates.
type AttachedVertex struct {
	GlobalID types.GlobalVertexID
	Bary     types.Bary
}

// TriangleIntersectionIndex maps each triangle of a mesh to the global
// vertices attached to it, including vertices propagated across shared
// mesh edges so that a mesh edge participating in an intersection pair
// on only one of its two triangles does not crack the other.
type TriangleIntersectionIndex struct {
	adjacency meshAdjacency
	attached  map[types.TriangleIndex][]AttachedVertex
}

// BuildTriangleIntersectionIndex attaches global vertices to every
// triangle of mesh whose barycentric coordinate on that triangle is
// inclusive.
func BuildTriangleIntersectionIndex(mesh []types.InputTriangle, positions []types.Vec3, tol types.Tolerances) *TriangleIntersectionIndex {
	idx := &TriangleIntersectionIndex{
		adjacency: buildMeshAdjacency(mesh),
		attached:  make(map[types.TriangleIndex][]AttachedVertex),
	}

	eps := tol.TrianglePredicateEpsilon
	for ti, tri := range mesh {
		p0, p1, p2 := tri.World()
		for gid, pos := range positions {
			bary, ok := robust.Barycentric(p0, p1, p2, pos, types.ZeroDenominatorFallback)
			if !ok || !bary.Inclusive(eps) {
				continue
			}
			av := AttachedVertex{GlobalID: types.GlobalVertexID(gid), Bary: bary}
			idx.attach(types.TriangleIndex(ti), av)
			idx.propagate(mesh, types.TriangleIndex(ti), av, eps)
		}
	}
	return idx
}

func (idx *TriangleIntersectionIndex) attach(t types.TriangleIndex, v AttachedVertex) {
	for _, existing := range idx.attached[t] {
		if existing.GlobalID == v.GlobalID {
			return
		}
	}
	idx.attached[t] = append(idx.attached[t], v)
}

// propagate attaches v to any triangle sharing a mesh edge with t, when
// v lies on that edge (barycentric component opposite the edge is ~0).
func (idx *TriangleIntersectionIndex) propagate(mesh []types.InputTriangle, t types.TriangleIndex, v AttachedVertex, eps float64) {
	corners := [3][3]int64{mesh[t].P0, mesh[t].P1, mesh[t].P2}
	opposite := [3]float64{v.Bary.W, v.Bary.U, v.Bary.V} // edge0=(P0,P1) opposite P2=W, etc.

	for e := 0; e < 3; e++ {
		if absf(opposite[e]) > eps {
			continue
		}
		key := newMeshEdgeKey(corners[e], corners[(e+1)%3])
		for _, other := range idx.adjacency[key] {
			if other == t {
				continue
			}
			p0, p1, p2 := mesh[other].World()
			pos := reconstructWorld(mesh[t], v.Bary)
			bary, ok := robust.Barycentric(p0, p1, p2, pos, types.ZeroDenominatorFallback)
			if !ok || !bary.Inclusive(eps) {
				continue
			}
			idx.attach(other, AttachedVertex{GlobalID: v.GlobalID, Bary: bary})
		}
	}
}

func reconstructWorld(t types.InputTriangle, b types.Bary) types.Vec3 {
	p0, p1, p2 := t.World()
	return p0.Scale(b.U).Add(p1.Scale(b.V)).Add(p2.Scale(b.W))
}

// Attached returns the vertices attached to triangle t, sorted by
// GlobalID for deterministic iteration.
func (idx *TriangleIntersectionIndex) Attached(t types.TriangleIndex) []AttachedVertex {
	out := append([]AttachedVertex(nil), idx.attached[t]...)
	sort.Slice(out, func(i, j int) bool { return out[i].GlobalID < out[j].GlobalID })
	return out
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// MeshTopology collects, per triangle of one mesh, the global edges
// whose PairSegments were actually emitted for a pair involving that
// triangle, not merely any edge whose endpoints happen to
// lie on the triangle.
type MeshTopology struct {
	TriangleEdges map[types.TriangleIndex][]types.GlobalEdge
}

// BuildMeshTopology attaches each global graph edge to the triangle(s)
// of `side` that its originating pair touched. pairRefs aligns 1:1 with
// g.PairFeatures, naming which triangle of mesh A and which of mesh B
// the caller's broadphase paired up to produce that entry.
func BuildMeshTopology(g *graph.Graph, pairRefs []types.PairKey, side types.MeshID) *MeshTopology {
	topo := &MeshTopology{TriangleEdges: make(map[types.TriangleIndex][]types.GlobalEdge)}
	for pairIdx, pf := range g.PairFeatures {
		if pairIdx >= len(pairRefs) || len(pf.Segments) == 0 {
			continue
		}
		ref := pairRefs[pairIdx]
		tri := ref.A
		if side == types.MeshB {
			tri = ref.B
		}
		topo.TriangleEdges[tri] = append(topo.TriangleEdges[tri], pf.Segments...)
	}
	return topo
}

// Loops walks the unused-edge adjacency of triangle t, greedily chaining
// endpoint-to-endpoint, emitting closed loops and open chains. Each
// returned slice is a sequence of global vertex IDs; a closed loop
// repeats its first vertex as its last.
func (topo *MeshTopology) Loops(t types.TriangleIndex) [][]types.GlobalVertexID {
	edges := topo.TriangleEdges[t]
	adjacency := make(map[types.GlobalVertexID][]types.GlobalEdge)
	used := make(map[types.GlobalEdge]bool)
	for _, e := range edges {
		adjacency[e.A] = append(adjacency[e.A], e)
		adjacency[e.B] = append(adjacency[e.B], e)
	}

	var loops [][]types.GlobalVertexID
	for _, start := range edges {
		if used[start] {
			continue
		}
		chain := walkChain(start, adjacency, used)
		loops = append(loops, chain)
	}
	return loops
}

func walkChain(start types.GlobalEdge, adjacency map[types.GlobalVertexID][]types.GlobalEdge, used map[types.GlobalEdge]bool) []types.GlobalVertexID {
	used[start] = true
	chain := []types.GlobalVertexID{start.A, start.B}
	first := start.A

	cur := start.B
	for {
		next, ok := pickUnusedIncident(cur, adjacency, used)
		if !ok {
			break
		}
		used[next] = true
		other := next.A
		if other == cur {
			other = next.B
		}
		chain = append(chain, other)
		cur = other
		if cur == first {
			break
		}
	}
	return chain
}

func pickUnusedIncident(v types.GlobalVertexID, adjacency map[types.GlobalVertexID][]types.GlobalEdge, used map[types.GlobalEdge]bool) (types.GlobalEdge, bool) {
	for _, e := range adjacency[v] {
		if !used[e] {
			return e, true
		}
	}
	return types.GlobalEdge{}, false
}
