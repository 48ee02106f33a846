// Package graph implements C2, the IntersectionGraph: it globalizes
// per-pair PairFeatures into a single vertex/edge graph with shared
// identity across pairs, using world-space quantization for vertex
// dedup.
package graph

import (
	"golang.org/x/exp/slices"

	"github.com/jimmy-zhao-tainio/erratri-sub001/pairintersect"
	"github.com/jimmy-zhao-tainio/erratri-sub001/spatial"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// Graph is the global intersection graph: world positions for every
// global vertex, the deduplicated undirected edge set, and the
// per-pair PairFeatures re-expressed in global vertex IDs, aligned 1:1
// with the caller's pair order.
type Graph struct {
	VertexPositions []types.Vec3
	Edges           []types.GlobalEdge
	PairFeatures    []PairGlobalFeatures
}

// PairGlobalFeatures mirrors pairintersect.PairFeatures but with
// pair-local IDs resolved to global vertex IDs.
type PairGlobalFeatures struct {
	Kind     types.IntersectionKind
	Vertices []types.GlobalVertexID
	Segments []types.GlobalEdge
}

// pairLocalKey identifies one PairVertex by (pair index, local ID) for
// the mapping recorded during global vertex construction in Build.
type pairLocalKey struct {
	pair  int
	local int
}

// Build constructs the IntersectionGraph from the per-pair
// pairintersect.Result slice, in the caller's pair order.
func Build(results []pairintersect.Result, tol types.Tolerances) *Graph {
	g := &Graph{PairFeatures: make([]PairGlobalFeatures, len(results))}

	grid := spatial.NewHashGrid3(tol.TrianglePredicateEpsilon)
	cellToID := make(map[[3]int64]types.GlobalVertexID)
	localToGlobal := make(map[pairLocalKey]types.GlobalVertexID)

	for pairIdx, res := range results {
		g.PairFeatures[pairIdx].Kind = res.Kind
		if res.Kind == types.KindNone {
			continue
		}

		globalIDs := make([]types.GlobalVertexID, len(res.Features.Vertices))
		for _, v := range res.Features.Vertices {
			cell := grid.CellKey(v.World)
			id, ok := cellToID[cell]
			if !ok {
				id = types.GlobalVertexID(len(g.VertexPositions))
				g.VertexPositions = append(g.VertexPositions, v.World)
				cellToID[cell] = id
				grid.Add(int(id), v.World)
			}
			globalIDs[v.ID] = id
			localToGlobal[pairLocalKey{pair: pairIdx, local: v.ID}] = id
		}
		g.PairFeatures[pairIdx].Vertices = globalIDs

		edgeSet := make(map[types.GlobalEdge]struct{})
		for _, seg := range res.Features.Segments {
			u := globalIDs[seg.V1]
			v := globalIDs[seg.V2]
			if u == v {
				continue
			}
			e := types.NewGlobalEdge(u, v)
			if _, exists := edgeSet[e]; exists {
				continue
			}
			edgeSet[e] = struct{}{}
			g.PairFeatures[pairIdx].Segments = append(g.PairFeatures[pairIdx].Segments, e)
		}
	}

	g.dedupGlobalEdges()
	g.splitEdgesThroughVertices(tol)
	return g
}

func (g *Graph) dedupGlobalEdges() {
	seen := make(map[types.GlobalEdge]struct{})
	var all []types.GlobalEdge
	for _, pf := range g.PairFeatures {
		for _, e := range pf.Segments {
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			all = append(all, e)
		}
	}
	slices.SortFunc(all, func(a, b types.GlobalEdge) int {
		if a.A != b.A {
			return int(a.A - b.A)
		}
		return int(a.B - b.B)
	})
	g.Edges = all
}

// splitEdgesThroughVertices implements "edge splitting through
// vertices": any global vertex w lying strictly interior to an edge
// (u,v) within tolerance causes that edge to be replaced by consecutive
// pieces through w (and any other interior vertices, sorted by t).
func (g *Graph) splitEdgesThroughVertices(tol types.Tolerances) {
	interiorDist := tol.EdgeInteriorDistance()
	interiorDist2 := interiorDist * interiorDist

	var result []types.GlobalEdge
	seen := make(map[types.GlobalEdge]struct{})
	addEdge := func(e types.GlobalEdge) {
		if e.A == e.B {
			return
		}
		e = types.NewGlobalEdge(e.A, e.B)
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		result = append(result, e)
	}

	for _, e := range g.Edges {
		u := g.VertexPositions[e.A]
		v := g.VertexPositions[e.B]
		dir := v.Sub(u)
		len2 := dir.Length2()

		type interior struct {
			id types.GlobalVertexID
			t  float64
		}
		var mids []interior
		if len2 > 0 {
			for w := range g.VertexPositions {
				wid := types.GlobalVertexID(w)
				if wid == e.A || wid == e.B {
					continue
				}
				wp := g.VertexPositions[w]
				t := wp.Sub(u).Dot(dir) / len2
				if t <= tol.TEpsilon || t >= 1-tol.TEpsilon {
					continue
				}
				proj := u.Add(dir.Scale(t))
				if types.Dist2(wp, proj) <= interiorDist2 {
					mids = append(mids, interior{id: wid, t: t})
				}
			}
		}

		if len(mids) == 0 {
			addEdge(e)
			continue
		}

		slices.SortFunc(mids, func(a, b interior) int {
			switch {
			case a.t < b.t:
				return -1
			case a.t > b.t:
				return 1
			default:
				return 0
			}
		})
		prev := e.A
		for _, m := range mids {
			addEdge(types.NewGlobalEdge(prev, m.id))
			prev = m.id
		}
		addEdge(types.NewGlobalEdge(prev, e.B))
	}

	g.Edges = result
}
