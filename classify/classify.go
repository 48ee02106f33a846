// Package classify implements C4, the PatchClassifier: it decides, for
// every subdivision patch, whether it lies Inside, Outside, or On the
// opposite input mesh, then lifts that decision consistently across
// patches that share a non-intersection edge so a single face of the
// original triangle never splits its vote across a seam the
// subdivision introduced for unrelated reasons.
package classify

import (
	"golang.org/x/exp/slices"

	"github.com/jimmy-zhao-tainio/erratri-sub001/spatial"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// Classify assigns a Containment to every patch in patches, testing
// against tester for the mesh identified by other. cutEdges is the set
// of global edges that genuinely belong to the intersection curve (as
// opposed to a PSLG boundary edge); only cut edges are allowed to
// separate two differently-classified regions.
func Classify(patches []types.TrianglePatch, other types.MeshID, tester types.InsideTester, cutEdges map[types.GlobalEdge]bool, tol types.Tolerances) []types.PatchInfo {
	infos := make([]types.PatchInfo, len(patches))
	raw := make([]types.Containment, len(patches))

	for i, p := range patches {
		infos[i].Patch = p
		if p.CoplanarOwner != types.OwnerNone {
			raw[i] = types.On
			continue
		}
		centroid := centroidOf(p.World)
		if tester.IsInside(other, centroid) {
			raw[i] = types.Inside
		} else {
			raw[i] = types.Outside
		}
	}

	uf := newUnionFind(len(patches))
	adjacency := buildEdgeAdjacency(patches, tol)
	for _, occ := range adjacency {
		if len(occ) != 2 {
			continue
		}
		pi, pj := occ[0].patch, occ[1].patch
		if patches[pi].CoplanarOwner != types.OwnerNone || patches[pj].CoplanarOwner != types.OwnerNone {
			continue
		}
		if isCutEdge(occ[0], cutEdges) {
			continue
		}
		uf.union(pi, pj)
	}

	groups := make(map[int][]int)
	for i := range patches {
		root := uf.find(i)
		groups[root] = append(groups[root], i)
	}

	for _, members := range groups {
		slices.Sort(members)
		winner := majorityVote(patches, raw, members)
		for _, m := range members {
			if patches[m].CoplanarOwner != types.OwnerNone {
				continue
			}
			infos[m].Containment = winner
		}
	}
	for i, p := range patches {
		if p.CoplanarOwner != types.OwnerNone {
			infos[i].Containment = types.On
		}
	}
	return infos
}

func centroidOf(world [3]types.Vec3) types.Vec3 {
	return world[0].Add(world[1]).Add(world[2]).Scale(1.0 / 3.0)
}

// majorityVote picks the area-weighted majority Containment among
// members, breaking ties by preferring Inside over Outside over On.
func majorityVote(patches []types.TrianglePatch, raw []types.Containment, members []int) types.Containment {
	var weight [3]float64
	for _, m := range members {
		a := triangleArea(patches[m].World)
		weight[raw[m]] += a
	}

	best := types.Inside
	bestWeight := weight[types.Inside]
	for _, c := range []types.Containment{types.Outside, types.On} {
		if weight[c] > bestWeight {
			best = c
			bestWeight = weight[c]
		}
	}
	return best
}

func triangleArea(world [3]types.Vec3) float64 {
	ab := world[1].Sub(world[0])
	ac := world[2].Sub(world[0])
	return ab.Cross(ac).Length() / 2
}

type edgeKey struct {
	a, b [3]int64
}

// edgeOccurrence records one patch's local edge (corners e, e+1) landing
// on a given adjacency key.
type edgeOccurrence struct {
	patch int
	v1    types.GlobalVertexID
	v2    types.GlobalVertexID
}

// buildEdgeAdjacency maps every patch edge, keyed by its endpoints'
// quantized world positions, to the patches touching it and the
// GlobalVertexIDs that edge carries on each patch (NilGlobalVertex for
// an original triangle corner).
func buildEdgeAdjacency(patches []types.TrianglePatch, tol types.Tolerances) map[edgeKey][]edgeOccurrence {
	size := tol.MergeEpsilon
	if size <= 0 {
		size = 1e-9
	}
	grid := spatial.NewHashGrid3(size)

	adjacency := make(map[edgeKey][]edgeOccurrence)
	for pi, p := range patches {
		for e := 0; e < 3; e++ {
			next := (e + 1) % 3
			k1 := grid.CellKey(p.World[e])
			k2 := grid.CellKey(p.World[next])
			ek := canonicalEdgeKey(k1, k2)
			occ := edgeOccurrence{patch: pi, v1: p.IntersectionVertexIDs[e], v2: p.IntersectionVertexIDs[next]}
			adjacency[ek] = appendOccurrence(adjacency[ek], occ)
		}
	}
	return adjacency
}

func appendOccurrence(occs []edgeOccurrence, occ edgeOccurrence) []edgeOccurrence {
	for _, existing := range occs {
		if existing.patch == occ.patch {
			return occs
		}
	}
	return append(occs, occ)
}

func canonicalEdgeKey(a, b [3]int64) edgeKey {
	if lessLattice(a, b) {
		return edgeKey{a: a, b: b}
	}
	return edgeKey{a: b, b: a}
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

// isCutEdge reports whether a shared patch edge corresponds to a real
// intersection-graph edge. An edge touching an original, unmodified
// triangle corner is never a cut.
func isCutEdge(a edgeOccurrence, cutEdges map[types.GlobalEdge]bool) bool {
	if !a.v1.IsValid() || !a.v2.IsValid() {
		return false
	}
	return cutEdges[types.NewGlobalEdge(a.v1, a.v2)]
}
