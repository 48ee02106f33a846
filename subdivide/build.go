package subdivide

import (
	"fmt"
	"sort"

	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/pslg"
	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/robust"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// inputSegment is one intersection-edge projected into this triangle's
// chart, referencing attached vertices by global ID.
type inputSegment struct {
	A, B types.GlobalVertexID
}

// BuildPSLG constructs the per-triangle PSLG for one triangle, given its
// attached intersection vertices and the intersection edges that touch
// it. Returns the chosen PatternKind alongside the PSLG for
// diagnostics.
func BuildPSLG(attached []AttachedVertex, segments []types.GlobalEdge, tol types.Tolerances) (*PSLG, types.PatternKind, error) {
	inputSegs := toInputSegments(segments, attached)

	if len(inputSegs) == 0 {
		return wholeTrianglePSLG(), types.PatternWhole, nil
	}

	if p, ok := trySingleChord(attached, inputSegs, tol); ok {
		return p, types.PatternSingleChord, nil
	}

	p, err := buildGeneralPSLG(attached, inputSegs, tol)
	if err != nil {
		return nil, types.PatternGeneral, err
	}
	return p, types.PatternGeneral, nil
}

func toInputSegments(segments []types.GlobalEdge, attached []AttachedVertex) []inputSegment {
	valid := make(map[types.GlobalVertexID]bool, len(attached))
	for _, a := range attached {
		valid[a.GlobalID] = true
	}
	var out []inputSegment
	for _, e := range segments {
		if !valid[e.A] || !valid[e.B] || e.A == e.B {
			continue
		}
		out = append(out, inputSegment{A: e.A, B: e.B})
	}
	return out
}

func wholeTrianglePSLG() *PSLG {
	p := &PSLG{}
	p.addVertex(PSLGVertex{UV: types.Point{X: 1, Y: 0}, IsCorner: true, Global: types.NilGlobalVertex})
	p.addVertex(PSLGVertex{UV: types.Point{X: 0, Y: 1}, IsCorner: true, Global: types.NilGlobalVertex})
	p.addVertex(PSLGVertex{UV: types.Point{X: 0, Y: 0}, IsCorner: true, Global: types.NilGlobalVertex})
	p.Edges = []PSLGEdge{{V1: 0, V2: 1, Boundary: true}, {V1: 1, V2: 2, Boundary: true}, {V1: 2, V2: 0, Boundary: true}}
	buildHalfEdges(p)
	buildFaces(p)
	return p
}

// baryEdgeLocation reports which side (0,1,2 = V0V1,V1V2,V2V0) a bary lies on, or
// -1 if interior, given epsSide.
func baryEdgeLocation(b types.Bary, epsSide float64) int {
	switch {
	case absf(b.W) <= epsSide:
		return 0
	case absf(b.U) <= epsSide:
		return 1
	case absf(b.V) <= epsSide:
		return 2
	default:
		return -1
	}
}

// trySingleChord implements the single-chord fast path: exactly one
// segment whose endpoints lie on two distinct triangle sides, neither at
// a corner.
func trySingleChord(attached []AttachedVertex, segs []inputSegment, tol types.Tolerances) (*PSLG, bool) {
	if len(segs) != 1 {
		return nil, false
	}
	byID := make(map[types.GlobalVertexID]AttachedVertex, len(attached))
	for _, a := range attached {
		byID[a.GlobalID] = a
	}
	va, okA := byID[segs[0].A]
	vb, okB := byID[segs[0].B]
	if !okA || !okB {
		return nil, false
	}
	if va.Bary.IsCorner(tol.EpsCorner) >= 0 || vb.Bary.IsCorner(tol.EpsCorner) >= 0 {
		return nil, false
	}
	sideA := baryEdgeLocation(va.Bary, tol.EpsSide)
	sideB := baryEdgeLocation(vb.Bary, tol.EpsSide)
	if sideA < 0 || sideB < 0 || sideA == sideB {
		return nil, false
	}

	p := &PSLG{}
	c0 := p.addVertex(PSLGVertex{UV: types.Point{X: 1, Y: 0}, IsCorner: true, Global: types.NilGlobalVertex})
	c1 := p.addVertex(PSLGVertex{UV: types.Point{X: 0, Y: 1}, IsCorner: true, Global: types.NilGlobalVertex})
	c2 := p.addVertex(PSLGVertex{UV: types.Point{X: 0, Y: 0}, IsCorner: true, Global: types.NilGlobalVertex})
	corners := [3]int{c0, c1, c2}

	ia := p.addVertex(PSLGVertex{UV: va.Bary.Point2(), Global: va.GlobalID})
	ib := p.addVertex(PSLGVertex{UV: vb.Bary.Point2(), Global: vb.GlobalID})
	onSide := map[int]int{sideA: ia, sideB: ib}

	// Boundary edges, split where a chord endpoint falls on that side.
	for s := 0; s < 3; s++ {
		start, end := corners[s], corners[(s+1)%3]
		if mid, ok := onSide[s]; ok {
			p.Edges = append(p.Edges, PSLGEdge{V1: start, V2: mid, Boundary: true})
			p.Edges = append(p.Edges, PSLGEdge{V1: mid, V2: end, Boundary: true})
		} else {
			p.Edges = append(p.Edges, PSLGEdge{V1: start, V2: end, Boundary: true})
		}
	}
	p.Edges = append(p.Edges, PSLGEdge{V1: ia, V2: ib, Boundary: false})

	buildHalfEdges(p)
	buildFaces(p)
	return p, true
}

// buildGeneralPSLG runs the full vertex/edge/half-edge/face construction
// for every triangle the single-chord fast path rejects: any segment count
// other than one, or a segment with an endpoint at a corner, in the
// interior, or with both endpoints on the same side.
func buildGeneralPSLG(attached []AttachedVertex, segs []inputSegment, tol types.Tolerances) (*PSLG, error) {
	p := &PSLG{}
	p.addVertex(PSLGVertex{UV: types.Point{X: 1, Y: 0}, IsCorner: true, Global: types.NilGlobalVertex})
	p.addVertex(PSLGVertex{UV: types.Point{X: 0, Y: 1}, IsCorner: true, Global: types.NilGlobalVertex})
	p.addVertex(PSLGVertex{UV: types.Point{X: 0, Y: 0}, IsCorner: true, Global: types.NilGlobalVertex})

	byGlobal := make(map[types.GlobalVertexID]int)
	var interiorPts []types.Point
	var interiorOwners []types.GlobalVertexID
	for _, a := range attached {
		uv := clampToDomain(a.Bary.Point2())
		if c := types.BaryFromUV(uv).IsCorner(tol.EpsCorner); c >= 0 {
			byGlobal[a.GlobalID] = c
			continue
		}
		interiorPts = append(interiorPts, uv)
		interiorOwners = append(interiorOwners, a.GlobalID)
	}

	// Collapse interior/side attached vertices that land within
	// PSLGVertexMergeEpsilon of one another onto a single PSLG vertex.
	merged, remap := pslg.EpsilonMerge(interiorPts, types.Epsilon{Abs: tol.PSLGVertexMergeEpsilon})
	slotFor := make([]int, len(merged))
	for i := range slotFor {
		slotFor[i] = -1
	}
	for i, uv := range merged {
		slotFor[i] = p.addVertex(PSLGVertex{UV: uv, Global: interiorOwners[firstOwnerOf(remap, i)]})
	}
	for j, owner := range interiorOwners {
		byGlobal[owner] = slotFor[remap[j]]
	}

	// Boundary edges: for each side, gather vertices on that side in
	// parameter order and chain them.
	sideEps := tol.EpsSide
	for s := 0; s < 3; s++ {
		start, end := s, (s+1)%3
		type onSideVert struct {
			idx   int
			param float64
		}
		vs := []onSideVert{{idx: start, param: 0}, {idx: end, param: 1}}
		for i, v := range p.Vertices {
			if i < 3 {
				continue
			}
			bary := types.BaryFromUV(v.UV)
			if baryEdgeLocation(bary, sideEps) != s {
				continue
			}
			param := sideParam(p.Vertices[start].UV, p.Vertices[end].UV, v.UV)
			vs = append(vs, onSideVert{idx: i, param: param})
		}
		sort.Slice(vs, func(i, j int) bool { return vs[i].param < vs[j].param })
		for i := 0; i+1 < len(vs); i++ {
			if vs[i].idx == vs[i+1].idx {
				continue
			}
			p.Edges = append(p.Edges, PSLGEdge{V1: vs[i].idx, V2: vs[i+1].idx, Boundary: true})
		}
	}

	// Interior chords from intersection segments.
	seen := make(map[[2]int]bool)
	for _, seg := range segs {
		ia, okA := byGlobal[seg.A]
		ib, okB := byGlobal[seg.B]
		if !okA || !okB || ia == ib {
			continue
		}
		key := edgeKey(ia, ib)
		if seen[key] {
			continue
		}
		seen[key] = true
		p.Edges = append(p.Edges, PSLGEdge{V1: ia, V2: ib, Boundary: false})
	}

	if err := validateNoCrossings(p, tol); err != nil {
		return nil, err
	}

	buildHalfEdges(p)
	if err := buildFaces(p); err != nil {
		return nil, err
	}
	return p, nil
}

func clampToDomain(p types.Point) types.Point {
	u, v := p.X, p.Y
	if u < 0 {
		u = 0
	}
	if v < 0 {
		v = 0
	}
	if sum := u + v; sum > 1 {
		u /= sum
		v /= sum
	}
	return types.Point{X: u, Y: v}
}

func dist2(a, b types.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// firstOwnerOf returns the index of the first entry in remap mapping to
// slot, i.e. the attached vertex that first created that merged slot.
func firstOwnerOf(remap []int, slot int) int {
	for i, s := range remap {
		if s == slot {
			return i
		}
	}
	return 0
}

func sideParam(start, end, p types.Point) float64 {
	dx, dy := end.X-start.X, end.Y-start.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return 0
	}
	return ((p.X-start.X)*dx + (p.Y-start.Y)*dy) / len2
}

// validateNoCrossings checks that no two PSLG edges cross
// interior-to-interior without a shared vertex.
func validateNoCrossings(p *PSLG, tol types.Tolerances) error {
	for i := 0; i < len(p.Edges); i++ {
		for j := i + 1; j < len(p.Edges); j++ {
			e1, e2 := p.Edges[i], p.Edges[j]
			if sharesVertex(e1, e2) {
				continue
			}
			a1, a2 := p.Vertices[e1.V1].UV, p.Vertices[e1.V2].UV
			b1, b2 := p.Vertices[e2.V1].UV, p.Vertices[e2.V2].UV
			ok, t, u := robust.SegmentIntersect(a1, a2, b1, b2)
			if !ok {
				continue
			}
			if t <= tol.TEpsilon || t >= 1-tol.TEpsilon || u <= tol.TEpsilon || u >= 1-tol.TEpsilon {
				continue
			}
			return fmt.Errorf("subdivide: PSLG requires no crossings without vertices (edge %d vs %d)", i, j)
		}
	}
	return nil
}

func sharesVertex(a, b PSLGEdge) bool {
	return a.V1 == b.V1 || a.V1 == b.V2 || a.V2 == b.V1 || a.V2 == b.V2
}
