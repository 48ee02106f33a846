package subdivide

import (
	"math"
	"sort"

	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/polygon"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// buildHalfEdges creates the two directed half-edges for every PSLGEdge
// and links each one's Next pointer so that walking Next traces a closed
// face boundary.
func buildHalfEdges(p *PSLG) {
	p.HalfEdges = p.HalfEdges[:0]
	outgoing := make(map[int][]int) // vertex -> half-edge indices starting there

	for ei, e := range p.Edges {
		h1 := len(p.HalfEdges)
		p.HalfEdges = append(p.HalfEdges, HalfEdge{From: e.V1, To: e.V2, EdgeIndex: ei})
		h2 := len(p.HalfEdges)
		p.HalfEdges = append(p.HalfEdges, HalfEdge{From: e.V2, To: e.V1, EdgeIndex: ei})
		p.HalfEdges[h1].Twin = h2
		p.HalfEdges[h2].Twin = h1
		outgoing[e.V1] = append(outgoing[e.V1], h1)
		outgoing[e.V2] = append(outgoing[e.V2], h2)
	}

	for v, hs := range outgoing {
		sort.Slice(hs, func(i, j int) bool {
			return angleAt(p, v, hs[i]) < angleAt(p, v, hs[j])
		})
		pos := make(map[int]int, len(hs))
		for i, h := range hs {
			pos[h] = i
		}
		for _, h := range hs {
			twin := p.HalfEdges[h].Twin
			i := pos[twin]
			next := hs[(i+1)%len(hs)]
			p.HalfEdges[twin].Next = next
		}
	}
}

func angleAt(p *PSLG, from int, he int) float64 {
	a := p.Vertices[from].UV
	b := p.Vertices[p.HalfEdges[he].To].UV
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// buildFaces walks every half-edge cycle, computes its signed area, and
// nests negative-area (hole) cycles inside the smallest positive-area
// cycle that contains them.
func buildFaces(p *PSLG) error {
	n := len(p.HalfEdges)
	visited := make([]bool, n)

	var outers []Face
	var holes []Face

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		cycle := walkHalfEdgeCycle(p, start, visited)
		area := cycleSignedArea(p, cycle)
		f := Face{Outer: cycle, SignedArea: area}
		if area > 0 {
			outers = append(outers, f)
		} else if area < 0 {
			holes = append(holes, f)
		}
		// area == 0 (degenerate sliver) is silently dropped.
	}

	for hi := range holes {
		best := -1
		bestArea := math.Inf(1)
		for oi := range outers {
			if cycleContains(p, outers[oi].Outer, holes[hi].Outer) && outers[oi].SignedArea < bestArea {
				best = oi
				bestArea = outers[oi].SignedArea
			}
		}
		if best >= 0 {
			outers[best].Holes = append(outers[best].Holes, holes[hi].Outer)
		}
	}

	p.Faces = outers
	return nil
}

func walkHalfEdgeCycle(p *PSLG, start int, visited []bool) []int {
	var cycle []int
	h := start
	for {
		visited[h] = true
		cycle = append(cycle, h)
		h = p.HalfEdges[h].Next
		if h == start {
			break
		}
		if visited[h] {
			// Malformed topology; stop rather than loop forever.
			break
		}
	}
	return cycle
}

func cycleSignedArea(p *PSLG, cycle []int) float64 {
	pts := make([]types.Point, len(cycle))
	for i, h := range cycle {
		pts[i] = p.Vertices[p.HalfEdges[h].From].UV
	}
	return polygon.SignedArea(pts)
}

func cycleContains(p *PSLG, outer, inner []int) bool {
	outerPts := make([]types.Point, len(outer))
	for i, h := range outer {
		outerPts[i] = p.Vertices[p.HalfEdges[h].From].UV
	}
	for _, h := range inner {
		pt := p.Vertices[p.HalfEdges[h].From].UV
		if polygon.PointInPolygon(pt, outerPts) == polygon.Outside {
			return false
		}
	}
	return true
}
