package subdivide

import (
	"fmt"

	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/robust"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// FaceTriangle is one ear-clipped triangle of a face, as a triple of
// PSLG vertex indices in CCW order.
type FaceTriangle [3]int

// TriangulateFace merges a face's holes into its outer loop and
// ear-clips the resulting simple polygon.
func TriangulateFace(p *PSLG, f Face, tol types.Tolerances) ([]FaceTriangle, error) {
	loop := vertexLoop(p, f.Outer)
	for _, hole := range f.Holes {
		merged, err := bridgeHole(p, loop, vertexLoop(p, hole))
		if err != nil {
			return nil, err
		}
		loop = merged
	}
	return earClip(p, loop, tol)
}

func vertexLoop(p *PSLG, halfEdges []int) []int {
	out := make([]int, len(halfEdges))
	for i, h := range halfEdges {
		out[i] = p.HalfEdges[h].From
	}
	return out
}

// bridgeHole splices a hole loop into the outer loop via the closest
// pair of vertices whose connecting segment does not cross either loop,
// the standard polygon-with-holes-to-simple-polygon reduction.
func bridgeHole(p *PSLG, outer, hole []int) ([]int, error) {
	bestOuterI, bestHoleI := -1, -1
	bestDist := -1.0
	for oi, ov := range outer {
		for hi, hv := range hole {
			if !bridgeIsValid(p, outer, hole, oi, hi) {
				continue
			}
			d := dist2(p.Vertices[ov].UV, p.Vertices[hv].UV)
			if bestOuterI < 0 || d < bestDist {
				bestOuterI, bestHoleI, bestDist = oi, hi, d
			}
		}
	}
	if bestOuterI < 0 {
		return nil, fmt.Errorf("subdivide: no valid bridge found between face loops")
	}

	rotatedHole := append(append([]int(nil), hole[bestHoleI:]...), hole[:bestHoleI]...)

	merged := make([]int, 0, len(outer)+len(rotatedHole)+2)
	merged = append(merged, outer[:bestOuterI+1]...)
	merged = append(merged, rotatedHole...)
	merged = append(merged, rotatedHole[0])
	merged = append(merged, outer[bestOuterI])
	merged = append(merged, outer[bestOuterI+1:]...)
	return merged, nil
}

func bridgeIsValid(p *PSLG, outer, hole []int, oi, hi int) bool {
	a := p.Vertices[outer[oi]].UV
	b := p.Vertices[hole[hi]].UV
	for i := 0; i < len(outer); i++ {
		j := (i + 1) % len(outer)
		if i == oi || j == oi {
			continue
		}
		if ok, t, u := robust.SegmentIntersect(a, b, p.Vertices[outer[i]].UV, p.Vertices[outer[j]].UV); ok && t > 0 && t < 1 && u > 0 && u < 1 {
			return false
		}
	}
	for i := 0; i < len(hole); i++ {
		j := (i + 1) % len(hole)
		if i == hi || j == hi {
			continue
		}
		if ok, t, u := robust.SegmentIntersect(a, b, p.Vertices[hole[i]].UV, p.Vertices[hole[j]].UV); ok && t > 0 && t < 1 && u > 0 && u < 1 {
			return false
		}
	}
	return true
}

// earClip triangulates a simple (possibly non-convex) polygon given as
// PSLG vertex indices in CCW order.
func earClip(p *PSLG, loop []int, tol types.Tolerances) ([]FaceTriangle, error) {
	idx := append([]int(nil), loop...)
	// Drop consecutive duplicate vertices produced by bridging.
	idx = dedupConsecutive(idx)

	var tris []FaceTriangle
	guard := 0
	for len(idx) > 3 {
		guard++
		if guard > len(loop)*len(loop)+16 {
			return nil, fmt.Errorf("subdivide: ear clipping failed to converge")
		}
		earFound := false
		n := len(idx)
		for i := 0; i < n; i++ {
			prev := idx[(i-1+n)%n]
			cur := idx[i]
			next := idx[(i+1)%n]
			if !isConvex(p, prev, cur, next) {
				continue
			}
			if !earIsEmpty(p, idx, prev, cur, next, tol.EpsArea) {
				continue
			}
			tris = append(tris, FaceTriangle{prev, cur, next})
			idx = append(idx[:i], idx[i+1:]...)
			earFound = true
			break
		}
		if !earFound {
			return nil, fmt.Errorf("subdivide: no ear found in face polygon")
		}
	}
	if len(idx) == 3 {
		tris = append(tris, FaceTriangle{idx[0], idx[1], idx[2]})
	}
	return tris, nil
}

func dedupConsecutive(idx []int) []int {
	var out []int
	for i, v := range idx {
		if i > 0 && out[len(out)-1] == v {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func isConvex(p *PSLG, a, b, c int) bool {
	return robust.Orient2D(p.Vertices[a].UV, p.Vertices[b].UV, p.Vertices[c].UV) > 0
}

func earIsEmpty(p *PSLG, loop []int, a, b, c int, epsArea float64) bool {
	pa, pb, pc := p.Vertices[a].UV, p.Vertices[b].UV, p.Vertices[c].UV
	tri := []types.Point{pa, pb, pc}
	area := signedAreaAbs(tri)
	if area <= epsArea {
		return false
	}
	for _, v := range loop {
		if v == a || v == b || v == c {
			continue
		}
		if pointStrictlyInsideTriangle(p.Vertices[v].UV, pa, pb, pc) {
			return false
		}
	}
	return true
}

func signedAreaAbs(tri []types.Point) float64 {
	area := (tri[1].X-tri[0].X)*(tri[2].Y-tri[0].Y) - (tri[2].X-tri[0].X)*(tri[1].Y-tri[0].Y)
	if area < 0 {
		return -area / 2
	}
	return area / 2
}

func pointStrictlyInsideTriangle(p, a, b, c types.Point) bool {
	d1 := robust.Orient2D(a, b, p)
	d2 := robust.Orient2D(b, c, p)
	d3 := robust.Orient2D(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
