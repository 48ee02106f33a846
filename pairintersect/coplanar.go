package pairintersect

import (
	"math"
	"sort"

	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/polygon"
	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/robust"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// coplanarIntersect handles the case where triangle pair (a,b) lies in a
// shared plane.
func coplanarIntersect(a0, a1, a2, b0, b1, b2 types.Vec3, tol types.Tolerances) Result {
	eps := tol.TrianglePredicateEpsilon

	normal := a1.Sub(a0).Cross(a2.Sub(a0))
	axis := normal.MaxAbsComponent()

	pa := [3]types.Point{a0.DropAxis(axis), a1.DropAxis(axis), a2.DropAxis(axis)}
	pb := [3]types.Point{b0.DropAxis(axis), b1.DropAxis(axis), b2.DropAxis(axis)}

	var pts2 []types.Point
	for _, v := range pa {
		if polygon.PointInPolygon(v, pb[:]) != polygon.Outside {
			pts2 = append(pts2, v)
		}
	}
	for _, v := range pb {
		if polygon.PointInPolygon(v, pa[:]) != polygon.Outside {
			pts2 = append(pts2, v)
		}
	}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e1a, e1b := pa[i], pa[(i+1)%3]
			e2a, e2b := pb[j], pb[(j+1)%3]
			cross := (e1b.X-e1a.X)*(e2b.Y-e2a.Y) - (e1b.Y-e1a.Y)*(e2b.X-e2a.X)
			if math.Abs(cross) <= eps {
				continue
			}
			ok, t, u := robust.SegmentIntersect(e1a, e1b, e2a, e2b)
			if !ok || math.IsNaN(t) || math.IsNaN(u) {
				continue
			}
			if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
				continue
			}
			t = clamp01(t)
			p := types.Point{X: e1a.X + t*(e1b.X-e1a.X), Y: e1a.Y + t*(e1b.Y-e1a.Y)}
			pts2 = append(pts2, p)
		}
	}

	unique2 := dedup2D(pts2, eps)
	if len(unique2) == 0 {
		return emptyResult()
	}

	var kind types.IntersectionKind
	switch {
	case len(unique2) == 1:
		kind = types.KindPoint
	case len(unique2) == 2:
		kind = types.KindSegment
	default:
		kind = types.KindArea
	}

	features, ok := buildCoplanarFeatures(unique2, pa, pb, a0, a1, a2, kind, tol)
	if !ok {
		return emptyResult()
	}
	if kind == types.KindArea && len(features.Vertices) < 3 {
		if len(features.Vertices) == 2 {
			kind = types.KindSegment
			features.Segments = []PairSegment{{V1: 0, V2: 1}}
		} else {
			kind = types.KindPoint
			features.Segments = nil
		}
	}
	return Result{Kind: kind, Features: features}
}

func buildCoplanarFeatures(pts []types.Point, pa, pb [3]types.Point, a0, a1, a2 types.Vec3, kind types.IntersectionKind, tol types.Tolerances) (PairFeatures, bool) {
	var verts []PairVertex
	for _, p := range pts {
		baryA, ok := robust.Barycentric2D(pa[0], pa[1], pa[2], p, types.ZeroDenominatorFail)
		if !ok {
			return PairFeatures{}, false
		}
		baryB, ok := robust.Barycentric2D(pb[0], pb[1], pb[2], p, types.ZeroDenominatorFail)
		if !ok {
			return PairFeatures{}, false
		}
		world := a0.Scale(baryA.U).Add(a1.Scale(baryA.V)).Add(a2.Scale(baryA.W))
		verts = append(verts, PairVertex{ID: len(verts), BaryA: baryA, BaryB: baryB, World: world})
	}

	features := PairFeatures{Vertices: verts}
	switch kind {
	case types.KindPoint:
		return features, true
	case types.KindSegment:
		worlds := make([]types.Vec3, len(verts))
		for i, v := range verts {
			worlds[i] = v.World
		}
		i, j := farthestPair(worlds)
		features.Segments = []PairSegment{{V1: i, V2: j}}
		return features, true
	case types.KindArea:
		order := convexLoopOrder(pts)
		for k := 0; k < len(order); k++ {
			next := (k + 1) % len(order)
			features.Segments = append(features.Segments, PairSegment{V1: order[k], V2: order[next]})
		}
		return features, true
	default:
		return features, true
	}
}

// convexLoopOrder sorts point indices by angle around their centroid.
// Since an overlap region of two convex triangles is itself convex, this
// angular sort recovers the loop's perimeter order without a general
// convex-hull algorithm.
func convexLoopOrder(pts []types.Point) []int {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(pts))
	cx /= n
	cy /= n

	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		ai := math.Atan2(pts[idx[i]].Y-cy, pts[idx[i]].X-cx)
		aj := math.Atan2(pts[idx[j]].Y-cy, pts[idx[j]].X-cx)
		return ai < aj
	})
	return idx
}

func dedup2D(pts []types.Point, eps float64) []types.Point {
	out := make([]types.Point, 0, len(pts))
	for _, p := range pts {
		found := false
		for _, q := range out {
			dx, dy := p.X-q.X, p.Y-q.Y
			if dx*dx+dy*dy <= eps*eps {
				found = true
				break
			}
		}
		if !found {
			out = append(out, p)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
