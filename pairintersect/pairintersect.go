package pairintersect

import (
	"sort"

	"github.com/jimmy-zhao-tainio/erratri-sub001/algorithm/robust"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// Intersect classifies the intersection between triangles a and b and
// emits their PairFeatures. A pair that does not
// intersect (or is too degenerate to classify safely) returns
// types.KindNone with empty features; this never errors, matching the
// "degenerate triangles are treated as non-contributing" failure model.
func Intersect(a, b types.InputTriangle, tol types.Tolerances) Result {
	a0, a1, a2 := a.World()
	b0, b1, b2 := b.World()

	if isCoplanar(a0, a1, a2, b0, b1, b2, tol) {
		return coplanarIntersect(a0, a1, a2, b0, b1, b2, tol)
	}
	return nonCoplanarIntersect(a0, a1, a2, b0, b1, b2, tol)
}

func isCoplanar(a0, a1, a2, b0, b1, b2 types.Vec3, tol types.Tolerances) bool {
	eps := tol.PlaneSideEpsilon
	for _, v := range [3]types.Vec3{b0, b1, b2} {
		if absf(robust.PlaneSide(a0, a1, a2, v)) > eps {
			return false
		}
	}
	return true
}

// allStrictlyOneSide reports whether all of pts lie strictly on one side of the
// plane through (p0,p1,p2) beyond eps.
func allStrictlyOneSide(p0, p1, p2 types.Vec3, pts [3]types.Vec3, eps float64) bool {
	sign := 0
	for _, v := range pts {
		d := robust.PlaneSide(p0, p1, p2, v)
		switch {
		case d > eps:
			if sign < 0 {
				return false
			}
			sign = 1
		case d < -eps:
			if sign > 0 {
				return false
			}
			sign = -1
		default:
			return false
		}
	}
	return sign != 0
}

func nonCoplanarIntersect(a0, a1, a2, b0, b1, b2 types.Vec3, tol types.Tolerances) Result {
	eps := tol.TrianglePredicateEpsilon

	if allStrictlyOneSide(b0, b1, b2, [3]types.Vec3{a0, a1, a2}, eps) {
		return emptyResult()
	}
	if allStrictlyOneSide(a0, a1, a2, [3]types.Vec3{b0, b1, b2}, eps) {
		return emptyResult()
	}

	var pts []types.Vec3
	pts = append(pts, collectFromSource(a0, a1, a2, b0, b1, b2, eps)...)
	pts = append(pts, collectFromSource(b0, b1, b2, a0, a1, a2, eps)...)

	unique := dedupWorldPoints(pts, tol.FeatureWorldDistanceEpsilonSquared)
	if len(unique) == 0 {
		return emptyResult()
	}

	kind := types.KindSegment
	if len(unique) < 2 || maxPairwiseDist2(unique) <= tol.FeatureWorldDistanceEpsilonSquared {
		kind = types.KindPoint
	}

	features, ok := buildFeatures(unique, a0, a1, a2, b0, b1, b2, kind, tol)
	if !ok {
		return emptyResult()
	}
	return Result{Kind: kind, Features: features}
}

// collectFromSource gathers world-space candidate points where source
// triangle (s0,s1,s2) crosses target triangle (t0,t1,t2): source vertices
// lying on the target plane and inside the target triangle, plus source
// edge crossings of the target plane landing inside the target triangle.
func collectFromSource(s0, s1, s2, t0, t1, t2 types.Vec3, eps float64) []types.Vec3 {
	var pts []types.Vec3

	for _, v := range [3]types.Vec3{s0, s1, s2} {
		if absf(robust.PlaneSide(t0, t1, t2, v)) > eps {
			continue
		}
		bary, ok := robust.Barycentric(t0, t1, t2, v, types.ZeroDenominatorFail)
		if ok && bary.Inclusive(eps) {
			pts = append(pts, v)
		}
	}

	edges := [3][2]types.Vec3{{s0, s1}, {s1, s2}, {s2, s0}}
	for _, e := range edges {
		d0 := robust.PlaneSide(t0, t1, t2, e[0])
		d1 := robust.PlaneSide(t0, t1, t2, e[1])
		if (d0 > eps && d1 > eps) || (d0 < -eps && d1 < -eps) {
			continue
		}
		if absf(d0) <= eps && absf(d1) <= eps {
			continue // collinear with plane; handled by vertex case
		}
		tParam, ok := robust.SegmentPlaneCross(t0, t1, t2, e[0], e[1])
		if !ok {
			continue
		}
		if tParam < -eps || tParam > 1+eps {
			continue
		}
		if tParam < 0 {
			tParam = 0
		}
		if tParam > 1 {
			tParam = 1
		}
		p := e[0].Add(e[1].Sub(e[0]).Scale(tParam))
		bary, ok := robust.Barycentric(t0, t1, t2, p, types.ZeroDenominatorFail)
		if ok && bary.Inclusive(eps) {
			pts = append(pts, p)
		}
	}

	return pts
}

// buildFeatures converts unique world points into PairVertices, dedups
// them by matching barycentrics, and (for Segment) chains them into
// consecutive PairSegments.
func buildFeatures(unique []types.Vec3, a0, a1, a2, b0, b1, b2 types.Vec3, kind types.IntersectionKind, tol types.Tolerances) (PairFeatures, bool) {
	var verts []PairVertex
	for _, p := range unique {
		baryA, ok := robust.Barycentric(a0, a1, a2, p, types.ZeroDenominatorFail)
		if !ok {
			return PairFeatures{}, false
		}
		baryB, ok := robust.Barycentric(b0, b1, b2, p, types.ZeroDenominatorFail)
		if !ok {
			return PairFeatures{}, false
		}

		merged := false
		for i := range verts {
			if barysClose(verts[i].BaryA, baryA, tol.FeatureBarycentricEpsilon) &&
				barysClose(verts[i].BaryB, baryB, tol.FeatureBarycentricEpsilon) {
				merged = true
				break
			}
		}
		if merged {
			continue
		}
		verts = append(verts, PairVertex{ID: len(verts), BaryA: baryA, BaryB: baryB, World: p})
	}

	features := PairFeatures{Vertices: verts}
	if kind != types.KindSegment || len(verts) < 2 {
		return features, true
	}

	worlds := make([]types.Vec3, len(verts))
	for i, v := range verts {
		worlds[i] = v.World
	}
	ei, ej := farthestPair(worlds)
	axis := worlds[ej].Sub(worlds[ei])
	axisLen2 := axis.Length2()

	type ordered struct {
		id    int
		param float64
	}
	chain := make([]ordered, len(verts))
	for i, v := range verts {
		var t float64
		if axisLen2 > 0 {
			t = v.World.Sub(worlds[ei]).Dot(axis) / axisLen2
		}
		chain[i] = ordered{id: v.ID, param: t}
	}
	sort.Slice(chain, func(i, j int) bool { return chain[i].param < chain[j].param })

	for i := 0; i+1 < len(chain); i++ {
		features.Segments = append(features.Segments, PairSegment{V1: chain[i].id, V2: chain[i+1].id})
	}
	return features, true
}
