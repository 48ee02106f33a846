package boolean

import (
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

type bbox3 struct {
	min, max types.Vec3
}

func triangleBBox(t types.InputTriangle) bbox3 {
	p0, p1, p2 := t.World()
	box := bbox3{min: p0, max: p0}
	for _, p := range [2]types.Vec3{p1, p2} {
		box.min = minVec3(box.min, p)
		box.max = maxVec3(box.max, p)
	}
	return box
}

func minVec3(a, b types.Vec3) types.Vec3 {
	return types.Vec3{X: minF(a.X, b.X), Y: minF(a.Y, b.Y), Z: minF(a.Z, b.Z)}
}

func maxVec3(a, b types.Vec3) types.Vec3 {
	return types.Vec3{X: maxF(a.X, b.X), Y: maxF(a.Y, b.Y), Z: maxF(a.Z, b.Z)}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func bboxOverlap(a, b bbox3, eps float64) bool {
	return a.min.X-eps <= b.max.X && b.min.X-eps <= a.max.X &&
		a.min.Y-eps <= b.max.Y && b.min.Y-eps <= a.max.Y &&
		a.min.Z-eps <= b.max.Z && b.min.Z-eps <= a.max.Z
}

// candidatePairs runs a brute-force AABB broadphase over the two
// meshes, returning every pair whose bounding boxes overlap.
func candidatePairs(meshA, meshB []types.InputTriangle, eps float64) []types.PairKey {
	boxesA := make([]bbox3, len(meshA))
	for i, t := range meshA {
		boxesA[i] = triangleBBox(t)
	}
	boxesB := make([]bbox3, len(meshB))
	for i, t := range meshB {
		boxesB[i] = triangleBBox(t)
	}

	var out []types.PairKey
	for ai, ba := range boxesA {
		for bi, bb := range boxesB {
			if bboxOverlap(ba, bb, eps) {
				out = append(out, types.PairKey{A: types.TriangleIndex(ai), B: types.TriangleIndex(bi)})
			}
		}
	}
	return out
}
