package pairintersect

import "github.com/jimmy-zhao-tainio/erratri-sub001/types"

// dedupWorldPoints collapses points within sqrt(eps2) of an existing
// representative, preserving first-seen order (spec's C1 step 3).
func dedupWorldPoints(points []types.Vec3, eps2 float64) []types.Vec3 {
	out := make([]types.Vec3, 0, len(points))
	for _, p := range points {
		found := false
		for _, q := range out {
			if types.Dist2(p, q) <= eps2 {
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

// maxPairwiseDist2 returns the largest squared distance between any two
// points in the set (0 if fewer than 2 points).
func maxPairwiseDist2(points []types.Vec3) float64 {
	max := 0.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := types.Dist2(points[i], points[j]); d > max {
				max = d
			}
		}
	}
	return max
}

// farthestPair returns the indices of the two points with the largest
// pairwise squared distance, used to pick chain/chord endpoints.
func farthestPair(points []types.Vec3) (int, int) {
	bi, bj := 0, 1
	best := -1.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if d := types.Dist2(points[i], points[j]); d > best {
				best = d
				bi, bj = i, j
			}
		}
	}
	return bi, bj
}

// barysClose reports whether two barycentric triples match within eps on
// each component.
func barysClose(a, b types.Bary, eps float64) bool {
	return absf(a.U-b.U) <= eps && absf(a.V-b.V) <= eps && absf(a.W-b.W) <= eps
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
