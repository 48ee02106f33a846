package robust

import (
	"math"
	"math/big"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// PlaneSide evaluates the signed distance of point p from the plane
// through (a,b,c) with normal (b-a)x(c-a), scaled (not normalized).
// Positive/negative/zero mirror the convention of Orient2D: the sign
// flips with the winding of (a,b,c).
//
// Like Orient2D, this first evaluates in float64 with a magnitude-scaled
// filter and falls back to big.Float arithmetic near the zero boundary.
func PlaneSide(a, b, c, p types.Vec3) float64 {
	n := b.Sub(a).Cross(c.Sub(a))
	d := n.Dot(p.Sub(a))

	maxMag := maxAbs3(a, b, c, p)
	eps := maxMag * maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}
	if math.Abs(d) > eps {
		return d
	}
	return planeSideExact(a, b, c, p)
}

// PlaneSideSign returns the sign of PlaneSide: +1, -1, or 0.
func PlaneSideSign(a, b, c, p types.Vec3) int {
	d := PlaneSide(a, b, c, p)
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

func planeSideExact(a, b, c, p types.Vec3) float64 {
	ax, ay, az := bigFloat3(a)
	bx, by, bz := bigFloat3(b)
	cx, cy, cz := bigFloat3(c)
	px, py, pz := bigFloat3(p)

	// n = (b-a) x (c-a)
	abx := sub3(bx, ax)
	aby := sub3(by, ay)
	abz := sub3(bz, az)
	acx := sub3(cx, ax)
	acy := sub3(cy, ay)
	acz := sub3(cz, az)

	nx := sub3(mul3(aby, acz), mul3(abz, acy))
	ny := sub3(mul3(abz, acx), mul3(abx, acz))
	nz := sub3(mul3(abx, acy), mul3(aby, acx))

	apx := sub3(px, ax)
	apy := sub3(py, ay)
	apz := sub3(pz, az)

	d := add3(add3(mul3(nx, apx), mul3(ny, apy)), mul3(nz, apz))
	f, _ := d.Float64()
	return f
}

// Barycentric solves for the barycentric coordinates of p with respect
// to triangle (a,b,c), which must be (near-)coplanar with p. When the
// triangle is degenerate (zero area), the supplied policy decides the
// result: ZeroDenominatorFallback returns (0,0,0), ZeroDenominatorFail
// reports ok=false.
func Barycentric(a, b, c, p types.Vec3, policy types.ZeroDenominatorPolicy) (types.Bary, bool) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := p.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return policy.Apply()
	}

	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w
	return types.Bary{U: u, V: v, W: w}, true
}

// Barycentric2D solves for the barycentric coordinates of 2D point p
// with respect to the 2D triangle (a,b,c), used for the coplanar-pair
// projection case of PairIntersector.
func Barycentric2D(a, b, c, p types.Point, policy types.ZeroDenominatorPolicy) (types.Bary, bool) {
	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if denom == 0 {
		return policy.Apply()
	}
	u := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / denom
	v := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / denom
	w := 1 - u - v
	return types.Bary{U: u, V: v, W: w}, true
}

// SegmentPlaneCross computes the parameter t in [0,1] at which segment
// (p0,p1) crosses the plane through (a,b,c), given that the two segment
// endpoints have opposite-sign PlaneSide values. Returns ok=false if the
// segment is (numerically) parallel to the plane.
func SegmentPlaneCross(a, b, c, p0, p1 types.Vec3) (float64, bool) {
	d0 := PlaneSide(a, b, c, p0)
	d1 := PlaneSide(a, b, c, p1)
	denom := d0 - d1
	if denom == 0 {
		return 0, false
	}
	t := d0 / denom
	return t, true
}

func maxAbs3(pts ...types.Vec3) float64 {
	max := 0.0
	for _, p := range pts {
		for _, v := range [3]float64{p.X, p.Y, p.Z} {
			if a := math.Abs(v); a > max {
				max = a
			}
		}
	}
	return max
}

func bigFloat3(v types.Vec3) (*big.Float, *big.Float, *big.Float) {
	return bigFloat(v.X), bigFloat(v.Y), bigFloat(v.Z)
}

func add3(a, b *big.Float) *big.Float {
	out := bigFloat(0)
	return out.Add(a, b)
}

func sub3(a, b *big.Float) *big.Float {
	out := bigFloat(0)
	return out.Sub(a, b)
}

func mul3(a, b *big.Float) *big.Float {
	out := bigFloat(0)
	return out.Mul(a, b)
}
