// Package pairintersect implements C1, the PairIntersector: for each
// candidate triangle pair it classifies the intersection (None, Point,
// Segment, or Area) and emits a deduplicated PairFeatures set expressed
// in both triangles' barycentric coordinates.
package pairintersect

import "github.com/jimmy-zhao-tainio/erratri-sub001/types"

// PairVertex is a geometric point lying on both triangles of a pair,
// stored as two barycentric coordinates (relative to triangle A and to
// triangle B) plus a pair-local integer ID valid only within this pair.
type PairVertex struct {
	ID    int
	BaryA types.Bary
	BaryB types.Bary
	World types.Vec3
}

// PairSegment is an undirected pair of PairVertex IDs; the same
// geometric segment lies on both triangles simultaneously.
type PairSegment struct {
	V1, V2 int
}

// PairFeatures is one pair's vertex/segment set, in pair-local IDs.
// Invariant: every PairSegment references only PairVertex IDs declared
// in Vertices.
type PairFeatures struct {
	Vertices []PairVertex
	Segments []PairSegment
}

// Result is the classification and feature output for one candidate
// pair.
type Result struct {
	Kind     types.IntersectionKind
	Features PairFeatures
}

func emptyResult() Result {
	return Result{Kind: types.KindNone}
}
