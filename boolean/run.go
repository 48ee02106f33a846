package boolean

import (
	"github.com/jimmy-zhao-tainio/erratri-sub001/assemble"
	"github.com/jimmy-zhao-tainio/erratri-sub001/classify"
	"github.com/jimmy-zhao-tainio/erratri-sub001/graph"
	"github.com/jimmy-zhao-tainio/erratri-sub001/pairintersect"
	"github.com/jimmy-zhao-tainio/erratri-sub001/subdivide"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// Run computes one boolean operation between meshA and meshB, using
// tester to classify each subdivided patch against the opposite solid.
func Run(meshA, meshB []types.InputTriangle, op types.BooleanOperationType, tester types.InsideTester, opts Options) (types.OutputMesh, error) {
	tol := opts.tolerances()

	pairRefs := candidatePairs(meshA, meshB, tol.FeatureWorldDistanceEpsilon())

	results := make([]pairintersect.Result, len(pairRefs))
	for i, ref := range pairRefs {
		if opts.cancelled() {
			return types.OutputMesh{}, ErrCancelled
		}
		results[i] = pairintersect.Intersect(meshA[ref.A], meshB[ref.B], tol)
	}

	g := graph.Build(results, tol)

	cutEdges := make(map[types.GlobalEdge]bool, len(g.Edges))
	for _, e := range g.Edges {
		cutEdges[e] = true
	}

	if opts.cancelled() {
		return types.OutputMesh{}, ErrCancelled
	}

	patchesA, err := subdivide.Subdivide(meshA, types.MeshA, g, pairRefs, tol)
	if err != nil {
		return types.OutputMesh{}, &KernelError{Phase: "subdivide", Invariant: "PSLG construction", Err: err}
	}
	patchesB, err := subdivide.Subdivide(meshB, types.MeshB, g, pairRefs, tol)
	if err != nil {
		return types.OutputMesh{}, &KernelError{Phase: "subdivide", Invariant: "PSLG construction", Err: err}
	}

	if opts.cancelled() {
		return types.OutputMesh{}, ErrCancelled
	}

	classifiedA := classify.Classify(patchesA, types.MeshB, tester, cutEdges, tol)
	classifiedB := classify.Classify(patchesB, types.MeshA, tester, cutEdges, tol)

	mesh, _, err := assemble.Run(op, classifiedA, classifiedB, tol)
	if err != nil {
		return types.OutputMesh{}, &KernelError{Phase: "assemble", Invariant: "edge-manifold output", Err: err}
	}

	if opts.CaptureDiagnostics {
		d := &Diagnostics{
			PairResults: results,
			Graph:       g,
			PatchesA:    patchesA,
			PatchesB:    patchesB,
			ClassifiedA: classifiedA,
			ClassifiedB: classifiedB,
		}
		storeDiagnostics(d)
		dumpBoundary(d)
	} else {
		dumpBoundary(&Diagnostics{PairResults: results, Graph: g, PatchesA: patchesA, PatchesB: patchesB})
	}

	return mesh, nil
}
