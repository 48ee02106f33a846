package boolean

import (
	"log"
	"os"
	"sync"

	"github.com/jimmy-zhao-tainio/erratri-sub001/graph"
	"github.com/jimmy-zhao-tainio/erratri-sub001/pairintersect"
	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

// Diagnostics captures one Run's intermediate per-stage state, for
// callers that opt in via Options.CaptureDiagnostics.
type Diagnostics struct {
	PairResults []pairintersect.Result
	Graph       *graph.Graph
	PatchesA    []types.TrianglePatch
	PatchesB    []types.TrianglePatch
	ClassifiedA []types.PatchInfo
	ClassifiedB []types.PatchInfo
}

var (
	debugMu   sync.Mutex
	lastDebug *Diagnostics
)

func storeDiagnostics(d *Diagnostics) {
	debugMu.Lock()
	defer debugMu.Unlock()
	lastDebug = d
}

// LastDiagnostics returns the Diagnostics captured by the most recent
// Run called with Options.CaptureDiagnostics, or nil if none has run.
func LastDiagnostics() *Diagnostics {
	debugMu.Lock()
	defer debugMu.Unlock()
	return lastDebug
}

// dumpBoundary writes a one-line summary of d to the standard logger
// when the DUMP_BOUNDARY environment variable is set, independent of
// Options.CaptureDiagnostics.
func dumpBoundary(d *Diagnostics) {
	if os.Getenv("DUMP_BOUNDARY") == "" {
		return
	}
	log.Printf("boolean: pairs=%d graphVertices=%d patchesA=%d patchesB=%d",
		len(d.PairResults), len(d.Graph.VertexPositions), len(d.PatchesA), len(d.PatchesB))
}
