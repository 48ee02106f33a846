// Package assemble implements C5, the BooleanSelectorAssembler: given
// classified patches from both input meshes, it selects and
// winding-corrects the patches belonging to one boolean operation, welds
// shared vertices, deduplicates triangles, and validates the result is
// edge-manifold.
package assemble

import "github.com/jimmy-zhao-tainio/erratri-sub001/types"

// onBehavior controls how a coplanar (Containment == On) patch is
// treated for one side of an operation.
type onBehavior int

const (
	onDrop onBehavior = iota
	onKeepIfOwner
)

// selectionRule is the per-operation, per-mesh keep/flip policy.
type selectionRule struct {
	keepOutside bool
	keepInside  bool
	flipInside  bool
	on          onBehavior
}

// rulesFor returns the selection rule for mesh's contribution to op.
func rulesFor(op types.BooleanOperationType, mesh types.MeshID) selectionRule {
	switch op {
	case types.Intersection:
		return selectionRule{keepInside: true, on: onKeepIfOwner}
	case types.Union:
		// A coplanar region is where the two solids touch exactly; it
		// contributes no surface to the merged solid, so both sides drop it.
		return selectionRule{keepOutside: true, on: onDrop}
	case types.DifferenceAB:
		if mesh == types.MeshA {
			return selectionRule{keepOutside: true, on: onKeepIfOwner}
		}
		return selectionRule{keepInside: true, flipInside: true, on: onDrop}
	case types.DifferenceBA:
		if mesh == types.MeshB {
			return selectionRule{keepOutside: true, on: onKeepIfOwner}
		}
		return selectionRule{keepInside: true, flipInside: true, on: onDrop}
	case types.SymmetricDifference:
		return selectionRule{keepOutside: true, keepInside: true, flipInside: true, on: onDrop}
	default:
		panic("assemble: unknown BooleanOperationType")
	}
}

// selected is one surviving patch with its final winding decision.
type selected struct {
	patch   types.TrianglePatch
	flipped bool
}

// selectSide applies op's rule to one mesh's classified patches.
func selectSide(infos []types.PatchInfo, op types.BooleanOperationType, mesh types.MeshID) []selected {
	rule := rulesFor(op, mesh)
	var out []selected
	for _, info := range infos {
		switch info.Containment {
		case types.Outside:
			if rule.keepOutside {
				out = append(out, selected{patch: info.Patch})
			}
		case types.Inside:
			if rule.keepInside {
				out = append(out, selected{patch: info.Patch, flipped: rule.flipInside})
			}
		case types.On:
			if rule.on == onKeepIfOwner && info.Patch.CoplanarOwner == ownerFor(mesh) {
				out = append(out, selected{patch: info.Patch})
			}
		default:
			panic("assemble: unknown Containment")
		}
	}
	return out
}

func ownerFor(mesh types.MeshID) types.CoplanarOwner {
	if mesh == types.MeshA {
		return types.OwnerMeshA
	}
	return types.OwnerMeshB
}
