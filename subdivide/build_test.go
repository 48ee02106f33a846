package subdivide

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimmy-zhao-tainio/erratri-sub001/types"
)

func TestBuildPSLGWholeTriangleFastPath(t *testing.T) {
	pslg, kind, err := BuildPSLG(nil, nil, types.NewTolerances())
	require.NoError(t, err)
	require.Equal(t, types.PatternWhole, kind)
	require.Len(t, pslg.Vertices, 3)
	require.Len(t, pslg.Faces, 1)
}

func TestBuildPSLGSingleChordFastPath(t *testing.T) {
	attached := []AttachedVertex{
		{GlobalID: 0, Bary: types.Bary{U: 0.5, V: 0.5, W: 0}},
		{GlobalID: 1, Bary: types.Bary{U: 0, V: 0.5, W: 0.5}},
	}
	segments := []types.GlobalEdge{types.NewGlobalEdge(0, 1)}

	pslg, kind, err := BuildPSLG(attached, segments, types.NewTolerances())
	require.NoError(t, err)
	require.Equal(t, types.PatternSingleChord, kind)
	require.Len(t, pslg.Vertices, 5)
	require.Len(t, pslg.Faces, 2)
}

func TestBuildPSLGGeneralPathWithInteriorVertex(t *testing.T) {
	// An interior vertex is not eligible for the single-chord fast path,
	// so a chord anchored on one falls through to the general builder.
	attached := []AttachedVertex{
		{GlobalID: 0, Bary: types.Bary{U: 0.3, V: 0.3, W: 0.4}},
		{GlobalID: 1, Bary: types.Bary{U: 0, V: 0.5, W: 0.5}},
	}
	segments := []types.GlobalEdge{types.NewGlobalEdge(0, 1)}

	pslg, kind, err := BuildPSLG(attached, segments, types.NewTolerances())
	require.NoError(t, err)
	require.Equal(t, types.PatternGeneral, kind)
	require.Len(t, pslg.Vertices, 5)
	require.NotEmpty(t, pslg.Faces)
}

func TestTrySingleChordRejectsCornerEndpoint(t *testing.T) {
	attached := []AttachedVertex{
		{GlobalID: 0, Bary: types.Bary{U: 1, V: 0, W: 0}},
		{GlobalID: 1, Bary: types.Bary{U: 0, V: 0.5, W: 0.5}},
	}
	segs := []inputSegment{{A: 0, B: 1}}
	_, ok := trySingleChord(attached, segs, types.NewTolerances())
	require.False(t, ok)
}
