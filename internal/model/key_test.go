package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArtifactKey_RelPath(t *testing.T) {
	ratios := &Ratios{Statements: 0.2, TestCases: 1, Mutants: 0.7}

	cases := []struct {
		key  ArtifactKey
		want string
	}{
		{ArtifactKey{Stage: StageSBFL, Dataset: "Lang", Formula: "GP13", Project: "Lang-1"}, "sbfl/Lang/GP13/Lang-1.json"},
		{ArtifactKey{Stage: StageContribution, Dataset: "Lang", Formula: "GP13", Project: "Lang-1"}, "contribution/Lang/GP13/Lang-1.json"},
		{ArtifactKey{Stage: StageGraph, View: ViewPassed, Dataset: "Lang", Formula: "Ochiai", Project: "Lang-1"}, "graph/passed_test_cases/Lang/Ochiai/Lang-1_matrix.bin"},
		{ArtifactKey{Stage: StageGraph, View: ViewFailed, Dataset: "Lang", Formula: "Ochiai", Project: "Lang-1", Format: FormatMermaid}, "graph/failed_test_cases/Lang/Ochiai/Lang-1.mmd"},
		{ArtifactKey{Stage: StagePageRank, View: ViewDifference, Dataset: "Lang", Formula: "OP2", Project: "Lang-1"}, "page_rank/difference/Lang/OP2/Lang-1.json"},
		{ArtifactKey{Stage: StageMBFL, Dataset: "Lang", Formula: "DSTAR", Ratios: ratios, Project: "Lang-1"}, "mbfl/Lang/0.2/1.0/0.7/DSTAR/Lang-1.json"},
		{ArtifactKey{Stage: StageEvaluation, Dataset: "Lang", Formula: "DSTAR", Ratios: ratios, Technique: TechniqueMBFL}, "evaluation/Lang/mbfl/0.2/1.0/0.7/DSTAR.json"},
		{ArtifactKey{Stage: StageEvaluation, Dataset: "Lang", Formula: "GP13", Technique: TechniqueSBFL}, "evaluation/Lang/sbfl/GP13.json"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.key.RelPath())
	}
}

func TestRatios_String(t *testing.T) {
	require.Equal(t, "0.0/0.5/1.0", Ratios{Statements: 0, TestCases: 0.5, Mutants: 1}.String())
	require.Equal(t, "0.3/0.6/0.9", Ratios{Statements: 0.30000000000000004, TestCases: 0.6000000000000001, Mutants: 0.9}.String())
}
