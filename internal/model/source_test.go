package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const versionJSON = `{
	"proj": "Lang-1",
	"methods": {"a.b()": 0, "a.c()": 1},
	"lines": {"a.java:10": 0, "a.java:11": 1, "a.java:20": 2},
	"mutation": {"m0": 0, "m1": 1},
	"ftest": {"T.fail": 0},
	"rtest": {"T.ok1": 0, "T.ok2": 1},
	"edge": [[0, 0]],
	"edge10": [[1, 0], [2, 1]],
	"edge2": [[0, 0], [0, 1], [1, 2]],
	"edge12": [[0, 0], [1, 2]],
	"edge13": [[1, 1]],
	"edge14": [[0, 0]],
	"ans": {"0": [0, 1], "1": 2}
}`

func TestProgramVersion_Decode(t *testing.T) {
	var pv ProgramVersion
	require.NoError(t, json.Unmarshal([]byte(versionJSON), &pv))

	require.Equal(t, "Lang-1", pv.Project)
	require.Equal(t, 3, pv.Lines.Len())
	require.Equal(t, []int{0, 1, 2}, pv.Lines.Indices())
	require.Equal(t, []Edge{{1, 0}, {2, 1}}, pv.LinePassed)
	require.Equal(t, FaultSet{0: {0, 1}, 1: {2}}, pv.Faults)
	require.Equal(t, []int{0, 1}, pv.Faults.Methods())
	require.NoError(t, pv.Validate())

	stat := pv.Stat()
	require.Equal(t, DatasetStat{Project: "Lang-1", Methods: 2, Lines: 3, Mutants: 2, FailedTests: 1, PassedTests: 2, Faults: 2}, stat)
}

func TestFaultSet_DecodeVariants(t *testing.T) {
	var list FaultSet
	require.NoError(t, json.Unmarshal([]byte(`[3, 1]`), &list))
	require.Equal(t, FaultSet{1: nil, 3: nil}, list)

	var object FaultSet
	require.NoError(t, json.Unmarshal([]byte(`{"2": null, "4": []}`), &object))
	require.Equal(t, FaultSet{2: nil, 4: {}}, object)

	var bad FaultSet
	require.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &bad))
	require.Error(t, json.Unmarshal([]byte(`{"1": "line"}`), &bad))
}

func TestProgramVersion_ValidateRejectsOutOfRange(t *testing.T) {
	var pv ProgramVersion
	require.NoError(t, json.Unmarshal([]byte(versionJSON), &pv))

	pv.LineFailed = append(pv.LineFailed, Edge{0, 5})
	require.ErrorContains(t, pv.Validate(), "edge")

	pv.LineFailed = pv.LineFailed[:1]
	pv.Calls = []CallEdges{{Method: 0, Targets: []int{7}}}
	require.ErrorContains(t, pv.Validate(), "call graph")

	pv.Calls = nil
	pv.Lines["a.java:30"] = 9
	require.ErrorContains(t, pv.Validate(), "not dense")
}
