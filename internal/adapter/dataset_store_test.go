package adapter

import (
	"path/filepath"
	"testing"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toyDataset = `[
  {
    "proj": "Toy-1",
    "methods": {"A.f()": 0, "A.g()": 1},
    "lines": {"A.java:10": 0, "A.java:11": 1, "A.java:20": 2},
    "mutation": {"m0": 0, "m1": 1},
    "ftest": {"T.fail": 0},
    "rtest": {"T.ok1": 0, "T.ok2": 1},
    "edge": [[0, 0], [1, 0]],
    "edge10": [[1, 0], [2, 1]],
    "edge2": [[0, 0], [0, 1], [1, 2]],
    "edge12": [[0, 0], [1, 2]],
    "edge13": [[1, 1]],
    "edge14": [[0, 0]],
    "ans": {"0": [0]}
  },
  {
    "proj": "Toy-2",
    "methods": {"B.h()": 0},
    "lines": {"B.java:1": 0},
    "mutation": {},
    "ftest": {"T.fail": 0},
    "rtest": {},
    "edge": [[0, 0]],
    "edge10": [],
    "edge2": [[0, 0]],
    "edge12": [],
    "edge13": [],
    "edge14": [],
    "ans": [0]
  }
]`

func newToyDataRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, datasetDirName))
	mustMkdir(t, filepath.Join(root, callGraphDirName))
	writeTestFile(t, filepath.Join(root, datasetDirName, "Toy.json"), toyDataset)
	writeTestFile(t, filepath.Join(root, callGraphDirName, "Toy_M2M.txt"), "Toy-1 * [(0, [1]), (1, [])]\n")

	return root
}

func TestLocalDatasetStore_LoadDataset(t *testing.T) {
	store := NewLocalDatasetStore(NewLocalFSAdapter(), newToyDataRoot(t))

	versions, err := store.LoadDataset("Toy")
	require.NoError(t, err)
	require.Len(t, versions, 2)

	first := versions[0]
	assert.Equal(t, "Toy-1", first.Project)
	assert.Equal(t, 3, first.Lines.Len())
	assert.Equal(t, []m.Edge{{0, 0}, {0, 1}, {1, 2}}, first.MethodLines)
	assert.Equal(t, m.FaultSet{0: {0}}, first.Faults)
	assert.Equal(t, []m.CallEdges{{Method: 0, Targets: []int{1}}, {Method: 1, Targets: []int{}}}, first.Calls)
	require.NoError(t, first.Validate())

	second := versions[1]
	assert.Equal(t, m.FaultSet{0: nil}, second.Faults)
	assert.Nil(t, second.Calls)
}

func TestLocalDatasetStore_LoadDatasetWithoutCallGraph(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, datasetDirName))
	writeTestFile(t, filepath.Join(root, datasetDirName, "Toy.json"), toyDataset)

	store := NewLocalDatasetStore(NewLocalFSAdapter(), root)

	versions, err := store.LoadDataset("Toy")
	require.NoError(t, err)

	for _, pv := range versions {
		assert.Empty(t, pv.Calls)
	}
}

func TestLocalDatasetStore_LoadDatasetErrors(t *testing.T) {
	root := newToyDataRoot(t)
	writeTestFile(t, filepath.Join(root, datasetDirName, "Broken.json"), "{not json")

	store := NewLocalDatasetStore(NewLocalFSAdapter(), root)

	_, err := store.LoadDataset("Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dataset Missing")

	_, err = store.LoadDataset("Broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode dataset Broken")
}

func TestLocalDatasetStore_ListDatasetsAndHash(t *testing.T) {
	root := newToyDataRoot(t)
	writeTestFile(t, filepath.Join(root, datasetDirName, "Lang.json"), "[]")
	writeTestFile(t, filepath.Join(root, datasetDirName, "notes.txt"), "x")
	mustMkdir(t, filepath.Join(root, datasetDirName, "nested"))
	writeTestFile(t, filepath.Join(root, datasetDirName, "nested", "Inner.json"), "[]")

	store := NewLocalDatasetStore(NewLocalFSAdapter(), root)

	names, err := store.ListDatasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"Lang", "Toy"}, names)

	first, err := store.DatasetHash("Toy")
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := store.DatasetHash("Lang")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
