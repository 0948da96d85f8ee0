package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

const (
	datasetDirName   = "pkl_data"
	callGraphDirName = "call_graph"
	datasetExt       = ".json"
	callGraphSuffix  = "_M2M.txt"
)

// DatasetStore loads program versions of a dataset from the data directory.
type DatasetStore interface {
	// LoadDataset decodes every program version of the named dataset and
	// attaches its call graph when one is present.
	LoadDataset(name string) ([]m.ProgramVersion, error)

	// ListDatasets returns the names of the datasets available, sorted.
	ListDatasets() ([]string, error)

	// DatasetHash fingerprints the dataset file so checkpoints can detect
	// that the input changed between runs.
	DatasetHash(name string) (string, error)
}

// LocalDatasetStore reads datasets laid out as
// <root>/pkl_data/<name>.json and <root>/call_graph/<name>_M2M.txt.
type LocalDatasetStore struct {
	fs   FSAdapter
	root string
}

// NewLocalDatasetStore constructs a dataset store rooted at dataDir.
func NewLocalDatasetStore(fs FSAdapter, dataDir string) *LocalDatasetStore {
	return &LocalDatasetStore{fs: fs, root: dataDir}
}

// LoadDataset decodes <root>/pkl_data/<name>.json.
func (s *LocalDatasetStore) LoadDataset(name string) ([]m.ProgramVersion, error) {
	data, err := s.fs.ReadFile(s.datasetPath(name))
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", name, err)
	}

	var versions []m.ProgramVersion
	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", name, err)
	}

	calls, err := s.loadCallGraph(name)
	if err != nil {
		return nil, err
	}

	for i := range versions {
		versions[i].Calls = calls[versions[i].Project]
	}

	return versions, nil
}

// ListDatasets lists the JSON files directly inside <root>/pkl_data.
func (s *LocalDatasetStore) ListDatasets() ([]string, error) {
	dir := s.fs.JoinPath(s.root, datasetDirName)

	var names []string

	err := s.fs.Walk(dir, func(path string, _ os.FileInfo) error {
		if filepath.Dir(path) != filepath.Clean(string(dir)) {
			return nil
		}

		base := filepath.Base(path)
		if strings.HasSuffix(base, datasetExt) {
			names = append(names, strings.TrimSuffix(base, datasetExt))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}

	sort.Strings(names)

	return names, nil
}

// DatasetHash returns the SHA-256 of the dataset file.
func (s *LocalDatasetStore) DatasetHash(name string) (string, error) {
	hash, err := s.fs.HashFile(s.datasetPath(name))
	if err != nil {
		return "", fmt.Errorf("hash dataset %s: %w", name, err)
	}

	return hash, nil
}

func (s *LocalDatasetStore) loadCallGraph(name string) (map[string][]m.CallEdges, error) {
	path := s.fs.JoinPath(s.root, callGraphDirName, name+callGraphSuffix)

	ok, err := s.fs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("stat call graph %s: %w", name, err)
	}

	if !ok {
		return map[string][]m.CallEdges{}, nil
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read call graph %s: %w", name, err)
	}

	calls, err := ParseCallGraph(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("call graph %s: %w", name, err)
	}

	return calls, nil
}

func (s *LocalDatasetStore) datasetPath(name string) m.Path {
	return s.fs.JoinPath(s.root, datasetDirName, name+datasetExt)
}
