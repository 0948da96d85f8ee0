package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"time"

	m "flreduce.dev/pkg/flreduce/internal/model"
	"gopkg.in/yaml.v3"
)

// Checkpoint records the sweep cells a run has completed so an interrupted
// run can resume.
type Checkpoint struct {
	RunID       string    `yaml:"run_id"`
	Dataset     string    `yaml:"dataset"`
	DatasetHash string    `yaml:"dataset_hash"`
	ShardIndex  int       `yaml:"shard_index"`
	ShardCount  int       `yaml:"shard_count"`
	Completed   []string  `yaml:"completed"`
	UpdatedAt   time.Time `yaml:"updated_at"`
}

// IsCompleted reports whether the cell id is recorded.
func (c *Checkpoint) IsCompleted(cell string) bool {
	return slices.Contains(c.Completed, cell)
}

// MarkCompleted records cell once.
func (c *Checkpoint) MarkCompleted(cell string) {
	if !c.IsCompleted(cell) {
		c.Completed = append(c.Completed, cell)
	}
}

// CheckpointStore persists sweep checkpoints.
type CheckpointStore interface {
	LoadCheckpoint(path m.Path) (*Checkpoint, error)
	SaveCheckpoint(path m.Path, checkpoint *Checkpoint) error
}

// LocalCheckpointStore stores checkpoints as YAML files.
type LocalCheckpointStore struct {
	fs  FSAdapter
	now func() time.Time
}

// NewCheckpointStore constructs a LocalCheckpointStore.
func NewCheckpointStore(fs FSAdapter) *LocalCheckpointStore {
	return &LocalCheckpointStore{fs: fs, now: time.Now}
}

// LoadCheckpoint reads the checkpoint at path. A missing file yields
// ErrNotFound.
func (s *LocalCheckpointStore) LoadCheckpoint(path m.Path) (*Checkpoint, error) {
	data, err := s.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load checkpoint %s: %w", path, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("load checkpoint %s: %w", path, err)
	}

	var checkpoint Checkpoint
	if err := yaml.Unmarshal(data, &checkpoint); err != nil {
		return nil, fmt.Errorf("decode checkpoint %s: %w", path, err)
	}

	return &checkpoint, nil
}

// SaveCheckpoint stamps UpdatedAt and writes the checkpoint to path.
func (s *LocalCheckpointStore) SaveCheckpoint(path m.Path, checkpoint *Checkpoint) error {
	checkpoint.UpdatedAt = s.now().UTC()

	data, err := yaml.Marshal(checkpoint)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save checkpoint %s: %w", path, err)
	}

	return nil
}
