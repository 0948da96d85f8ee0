package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

// ErrNotFound is returned when an artifact key has no stored value.
var ErrNotFound = errors.New("artifact not found")

// ArtifactStore persists stage outputs addressed by ArtifactKey.
type ArtifactStore interface {
	Save(key m.ArtifactKey, data []byte) error
	Load(key m.ArtifactKey) ([]byte, error)
	Exists(key m.ArtifactKey) (bool, error)
	Close() error
}

// SaveJSON encodes value with indentation and stores it under key.
func SaveJSON[T any](store ArtifactStore, key m.ArtifactKey, value T) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	return store.Save(key, data)
}

// LoadJSON loads key and decodes it into a fresh T.
func LoadJSON[T any](store ArtifactStore, key m.ArtifactKey) (T, error) {
	var value T

	data, err := store.Load(key)
	if err != nil {
		return value, err
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("decode %s: %w", key, err)
	}

	return value, nil
}

// FSArtifactStore stores artifacts as files under a root directory, one file
// per key at the key's relative path.
type FSArtifactStore struct {
	fs   FSAdapter
	root string
}

// NewFSArtifactStore constructs a filesystem artifact store rooted at root.
func NewFSArtifactStore(fs FSAdapter, root string) *FSArtifactStore {
	return &FSArtifactStore{fs: fs, root: root}
}

// Save writes data to <root>/<key path>.
func (s *FSArtifactStore) Save(key m.ArtifactKey, data []byte) error {
	if err := s.fs.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}

// Load reads <root>/<key path>. A missing file yields ErrNotFound.
func (s *FSArtifactStore) Load(key m.ArtifactKey) ([]byte, error) {
	data, err := s.fs.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", key, ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	return data, nil
}

// Exists reports whether key has been saved.
func (s *FSArtifactStore) Exists(key m.ArtifactKey) (bool, error) {
	return s.fs.Exists(s.path(key))
}

// Close is a no-op for the filesystem store.
func (s *FSArtifactStore) Close() error {
	return nil
}

func (s *FSArtifactStore) path(key m.ArtifactKey) m.Path {
	return s.fs.JoinPath(s.root, key.RelPath())
}
