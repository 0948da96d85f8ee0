package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	m "flreduce.dev/pkg/flreduce/internal/model"
	bolt "go.etcd.io/bbolt"
)

// BoltArtifactStore keeps every artifact in a single bbolt file. Each dataset
// gets its own top-level bucket and values are keyed by the artifact's
// relative path, so the two backends are interchangeable.
type BoltArtifactStore struct {
	db *bolt.DB
}

// NewBoltArtifactStore opens (or creates) the database at path.
func NewBoltArtifactStore(path string) (*BoltArtifactStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create bolt directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}

	return &BoltArtifactStore{db: db}, nil
}

// Save stores data under key, replacing any previous value.
func (s *BoltArtifactStore) Save(key m.ArtifactKey, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName(key))
		if err != nil {
			return err
		}

		return bucket.Put([]byte(key.RelPath()), data)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}

// Load returns a copy of the value stored under key.
func (s *BoltArtifactStore) Load(key m.ArtifactKey) ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName(key))
		if bucket == nil {
			return ErrNotFound
		}

		value := bucket.Get([]byte(key.RelPath()))
		if value == nil {
			return ErrNotFound
		}

		// Values are only valid for the life of the transaction.
		data = make([]byte, len(value))
		copy(data, value)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	return data, nil
}

// Exists reports whether key has a stored value.
func (s *BoltArtifactStore) Exists(key m.ArtifactKey) (bool, error) {
	found := false

	err := s.db.View(func(tx *bolt.Tx) error {
		if bucket := tx.Bucket(bucketName(key)); bucket != nil {
			found = bucket.Get([]byte(key.RelPath())) != nil
		}

		return nil
	})

	return found, err
}

// Close closes the underlying database.
func (s *BoltArtifactStore) Close() error {
	return s.db.Close()
}

func bucketName(key m.ArtifactKey) []byte {
	if key.Dataset == "" {
		return []byte("_")
	}

	return []byte(key.Dataset)
}
