// Package adapter contains the storage adapters of the flreduce pipeline.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	m "flreduce.dev/pkg/flreduce/internal/model"
)

// FSAdapter abstracts the filesystem operations the stores rely on so they can
// be tested against a temporary directory.
type FSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content atomically, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Exists reports whether path exists.
	Exists(path m.Path) (bool, error)

	// ListDirs returns the names of the direct subdirectories of root, sorted.
	// A missing root yields an empty list.
	ListDirs(root m.Path) ([]string, error)

	// Walk visits every regular file under root.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// HashFile returns the SHA-256 fingerprint of the file at path.
	HashFile(path m.Path) (string, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc receives the path of every visited file.
type FilepathWalkFunc func(path string, info os.FileInfo) error

// LocalFSAdapter implements FSAdapter on the local disk.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a temporary sibling and renames it into place.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", target, err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", target, err)
	}

	return os.Rename(tmpName, target)
}

// Exists reports whether path exists.
func (a *LocalFSAdapter) Exists(path m.Path) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// ListDirs returns the sorted names of the subdirectories of root.
func (a *LocalFSAdapter) ListDirs(root m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(root))
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}

	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}

	sort.Strings(dirs)

	return dirs, nil
}

// Walk visits every regular file under root in lexical order. A missing root
// visits nothing.
func (a *LocalFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	rootStr := string(root)

	if ok, err := a.Exists(root); err != nil || !ok {
		return err
	}

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		return fn(path, info)
	})
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
