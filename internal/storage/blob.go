// Package storage persists application data under the user config
// directory: timers as a JSON blob, preferences as YAML.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no value exists for a key.
var ErrNotFound = errors.New("value not found")

// BlobStore is an opaque key-value store for serialized snapshots.
type BlobStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// FileBlobStore keeps one file per key inside a base directory.
type FileBlobStore struct {
	baseDir string
}

// NewFileBlobStore creates a blob store rooted at the given directory.
func NewFileBlobStore(baseDir string) *FileBlobStore {
	return &FileBlobStore{baseDir: filepath.Clean(baseDir)}
}

// Get reads the value stored under key.
func (store *FileBlobStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(store.baseDir, key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read blob %s: %w", key, err)
	}
	return data, nil
}

// Set writes the value under key, creating the base directory if needed.
func (store *FileBlobStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(store.baseDir, 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(store.baseDir, key), value, 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	return nil
}

// DefaultBaseDir resolves the per-user data directory for the application.
func DefaultBaseDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}
