// Package storage persists single JSON-serializable values under namespaced
// keys.
//
// Persistence is best-effort: a failed read returns the caller's fallback
// value and a failed write leaves the previous file untouched. Faults are
// logged as warnings and never propagate, so the in-memory copy stays
// authoritative for the rest of the session.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmcli/tm/internal/logging"
	"go.uber.org/zap"
)

// Store reads and writes values as JSON files inside a data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory is created lazily on
// the first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load retrieves and deserializes the value stored under key. A missing key,
// an undecodable payload, or any storage fault returns fallback.
func Load[T any](s *Store, key string, fallback T) T {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return fallback
	}
	if err != nil {
		logging.Warn("read stored value", zap.String("key", key), zap.Error(err))
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		logging.Warn("decode stored value", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return value
}

// Save serializes value and writes it under key, replacing any prior value.
// Write faults are logged and swallowed; the previous file is left intact.
func Save[T any](s *Store, key string, value T) {
	if err := save(s, key, value); err != nil {
		logging.Warn("write stored value", zap.String("key", key), zap.Error(err))
	}
}

func save[T any](s *Store, key string, value T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	// Write atomically via temp file so a partial write is never observable.
	tmpFile, err := os.CreateTemp(s.dir, key+".json.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(name, s.path(key)); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
