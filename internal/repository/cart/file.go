package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shopstream/internal/domain"
)

// fileRepo keeps each collection in its own JSON file under dir. This is the
// durable backend: carts survive restarts until checkout clears them.
type fileRepo struct {
	mu  sync.Mutex
	dir string
}

var _ Repository = (*fileRepo)(nil)

// NewFile builds a file-backed Repository rooted at dir, creating the
// directory if needed.
func NewFile(dir string) (Repository, error) {
	if dir == "" {
		return nil, errors.New("data directory required for file store")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &fileRepo{dir: dir}, nil
}

func (r *fileRepo) Lines(_ context.Context) ([]domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := []domain.CartLine{}
	if data, ok := r.read(CartCollection); ok {
		var parsed []domain.CartLine
		if err := json.Unmarshal(data, &parsed); err == nil && parsed != nil {
			lines = parsed
		}
	}
	return lines, nil
}

func (r *fileRepo) ReplaceLines(_ context.Context, lines []domain.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(CartCollection, lines)
}

func (r *fileRepo) SavedItems(_ context.Context) ([]domain.SavedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []domain.SavedItem{}
	if data, ok := r.read(SavedCollection); ok {
		var parsed []domain.SavedItem
		if err := json.Unmarshal(data, &parsed); err == nil && parsed != nil {
			items = parsed
		}
	}
	return items, nil
}

func (r *fileRepo) ReplaceSavedItems(_ context.Context, items []domain.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(SavedCollection, items)
}

// read returns the raw bytes of the named collection. A missing or
// unreadable file reports ok=false; together with the parse check in the
// callers, damaged local state degrades to an empty collection instead of
// poisoning every later operation.
func (r *fileRepo) read(name string) ([]byte, bool) {
	data, err := os.ReadFile(r.path(name))
	if err != nil {
		return nil, false
	}
	return data, true
}

// write marshals the collection to a temp file and renames it into place so
// a failed write never leaves a truncated collection behind.
func (r *fileRepo) write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, errors.Join(domain.ErrStorage, err))
	}

	tmp, err := os.CreateTemp(r.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, errors.Join(domain.ErrStorage, err))
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", name, errors.Join(domain.ErrStorage, err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", name, errors.Join(domain.ErrStorage, err))
	}
	if err := os.Rename(tmpName, r.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save %s: %w", name, errors.Join(domain.ErrStorage, err))
	}
	return nil
}

func (r *fileRepo) path(name string) string {
	return filepath.Join(r.dir, name+".json")
}
