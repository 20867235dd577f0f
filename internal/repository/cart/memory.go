package cart

import (
	"context"
	"sync"

	"shopstream/internal/domain"
)

// memoryRepo holds both collections in process memory. Used by tests and by
// deployments that do not want carts to outlive the process.
type memoryRepo struct {
	mu    sync.Mutex
	lines []domain.CartLine
	saved []domain.SavedItem
}

var _ Repository = (*memoryRepo)(nil)

// NewMemory builds an empty in-memory Repository.
func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Lines(_ context.Context) ([]domain.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.CartLine{}, r.lines...), nil
}

func (r *memoryRepo) ReplaceLines(_ context.Context, lines []domain.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append([]domain.CartLine{}, lines...)
	return nil
}

func (r *memoryRepo) SavedItems(_ context.Context) ([]domain.SavedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.SavedItem{}, r.saved...), nil
}

func (r *memoryRepo) ReplaceSavedItems(_ context.Context, items []domain.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append([]domain.SavedItem{}, items...)
	return nil
}
