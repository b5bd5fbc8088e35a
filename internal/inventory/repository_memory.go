package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"savemyfridge/internal/core"
)

// MemoryRepository keeps the inventory in process memory, for the ephemeral
// variant and for tests. A single mutex serializes mutations so concurrent
// sessions cannot lose updates.
type MemoryRepository struct {
	mu    sync.Mutex
	items []*Ingredient
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(_ context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	stored := *ing
	r.items = append(r.items, &stored)
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if it.ID == id {
			found := *it
			return &found, nil
		}
	}
	return nil, fmt.Errorf("ingredient %s: %w", id, core.ErrNotFound)
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(), nil
}

func (r *MemoryRepository) ListByExpiry(_ context.Context) ([]*Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.snapshot()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpiryDate.Before(items[j].ExpiryDate)
	})
	return items, nil
}

func (r *MemoryRepository) FindByName(_ context.Context, substr string) ([]*Ingredient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*Ingredient
	for _, it := range r.items {
		if strings.Contains(it.Name, substr) {
			found := *it
			matched = append(matched, &found)
		}
	}
	return matched, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *MemoryRepository) Names(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	var names []string
	for _, it := range r.items {
		if !seen[it.Name] {
			seen[it.Name] = true
			names = append(names, it.Name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// snapshot copies the stored records so callers never alias internal state.
// Caller must hold the mutex.
func (r *MemoryRepository) snapshot() []*Ingredient {
	items := make([]*Ingredient, 0, len(r.items))
	for _, it := range r.items {
		found := *it
		items = append(items, &found)
	}
	return items
}
