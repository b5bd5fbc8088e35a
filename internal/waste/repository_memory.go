package waste

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu     sync.Mutex
	events []*Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Append(_ context.Context, ev *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	stored := *ev
	r.events = append(r.events, &stored)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]*Event, 0, len(r.events))
	for _, ev := range r.events {
		copied := *ev
		events = append(events, &copied)
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

func (r *MemoryRepository) TotalGrams(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, ev := range r.events {
		total += ev.AmountGrams
	}
	return total, nil
}
