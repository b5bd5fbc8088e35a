package points

import (
	"context"
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

	// Appends happen in timestamp order, so newest-first is reverse
	// insertion order.
	events := make([]*Event, 0, len(r.events))
	for i := len(r.events) - 1; i >= 0; i-- {
		copied := *r.events[i]
		events = append(events, &copied)
	}
	return events, nil
}

func (r *MemoryRepository) Total(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, ev := range r.events {
		total += ev.Points
	}
	return total, nil
}
