package points

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Append(ctx context.Context, ev *Event) error

	// List returns events newest first.
	List(ctx context.Context) ([]*Event, error)

	// Total is the sum of all points, 0 when the ledger is empty.
	Total(ctx context.Context) (int, error)
}
