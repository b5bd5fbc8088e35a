package waste

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Append(ctx context.Context, ev *Event) error

	// List returns events ordered by date ascending, ties in insertion order.
	List(ctx context.Context) ([]*Event, error)

	// TotalGrams is the sum over all events, 0 when the ledger is empty.
	TotalGrams(ctx context.Context) (int, error)
}
