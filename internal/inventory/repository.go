package inventory

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, ing *Ingredient) error
	Get(ctx context.Context, id string) (*Ingredient, error)

	// Delete reports whether a record was actually removed. An unknown id is
	// not an error so that double-submission from the UI stays harmless.
	Delete(ctx context.Context, id string) (bool, error)

	// List returns ingredients in insertion order.
	List(ctx context.Context) ([]*Ingredient, error)

	// ListByExpiry returns ingredients ordered by expiry date ascending,
	// ties in insertion order.
	ListByExpiry(ctx context.Context) ([]*Ingredient, error)

	// FindByName is a case-sensitive substring search.
	FindByName(ctx context.Context, substr string) ([]*Ingredient, error)

	Count(ctx context.Context) (int64, error)

	// Names returns the distinct ingredient names, sorted.
	Names(ctx context.Context) ([]string, error)
}
