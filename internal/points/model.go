package points

import "time"

// Event is one point-earning entry in the append-only ledger. Historical
// entries survive the deletion of whatever ingredient produced them; the
// description is a denormalized snapshot, not a foreign key.
type Event struct {
	ID          string    `json:"id"`
	OccurredAt  time.Time `json:"action_date"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
}
