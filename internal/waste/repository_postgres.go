package waste

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"savemyfridge/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, ev *Event) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}

	// Single INSERT: the append either fully commits or fully fails.
	_, err := r.db.Exec(ctx, `
		INSERT INTO waste_log (id, waste_date, amount_g)
		VALUES ($1, $2, $3)
	`, ev.ID, ev.Date, ev.AmountGrams)
	if err != nil {
		return fmt.Errorf("append waste event: %w: %w", core.ErrStorage, err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, waste_date, amount_g
		FROM waste_log
		ORDER BY waste_date, seq
	`)
	if err != nil {
		return nil, fmt.Errorf("list waste events: %w: %w", core.ErrStorage, err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		ev := &Event{}
		if err := rows.Scan(&ev.ID, &ev.Date, &ev.AmountGrams); err != nil {
			return nil, fmt.Errorf("scan waste event: %w: %w", core.ErrStorage, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list waste events: %w: %w", core.ErrStorage, err)
	}
	return events, nil
}

func (r *PostgresRepository) TotalGrams(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_g), 0) FROM waste_log
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total waste: %w: %w", core.ErrStorage, err)
	}
	return total, nil
}
