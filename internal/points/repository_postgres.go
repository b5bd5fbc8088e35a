package points

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

	err := r.db.QueryRow(ctx, `
		INSERT INTO user_points (id, action_date, description, points)
		VALUES ($1, $2, $3, $4)
		RETURNING action_date
	`, ev.ID, ev.OccurredAt, ev.Description, ev.Points).Scan(&ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("append points event: %w: %w", core.ErrStorage, err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, action_date, description, points
		FROM user_points
		ORDER BY action_date DESC, seq DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list points events: %w: %w", core.ErrStorage, err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		ev := &Event{}
		if err := rows.Scan(&ev.ID, &ev.OccurredAt, &ev.Description, &ev.Points); err != nil {
			return nil, fmt.Errorf("scan points event: %w: %w", core.ErrStorage, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points events: %w: %w", core.ErrStorage, err)
	}
	return events, nil
}

func (r *PostgresRepository) Total(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(points), 0) FROM user_points
	`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total points: %w: %w", core.ErrStorage, err)
	}
	return total, nil
}
