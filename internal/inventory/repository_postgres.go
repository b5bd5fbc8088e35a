package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"savemyfridge/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, ing *Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO ingredients (id, name, category, quantity, expiry_date, storage_tip, disposal_rule)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		ing.ID, ing.Name, ing.Category, ing.Quantity,
		ing.ExpiryDate, ing.StorageTip, ing.DisposalRule,
	)
	if err != nil {
		return fmt.Errorf("insert ingredient: %w: %w", core.ErrStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Ingredient, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, category, quantity, expiry_date, storage_tip, disposal_rule
		FROM ingredients
		WHERE id = $1
	`, id)

	ing := &Ingredient{}
	err := row.Scan(
		&ing.ID, &ing.Name, &ing.Category, &ing.Quantity,
		&ing.ExpiryDate, &ing.StorageTip, &ing.DisposalRule,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ingredient %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get ingredient: %w: %w", core.ErrStorage, err)
	}
	return ing, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete ingredient: %w: %w", core.ErrStorage, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Ingredient, error) {
	return r.list(ctx, `ORDER BY seq`)
}

func (r *PostgresRepository) ListByExpiry(ctx context.Context) ([]*Ingredient, error) {
	return r.list(ctx, `ORDER BY expiry_date, seq`)
}

func (r *PostgresRepository) FindByName(ctx context.Context, substr string) ([]*Ingredient, error) {
	// LIKE without escaping, matching the original search behavior.
	return r.list(ctx, `WHERE name LIKE '%' || $1 || '%' ORDER BY seq`, substr)
}

func (r *PostgresRepository) list(ctx context.Context, tail string, args ...any) ([]*Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, quantity, expiry_date, storage_tip, disposal_rule
		FROM ingredients
	`+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w: %w", core.ErrStorage, err)
	}
	defer rows.Close()

	var items []*Ingredient
	for rows.Next() {
		ing := &Ingredient{}
		if err := rows.Scan(
			&ing.ID, &ing.Name, &ing.Category, &ing.Quantity,
			&ing.ExpiryDate, &ing.StorageTip, &ing.DisposalRule,
		); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w: %w", core.ErrStorage, err)
		}
		items = append(items, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ingredients: %w: %w", core.ErrStorage, err)
	}
	return items, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM ingredients`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ingredients: %w: %w", core.ErrStorage, err)
	}
	return count, nil
}

func (r *PostgresRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT name FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list names: %w: %w", core.ErrStorage, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w: %w", core.ErrStorage, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list names: %w: %w", core.ErrStorage, err)
	}
	return names, nil
}
