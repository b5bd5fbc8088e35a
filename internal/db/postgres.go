package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens the shared pool and bootstraps the schema. The caller owns
// the pool and must Close it on shutdown.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return pool, nil
}

// initSchema creates the three tables when they do not exist yet.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// INGREDIENTS
	// -------------------------------
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			expiry_date DATE NOT NULL,
			storage_tip TEXT NOT NULL DEFAULT '',
			disposal_rule TEXT NOT NULL DEFAULT '',
			seq BIGSERIAL
		)
	`
	if _, err := pool.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// WASTE LOG (append-only)
	// -------------------------------
	wasteLogSQL := `
		CREATE TABLE IF NOT EXISTS waste_log (
			id UUID PRIMARY KEY,
			waste_date DATE NOT NULL,
			amount_g INTEGER NOT NULL CHECK (amount_g >= 0),
			seq BIGSERIAL
		)
	`
	if _, err := pool.Exec(ctx, wasteLogSQL); err != nil {
		return err
	}

	// -------------------------------
	// USER POINTS (append-only)
	// -------------------------------
	userPointsSQL := `
		CREATE TABLE IF NOT EXISTS user_points (
			id UUID PRIMARY KEY,
			action_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			description TEXT NOT NULL,
			points INTEGER NOT NULL,
			seq BIGSERIAL
		)
	`
	if _, err := pool.Exec(ctx, userPointsSQL); err != nil {
		return err
	}

	return nil
}
