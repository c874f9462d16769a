// Package store persists chessgame.Game values as JSONB documents, playing
// the role spec.md §1 carves out for "persistence and database indexing":
// an external collaborator, out of the core's scope, that the core's
// snapshot encoding (chessgame.GameSnapshot) is built to feed.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/treechess/backend/internal/config"
)

// DefaultTimeout bounds every individual database round trip.
const DefaultTimeout = 5 * time.Second

// DB owns the connection pool and runs the schema migration at startup,
// following the teacher's internal/repository/db.go.
type DB struct {
	Pool *pgxpool.Pool
}

// Open creates the pool, pings it, and ensures the schema exists.
func Open(cfg config.Config) (*DB, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: failed to ping database: %w", err)
	}

	db := &DB{Pool: pool}
	if err := db.migrate(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: failed to run migrations: %w", err)
	}
	return db, nil
}

func (db *DB) migrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS games (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name VARCHAR(200) NOT NULL DEFAULT 'Untitled game',
			snapshot JSONB NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_games_owner ON games(owner_id);
		CREATE INDEX IF NOT EXISTS idx_games_updated ON games(updated_at DESC);
	`
	_, err := db.Pool.Exec(ctx, schema)
	return err
}

// Close releases the pool.
func (db *DB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

func dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), DefaultTimeout)
}
