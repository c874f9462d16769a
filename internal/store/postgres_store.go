package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/treechess/backend/internal/chessgame"
)

const (
	createGameSQL = `
		INSERT INTO games (id, owner_id, name, snapshot)
		VALUES ($1, $2, $3, $4)
		RETURNING id, owner_id, name, snapshot, created_at, updated_at
	`
	getGameSQL = `
		SELECT id, owner_id, name, snapshot, created_at, updated_at
		FROM games WHERE id = $1 AND owner_id = $2
	`
	listGamesSQL = `
		SELECT id, owner_id, name, snapshot, created_at, updated_at
		FROM games WHERE owner_id = $1
		ORDER BY updated_at DESC
	`
	updateGameSQL = `
		UPDATE games SET name = $3, snapshot = $4, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, snapshot, created_at, updated_at
	`
	deleteGameSQL = `DELETE FROM games WHERE id = $1 AND owner_id = $2`
)

// GameStore persists chessgame.Game values scoped to an owning user, the way
// the teacher's repository.RepertoireRepository scopes repertoires (there,
// by color; here, by owner_id).
type GameStore struct {
	db *DB
}

func NewGameStore(db *DB) *GameStore {
	return &GameStore{db: db}
}

func scanGameRecord(scan func(dest ...any) error) (*GameRecord, error) {
	var rec GameRecord
	var snapshotJSON []byte
	if err := scan(&rec.ID, &rec.OwnerID, &rec.Name, &snapshotJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshotJSON, &rec.Snapshot); err != nil {
		return nil, fmt.Errorf("store: failed to unmarshal snapshot: %w", err)
	}
	return &rec, nil
}

// Create persists a brand-new game for ownerID.
func (s *GameStore) Create(ownerID, name string, g *chessgame.Game) (*GameRecord, error) {
	ctx, cancel := dbContext()
	defer cancel()

	snapshotJSON, err := json.Marshal(g.Export())
	if err != nil {
		return nil, fmt.Errorf("store: failed to marshal snapshot: %w", err)
	}

	id := uuid.New().String()
	rec, err := scanGameRecord(s.db.Pool.QueryRow(ctx, createGameSQL, id, ownerID, name, snapshotJSON).Scan)
	if err != nil {
		return nil, fmt.Errorf("store: failed to create game: %w", err)
	}
	return rec, nil
}

// Get loads a game and decodes it back into a live chessgame.Game.
func (s *GameStore) Get(ownerID, id string) (*GameRecord, *chessgame.Game, error) {
	ctx, cancel := dbContext()
	defer cancel()

	rec, err := scanGameRecord(s.db.Pool.QueryRow(ctx, getGameSQL, id, ownerID).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrGameNotFound
		}
		return nil, nil, fmt.Errorf("store: failed to get game: %w", err)
	}
	g, err := chessgame.Import(rec.Snapshot)
	if err != nil {
		return nil, nil, fmt.Errorf("store: stored game %s is corrupt: %w", id, err)
	}
	return rec, g, nil
}

// List returns every game owned by ownerID, newest-edited first.
func (s *GameStore) List(ownerID string) ([]GameRecord, error) {
	ctx, cancel := dbContext()
	defer cancel()

	rows, err := s.db.Pool.Query(ctx, listGamesSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to list games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		rec, err := scanGameRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("store: failed to scan game: %w", err)
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Update overwrites a game's name and snapshot in place.
func (s *GameStore) Update(ownerID, id, name string, g *chessgame.Game) (*GameRecord, error) {
	ctx, cancel := dbContext()
	defer cancel()

	snapshotJSON, err := json.Marshal(g.Export())
	if err != nil {
		return nil, fmt.Errorf("store: failed to marshal snapshot: %w", err)
	}

	rec, err := scanGameRecord(s.db.Pool.QueryRow(ctx, updateGameSQL, id, ownerID, name, snapshotJSON).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("store: failed to update game: %w", err)
	}
	return rec, nil
}

// Delete removes a game owned by ownerID.
func (s *GameStore) Delete(ownerID, id string) error {
	ctx, cancel := dbContext()
	defer cancel()

	tag, err := s.db.Pool.Exec(ctx, deleteGameSQL, id, ownerID)
	if err != nil {
		return fmt.Errorf("store: failed to delete game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}
