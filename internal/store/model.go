package store

import (
	"time"

	"github.com/treechess/backend/internal/chessgame"
)

// GameRecord is one stored game: its owner, a display name, and the
// chessgame.GameSnapshot persisted as JSONB.
type GameRecord struct {
	ID        string                  `json:"id"`
	OwnerID   string                  `json:"ownerId"`
	Name      string                  `json:"name"`
	Snapshot  chessgame.GameSnapshot  `json:"snapshot"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// User is an account that owns games.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
