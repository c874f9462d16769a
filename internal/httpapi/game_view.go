package httpapi

import (
	"github.com/treechess/backend/internal/chessgame"
	"github.com/treechess/backend/internal/store"
)

// gameSummary is the list-view shape: cheap enough to return without
// decoding every snapshot's full tree.
type gameSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toSummary(rec store.GameRecord) gameSummary {
	return gameSummary{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt.Format(rfc3339),
		UpdatedAt: rec.UpdatedAt.Format(rfc3339),
	}
}

const rfc3339 = "2006-01-02T15:04:05Z07:00"

// gameView is the full-detail shape returned after loading or mutating a
// game: the tree snapshot plus a handful of derived queries a client needs
// to render a board/move-list UI without re-implementing chessgame's logic.
type gameView struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Snapshot    chessgame.GameSnapshot   `json:"snapshot"`
	Cursor      int32                    `json:"cursor"`
	PlyCount    int                      `json:"plyCount"`
	Result      string                   `json:"result"`
	FEN         string                   `json:"fen"`
	ECO         string                   `json:"eco,omitempty"`
	IsChess960  bool                     `json:"isChess960"`
}

func toView(rec store.GameRecord, g *chessgame.Game) gameView {
	eco, _, _, _ := g.EcoClassify()
	return gameView{
		ID:         rec.ID,
		Name:       rec.Name,
		Snapshot:   g.Export(),
		Cursor:     int32(g.Cursor()),
		PlyCount:   g.PlyCount(),
		Result:     g.Result(),
		FEN:        g.Board().ToFen(),
		ECO:        eco,
		IsChess960: g.IsChess960(),
	}
}
