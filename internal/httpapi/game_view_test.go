package httpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treechess/backend/internal/chessgame"
	"github.com/treechess/backend/internal/store"
)

func TestToSummary_FormatsTimestamps(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := store.GameRecord{ID: "g1", Name: "My Game", CreatedAt: created, UpdatedAt: created}

	s := toSummary(rec)
	assert.Equal(t, "g1", s.ID)
	assert.Equal(t, "My Game", s.Name)
	assert.Equal(t, "2026-01-02T03:04:05Z", s.CreatedAt)
}

func TestToView_IncludesDerivedFields(t *testing.T) {
	g := chessgame.NewGame()
	_, res := g.AddMoveSAN("e4", "", nil)
	require.NotNil(t, res)

	rec := store.GameRecord{ID: "g1", Name: "Test"}
	view := toView(rec, g)

	assert.Equal(t, "g1", view.ID)
	assert.Equal(t, 1, view.PlyCount)
	assert.NotEmpty(t, view.FEN)
	assert.False(t, view.IsChess960)
	require.NotNil(t, view.Snapshot.Root)
	assert.Equal(t, "e4", view.Snapshot.Root.SAN)
}
