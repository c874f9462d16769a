package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame_StandardStart(t *testing.T) {
	g := NewGame()
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.PlyCount())
	assert.Equal(t, RootNode, g.Cursor())
	assert.False(t, g.HasCustomStartingPosition())
}

func TestNewGameFromFEN_SetsSetUpAndFENTags(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	g, err := NewGameFromFEN(fen)
	require.NoError(t, err)
	_, ok := g.Tag(TagFEN)
	assert.False(t, ok, "standard start should not stamp FEN/SetUp")

	custom := "8/8/8/4k3/8/8/8/4K2R w K - 0 1"
	g2, err := NewGameFromFEN(custom)
	require.NoError(t, err)
	v, ok := g2.Tag(TagFEN)
	assert.True(t, ok)
	assert.Equal(t, custom, v)
	v2, _ := g2.Tag(TagSetUp)
	assert.Equal(t, "1", v2)
}

func TestAddMoveSAN_AppendsAndAdvancesCursor(t *testing.T) {
	g := NewGame()
	id, res := g.AddMoveSAN("e4", "", nil)
	require.NotEqual(t, NoMove, id)
	require.NotNil(t, res)
	assert.Equal(t, 1, g.PlyCount())
	assert.Equal(t, id, g.Cursor())

	id2, res2 := g.AddMoveSAN("e5", "", nil)
	require.NotEqual(t, NoMove, id2)
	require.NotNil(t, res2)
	assert.Equal(t, 2, g.PlyCount())
}

func TestAddMoveSAN_IllegalMoveRejected(t *testing.T) {
	g := NewGame()
	id, res := g.AddMoveSAN("e5", "", nil)
	assert.Equal(t, NoMove, id)
	assert.Nil(t, res)
	assert.True(t, g.IsEmpty())
}

func TestAddVariationSAN_BranchesOffCursor(t *testing.T) {
	g := NewGame()
	mainID, _ := g.AddMoveSAN("e4", "", nil)
	require.NotEqual(t, NoMove, mainID)
	g.MoveToId(RootNode)

	varID, res := g.AddVariationSAN("d4", "", nil)
	require.NotNil(t, res)
	require.NotEqual(t, NoMove, varID)

	vars := g.Variations(RootNode)
	assert.Contains(t, vars, varID)
	assert.NotEqual(t, mainID, varID)
	assert.Equal(t, mainID, g.Next(RootNode), "mainline unaffected by adding a variation")
}

func TestMutationResult_PrevRestoresPriorState(t *testing.T) {
	g := NewGame()
	_, res := g.AddMoveSAN("e4", "", nil)
	require.NotNil(t, res)
	assert.True(t, res.Prev.IsEmpty())
	assert.False(t, g.IsEmpty())
}

func TestMoveToId_TeleportForwardAndBackward(t *testing.T) {
	g := NewGame()
	id1, _ := g.AddMoveSAN("e4", "", nil)
	id2, _ := g.AddMoveSAN("e5", "", nil)
	id3, _ := g.AddMoveSAN("Nf3", "", nil)

	ok := g.MoveToId(id1)
	require.True(t, ok)
	assert.Equal(t, id1, g.Cursor())

	ok = g.MoveToId(id3)
	require.True(t, ok)
	assert.Equal(t, id3, g.Cursor())

	moved := g.Backward(2)
	assert.Equal(t, 2, moved)
	assert.Equal(t, id1, g.Cursor())

	_ = id2
}

func TestClone_IsIndependent(t *testing.T) {
	g := NewGame()
	g.AddMoveSAN("e4", "", nil)
	clone := g.Clone()
	clone.AddMoveSAN("e5", "", nil)

	assert.Equal(t, 1, g.PlyCount())
	assert.Equal(t, 2, clone.PlyCount())
}

func TestSetChess960_OnlyTouchesVariantTag(t *testing.T) {
	g := NewGame()
	g.SetTag(TagFEN, "custom")
	g.SetTag(TagSetUp, "1")

	res := g.SetChess960(true)
	require.NotNil(t, res)
	v, ok := g.Tag(TagVariant)
	assert.True(t, ok)
	assert.Equal(t, "Chess960", v)

	res2 := g.SetChess960(false)
	require.NotNil(t, res2)
	_, ok = g.Tag(TagVariant)
	assert.False(t, ok)

	fenVal, _ := g.Tag(TagFEN)
	setupVal, _ := g.Tag(TagSetUp)
	assert.Equal(t, "custom", fenVal, "Chess960 toggling must never touch FEN")
	assert.Equal(t, "1", setupVal, "Chess960 toggling must never touch SetUp")
}

func TestReplaceMove_TailTruncation(t *testing.T) {
	g := NewGame()
	firstID, _ := g.AddMoveSAN("e4", "", nil)
	g.AddMoveSAN("e5", "", nil)
	g.AddMoveSAN("Nf3", "", nil)
	g.MoveToId(firstID)

	m, err := g.Board().ParseMove("d5")
	require.NoError(t, err)
	id, res := g.ReplaceMove(m, "", nil, true)
	require.NotNil(t, res)
	require.NotEqual(t, NoMove, id)
	assert.Equal(t, id, g.Cursor())
	assert.Equal(t, NoMove, g.Next(id), "replaceTail=true must drop the rest of the old line")
}
