package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_DefaultsToUnknown(t *testing.T) {
	g := NewGame()
	assert.Equal(t, ResultUnknown, g.Result())
	_, ok := g.ResultAsInt()
	assert.False(t, ok)
}

func TestSetResult_ValidatesAndEncodes(t *testing.T) {
	g := NewGame()
	assert.True(t, g.SetResult(ResultWhiteWins))
	score, ok := g.ResultAsInt()
	require.True(t, ok)
	assert.Equal(t, 1, score)

	assert.False(t, g.SetResult("garbage"))
}

func TestMoveCount_CountsMainlineAndVariations(t *testing.T) {
	g := NewGame()
	g.AddMoveSAN("e4", "", nil)
	g.MoveToId(RootNode)
	g.AddVariationSAN("d4", "", nil)

	assert.Equal(t, 2, g.MoveCount())
}

func TestInsufficientMaterial_DelegatesToBoard(t *testing.T) {
	g, err := NewGameFromFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, g.InsufficientMaterial())
}
