package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcoClassify_KnownOpening(t *testing.T) {
	code, name, ok := EcoClassify("r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R")
	require.True(t, ok)
	assert.Equal(t, "C50", code)
	assert.Equal(t, "Italian Game", name)
}

func TestGame_EcoClassify_WalksBackToMatch(t *testing.T) {
	g := NewGame()
	g.AddMoveSAN("e4", "", nil)
	g.AddMoveSAN("e5", "", nil)
	g.AddMoveSAN("Bc4", "", nil)
	g.AddMoveSAN("Nc6", "", nil)
	g.AddMoveSAN("Nf3", "", nil)

	code, _, _, ok := g.EcoClassify()
	require.True(t, ok)
	assert.Equal(t, "C50", code)
}

func TestIsEcoPosition_FalseForUnclassified(t *testing.T) {
	g := NewGame()
	g.AddMoveSAN("a4", "", nil)
	assert.False(t, g.IsEcoPosition())
}
