package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWithGame_ExtendsSharedPrefix(t *testing.T) {
	a := NewGame()
	a.AddMoveSAN("e4", "", nil)
	a.AddMoveSAN("e5", "", nil)
	a.MoveToStart()

	b := NewGame()
	b.AddMoveSAN("e4", "", nil)
	b.AddMoveSAN("e5", "", nil)
	b.AddMoveSAN("Nf3", "", nil)
	b.AddMoveSAN("Nc6", "", nil)

	res := a.MergeWithGame(b)
	require.NotNil(t, res)
	assert.Equal(t, 4, a.PlyCount(), "merge should extend a's mainline with b's extra moves")
}

func TestMergeWithGame_DivergenceBecomesVariation(t *testing.T) {
	a := NewGame()
	a.AddMoveSAN("e4", "", nil)
	a.AddMoveSAN("e5", "", nil)
	a.MoveToStart()

	b := NewGame()
	b.AddMoveSAN("d4", "", nil)
	b.AddMoveSAN("d5", "", nil)

	res := a.MergeWithGame(b)
	require.NotNil(t, res)

	vars := a.Variations(RootNode)
	require.Len(t, vars, 1)
}

func TestMergeWithGame_NothingNewIsNoOp(t *testing.T) {
	a := NewGame()
	a.AddMoveSAN("e4", "", nil)
	a.AddMoveSAN("e5", "", nil)
	a.MoveToStart()

	b := NewGame()
	b.AddMoveSAN("e4", "", nil)

	res := a.MergeWithGame(b)
	assert.Nil(t, res)
}
