package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoveTree_StartsAtRoot(t *testing.T) {
	tr := newMoveTree()
	assert.Equal(t, RootNode, tr.cursor)
	assert.Equal(t, StandardStartFEN, tr.startFEN)
}

func TestStepsForward_ReachableAndUnreachable(t *testing.T) {
	g := NewGame()
	g.AddMoveSAN("e4", "", nil)
	id2, _ := g.AddMoveSAN("e5", "", nil)
	g.MoveToId(RootNode)
	varID, _ := g.AddVariationSAN("d4", "", nil)

	steps, ok := g.tree.stepsForward(RootNode, id2)
	require.True(t, ok)
	assert.Equal(t, 2, steps)

	_, ok = g.tree.stepsForward(RootNode, varID)
	assert.False(t, ok, "a variation node is not reachable by following only next links")
}

func TestMoveToEnd_ClimbsToMainlineThenLineEnd(t *testing.T) {
	g := NewGame()
	g.AddMoveSAN("e4", "", nil)
	g.AddMoveSAN("e5", "", nil)
	g.MoveToStart()
	g.Forward(1)
	varID, _ := g.AddVariationSAN("c5", "", nil)
	g.EnterVariation(varID)

	g.MoveToEnd()
	assert.True(t, g.AtLineEnd(g.Cursor()))
}
