package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoteVariation_SwapsMainlineAndVariation(t *testing.T) {
	g := NewGame()
	mainID, _ := g.AddMoveSAN("e4", "", nil)
	g.MoveToId(RootNode)
	varID, _ := g.AddVariationSAN("d4", "", nil)

	res := g.PromoteVariation(varID)
	require.NotNil(t, res)

	assert.Equal(t, varID, g.Next(RootNode))
	vars := g.Variations(RootNode)
	assert.Contains(t, vars, mainID)
	assert.NotContains(t, vars, varID)
}

func TestRemoveVariation_DropsOnlyThatBranch(t *testing.T) {
	g := NewGame()
	mainID, _ := g.AddMoveSAN("e4", "", nil)
	g.MoveToId(RootNode)
	varID, _ := g.AddVariationSAN("d4", "", nil)

	res := g.RemoveVariation(varID)
	require.NotNil(t, res)

	assert.Equal(t, mainID, g.Next(RootNode))
	assert.Empty(t, g.Variations(RootNode))
}

func TestRemoveVariations_ClearsAllButMainline(t *testing.T) {
	g := NewGame()
	mainID, _ := g.AddMoveSAN("e4", "", nil)
	g.MoveToId(RootNode)
	g.AddVariationSAN("d4", "", nil)
	g.MoveToId(RootNode)
	g.AddVariationSAN("c4", "", nil)

	assert.Len(t, g.Variations(RootNode), 2)
	res := g.RemoveVariations(RootNode)
	require.NotNil(t, res)
	assert.Empty(t, g.Variations(RootNode))
	assert.Equal(t, mainID, g.Next(RootNode))
}

func TestMoveVariationUpDown_Reorders(t *testing.T) {
	g := NewGame()
	g.AddMoveSAN("e4", "", nil)
	g.MoveToId(RootNode)
	v1, _ := g.AddVariationSAN("d4", "", nil)
	g.MoveToId(RootNode)
	v2, _ := g.AddVariationSAN("c4", "", nil)

	vars := g.Variations(RootNode)
	require.Equal(t, []NodeID{v1, v2}, vars)

	res := g.MoveVariationDown(v1)
	require.NotNil(t, res)
	vars = g.Variations(RootNode)
	assert.Equal(t, []NodeID{v2, v1}, vars)

	assert.False(t, g.CanMoveVariationDown(v1))
}
