package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeID_IsReal(t *testing.T) {
	assert.True(t, NodeID(5).IsReal())
	assert.True(t, RootNode.IsReal())
	assert.False(t, NoMove.IsReal())
	assert.False(t, CurrentMove.IsReal())
}
