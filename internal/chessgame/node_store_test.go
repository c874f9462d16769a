package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeStore_AppendAndGet(t *testing.T) {
	s := newNodeStore()
	id := s.append(moveNode{ply: 1, prev: RootNode, next: NoMove, parent: NoMove})
	n, ok := s.get(id)
	require.True(t, ok)
	assert.Equal(t, 1, n.ply)
}

func TestNodeStore_GetRejectsTombstoned(t *testing.T) {
	s := newNodeStore()
	id := s.append(moveNode{ply: 1, prev: RootNode, next: NoMove, parent: NoMove})
	n, _ := s.get(id)
	n.removed = true
	_, ok := s.get(id)
	assert.False(t, ok)
}

func TestNodeStore_ResolveCurrentMove(t *testing.T) {
	s := newNodeStore()
	id := s.append(moveNode{ply: 1, prev: RootNode, next: NoMove, parent: NoMove})
	assert.Equal(t, id, s.resolve(CurrentMove, id))
	assert.Equal(t, NoMove, s.resolve(NodeID(99), id))
}

func TestNodeStore_CompactRemapsReferences(t *testing.T) {
	s := newNodeStore()
	id1 := s.append(moveNode{ply: 1, prev: RootNode, next: NoMove, parent: NoMove})
	id2 := s.append(moveNode{ply: 2, prev: id1, next: NoMove, parent: NoMove})
	root, _ := s.get(RootNode)
	root.next = id1
	n1, _ := s.get(id1)
	n1.next = id2

	n1.removed = false
	n2, _ := s.get(id2)
	n2.removed = true // tombstone the tail

	remap, newCursor := s.compact(id1)
	assert.Equal(t, id1, newCursor)
	assert.NotEqual(t, NoMove, remap[id1])
	assert.Equal(t, NoMove, remap[id2])

	rootAfter, _ := s.get(RootNode)
	n1After, _ := s.get(remap[id1])
	assert.Equal(t, remap[id1], rootAfter.next)
	assert.Equal(t, NoMove, n1After.next)
}
