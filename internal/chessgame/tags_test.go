package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagMap_PreservesInsertionOrder(t *testing.T) {
	tm := newTagMap()
	tm.Set(TagEvent, "Casual Game")
	tm.Set(TagWhite, "Alice")
	tm.Set(TagBlack, "Bob")
	tm.Set(TagWhite, "Alice Updated")

	assert.Equal(t, []string{TagEvent, TagWhite, TagBlack}, tm.Keys())
	v, ok := tm.Get(TagWhite)
	assert.True(t, ok)
	assert.Equal(t, "Alice Updated", v)
}

func TestTagMap_Remove(t *testing.T) {
	tm := newTagMap()
	tm.Set(TagEvent, "Casual Game")
	tm.Set(TagWhite, "Alice")
	tm.Remove(TagEvent)

	_, ok := tm.Get(TagEvent)
	assert.False(t, ok)
	assert.Equal(t, []string{TagWhite}, tm.Keys())
}

func TestTagMap_Clone_Independent(t *testing.T) {
	tm := newTagMap()
	tm.Set(TagEvent, "Casual Game")
	clone := tm.clone()
	clone.Set(TagWhite, "Alice")

	_, ok := tm.Get(TagWhite)
	assert.False(t, ok)
}
