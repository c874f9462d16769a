package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotationTables_PostZeroNeverDeleted(t *testing.T) {
	a := newAnnotationTables()
	a.set(AfterMove, RootNode, "game comment")
	a.set(AfterMove, RootNode, "")

	_, exists := a.post[RootNode]
	assert.True(t, exists, "post[0] is overwritten with empty, never removed")
	assert.Equal(t, "", a.get(AfterMove, RootNode))
}

func TestAnnotationTables_PreOneRefusesEmptyDelete(t *testing.T) {
	a := newAnnotationTables()
	a.set(BeforeMove, 1, "opening note")
	a.set(BeforeMove, 1, "")

	_, exists := a.pre[1]
	assert.True(t, exists, "pre[1] keeps its key even when written empty")
}

func TestAnnotationTables_PreOtherNodeDeletesOnEmpty(t *testing.T) {
	a := newAnnotationTables()
	a.set(BeforeMove, 5, "variation note")
	a.set(BeforeMove, 5, "")

	_, exists := a.pre[5]
	assert.False(t, exists)
}

func TestAnnotationTables_RemapDropsDeadKeys(t *testing.T) {
	a := newAnnotationTables()
	a.set(AfterMove, 3, "hello")
	a.set(AfterMove, 7, "world")

	table := make([]NodeID, 10)
	for i := range table {
		table[i] = NoMove
	}
	table[3] = 2

	remapped := a.remap(table)
	assert.Equal(t, "hello", remapped.get(AfterMove, 2))
	assert.Equal(t, "", remapped.get(AfterMove, 7))
}

func TestAnnotationTables_StripsCommentTerminator(t *testing.T) {
	a := newAnnotationTables()
	a.set(AfterMove, 1, "unsafe } text")
	assert.Equal(t, "unsafe  text", a.get(AfterMove, 1))
}
