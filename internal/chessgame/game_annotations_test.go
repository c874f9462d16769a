package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAnnotation_AfterMove(t *testing.T) {
	g := NewGame()
	id, _ := g.AddMoveSAN("e4", "", nil)
	res := g.SetAnnotation(AfterMove, id, "best by test")
	require.NotNil(t, res)
	assert.Equal(t, "best by test", g.Annotation(AfterMove, id))
}

func TestSetAnnotation_BeforeMoveRefusedMidLine(t *testing.T) {
	g := NewGame()
	id1, _ := g.AddMoveSAN("e4", "", nil)
	id2, _ := g.AddMoveSAN("e5", "", nil)
	_ = id1

	// id2 is not a line start and is not node 1, so a BeforeMove comment is
	// rejected per spec.md invariant 9.
	res := g.SetAnnotation(BeforeMove, id2, "hello")
	assert.Nil(t, res)
}

func TestSetAnnotation_BeforeMoveAllowedAtNodeOne(t *testing.T) {
	g := NewGame()
	id1, _ := g.AddMoveSAN("e4", "", nil)
	res := g.SetAnnotation(BeforeMove, id1, "opening note")
	require.NotNil(t, res)
	assert.Equal(t, "opening note", g.Annotation(BeforeMove, id1))
}

func TestSquareAndArrowAnnotation_RoundTrip(t *testing.T) {
	g := NewGame()
	id, _ := g.AddMoveSAN("e4", "", nil)
	g.SetSquareAnnotation(id, "Ge4,Rd5")
	assert.Equal(t, "Ge4,Rd5", g.SquareAnnotation(id))

	g.SetArrowAnnotation(id, "Ge2e4")
	assert.Equal(t, "Ge2e4", g.ArrowAnnotation(id))

	// Setting one must not disturb the other.
	assert.Equal(t, "Ge4,Rd5", g.SquareAnnotation(id))
}

func TestAppendSquareAnnotation_TogglesSquare(t *testing.T) {
	g := NewGame()
	id, _ := g.AddMoveSAN("e4", "", nil)
	g.MoveToId(id)
	g.AppendSquareAnnotation("e4", 'G')
	assert.Equal(t, "Ge4", g.SquareAnnotation(id))

	g.AppendSquareAnnotation("e4", 'G')
	assert.Equal(t, "", g.SquareAnnotation(id), "re-adding the same square clears it")
}

func TestTextAnnotation_StripsSpecTags(t *testing.T) {
	g := NewGame()
	id, _ := g.AddMoveSAN("e4", "", nil)
	g.SetAnnotation(AfterMove, id, "great move")
	g.SetSquareAnnotation(id, "Ge4")
	assert.Equal(t, "great move", g.TextAnnotation(AfterMove, id))
}

func TestAddNag_NoDuplicate(t *testing.T) {
	g := NewGame()
	id, _ := g.AddMoveSAN("e4", "", nil)
	res1 := g.AddNag(id, 1)
	require.NotNil(t, res1)
	res2 := g.AddNag(id, 1)
	assert.Nil(t, res2)
	assert.Equal(t, []int{1}, g.Nags(id))
}

func TestSetNags_RejectsOutOfRangeAndDedups(t *testing.T) {
	g := NewGame()
	id, _ := g.AddMoveSAN("e4", "", nil)
	res := g.SetNags(id, []int{1, 0, 256, 3, 1, -5, 3})
	require.NotNil(t, res)
	assert.Equal(t, []int{1, 3}, g.Nags(id))
}

func TestMoveToSan_AddsMoveNumberAndNagGlyph(t *testing.T) {
	g := NewGame()
	id1, _ := g.AddMoveSAN("e4", "", nil)
	id2, _ := g.AddMoveSAN("e5", "", nil)
	g.SetNags(id1, []int{1})

	san1, ok := g.MoveToSan(id1)
	require.True(t, ok)
	assert.Equal(t, "1. e4!", san1)

	san2, ok := g.MoveToSan(id2)
	require.True(t, ok)
	assert.Equal(t, "1… e5", san2)
}
