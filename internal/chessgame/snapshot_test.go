package chessgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport_RoundTripsMainlineAndVariations(t *testing.T) {
	g := NewGame()
	g.SetTag(TagWhite, "Carlsen")
	g.SetTag(TagResult, "1-0")

	_, res := g.AddMoveSAN("e4", "", nil)
	require.NotNil(t, res)
	_, res = g.AddMoveSAN("e5", "a nice reply", []int{1})
	require.NotNil(t, res)
	_, res = g.AddMoveSAN("Nf3", "", nil)
	require.NotNil(t, res)

	g.Backward(2)
	_, res = g.AddVariationSAN("c5", "Sicilian", nil)
	require.NotNil(t, res)

	snap := g.Export()
	require.NotNil(t, snap.Root)
	assert.Equal(t, "e4", snap.Root.SAN)
	assert.Equal(t, "e5", snap.Root.Next.SAN)
	assert.Equal(t, "a nice reply", snap.Root.Next.Comment)
	assert.Equal(t, []int{1}, snap.Root.Next.Nags)
	require.Len(t, snap.Root.Variations, 1)
	assert.Equal(t, "c5", snap.Root.Variations[0].SAN)

	g2, err := Import(snap)
	require.NoError(t, err)
	assert.Equal(t, 3, g2.PlyCount())
	v, ok := g2.Tag(TagWhite)
	assert.True(t, ok)
	assert.Equal(t, "Carlsen", v)

	g2.MoveToStart()
	g2.Forward(1)
	assert.Len(t, g2.CurrentVariations(), 1)

	snap2 := g2.Export()
	assert.Equal(t, snap.Root.SAN, snap2.Root.SAN)
	assert.Equal(t, snap.Root.Next.SAN, snap2.Root.Next.SAN)
	assert.Equal(t, snap.Root.Variations[0].SAN, snap2.Root.Variations[0].SAN)
}

func TestExportImport_EmptyGame(t *testing.T) {
	g := NewGame()
	snap := g.Export()
	assert.Nil(t, snap.Root)

	g2, err := Import(snap)
	require.NoError(t, err)
	assert.True(t, g2.IsEmpty())
}

func TestExportImport_CustomStartingPosition(t *testing.T) {
	custom := "8/8/8/4k3/8/8/8/4K2R w K - 0 1"
	g, err := NewGameFromFEN(custom)
	require.NoError(t, err)
	_, res := g.AddMoveSAN("Kf1", "", nil)
	require.NotNil(t, res)

	snap := g.Export()
	assert.Equal(t, custom, snap.StartFEN)

	g2, err := Import(snap)
	require.NoError(t, err)
	assert.Equal(t, 1, g2.PlyCount())
	v, _ := g2.Tag(TagFEN)
	assert.Equal(t, custom, v)
}

func TestImport_RejectsIllegalMove(t *testing.T) {
	snap := GameSnapshot{
		Root: &MoveNodeSnapshot{SAN: "e5"},
	}
	_, err := Import(snap)
	assert.Error(t, err)
}
