package chessgame

import "strconv"

// Annotation returns the raw comment string at (pos, id), including any
// embedded [%...] sub-annotations.
func (g *Game) Annotation(pos AnnotationPosition, id NodeID) string {
	id = g.resolve(id)
	return g.ann.get(pos, id)
}

// TextAnnotation returns the human-authored portion of the comment at
// (pos, id), with every recognized bracketed sub-annotation stripped out.
func (g *Game) TextAnnotation(pos AnnotationPosition, id NodeID) string {
	return textAnnotation(g.Annotation(pos, id))
}

// SetAnnotation overwrites the raw comment at (pos, id). pos == BeforeMove
// is rejected unless canHaveStartAnnotation(id) holds (spec.md invariant 9).
func (g *Game) SetAnnotation(pos AnnotationPosition, id NodeID, text string) *MutationResult {
	id = g.resolve(id)
	if pos == BeforeMove && !g.canHaveStartAnnotation(id) {
		return nil
	}
	if _, ok := g.tree.store.get(id); !ok {
		return nil
	}
	before := g.snapshot()
	g.ann.set(pos, id, text)
	return &MutationResult{Prev: before, Label: "Edit comment"}
}

// EditAnnotation replaces only the human-authored text at (pos, id),
// preserving whatever bracketed sub-annotations were already present.
func (g *Game) EditAnnotation(pos AnnotationPosition, id NodeID, text string) *MutationResult {
	id = g.resolve(id)
	raw := g.Annotation(pos, id)
	rebuilt := text + specTagsOnly(raw)
	return g.SetAnnotation(pos, id, rebuilt)
}

func specTagsOnly(s string) string {
	matches := anyTagRe.FindAllString(s, -1)
	out := ""
	for _, m := range matches {
		out += m
	}
	return out
}

// SquareAnnotation returns the [%csl] body at id's after-move comment.
func (g *Game) SquareAnnotation(id NodeID) string {
	return squareAnnotationOf(g.Annotation(AfterMove, id))
}

// SetSquareAnnotation replaces the [%csl] body at id, ported from
// gamex.cpp's setSquareAnnotation.
func (g *Game) SetSquareAnnotation(id NodeID, squareAnnotation string) *MutationResult {
	id = g.resolve(id)
	raw := g.Annotation(AfterMove, id)
	return g.SetAnnotation(AfterMove, id, withSquareAnnotation(raw, squareAnnotation))
}

// AppendSquareAnnotation toggles a single colored-square marker at the
// cursor, following gamex.cpp's appendSquareAnnotation comma-list rule:
// re-adding an already-marked square clears it instead of duplicating it.
func (g *Game) AppendSquareAnnotation(square string, colorCode byte) *MutationResult {
	id := g.tree.cursor
	current := g.SquareAnnotation(id)
	next := appendColorCode(current, square, colorCode)
	return g.SetSquareAnnotation(id, next)
}

// ArrowAnnotation returns the [%cal] body at id's after-move comment.
func (g *Game) ArrowAnnotation(id NodeID) string {
	return arrowAnnotationOf(g.Annotation(AfterMove, id))
}

// SetArrowAnnotation replaces the [%cal] body at id.
func (g *Game) SetArrowAnnotation(id NodeID, arrowAnnotation string) *MutationResult {
	id = g.resolve(id)
	raw := g.Annotation(AfterMove, id)
	return g.SetAnnotation(AfterMove, id, withArrowAnnotation(raw, arrowAnnotation))
}

// AppendArrowAnnotation toggles a single arrow marker (src->dest) at the
// cursor, the same comma-list toggle rule as squares.
func (g *Game) AppendArrowAnnotation(src, dest string, colorCode byte) *MutationResult {
	id := g.tree.cursor
	current := g.ArrowAnnotation(id)
	next := appendColorCode(current, src+dest, colorCode)
	return g.SetArrowAnnotation(id, next)
}

// TimeAnnotation returns whichever clock tag (egt/emt/clk) is present at
// (id, pos); pos == BeforeMove reads the previous node's tag instead,
// mirroring gamex.cpp's timeAnnotation.
func (g *Game) TimeAnnotation(id NodeID, pos AnnotationPosition) string {
	id = g.resolve(id)
	if pos == BeforeMove {
		n, ok := g.tree.store.get(id)
		if !ok || id <= RootNode {
			return ""
		}
		id = n.prev
		if id == NoMove {
			return ""
		}
	}
	return timeAnnotationOf(g.Annotation(AfterMove, id))
}

// RemoveTimeComments strips every emt/clk/egt tag from every node's
// after-move comment, a supplemented bulk-cleanup operation mirrored on
// gamex.cpp's per-tag stripping helpers.
func (g *Game) RemoveTimeComments() *MutationResult {
	before := g.snapshot()
	changed := false
	for id, v := range g.ann.post {
		stripped := stripSpecTag(v, timeTagRe)
		if stripped != v {
			g.ann.set(AfterMove, id, stripped)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return &MutationResult{Prev: before, Label: "Remove time comments"}
}

// --- NAGs ---

// AddNag appends a NAG code (1-255) to id if not already present.
func (g *Game) AddNag(id NodeID, nag int) *MutationResult {
	id = g.resolve(id)
	n, ok := g.tree.store.get(id)
	if !ok || nag <= 0 || nag > 255 || n.hasNag(nag) {
		return nil
	}
	before := g.snapshot()
	n.addNag(nag)
	return &MutationResult{Prev: before, Label: "Add NAG"}
}

// SetNags overwrites id's NAG list wholesale, rejecting anything outside the
// 1..255 PGN NAG range and dropping duplicates, the same rule AddNag already
// enforces one code at a time (spec.md §3).
func (g *Game) SetNags(id NodeID, nags []int) *MutationResult {
	id = g.resolve(id)
	n, ok := g.tree.store.get(id)
	if !ok {
		return nil
	}
	before := g.snapshot()
	clean := make([]int, 0, len(nags))
	seen := map[int]bool{}
	for _, nag := range nags {
		if nag <= 0 || nag > 255 || seen[nag] {
			continue
		}
		seen[nag] = true
		clean = append(clean, nag)
	}
	n.nags = clean
	return &MutationResult{Prev: before, Label: "Set NAGs"}
}

// ClearNags removes every NAG from id.
func (g *Game) ClearNags(id NodeID) *MutationResult {
	id = g.resolve(id)
	n, ok := g.tree.store.get(id)
	if !ok || len(n.nags) == 0 {
		return nil
	}
	before := g.snapshot()
	n.nags = nil
	return &MutationResult{Prev: before, Label: "Clear NAGs"}
}

// nagGlyphs renders the handful of NAG codes with a conventional symbolic
// glyph (spec.md §4.D's "NAG glyph append"); codes without a glyph are left
// to the caller to render numerically if it wants them at all.
var nagGlyphs = map[int]string{
	1: "!", 2: "?", 3: "!!", 4: "??", 5: "!?", 6: "?!",
}

// MoveToSan renders id's move as algebraic notation by replaying to its
// pre-image position, without moving the live cursor permanently. The
// rendering is prefixed with the move number ("N." for White, "N…" for
// Black) and suffixed with glyphs for any of id's NAGs that have one,
// mirroring gamex.cpp's moveToSan.
func (g *Game) MoveToSan(id NodeID) (string, bool) {
	id = g.resolve(id)
	n, ok := g.tree.store.get(id)
	if !ok || n.prev == NoMove {
		return "", false
	}
	savedCursor := g.tree.cursor
	savedBoard := g.tree.board
	g.tree.replayTo(n.prev, nil)
	san := n.move.SAN()
	g.tree.cursor = savedCursor
	g.tree.board = savedBoard

	prefix := moveNumberPrefix(g.MoveNumber(id), g.tree.startPly+n.ply)
	for _, nag := range n.nags {
		if glyph, ok := nagGlyphs[nag]; ok {
			san += glyph
		}
	}
	return prefix + san, true
}

// moveNumberPrefix formats "N." for a White move and "N…" for a Black
// move, the two forms gamex.cpp's moveToSan distinguishes depending on
// which side is to move at the pre-image position. ply counts from the
// standard starting position (the game's startPly plus the node's ply), so
// odd is White and even is Black.
func moveNumberPrefix(moveNumber, ply int) string {
	if ply%2 == 1 {
		return strconv.Itoa(moveNumber) + ". "
	}
	return strconv.Itoa(moveNumber) + "… "
}
