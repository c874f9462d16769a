package chessgame

// TruncatePoint selects where a truncation cuts relative to the cursor.
type TruncatePoint int

const (
	// TruncateAfter truncates everything strictly after the cursor: the
	// rest of the current line and every variation hanging off any node
	// in it.
	TruncateAfter TruncatePoint = iota
	// TruncateBefore discards everything before the cursor's move and
	// makes the cursor's position-before-move the new game start; the
	// cursor's node survives as the first move and the cursor moves to
	// RootNode.
	TruncateBefore
)

// dbTruncateAfterCursor removes everything reachable forward from the
// cursor (its next-chain and every variation hanging off that chain),
// without touching the cursor node itself.
func (g *Game) dbTruncateAfterCursor() {
	cur, ok := g.tree.store.get(g.tree.cursor)
	if !ok {
		return
	}
	for _, v := range cur.variations {
		g.removeNodeSubtree(v)
	}
	cur.variations = nil
	next := cur.next
	cur.next = NoMove
	g.removeNodeSubtree(next)
}

// tombstonePrefix removes every node strictly before (and not including)
// RootNode on the prev-chain starting at id, along with any variation
// hanging off one of those nodes other than the ones listed in preserve.
// Used by TruncateVariation(BeforeMove) to drop the discarded history once
// the sentinel has been rewritten to point at the new root.
func (g *Game) tombstonePrefix(id NodeID, preserve map[NodeID]bool) {
	for id != NoMove && id != RootNode {
		n, ok := g.tree.store.get(id)
		if !ok {
			return
		}
		for _, v := range n.variations {
			if !preserve[v] {
				g.removeNodeSubtree(v)
			}
		}
		prev := n.prev
		n.removed = true
		id = prev
	}
}

// TruncateVariation removes part of the line through the cursor.
//
// AfterMove: deletes every node after the cursor on its line, plus every
// variation hanging off the remaining chain; the cursor does not move.
//
// BeforeMove: makes the cursor the new game root. The sentinel (node 0) is
// rewritten so its next points at the cursor, the discarded prefix chain is
// tombstoned, and the starting Board and FEN/SetUp tags are rebased from
// the position the cursor now starts at. If the cursor was reached by
// following the mainline next link (not a variation entry point), the
// *previous* node's own variations are additionally transferred onto the
// new root, so siblings the user
// might still want survive the cut (gamex.cpp's BeforeMove branch, lines
// ~857-889).
func (g *Game) TruncateVariation(point TruncatePoint) *MutationResult {
	before := g.snapshot()
	cur, ok := g.tree.store.get(g.tree.cursor)
	if !ok {
		return nil
	}

	switch point {
	case TruncateAfter:
		g.dbTruncateAfterCursor()
	case TruncateBefore:
		if g.tree.cursor == RootNode {
			return nil
		}
		cursorID := g.tree.cursor
		prevID := cur.prev
		shift := cur.ply - 1

		reachedViaMainline := prevID != NoMove && func() bool {
			prevNode, ok := g.tree.store.get(prevID)
			return ok && prevNode.next == cursorID
		}()

		var survivingVariations []NodeID
		preserve := map[NodeID]bool{cursorID: true}
		if reachedViaMainline {
			if prevNode, ok := g.tree.store.get(prevID); ok {
				survivingVariations = append([]NodeID(nil), prevNode.variations...)
				for _, v := range survivingVariations {
					preserve[v] = true
				}
			}
		}

		// Capture the position the cursor's move starts from, before any
		// pointer is rewritten, by replaying back one ply.
		g.tree.Backward(1)
		newFEN := g.tree.board.ToFen()

		g.tombstonePrefix(prevID, preserve)

		root, ok := g.tree.store.get(RootNode)
		if !ok {
			return nil
		}
		root.move = Move{}
		root.nags = nil
		root.prev = NoMove
		root.parent = NoMove
		root.next = cursorID
		root.variations = nil
		root.ply = 0
		root.removed = false

		for _, v := range survivingVariations {
			root.variations = append(root.variations, v)
			g.tree.Reparent(v, RootNode)
			if vn, ok := g.tree.store.get(v); ok {
				vn.prev = RootNode
			}
		}
		cur.prev = RootNode
		g.tree.Reparent(cursorID, NoMove)
		for i := 1; i < g.tree.store.size(); i++ {
			if n, ok := g.tree.store.get(NodeID(i)); ok {
				n.ply -= shift
			}
		}

		g.tree.startFEN = newFEN
		g.tree.startPly += shift
		g.tree.cursor = RootNode
		newBoard, err := NewBoardFromFEN(newFEN)
		if err == nil {
			newBoard.SetChess960(g.tree.startChess)
			g.tree.board = newBoard
		}

		if NormalizeFEN(newFEN) != NormalizeFEN(StandardStartFEN) {
			g.tags.Set(TagFEN, newFEN)
			g.tags.Set(TagSetUp, "1")
		}
	}

	g.compact()
	return &MutationResult{Prev: before, Label: "Truncate variation"}
}

// truncateFirstIllegalDescendant walks the cursor's next-chain, replaying
// each move against a scratch board seeded at the cursor's current
// position, and cuts the line at the first move that is no longer legal
// given the position the cursor's replacement produced. Used by
// ReplaceMove when replaceTail is false: only the portion of the original
// tail that the new move actually invalidates is dropped.
func (g *Game) truncateFirstIllegalDescendant() {
	scratch := g.tree.board.Clone()
	id := g.tree.cursor
	for {
		n, ok := g.tree.store.get(id)
		if !ok || n.next == NoMove {
			return
		}
		nextNode, ok := g.tree.store.get(n.next)
		if !ok {
			return
		}
		if !nextNode.move.IsNull() && !scratch.IsLegal(nextNode.move) {
			g.tree.MoveToId(id)
			g.dbTruncateAfterCursor()
			return
		}
		_ = scratch.DoMove(nextNode.move)
		id = n.next
	}
}

// TruncateVariationAfterNextIllegalPosition truncates the cursor's line at
// the first descendant whose move is not legal in the position reached by
// replaying the line from the live board (per Board.IsLegal), a supplemented
// diagnostic for lines that drifted out of sync with an edited earlier
// move. The cursor does not move.
func (g *Game) TruncateVariationAfterNextIllegalPosition() *MutationResult {
	before := g.snapshot()
	scratch := g.tree.board.Clone()
	id := g.tree.cursor
	cut := false
	for {
		n, ok := g.tree.store.get(id)
		if !ok || n.next == NoMove {
			break
		}
		nextNode, ok := g.tree.store.get(n.next)
		if !ok {
			break
		}
		if !nextNode.move.IsNull() && !scratch.IsLegal(nextNode.move) {
			saveCursor := g.tree.cursor
			g.tree.MoveToId(id)
			g.dbTruncateAfterCursor()
			g.tree.MoveToId(saveCursor)
			cut = true
			break
		}
		_ = scratch.DoMove(nextNode.move)
		id = n.next
	}
	if !cut {
		return nil
	}
	g.compact()
	return &MutationResult{Prev: before, Label: "Truncate variation"}
}
