package chessgame

// firstOfVariation walks id backward to the first node of its line: the
// node whose previous node's variations list (or the sentinel root) it
// hangs off of. Mirrors gamex.cpp's `while(!atLineStart(variation))
// variation = previousNode`.
func (g *Game) firstOfVariation(id NodeID) NodeID {
	for !g.AtLineStart(id) {
		n, ok := g.tree.store.get(id)
		if !ok {
			break
		}
		id = n.prev
	}
	return id
}

// PromoteVariation swaps the variation line containing id with its branch
// node's next (the main continuation at that node), so that line becomes
// the main continuation and the old one takes its slot in the variations
// list. id may be any node within the variation, not just its first move.
// Ported from gamex.cpp's dbPromoteVariation.
func (g *Game) PromoteVariation(id NodeID) *MutationResult {
	before := g.snapshot()
	firstID := g.firstOfVariation(id)
	n, ok := g.tree.store.get(firstID)
	if !ok || n.parent == NoMove {
		return nil
	}
	parentID := n.parent
	parent, ok := g.tree.store.get(parentID)
	if !ok {
		return nil
	}

	if parent.next == firstID {
		// Already the mainline continuation; nothing to promote over.
		return nil
	}

	idx := -1
	for i, v := range parent.variations {
		if v == firstID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	// The old mainline continuation becomes a variation hanging off parent
	// itself; the promoted line becomes mainline and inherits parent's own
	// parent, per gamex.cpp:788-790.
	oldMainline := parent.next
	g.tree.Reparent(oldMainline, parentID)
	g.tree.Reparent(firstID, parent.parent)

	parent.next = firstID
	parent.variations[idx] = oldMainline

	g.tree.MoveToId(g.tree.cursor)
	return &MutationResult{Prev: before, Label: "Promote variation"}
}

// RemoveVariation deletes the single variation line starting at firstID. If
// the cursor was inside it, the cursor moves to the variation's parent.
func (g *Game) RemoveVariation(firstID NodeID) *MutationResult {
	before := g.snapshot()
	n, ok := g.tree.store.get(firstID)
	if !ok || n.parent == NoMove {
		return nil
	}
	parent, ok := g.tree.store.get(n.parent)
	if !ok {
		return nil
	}
	if parent.next == firstID {
		return nil // not a variation: it is the mainline continuation
	}
	parent.removeVariation(firstID)

	cursorRemoved := g.nodeInSubtree(firstID, g.tree.cursor)
	g.removeNodeSubtree(firstID)
	if cursorRemoved {
		g.tree.MoveToId(n.parent)
	}
	g.compact()
	return &MutationResult{Prev: before, Label: "Remove variation"}
}

// RemoveVariations deletes every variation hanging off id, leaving only its
// mainline continuation.
func (g *Game) RemoveVariations(id NodeID) *MutationResult {
	before := g.snapshot()
	n, ok := g.tree.store.get(id)
	if !ok || len(n.variations) == 0 {
		return nil
	}
	vars := append([]NodeID(nil), n.variations...)
	n.variations = nil
	cursorRemoved := false
	for _, v := range vars {
		if g.nodeInSubtree(v, g.tree.cursor) {
			cursorRemoved = true
		}
		g.removeNodeSubtree(v)
	}
	if cursorRemoved {
		g.tree.MoveToId(id)
	}
	g.compact()
	return &MutationResult{Prev: before, Label: "Remove variations"}
}

// nodeInSubtree reports whether target is id or reachable from id by
// following next links and variation branches.
func (g *Game) nodeInSubtree(id, target NodeID) bool {
	if id == NoMove {
		return false
	}
	if id == target {
		return true
	}
	n, ok := g.tree.store.get(id)
	if !ok {
		return false
	}
	for _, v := range n.variations {
		if g.nodeInSubtree(v, target) {
			return true
		}
	}
	return g.nodeInSubtree(n.next, target)
}

// NumberOfSiblings returns how many variations (including the mainline
// continuation, if any) exist alongside id at its parent. Supplemented
// diagnostic used by the reorder operations below.
func (g *Game) NumberOfSiblings(id NodeID) int {
	n, ok := g.tree.store.get(id)
	if !ok || n.parent == NoMove {
		return 0
	}
	parent, ok := g.tree.store.get(n.parent)
	if !ok {
		return 0
	}
	count := len(parent.variations)
	if parent.next != NoMove {
		count++
	}
	return count
}

// siblingIndex returns id's position in its parent's variations list, or
// -1 if id is the mainline continuation or not found.
func (g *Game) siblingIndex(id NodeID) int {
	n, ok := g.tree.store.get(id)
	if !ok || n.parent == NoMove {
		return -1
	}
	parent, ok := g.tree.store.get(n.parent)
	if !ok {
		return -1
	}
	for i, v := range parent.variations {
		if v == id {
			return i
		}
	}
	return -1
}

// CanMoveVariationUp reports whether id can move one slot earlier among its
// siblings (towards the mainline).
func (g *Game) CanMoveVariationUp(id NodeID) bool {
	return g.siblingIndex(id) >= 0
}

// CanMoveVariationDown reports whether id can move one slot later.
func (g *Game) CanMoveVariationDown(id NodeID) bool {
	idx := g.siblingIndex(id)
	if idx < 0 {
		return false
	}
	n, _ := g.tree.store.get(id)
	parent, _ := g.tree.store.get(n.parent)
	return idx < len(parent.variations)-1
}

// MoveVariationUp swaps id with the sibling immediately before it (the
// mainline continuation, if id is the first variation). This is the
// non-promoting reorder supplement described in SPEC_FULL.md: unlike
// PromoteVariation it never changes which line is the mainline unless id
// was the first variation.
func (g *Game) MoveVariationUp(id NodeID) *MutationResult {
	if !g.CanMoveVariationUp(id) {
		return nil
	}
	idx := g.siblingIndex(id)
	if idx == 0 {
		return g.PromoteVariation(id)
	}
	before := g.snapshot()
	n, _ := g.tree.store.get(id)
	parent, _ := g.tree.store.get(n.parent)
	parent.variations[idx], parent.variations[idx-1] = parent.variations[idx-1], parent.variations[idx]
	return &MutationResult{Prev: before, Label: "Reorder variation"}
}

// MoveVariationDown swaps id with the sibling immediately after it.
func (g *Game) MoveVariationDown(id NodeID) *MutationResult {
	if !g.CanMoveVariationDown(id) {
		return nil
	}
	idx := g.siblingIndex(id)
	n, _ := g.tree.store.get(id)
	parent, _ := g.tree.store.get(n.parent)
	if idx+1 == len(parent.variations) {
		return nil
	}
	before := g.snapshot()
	parent.variations[idx], parent.variations[idx+1] = parent.variations[idx+1], parent.variations[idx]
	return &MutationResult{Prev: before, Label: "Reorder variation"}
}
