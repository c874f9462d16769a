package chessgame

// findMergePoint walks other's mainline from its root, matching moves
// against g's tree starting at matchStart, and returns the last node in g
// whose move matches the walk plus how far into other's mainline that
// match reached. Ported from gamex.cpp's findMergePoint: the walk keeps a
// trailing "last good match" node, so that if other's mainline runs past
// the end of g's matching line, the match backs off to that last node
// instead of failing outright.
func (g *Game) findMergePoint(other *Game, matchStart NodeID) (NodeID, NodeID) {
	gNode := matchStart
	rootNode, ok := other.tree.store.get(RootNode)
	if !ok {
		return matchStart, NoMove
	}
	oNode := rootNode.next
	lastMatch := matchStart

	for oNode != NoMove {
		gn, ok := g.tree.store.get(gNode)
		if !ok {
			break
		}
		nextG := gn.next
		if nextG == NoMove {
			break
		}
		nextGNode, ok := g.tree.store.get(nextG)
		on, ok2 := other.tree.store.get(oNode)
		if !ok || !ok2 {
			break
		}
		if nextGNode.move.SAN() != on.move.SAN() {
			break
		}
		gNode = nextG
		lastMatch = gNode
		oNode = on.next
	}
	return lastMatch, oNode
}

// mergeProvenance builds the "White-Black Event" description spec.md §4.D
// step 1 requires on the overlaid line's last node, mirroring gamex.cpp's
// eventInfo()/dbSetAnnotation call in dbMergeWithGame. Empty when other
// carries none of the three tags.
func mergeProvenance(other *Game) string {
	white, _ := other.Tag(TagWhite)
	black, _ := other.Tag(TagBlack)
	event, _ := other.Tag(TagEvent)
	if white == "" && black == "" && event == "" {
		return ""
	}
	if white == "" {
		white = "?"
	}
	if black == "" {
		black = "?"
	}
	if event == "" {
		return white + "-" + black
	}
	return white + "-" + black + " " + event
}

// MergeWithGame splices other's moves (from other's mainline start) onto g
// at the cursor, skipping the shared prefix the two games already agree on.
// Moves that diverge from g's existing continuation become a new variation;
// moves beyond g's current line extend the mainline. Every variation other
// has at any overlaid node is recursively merged in too (spec.md §4.D step
// 3), and the last node actually attached at the top level carries a
// provenance comment naming other's players/event (step 1). Ported from
// gamex.cpp's dbMerge family.
func (g *Game) MergeWithGame(other *Game) *MutationResult {
	before := g.snapshot()
	mergePoint, oRemaining := g.findMergePoint(other, g.tree.cursor)

	if oRemaining == NoMove {
		return nil // other contributes nothing new
	}

	g.tree.MoveToId(mergePoint)
	cur, ok := g.tree.store.get(g.tree.cursor)
	if !ok {
		return nil
	}
	asVariation := cur.next != NoMove

	lastID := g.mergeChain(other, oRemaining, asVariation)
	if lastID == NoMove {
		return nil
	}

	if prov := mergeProvenance(other); prov != "" {
		g.ann.set(AfterMove, lastID, prov)
	}

	g.tree.MoveToId(mergePoint)
	return &MutationResult{Prev: before, Label: "Merge game"}
}

// mergeChain attaches other's node chain starting at oID onto g's current
// cursor (as a new variation if asVariation, otherwise extending the
// mainline), recursively merging every variation other has at each
// overlaid node along the way. Returns the id of the last node attached at
// this chain's own level (not counting nested variation tails), or NoMove
// if nothing could be attached. Mirrors the mutual recursion of gamex.cpp's
// mergeAsMainline/mergeAsVariation/mergeVariations (lines ~270-359).
func (g *Game) mergeChain(other *Game, oID NodeID, asVariation bool) NodeID {
	on, ok := other.tree.store.get(oID)
	if !ok {
		return NoMove
	}
	comment := other.ann.get(AfterMove, oID)
	nags := append([]int(nil), on.nags...)

	var id NodeID
	if asVariation {
		id = g.dbAddVariation([]Move{on.move}, comment, nags)
	} else {
		id = g.dbAddMove(on.move, comment, nags)
	}
	if id == NoMove {
		return NoMove
	}
	g.mergeVariationsAt(other, on.variations, id)

	last := id
	oNext := on.next
	for oNext != NoMove {
		nextOn, ok := other.tree.store.get(oNext)
		if !ok {
			break
		}
		nextComment := other.ann.get(AfterMove, oNext)
		nextNags := append([]int(nil), nextOn.nags...)
		nid := g.dbAddMove(nextOn.move, nextComment, nextNags)
		if nid == NoMove {
			break
		}
		g.mergeVariationsAt(other, nextOn.variations, nid)
		last = nid
		oNext = nextOn.next
	}
	return last
}

// mergeVariationsAt attaches each of other's variations in oVariations as a
// new variation off g's node gID, restoring g's cursor to gID afterward so
// the caller's own forward walk can continue unaffected.
func (g *Game) mergeVariationsAt(other *Game, oVariations []NodeID, gID NodeID) {
	if len(oVariations) == 0 {
		return
	}
	for _, ov := range oVariations {
		g.tree.MoveToId(gID)
		g.mergeChain(other, ov, true)
	}
	g.tree.MoveToId(gID)
}
