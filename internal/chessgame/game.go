package chessgame

import "github.com/google/uuid"

// MutationResult carries the pre-edit snapshot and a human-readable label
// for a successful mutation, per the redesign note in spec.md §9: the core
// returns this instead of emitting an observer-pattern event, so an external
// undo stack can push Prev itself.
type MutationResult struct {
	Prev  *Game
	Label string
}

// Game owns a MoveTree, the two annotation side-tables, and the tag map,
// and exposes the editing API from spec.md §4.D.
type Game struct {
	ID   string
	tree *MoveTree
	ann  AnnotationTables
	tags TagMap
}

// NewGame returns an empty game at the standard starting position.
func NewGame() *Game {
	return &Game{
		ID:   uuid.New().String(),
		tree: newMoveTree(),
		ann:  newAnnotationTables(),
		tags: newTagMap(),
	}
}

// NewGameFromFEN returns an empty game starting from a custom position. The
// FEN/SetUp tags are set automatically when fen is not the standard start.
func NewGameFromFEN(fen string) (*Game, error) {
	tree, err := newMoveTreeFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:   uuid.New().String(),
		tree: tree,
		ann:  newAnnotationTables(),
		tags: newTagMap(),
	}
	if NormalizeFEN(tree.startFEN) != NormalizeFEN(StandardStartFEN) {
		g.tags.Set(TagFEN, tree.startFEN)
		g.tags.Set(TagSetUp, "1")
	}
	return g, nil
}

// Clone deep-copies the game: a fresh NodeStore, fresh annotation maps, a
// freshly re-mounted Board, so mutating the copy never reaches the
// original (spec.md §5).
func (g *Game) Clone() *Game {
	return &Game{
		ID:   g.ID,
		tree: g.tree.clone(),
		ann:  g.ann.clone(),
		tags: g.tags.clone(),
	}
}

func (g *Game) snapshot() *Game { return g.Clone() }

// Cursor returns the currently selected live node id.
func (g *Game) Cursor() NodeID { return g.tree.cursor }

// IsEmpty reports whether the mainline has no moves.
func (g *Game) IsEmpty() bool {
	n, _ := g.tree.store.get(RootNode)
	return n.next == NoMove
}

// PlyCount returns the length of the mainline.
func (g *Game) PlyCount() int {
	count := 0
	n, _ := g.tree.store.get(RootNode)
	for n.next != NoMove {
		count++
		n, _ = g.tree.store.get(n.next)
	}
	return count
}

// Ply returns the ply of a node (0 for the sentinel).
func (g *Game) Ply(id NodeID) int {
	n, ok := g.tree.node(id)
	if !ok {
		return 0
	}
	return n.ply
}

// MoveNumber computes spec.md's moveNumber(id) = (startPly+ply-1)/2 + 1.
func (g *Game) MoveNumber(id NodeID) int {
	ply := g.Ply(id)
	return (g.tree.startPly+ply-1)/2 + 1
}

// Parent, Next, Prev, Variations and IsMainline expose the tree shape.
func (g *Game) Parent(id NodeID) NodeID {
	n, ok := g.tree.node(id)
	if !ok {
		return NoMove
	}
	return n.parent
}

func (g *Game) Next(id NodeID) NodeID {
	n, ok := g.tree.node(id)
	if !ok {
		return NoMove
	}
	return n.next
}

func (g *Game) PrevOf(id NodeID) NodeID {
	n, ok := g.tree.node(id)
	if !ok {
		return NoMove
	}
	return n.prev
}

func (g *Game) Variations(id NodeID) []NodeID {
	n, ok := g.tree.node(id)
	if !ok {
		return nil
	}
	return append([]NodeID(nil), n.variations...)
}

// CurrentVariations returns the cursor's variation list.
func (g *Game) CurrentVariations() []NodeID {
	return g.Variations(g.tree.cursor)
}

func (g *Game) IsMainline(id NodeID) bool {
	n, ok := g.tree.node(id)
	if !ok {
		return false
	}
	return n.parent == NoMove
}

// MoveAt returns the move stored at id.
func (g *Game) MoveAt(id NodeID) (Move, bool) {
	n, ok := g.tree.node(id)
	if !ok {
		return Move{}, false
	}
	return n.move, true
}

// Nags returns the NAG set at id, in insertion order.
func (g *Game) Nags(id NodeID) []int {
	n, ok := g.tree.node(id)
	if !ok {
		return nil
	}
	return append([]int(nil), n.nags...)
}

// AtGameStart, AtGameEnd, AtLineStart, AtLineEnd mirror the source's
// boundary predicates, used by the annotation/codec layer and by callers
// deciding whether a pre-move comment is allowed (canHaveStartAnnotation).
func (g *Game) AtGameStart() bool { return g.tree.cursor == RootNode }

func (g *Game) AtLineStart(id NodeID) bool {
	n, ok := g.tree.node(id)
	if !ok {
		return false
	}
	if n.prev == NoMove {
		return true
	}
	prev, ok := g.tree.store.get(n.prev)
	if !ok {
		return true
	}
	for _, v := range prev.variations {
		if v == id {
			return true
		}
	}
	return id == RootNode
}

func (g *Game) AtLineEnd(id NodeID) bool {
	n, ok := g.tree.node(id)
	if !ok {
		return false
	}
	return n.next == NoMove
}

func (g *Game) AtGameEnd() bool { return g.AtLineEnd(g.tree.cursor) }

// canHaveStartAnnotation implements spec.md invariant 9: pre-move comments
// exist only at line starts, or at the position immediately following game
// start (i.e. node 1, the first move of the mainline).
func (g *Game) canHaveStartAnnotation(id NodeID) bool {
	if id == RootNode {
		return true
	}
	if g.AtLineStart(id) {
		return true
	}
	return id == 1
}

// --- Navigation (mutates only the cursor and Board, never the tree) ---

func (g *Game) MoveToStart() { g.tree.MoveToStart() }
func (g *Game) MoveToEnd()   { g.tree.MoveToEnd() }
func (g *Game) MoveToLineEnd() int { return g.tree.MoveToLineEnd() }
func (g *Game) Forward(k int) int  { return g.tree.Forward(k) }
func (g *Game) Backward(k int) int { return g.tree.Backward(k) }
func (g *Game) EnterVariation(firstID NodeID) bool { return g.tree.EnterVariation(firstID) }
func (g *Game) MoveToId(id NodeID) bool            { return g.tree.MoveToId(id) }

// MoveToIdWithUCI teleports to id and also returns the algebraic move list
// accumulated along the replay path, per spec.md §4.C; empty if a null move
// appeared anywhere on the path.
func (g *Game) MoveToIdWithUCI(id NodeID) (bool, string) {
	return g.tree.MoveToIdWithUCI(id)
}

// Board exposes the live mounted board for read-only queries (FEN, side to
// move, material, ...). Navigation must still go through Game/MoveTree.
func (g *Game) Board() *Board { return g.tree.board }

// --- Adding moves ---

func (g *Game) resolve(id NodeID) NodeID {
	return g.tree.store.resolve(id, g.tree.cursor)
}

// dbAddMove appends m as a new child of the cursor on the current line. It
// never emits; callers (AddMove/AddLine/AddVariation with a fallback)
// perform the snapshot dance.
func (g *Game) dbAddMove(m Move, comment string, nags []int) NodeID {
	if !m.IsNull() && !g.tree.board.IsLegal(m) {
		return NoMove
	}
	cur, ok := g.tree.node(g.tree.cursor)
	if !ok {
		return NoMove
	}
	node := moveNode{
		move:   m,
		ply:    cur.ply + 1,
		prev:   g.tree.cursor,
		next:   NoMove,
		parent: cur.parent,
	}
	id := g.tree.store.append(node)
	// append may move the backing array; re-fetch before writing the link.
	cur, _ = g.tree.store.get(g.tree.cursor)
	cur.next = id
	if err := g.tree.board.DoMove(m); err != nil {
		// Should not happen: legality already checked above.
		return NoMove
	}
	g.tree.cursor = id
	if comment != "" {
		g.ann.set(AfterMove, id, comment)
	}
	for _, n := range nags {
		g.addNagAt(id, n)
	}
	return id
}

// AddMove appends m as the next move after the cursor on the current line.
func (g *Game) AddMove(m Move, comment string, nags []int) (NodeID, *MutationResult) {
	before := g.snapshot()
	id := g.dbAddMove(m, comment, nags)
	if id == NoMove {
		return NoMove, nil
	}
	return id, &MutationResult{Prev: before, Label: "Add move"}
}

// AddMoveSAN parses san against the live board and appends it.
func (g *Game) AddMoveSAN(san, comment string, nags []int) (NodeID, *MutationResult) {
	m, err := g.tree.board.ParseMove(san)
	if err != nil {
		return NoMove, nil
	}
	return g.AddMove(m, comment, nags)
}

func (g *Game) dbAddSanMove(san, comment string, nags []int) NodeID {
	m, err := g.tree.board.ParseMove(san)
	if err != nil {
		return NoMove
	}
	return g.dbAddMove(m, comment, nags)
}

// ReplaceMove overwrites the node after the cursor (or adds one if there is
// none) and either truncates everything beyond it (replaceTail) or only the
// portion the new move makes illegal (insert-and-keep-legal-tail).
func (g *Game) ReplaceMove(m Move, comment string, nags []int, replaceTail bool) (NodeID, *MutationResult) {
	before := g.snapshot()
	cur, ok := g.tree.node(g.tree.cursor)
	if !ok {
		return NoMove, nil
	}
	if cur.next == NoMove {
		id := g.dbAddMove(m, comment, nags)
		if id == NoMove {
			return NoMove, nil
		}
		return id, &MutationResult{Prev: before, Label: "Replace move"}
	}
	if !m.IsNull() && !g.tree.board.IsLegal(m) {
		return NoMove, nil
	}
	nextID := cur.next
	nextNode, _ := g.tree.store.get(nextID)
	nextNode.move = m
	if comment != "" {
		g.ann.set(AfterMove, nextID, comment)
	}
	for _, n := range nags {
		g.addNagAt(nextID, n)
	}
	_ = g.tree.board.DoMove(m)
	g.tree.cursor = nextID

	if replaceTail {
		g.dbTruncateAfterCursor()
	} else {
		g.truncateFirstIllegalDescendant()
	}
	g.compact()
	return nextID, &MutationResult{Prev: before, Label: "Replace move"}
}

// dbAddVariation attaches moves as a brand-new first-of-variation line off
// the cursor, preserving the cursor's existing next. Returns the first
// node's id.
func (g *Game) dbAddVariation(moves []Move, comment string, nags []int) NodeID {
	cur, ok := g.tree.node(g.tree.cursor)
	if !ok || len(moves) == 0 {
		return NoMove
	}

	// Special case (spec.md §4.D): at the game's origin with no mainline
	// yet (game start and line end at once), the supplied list becomes the
	// mainline instead of a variation off an empty root. A root that
	// already has a mainline keeps it and gets an ordinary variation.
	atOrigin := g.tree.cursor == RootNode && cur.next == NoMove

	branchParent := cur.parent
	if g.tree.cursor != RootNode {
		branchParent = g.tree.cursor
	} else {
		branchParent = RootNode
	}

	savedBoard := g.tree.board.Clone()
	savedCursor := g.tree.cursor
	firstID := NoMove
	prevInLine := g.tree.cursor
	for i, m := range moves {
		if !m.IsNull() && !g.tree.board.IsLegal(m) {
			// Roll back any partially-added variation nodes by truncating.
			if firstID != NoMove {
				g.removeNodeSubtree(firstID)
				if bn, ok := g.tree.store.get(savedCursor); ok {
					bn.removeVariation(firstID)
					if bn.next == firstID {
						bn.next = NoMove
					}
				}
			}
			g.tree.board = savedBoard
			g.tree.cursor = savedCursor
			return NoMove
		}
		prevNode, _ := g.tree.store.get(prevInLine)
		node := moveNode{move: m, ply: prevNode.ply + 1, prev: prevInLine}
		node.parent = branchParent
		if atOrigin {
			node.parent = NoMove
		}
		id := g.tree.store.append(node)
		// append may move the backing array; re-fetch before writing links.
		prevNode, _ = g.tree.store.get(prevInLine)
		if i == 0 {
			firstID = id
			if atOrigin {
				prevNode.next = id
			} else {
				prevNode.variations = append(prevNode.variations, id)
			}
		} else {
			prevNode.next = id
		}
		_ = g.tree.board.DoMove(m)
		prevInLine = id
		if i == len(moves)-1 {
			if comment != "" {
				g.ann.set(AfterMove, id, comment)
			}
			for _, n := range nags {
				g.addNagAt(id, n)
			}
		}
	}
	g.tree.cursor = prevInLine
	return firstID
}

// AddVariation attaches a single move as a new variation off the cursor.
func (g *Game) AddVariation(m Move, comment string, nags []int) (NodeID, *MutationResult) {
	before := g.snapshot()
	id := g.dbAddVariation([]Move{m}, comment, nags)
	if id == NoMove {
		return NoMove, nil
	}
	return id, &MutationResult{Prev: before, Label: "Add variation"}
}

// AddVariationSAN parses san and attaches it as a variation off the cursor.
func (g *Game) AddVariationSAN(san, comment string, nags []int) (NodeID, *MutationResult) {
	m, err := g.tree.board.ParseMove(san)
	if err != nil {
		return NoMove, nil
	}
	return g.AddVariation(m, comment, nags)
}

// AddVariationLine attaches a sequence of moves as a new variation off the
// cursor; the comment/NAGs attach to the last move.
func (g *Game) AddVariationLine(moves []Move, comment string, nags []int) (NodeID, *MutationResult) {
	before := g.snapshot()
	id := g.dbAddVariation(moves, comment, nags)
	if id == NoMove {
		return NoMove, nil
	}
	return id, &MutationResult{Prev: before, Label: "Add variation"}
}

// AddLine plays moves one after another like repeated AddMove, restores the
// cursor to its pre-call position, and attaches comment/NAGs to the last
// added node.
func (g *Game) AddLine(moves []Move, comment string, nags []int) (NodeID, *MutationResult) {
	before := g.snapshot()
	startCursor := g.tree.cursor
	lastID := NoMove
	for i, m := range moves {
		id := g.dbAddMove(m, "", nil)
		if id == NoMove {
			g.tree.MoveToId(startCursor)
			return NoMove, nil
		}
		lastID = id
		if i == len(moves)-1 {
			if comment != "" {
				g.ann.set(AfterMove, id, comment)
			}
			for _, n := range nags {
				g.addNagAt(id, n)
			}
		}
	}
	g.tree.MoveToId(startCursor)
	return lastID, &MutationResult{Prev: before, Label: "Add line"}
}

func (g *Game) addNagAt(id NodeID, nag int) {
	if nag <= 0 || nag > 255 {
		return
	}
	n, ok := g.tree.store.get(id)
	if !ok {
		return
	}
	n.addNag(nag)
}

// removeNodeSubtree tombstones id and everything reachable from it (its
// next-chain and every variation off any node in that chain).
func (g *Game) removeNodeSubtree(id NodeID) {
	if id == NoMove {
		return
	}
	n, ok := g.tree.store.get(id)
	if !ok {
		return
	}
	for _, v := range n.variations {
		g.removeNodeSubtree(v)
	}
	next := n.next
	n.removed = true
	g.removeNodeSubtree(next)
}

// compact drops tombstones from both the annotation tables and the node
// store, remapping every outstanding id, and repositions the cursor.
func (g *Game) compact() {
	g.ann.dropTombstoned(g.tree.store.isLive)
	remap, newCursor := g.tree.store.compact(g.tree.cursor)
	g.ann = g.ann.remap(remap)
	g.tree.cursor = newCursor
}

// --- Tags ---

// Tag returns a PGN tag value.
func (g *Game) Tag(key string) (string, bool) { return g.tags.Get(key) }

// SetTag writes a PGN tag.
func (g *Game) SetTag(key, value string) { g.tags.Set(key, value) }

// RemoveTag deletes a PGN tag if present.
func (g *Game) RemoveTag(key string) { g.tags.Remove(key) }

// TagKeys returns every set tag key in insertion order.
func (g *Game) TagKeys() []string { return g.tags.Keys() }

// IsChess960 reports the tracked Chess960 flag.
func (g *Game) IsChess960() bool { return g.tree.board.IsChess960() }

// SetChess960 flips the Chess960 flag and updates the Variant tag to
// match. Ported from gamex.cpp's dbSetChess960: toggling Chess960 only
// ever touches the Variant tag, never SetUp/FEN, even though those are the
// tags that normally accompany a non-standard starting position (see
// DESIGN.md).
func (g *Game) SetChess960(on bool) *MutationResult {
	if on == g.tree.board.IsChess960() {
		return nil
	}
	before := g.snapshot()
	g.tree.board.SetChess960(on)
	g.tree.startChess = on
	if on {
		g.tags.Set(TagVariant, "Chess960")
	} else {
		g.tags.Remove(TagVariant)
	}
	return &MutationResult{Prev: before, Label: "Set Chess960"}
}

// HasCustomStartingPosition reports whether the game began from a FEN other
// than the standard starting position.
func (g *Game) HasCustomStartingPosition() bool {
	return NormalizeFEN(g.tree.startFEN) != NormalizeFEN(StandardStartFEN)
}

// StartFEN returns the FEN the game started from.
func (g *Game) StartFEN() string { return g.tree.startFEN }
