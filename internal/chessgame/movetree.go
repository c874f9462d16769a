package chessgame

import "strings"

// MoveTree owns the NodeStore and the single mounted Board, and keeps the
// cursor and board in lockstep (spec.md §4.C, §5).
type MoveTree struct {
	store      *NodeStore
	board      *Board
	startFEN   string
	startPly   int
	startChess bool
	cursor     NodeID
}

func newMoveTree() *MoveTree {
	return &MoveTree{
		store:    newNodeStore(),
		board:    NewStandardBoard(),
		startFEN: StandardStartFEN,
		startPly: 0,
		cursor:   RootNode,
	}
}

func newMoveTreeFromFEN(fen string) (*MoveTree, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &MoveTree{
		store:    newNodeStore(),
		board:    board,
		startFEN: board.startFEN,
		startPly: startPlyFromFEN(board.startFEN),
		cursor:   RootNode,
	}, nil
}

func startPlyFromFEN(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 0
	}
	fullMove := atoiSafe(fields[5])
	turnIsBlack := fields[1] == "b"
	ply := (fullMove - 1) * 2
	if turnIsBlack {
		ply++
	}
	if ply < 0 {
		ply = 0
	}
	return ply
}

func atoiSafe(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 1
		}
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return 1
	}
	return n
}

func (t *MoveTree) clone() *MoveTree {
	return &MoveTree{
		store:      t.store.cloneStore(),
		board:      t.board.Clone(),
		startFEN:   t.startFEN,
		startPly:   t.startPly,
		startChess: t.startChess,
		cursor:     t.cursor,
	}
}

// cloneStore deep-copies the node slice.
func (s *NodeStore) cloneStore() *NodeStore {
	out := &NodeStore{nodes: make([]moveNode, len(s.nodes))}
	for i, n := range s.nodes {
		nc := n
		nc.nags = append([]int(nil), n.nags...)
		nc.variations = append([]NodeID(nil), n.variations...)
		out.nodes[i] = nc
	}
	return out
}

func (t *MoveTree) node(id NodeID) (*moveNode, bool) {
	return t.store.get(t.store.resolve(id, t.cursor))
}

// MoveToStart resets the cursor and live board to the start of the game.
func (t *MoveTree) MoveToStart() {
	t.cursor = RootNode
	board, _ := NewBoardFromFEN(t.startFEN)
	board.SetChess960(t.startChess)
	t.board = board
}

// pathFromRoot returns the node ids from RootNode down to id, inclusive.
func (t *MoveTree) pathFromRoot(id NodeID) []NodeID {
	var path []NodeID
	cur := id
	for cur != NoMove {
		path = append(path, cur)
		n, ok := t.store.get(cur)
		if !ok {
			break
		}
		cur = n.prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// replayTo rebuilds the live board from the starting position by replaying
// the path from node 0 to id. If out is non-nil, it accumulates SAN moves
// for external engine feeding; a null move anywhere on the path clears and
// disables the accumulator, since UCI cannot express null moves.
func (t *MoveTree) replayTo(id NodeID, out *strings.Builder) {
	path := t.pathFromRoot(id)
	board, _ := NewBoardFromFEN(t.startFEN)
	board.SetChess960(t.startChess)

	accumulating := out != nil
	for _, nid := range path {
		if nid == RootNode {
			continue
		}
		n, ok := t.store.get(nid)
		if !ok {
			continue
		}
		_ = board.DoMove(n.move)
		if accumulating {
			if n.move.IsNull() {
				out.Reset()
				accumulating = false
			} else {
				out.WriteString(n.move.SAN())
				out.WriteString(" ")
			}
		}
	}
	t.board = board
	t.cursor = id
}

// stepsForward returns the number of next-hops from `from` to `to`, or false
// if `to` is not reachable from `from` by following only next links.
func (t *MoveTree) stepsForward(from, to NodeID) (int, bool) {
	cur := from
	steps := 0
	for {
		if cur == to {
			return steps, true
		}
		n, ok := t.store.get(cur)
		if !ok || n.next == NoMove {
			return 0, false
		}
		cur = n.next
		steps++
		if steps > t.store.size() {
			return 0, false
		}
	}
}

// MoveToId teleports the cursor to id. If id is on the current line ahead of
// the cursor it advances incrementally; otherwise it resets the board and
// replays from node 0 (spec.md §4.C).
func (t *MoveTree) MoveToId(id NodeID) bool {
	id = t.store.resolve(id, t.cursor)
	if id == NoMove {
		return false
	}
	if id == t.cursor {
		return true
	}
	if steps, ok := t.stepsForward(t.cursor, id); ok {
		t.forwardNoReport(steps)
		return true
	}
	t.replayTo(id, nil)
	return true
}

// MoveToIdWithUCI is MoveToId but also returns accumulated UCI-ish SAN
// moves from node 0 to id, per the optional output string in spec.md §4.C.
func (t *MoveTree) MoveToIdWithUCI(id NodeID) (bool, string) {
	id = t.store.resolve(id, t.cursor)
	if id == NoMove {
		return false, ""
	}
	var b strings.Builder
	t.replayTo(id, &b)
	return true, strings.TrimSpace(b.String())
}

func (t *MoveTree) forwardNoReport(count int) int {
	moved := 0
	for moved < count {
		n, ok := t.store.get(t.cursor)
		if !ok || n.next == NoMove {
			break
		}
		next, ok := t.store.get(n.next)
		if !ok {
			break
		}
		if err := t.board.DoMove(next.move); err != nil {
			break
		}
		t.cursor = n.next
		moved++
	}
	return moved
}

// Forward advances the cursor up to count plies along the current line.
func (t *MoveTree) Forward(count int) int {
	return t.forwardNoReport(count)
}

// Backward retreats the cursor up to count plies. Since the Board
// collaborator here has no incremental undo, this resolves the target node
// first and then replays from the start.
func (t *MoveTree) Backward(count int) int {
	cur := t.cursor
	moved := 0
	for moved < count {
		n, ok := t.store.get(cur)
		if !ok || n.prev == NoMove {
			break
		}
		cur = n.prev
		moved++
	}
	if moved > 0 {
		t.replayTo(cur, nil)
	}
	return moved
}

// MoveToLineEnd walks next links without leaving the current line.
func (t *MoveTree) MoveToLineEnd() int {
	return t.forwardNoReport(t.store.size())
}

// MoveToEnd climbs to the mainline, then walks to the line's end.
func (t *MoveTree) MoveToEnd() {
	for {
		n, ok := t.store.get(t.cursor)
		if !ok || n.parent == NoMove {
			break
		}
		t.MoveToId(n.parent)
	}
	t.MoveToLineEnd()
}

// EnterVariation moves the cursor to firstId, which must be one of the
// current node's variations.
func (t *MoveTree) EnterVariation(firstID NodeID) bool {
	n, ok := t.node(t.cursor)
	if !ok {
		return false
	}
	for _, v := range n.variations {
		if v == firstID {
			return t.MoveToId(firstID)
		}
	}
	return false
}

// Reparent walks the next-chain starting at firstOfVariation, rewriting
// parent on every node in that line.
func (t *MoveTree) Reparent(firstOfVariation, newParent NodeID) {
	id := firstOfVariation
	for id != NoMove {
		n, ok := t.store.get(id)
		if !ok {
			break
		}
		n.parent = newParent
		id = n.next
	}
}
