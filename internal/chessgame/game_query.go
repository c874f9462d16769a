package chessgame

import "strings"

// Result values as stored in the PGN Result tag.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultUnknown   = "*"
)

// Result returns the game's recorded result tag, defaulting to "*".
func (g *Game) Result() string {
	if v, ok := g.tags.Get(TagResult); ok && v != "" {
		return v
	}
	return ResultUnknown
}

// ResultAsInt encodes Result() as +1/0/-1/nil the way a rating computation
// would consume it: 1 for a white win, -1 for a black win, 0 for a draw,
// and ok=false when the result is still unknown.
func (g *Game) ResultAsInt() (score int, ok bool) {
	switch g.Result() {
	case ResultWhiteWins:
		return 1, true
	case ResultBlackWins:
		return -1, true
	case ResultDraw:
		return 0, true
	default:
		return 0, false
	}
}

// SetResult writes the Result tag, validating it against the four legal
// PGN result strings.
func (g *Game) SetResult(result string) bool {
	switch result {
	case ResultWhiteWins, ResultBlackWins, ResultDraw, ResultUnknown:
		g.tags.Set(TagResult, result)
		return true
	}
	return false
}

// MoveCount is a supplemented diagnostic: the total number of live nodes in
// the tree, mainline and every variation combined, as distinct from
// PlyCount (mainline length only). Useful for reporting tree size without
// walking the whole structure at the call site.
func (g *Game) MoveCount() int {
	count := 0
	for id := 1; id < g.tree.store.size(); id++ {
		if g.tree.store.isLive(NodeID(id)) {
			count++
		}
	}
	return count
}

// PositionRepetition3 reports whether the live position (piece placement,
// side to move, and castling rights) has occurred at least three times
// along the path from the game start to the cursor, the threefold
// repetition rule's counting condition.
func (g *Game) PositionRepetition3() bool {
	target := repetitionKey(g.tree.board.ToFen())
	count := 0
	id := g.tree.cursor
	savedCursor := g.tree.cursor
	savedBoard := g.tree.board
	defer func() {
		g.tree.cursor = savedCursor
		g.tree.board = savedBoard
	}()

	for {
		g.tree.replayTo(id, nil)
		if repetitionKey(g.tree.board.ToFen()) == target {
			count++
			if count >= 3 {
				return true
			}
		}
		if id == RootNode {
			return false
		}
		n, ok := g.tree.store.get(id)
		if !ok {
			return false
		}
		id = n.prev
	}
}

// repetitionKey reduces a FEN to the fields that matter for threefold
// repetition: placement, side to move, and castling rights (not the
// en-passant target, which FIDE rules exclude unless actually capturable).
func repetitionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) < 3 {
		return fen
	}
	return strings.Join(fields[:3], " ")
}

// InsufficientMaterial reports whether the live position is drawn by
// insufficient material.
func (g *Game) InsufficientMaterial() bool {
	return g.tree.board.InsufficientMaterial()
}

// ScoreMaterial returns the live position's material balance.
func (g *Game) ScoreMaterial() int {
	return g.tree.board.ScoreMaterial()
}

// MaterialCurve walks the mainline from the start and appends
// Board.ScoreMaterial() at every ply, including the starting position,
// mirroring gamex.cpp's scoreMaterial(QList<double>&).
func (g *Game) MaterialCurve() []int {
	savedCursor := g.tree.cursor
	savedBoard := g.tree.board
	defer func() {
		g.tree.cursor = savedCursor
		g.tree.board = savedBoard
	}()

	g.tree.MoveToStart()
	scores := []int{g.tree.board.ScoreMaterial()}
	for g.tree.Forward(1) == 1 {
		scores = append(scores, g.tree.board.ScoreMaterial())
	}
	return scores
}
