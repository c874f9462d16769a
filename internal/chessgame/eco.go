package chessgame

// ecoEntry is a single row of the minimal in-memory opening classification
// table: an ECO code, its human name, and the placement-field FEN that
// identifies it. A handful of well-known openings stand in for the
// database's full ECO table (supplemented collaborator, spec.md §6).
type ecoEntry struct {
	code, name, placement string
}

var ecoTable = []ecoEntry{
	{"B00", "King's Pawn", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR"},
	{"C20", "King's Pawn Game", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR"},
	{"C50", "Italian Game", "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R"},
	{"C60", "Ruy Lopez", "r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R"},
	{"B20", "Sicilian Defence", "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR"},
	{"C00", "French Defence", "rnbqkbnr/pppp1ppp/4p3/8/3PP3/8/PPP2PPP/RNBQKBNR"},
	{"B10", "Caro-Kann Defence", "rnbqkbnr/pp1ppppp/2p5/8/3PP3/8/PPP2PPP/RNBQKBNR"},
	{"A00", "Uncommon Opening", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
	{"D00", "Queen's Pawn Game", "rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR"},
	{"E00", "Queen's Indian / Catalan complex", "rnbqkb1r/pppp1ppp/4pn2/8/2PP4/8/PP2PPPP/RNBQKBNR"},
}

// EcoClassify returns the ECO code and name of the table entry whose
// placement field equals placement, or ("", "", false) if the position
// isn't one of the known entries.
func EcoClassify(placement string) (code, name string, ok bool) {
	for _, e := range ecoTable {
		if e.placement == placement {
			return e.code, e.name, true
		}
	}
	return "", "", false
}

// IsEcoPosition reports whether the board's current piece placement matches
// a catalogued opening.
func (g *Game) IsEcoPosition() bool {
	_, _, ok := EcoClassify(placementField(g.tree.board.ToFen()))
	return ok
}

// EcoClassify classifies the game's mainline end position, walking back
// through the mainline to the latest matching ancestor the way gamex.cpp's
// ecoClassify() does (so a transposition several moves deep is still
// recognized). Chess960 games never classify, matching the original's
// Chess960 guard.
func (g *Game) EcoClassify() (code, name string, matchedPly int, ok bool) {
	if g.IsChess960() {
		return "", "", 0, false
	}

	savedCursor := g.tree.cursor
	savedBoard := g.tree.board.Clone()
	defer func() {
		g.tree.cursor = savedCursor
		g.tree.board = savedBoard
	}()

	g.tree.MoveToEnd()
	id := g.tree.cursor

	for {
		n, found := g.tree.store.get(id)
		if !found {
			return "", "", 0, false
		}
		g.tree.replayTo(id, nil)
		if c, nm, match := EcoClassify(placementField(g.tree.board.ToFen())); match {
			return c, nm, n.ply, true
		}
		if id == RootNode {
			return "", "", 0, false
		}
		id = n.prev
	}
}
