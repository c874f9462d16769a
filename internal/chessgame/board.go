package chessgame

import (
	"strings"

	"github.com/notnil/chess"
)

// StandardStartFEN is the FEN of the standard chess starting position.
const StandardStartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// nullSANTokens are the conventional ways a null move is spelled in PGN
// movetext and UCI ("0000"); notnil/chess has no native null-move concept,
// so the core recognizes these tokens itself.
var nullSANTokens = map[string]bool{"--": true, "Z0": true, "0000": true}

// Move is the opaque move value the core stores per node. It wraps
// notnil/chess's *chess.Move (the Board collaborator's native move type)
// together with a cached SAN rendering and a null-move flag, since
// notnil/chess itself has no null-move representation.
type Move struct {
	engine *chess.Move
	san    string
	null   bool
}

// NullMove is the null move: legal everywhere, advances the ply without
// changing the board's piece placement.
var NullMove = Move{null: true, san: "--"}

// IsNull reports whether m is a null move.
func (m Move) IsNull() bool { return m.null }

// SAN returns the cached algebraic rendering of m.
func (m Move) SAN() string {
	if m.null {
		return "--"
	}
	return m.san
}

// Board is the Board collaborator required by spec.md §6, implemented atop
// github.com/notnil/chess. MoveTree is its sole owner and funnels all reads
// and writes through it (spec.md §5).
type Board struct {
	startFEN string
	chess960 bool
	game     *chess.Game
}

// NewStandardBoard returns a Board mounted at the standard starting position.
func NewStandardBoard() *Board {
	return &Board{startFEN: StandardStartFEN, game: chess.NewGame()}
}

// NewBoardFromFEN mounts a Board at an arbitrary FEN starting position.
func NewBoardFromFEN(fen string) (*Board, error) {
	full := ensureFullFEN(fen)
	g, err := gameFromFEN(full)
	if err != nil {
		return nil, err
	}
	return &Board{startFEN: full, game: g}, nil
}

func gameFromFEN(fen string) (*chess.Game, error) {
	if fen == "" || NormalizeFEN(fen) == NormalizeFEN(StandardStartFEN) {
		return chess.NewGame(), nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	return chess.NewGame(opt), nil
}

// Clone returns an independent copy of b: a fresh engine game replayed from
// the same starting position through the same move history. notnil/chess
// has no public deep-copy, so replay-from-start is the idiom the teacher
// itself uses (internal/services/pgn_tree_parser.go's cloneGame).
func (b *Board) Clone() *Board {
	g, _ := gameFromFEN(b.startFEN)
	for _, m := range b.game.Moves() {
		_ = g.Move(m)
	}
	return &Board{startFEN: b.startFEN, chess960: b.chess960, game: g}
}

// SetStandardPosition resets b to the standard starting position.
func (b *Board) SetStandardPosition() {
	b.startFEN = StandardStartFEN
	b.game = chess.NewGame()
}

// SetChess960 flips the Chess960 flag. notnil/chess has no Chess960 move
// generation of its own; the flag is tracked as metadata for the Variant
// tag and Game.IsChess960 only.
func (b *Board) SetChess960(on bool) { b.chess960 = on }

// IsChess960 reports the tracked Chess960 flag.
func (b *Board) IsChess960() bool { return b.chess960 }

// ParseMove parses a SAN string against the live position. Illegal or
// unparseable input is reported via ErrIllegalSan and never mutates b.
func (b *Board) ParseMove(san string) (Move, error) {
	if nullSANTokens[san] {
		return NullMove, nil
	}
	mv, err := chess.AlgebraicNotation{}.Decode(b.game.Position(), san)
	if err != nil {
		return Move{}, ErrIllegalSan
	}
	return Move{engine: mv, san: chess.AlgebraicNotation{}.Encode(b.game.Position(), mv)}, nil
}

// IsLegal reports whether m can be played from the live position. Null
// moves are always legal, matching spec.md's "is legal, or is a null move"
// precondition on addMove.
func (b *Board) IsLegal(m Move) bool {
	if m.null {
		return true
	}
	for _, v := range b.game.ValidMoves() {
		if v.String() == m.engine.String() {
			return true
		}
	}
	return false
}

// DoMove applies m to the live position. Null moves are a no-op on the
// underlying engine position; the tree layer still advances
// ply and cursor around them.
func (b *Board) DoMove(m Move) error {
	if m.null {
		return nil
	}
	return b.game.Move(m.engine)
}

// SANFor renders m as algebraic notation against the live position. Used by
// MoveTree after it has teleported the live board to the move's
// pre-image position.
func (b *Board) SANFor(m Move) string {
	if m.null {
		return "--"
	}
	return chess.AlgebraicNotation{}.Encode(b.game.Position(), m.engine)
}

// ToFen returns the live position's FEN.
func (b *Board) ToFen() string {
	return b.game.Position().String()
}

// ToHumanFen returns a display FEN. notnil/chess has a single FEN
// representation, so this is a thin pass-through kept only to mirror the
// Board collaborator's required surface (spec.md §6).
func (b *Board) ToHumanFen() string {
	return b.ToFen()
}

// ToMove returns the side to move.
func (b *Board) ToMove() chess.Color {
	return b.game.Position().Turn()
}

// PositionIsSame is the exact equality required by invariant I3: piece
// placement, side to move, castling rights and en-passant target must all
// match; the halfmove and fullmove counters are ignored.
func (b *Board) PositionIsSame(otherFEN string) bool {
	return NormalizeFEN(b.ToFen()) == NormalizeFEN(otherFEN)
}

// PositionEqual is the cheaper comparison: piece placement only.
func (b *Board) PositionEqual(otherFEN string) bool {
	return placementField(b.ToFen()) == placementField(otherFEN)
}

// CanBeReachedFrom is the monotone pruning predicate from spec.md §6: a
// position can only be reached by forward play if it has no more material
// than the current position (captures only remove pieces; promotions
// change type, not count).
func (b *Board) CanBeReachedFrom(targetFEN string) bool {
	return totalPieceCount(targetFEN) <= totalPieceCount(b.ToFen())
}

// ScoreMaterial sums standard point values (P=1,N=3,B=3,R=5,Q=9), positive
// for white, negative for black.
func (b *Board) ScoreMaterial() int {
	return scoreMaterialFEN(b.ToFen())
}

// InsufficientMaterial reports the standard draw-by-insufficient-material
// positions: K v K, K+minor v K, K+B v K+B with same-colored bishops.
func (b *Board) InsufficientMaterial() bool {
	return insufficientMaterialFEN(b.ToFen())
}

func placementField(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return fen
	}
	return fields[0]
}

// NormalizeFEN keeps only the first four fields (placement, turn, castling,
// en-passant) so that games started with or without halfmove/fullmove
// counters compare equal, mirroring the teacher's NormalizeFEN.
func NormalizeFEN(fen string) string {
	parts := strings.Fields(fen)
	if len(parts) >= 4 {
		return strings.Join(parts[:4], " ")
	}
	return fen
}

// ensureFullFEN pads a partial FEN with default halfmove/fullmove counters,
// mirroring the teacher's ensureFullFEN.
func ensureFullFEN(fen string) string {
	parts := strings.Fields(fen)
	if len(parts) >= 6 {
		return fen
	}
	return fen + " 0 1"
}

var pieceValues = map[byte]int{'p': 1, 'n': 3, 'b': 3, 'r': 5, 'q': 9}

func scoreMaterialFEN(fen string) int {
	score := 0
	for _, c := range placementField(fen) {
		lower := byte(c)
		if lower >= 'A' && lower <= 'Z' {
			lower = lower - 'A' + 'a'
		}
		v, ok := pieceValues[lower]
		if !ok {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

func totalPieceCount(fen string) int {
	n := 0
	for _, c := range placementField(fen) {
		if strings.ContainsRune("pnbrqkPNBRQK", c) {
			n++
		}
	}
	return n
}

func insufficientMaterialFEN(fen string) bool {
	placement := placementField(fen)
	var whiteMinor, blackMinor int
	var whiteBishopSq, blackBishopSq []int
	file, rank := 0, 7
	for _, c := range placement {
		switch {
		case c == '/':
			file = 0
			rank--
			continue
		case c >= '1' && c <= '8':
			file += int(c - '0')
			continue
		}
		switch c {
		case 'P', 'N', 'B', 'R', 'Q', 'p', 'n', 'b', 'r', 'q':
			switch c {
			case 'R', 'Q', 'r', 'q', 'P', 'p':
				return false
			case 'N':
				whiteMinor++
			case 'n':
				blackMinor++
			case 'B':
				whiteMinor++
				whiteBishopSq = append(whiteBishopSq, (file+rank)%2)
			case 'b':
				blackMinor++
				blackBishopSq = append(blackBishopSq, (file+rank)%2)
			}
		}
		file++
	}

	if whiteMinor == 0 && blackMinor == 0 {
		return true
	}
	if whiteMinor+blackMinor == 1 {
		return true
	}
	if whiteMinor == len(whiteBishopSq) && blackMinor == len(blackBishopSq) &&
		whiteMinor == 1 && blackMinor == 1 &&
		whiteBishopSq[0] == blackBishopSq[0] {
		return true
	}
	return false
}
