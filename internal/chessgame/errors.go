package chessgame

import "fmt"

// Error kinds per spec: NoMove/IllegalSan/IllegalMove are never panics, they
// are reported through return values (sentinel ids, false, "") and through
// these sentinel errors where a Go error return is more idiomatic than a
// bare bool.
var (
	// ErrIllegalMove is returned when a Move is rejected by the Board.
	ErrIllegalMove = fmt.Errorf("illegal move")
	// ErrIllegalSan is returned when a SAN string fails to parse against
	// the current position.
	ErrIllegalSan = fmt.Errorf("illegal or unparseable SAN move")
	// ErrNoSuchNode is returned when an id does not resolve to a live node.
	ErrNoSuchNode = fmt.Errorf("no such move")
	// ErrCustomStartingPosition mirrors the teacher's ErrCustomStartingPosition:
	// importing from a non-standard FEN is rejected by collaborators that
	// only support standard starting positions.
	ErrCustomStartingPosition = fmt.Errorf("game uses a custom starting position")
)
