package chessgame

// NodeID identifies a move node inside a NodeStore. It is a dense,
// compaction-stable index while no compaction has run; compact() remaps
// every outstanding id.
type NodeID int32

const (
	// NoMove is returned whenever a lookup or navigation target fails to
	// resolve: out of range, tombstoned, or structurally forbidden.
	NoMove NodeID = -1
	// CurrentMove is a sentinel meaning "the cursor's own node", resolved
	// by NodeStore.resolve at the entry of each operation.
	CurrentMove NodeID = -2
	// RootNode is the sentinel node at id 0: undefined move, ply 0.
	RootNode NodeID = 0
)

// IsReal reports whether id names a node in the store rather than NoMove or
// CurrentMove. RootNode is a real node.
func (id NodeID) IsReal() bool {
	return id != NoMove && id != CurrentMove
}
