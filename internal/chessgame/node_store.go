package chessgame

// moveNode is one node of the move tree. See spec.md §3 for the invariants
// this type and NodeStore are required to uphold.
type moveNode struct {
	move       Move
	ply        int
	nags       []int
	prev       NodeID
	next       NodeID
	parent     NodeID
	variations []NodeID
	removed    bool
}

func (n *moveNode) hasNag(nag int) bool {
	for _, existing := range n.nags {
		if existing == nag {
			return true
		}
	}
	return false
}

func (n *moveNode) addNag(nag int) {
	if !n.hasNag(nag) {
		n.nags = append(n.nags, nag)
	}
}

func (n *moveNode) removeVariation(id NodeID) {
	for i, v := range n.variations {
		if v == id {
			n.variations = append(n.variations[:i], n.variations[i+1:]...)
			return
		}
	}
}

// NodeStore is an append-only vector of move nodes with tombstones and
// stable integer ids, per spec.md §4.A.
type NodeStore struct {
	nodes []moveNode
}

func newNodeStore() *NodeStore {
	return &NodeStore{nodes: []moveNode{{prev: NoMove, parent: NoMove, next: NoMove}}}
}

// append adds a fresh node and returns its id.
func (s *NodeStore) append(n moveNode) NodeID {
	id := NodeID(len(s.nodes))
	s.nodes = append(s.nodes, n)
	return id
}

// get returns the node at id, bounds-checked and rejecting tombstones.
func (s *NodeStore) get(id NodeID) (*moveNode, bool) {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil, false
	}
	n := &s.nodes[id]
	if n.removed {
		return nil, false
	}
	return n, true
}

// resolve maps CurrentMove to cursor and validates the result against the
// store, returning NoMove for anything out of range or tombstoned.
func (s *NodeStore) resolve(id, cursor NodeID) NodeID {
	if id == CurrentMove {
		id = cursor
	}
	if _, ok := s.get(id); !ok {
		return NoMove
	}
	return id
}

func (s *NodeStore) isLive(id NodeID) bool {
	_, ok := s.get(id)
	return ok
}

// size returns the number of slots, live or tombstoned.
func (s *NodeStore) size() int {
	return len(s.nodes)
}

// compact physically drops tombstoned nodes and remaps every remaining
// reference (next/prev/parent/variations). It returns the old->new id map
// (NoMove for dropped ids) so callers — Game, mainly, for its annotation
// side-tables — can remap ids that live outside the store, and the cursor's
// new id.
func (s *NodeStore) compact(cursor NodeID) (remap []NodeID, newCursor NodeID) {
	remap = make([]NodeID, len(s.nodes))
	for i := range remap {
		remap[i] = NoMove
	}

	newNodes := make([]moveNode, 0, len(s.nodes))
	for oldID, n := range s.nodes {
		if n.removed {
			continue
		}
		remap[oldID] = NodeID(len(newNodes))
		newNodes = append(newNodes, n)
	}

	remapID := func(id NodeID) NodeID {
		if id < 0 || int(id) >= len(remap) {
			return NoMove
		}
		return remap[id]
	}

	for i := range newNodes {
		n := &newNodes[i]
		n.prev = remapID(n.prev)
		n.next = remapID(n.next)
		n.parent = remapID(n.parent)
		if len(n.variations) > 0 {
			kept := n.variations[:0]
			for _, v := range n.variations {
				if nv := remapID(v); nv != NoMove {
					kept = append(kept, nv)
				}
			}
			n.variations = kept
		}
	}

	s.nodes = newNodes
	return remap, remapID(cursor)
}
