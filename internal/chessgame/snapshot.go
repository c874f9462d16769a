package chessgame

import "fmt"

// MoveNodeSnapshot is the JSON-serializable form of one tree node, used by
// Export/Import to move a Game across a storage boundary (§1 treats
// persistence as an external collaborator; this is the encoding contract
// that collaborator needs). It mirrors moveNode's shape: Next is the
// mainline continuation, Variations are alternatives to it.
type MoveNodeSnapshot struct {
	SAN        string              `json:"san,omitempty"`
	Null       bool                `json:"null,omitempty"`
	Nags       []int               `json:"nags,omitempty"`
	Comment    string              `json:"comment,omitempty"`
	PreComment string              `json:"preComment,omitempty"`
	Next       *MoveNodeSnapshot   `json:"next,omitempty"`
	Variations []*MoveNodeSnapshot `json:"variations,omitempty"`
}

// TagSnapshot is one ordered tag entry.
type TagSnapshot struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GameSnapshot is the JSON-serializable form of an entire Game.
type GameSnapshot struct {
	ID          string         `json:"id"`
	StartFEN    string         `json:"startFen,omitempty"`
	Chess960    bool           `json:"chess960,omitempty"`
	GameComment string         `json:"gameComment,omitempty"`
	Root        *MoveNodeSnapshot `json:"root,omitempty"`
	Tags        []TagSnapshot  `json:"tags,omitempty"`
}

// Export walks the mainline and every variation, producing a snapshot that
// Import can reconstruct byte-for-byte into an equivalent tree. Node ids are
// deliberately not part of the encoding: spec.md §9 requires callers never
// cache ids across a compaction, so a reload is free to assign fresh ones.
func (g *Game) Export() GameSnapshot {
	snap := GameSnapshot{
		ID:          g.ID,
		StartFEN:    g.tree.startFEN,
		Chess960:    g.IsChess960(),
		GameComment: g.Annotation(AfterMove, RootNode),
	}
	for _, k := range g.TagKeys() {
		v, _ := g.Tag(k)
		snap.Tags = append(snap.Tags, TagSnapshot{Key: k, Value: v})
	}
	root, ok := g.tree.store.get(RootNode)
	if ok && root.next != NoMove {
		snap.Root = g.exportNode(root.next)
	}
	return snap
}

func (g *Game) exportNode(id NodeID) *MoveNodeSnapshot {
	n, ok := g.tree.node(id)
	if !ok {
		return nil
	}
	s := &MoveNodeSnapshot{
		SAN:        n.move.SAN(),
		Null:       n.move.IsNull(),
		Nags:       append([]int(nil), n.nags...),
		Comment:    g.Annotation(AfterMove, id),
		PreComment: g.Annotation(BeforeMove, id),
	}
	if n.next != NoMove {
		s.Next = g.exportNode(n.next)
	}
	for _, v := range n.variations {
		if vs := g.exportNode(v); vs != nil {
			s.Variations = append(s.Variations, vs)
		}
	}
	return s
}

// Import reconstructs a Game from a snapshot by replaying each move through
// the ordinary validated mutation API (AddMoveSAN/AddVariationSAN), so an
// imported tree can never violate board legality even if the stored JSON
// was hand-edited.
func Import(snap GameSnapshot) (*Game, error) {
	var g *Game
	var err error
	if snap.StartFEN != "" && NormalizeFEN(snap.StartFEN) != NormalizeFEN(StandardStartFEN) {
		g, err = NewGameFromFEN(snap.StartFEN)
		if err != nil {
			return nil, fmt.Errorf("chessgame: invalid starting FEN %q: %w", snap.StartFEN, err)
		}
	} else {
		g = NewGame()
	}
	if snap.ID != "" {
		g.ID = snap.ID
	}
	if snap.Chess960 {
		g.SetChess960(true)
	}
	if snap.GameComment != "" {
		g.SetAnnotation(AfterMove, RootNode, snap.GameComment)
	}
	for _, t := range snap.Tags {
		g.SetTag(t.Key, t.Value)
	}
	if snap.Root != nil {
		id, err := addSnapshotNode(g, snap.Root, false)
		if err != nil {
			return nil, err
		}
		if err := importSubtree(g, id, snap.Root); err != nil {
			return nil, err
		}
	}
	g.MoveToStart()
	return g, nil
}

func importSubtree(g *Game, id NodeID, snap *MoveNodeSnapshot) error {
	applySnapshotAnnotations(g, id, snap)
	for _, v := range snap.Variations {
		g.MoveToId(id)
		vid, err := addSnapshotNode(g, v, true)
		if err != nil {
			return err
		}
		if err := importSubtree(g, vid, v); err != nil {
			return err
		}
	}
	if snap.Next != nil {
		g.MoveToId(id)
		nid, err := addSnapshotNode(g, snap.Next, false)
		if err != nil {
			return err
		}
		if err := importSubtree(g, nid, snap.Next); err != nil {
			return err
		}
	}
	return nil
}

func addSnapshotNode(g *Game, snap *MoveNodeSnapshot, variation bool) (NodeID, error) {
	var id NodeID
	var mr *MutationResult
	switch {
	case snap.Null && variation:
		id, mr = g.AddVariation(NullMove, "", nil)
	case snap.Null:
		id, mr = g.AddMove(NullMove, "", nil)
	case variation:
		id, mr = g.AddVariationSAN(snap.SAN, "", nil)
	default:
		id, mr = g.AddMoveSAN(snap.SAN, "", nil)
	}
	if mr == nil {
		return NoMove, fmt.Errorf("chessgame: invalid move %q while importing saved game", snap.SAN)
	}
	return id, nil
}

func applySnapshotAnnotations(g *Game, id NodeID, snap *MoveNodeSnapshot) {
	if snap.Comment != "" {
		g.SetAnnotation(AfterMove, id, snap.Comment)
	}
	if snap.PreComment != "" {
		g.SetAnnotation(BeforeMove, id, snap.PreComment)
	}
	if len(snap.Nags) > 0 {
		g.SetNags(id, snap.Nags)
	}
}
