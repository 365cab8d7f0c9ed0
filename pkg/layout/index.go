package layout

import "github.com/mhofer/treelay/pkg/tree"

// record is the working state for one tree node while an embedding is being
// computed. It mirrors [Placement] plus the intermediate child-extent sum and
// the originating node's identity.
type record struct {
	ord               int
	yOrder            int
	xCenter           int
	xExtent           int
	xExtentOfChildren int
	xExtentChildren   int
	text              string
	emphasized        bool
	parent            int // ord of the parent record, NoParent for the root
	node              tree.NodeID
}

// index owns the working records of one embedding run and maps node identity
// to traversal order. Records live in a dense arena indexed by ord; the side
// map resolves a node's record while the tree is being walked in an order
// where a parent's record must be found from a child (or vice versa).
type index struct {
	recs []record
	ords map[tree.NodeID]int
}

// newIndex returns an empty index sized for n records.
func newIndex(n int) *index {
	return &index{
		recs: make([]record, 0, n),
		ords: make(map[tree.NodeID]int, n),
	}
}

func (ix *index) len() int { return len(ix.recs) }

// insert stores r at position ord and records the node→ord mapping.
// Each ord is written exactly once, in increasing order.
func (ix *index) insert(ord int, r record) {
	ix.ords[r.node] = ord
	ix.recs = append(ix.recs, r)
}

// byOrd returns the record at ord, or false when ord is out of range.
// The pointer stays valid until the next insert.
func (ix *index) byOrd(ord int) (*record, bool) {
	if ord < 0 || ord >= len(ix.recs) {
		return nil, false
	}
	return &ix.recs[ord], true
}

// byNode returns the record created for the given tree node, or false when
// the node has no record yet.
func (ix *index) byNode(id tree.NodeID) (*record, bool) {
	ord, ok := ix.ords[id]
	if !ok {
		return nil, false
	}
	return &ix.recs[ord], true
}
