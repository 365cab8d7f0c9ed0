package tree

import "errors"

var (
	// ErrCloseWithoutOpen is returned by [Builder.Close] when there is no
	// open node left to close.
	ErrCloseWithoutOpen = errors.New("close without matching open")

	// ErrUnclosedNode is returned by [Builder.Build] when one or more nodes
	// opened with [Builder.Open] were never closed.
	ErrUnclosedNode = errors.New("unclosed node at build")
)

// NodeID identifies a node within a single tree. IDs are dense, zero-based,
// and assigned in depth-first order, so a parent's ID is always smaller than
// the IDs of its descendants. IDs are only meaningful for the tree that
// produced them.
type NodeID int

// NoNode is the NodeID returned for absent relationships, e.g. the parent
// of a top-level node.
const NoNode NodeID = -1

// Span is a byte range into the source string a tree was parsed from.
// End is exclusive.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

type node[V any] struct {
	value    V
	parent   NodeID
	children []NodeID
	depth    int
	span     Span
	hasSpan  bool
}

// Tree is an ordered rooted tree. Nodes hold opaque values of type V and keep
// their insertion order among siblings. Trees are immutable once built and
// safe for concurrent reads.
//
// Use [NewBuilder] to construct a tree.
type Tree[V any] struct {
	nodes []node[V]
	roots []NodeID
}

// Len returns the total number of nodes in the tree.
func (t *Tree[V]) Len() int { return len(t.nodes) }

// Roots returns the IDs of the top-level nodes in insertion order.
func (t *Tree[V]) Roots() []NodeID {
	out := make([]NodeID, len(t.roots))
	copy(out, t.roots)
	return out
}

// Value returns the value stored at id. It panics if id is out of range.
func (t *Tree[V]) Value(id NodeID) V { return t.nodes[id].value }

// Depth returns the node's distance from its root. Top-level nodes have
// depth 0.
func (t *Tree[V]) Depth(id NodeID) int { return t.nodes[id].depth }

// Parent returns the parent of id. The second result is false for top-level
// nodes.
func (t *Tree[V]) Parent(id NodeID) (NodeID, bool) {
	p := t.nodes[id].parent
	return p, p != NoNode
}

// Children returns the direct children of id in sibling order.
func (t *Tree[V]) Children(id NodeID) []NodeID {
	kids := t.nodes[id].children
	out := make([]NodeID, len(kids))
	copy(out, kids)
	return out
}

// HasChildren reports whether id has at least one child.
func (t *Tree[V]) HasChildren(id NodeID) bool { return len(t.nodes[id].children) > 0 }

// Span returns the source byte range recorded for id via [Builder.Token].
// The second result is false when no span was recorded.
func (t *Tree[V]) Span(id NodeID) (Span, bool) {
	n := t.nodes[id]
	return n.span, n.hasSpan
}
