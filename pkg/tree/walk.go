package tree

// Event distinguishes entering a subtree from leaving it during
// [Tree.WalkEvents].
type Event int

const (
	// Enter is emitted before any of the node's children are visited.
	Enter Event = iota
	// Leave is emitted after all of the node's children were visited.
	// For leaves it directly follows Enter.
	Leave
)

// Walk visits every node depth-first in sibling order, calling fn with the
// node's depth and ID. Parents are always visited before their descendants,
// so the visit order matches the order node IDs were assigned in.
func (t *Tree[V]) Walk(fn func(depth int, id NodeID)) {
	for _, root := range t.roots {
		t.walk(root, 0, fn)
	}
}

func (t *Tree[V]) walk(id NodeID, depth int, fn func(depth int, id NodeID)) {
	fn(depth, id)
	for _, child := range t.nodes[id].children {
		t.walk(child, depth+1, fn)
	}
}

// WalkEvents visits every node depth-first, calling fn twice per node: once
// with Enter before its children and once with Leave after them. The Leave
// order is a post-order traversal, which lets callers fold over children
// whose own Leave events have already fired.
func (t *Tree[V]) WalkEvents(fn func(ev Event, id NodeID)) {
	for _, root := range t.roots {
		t.walkEvents(root, fn)
	}
}

func (t *Tree[V]) walkEvents(id NodeID, fn func(ev Event, id NodeID)) {
	fn(Enter, id)
	for _, child := range t.nodes[id].children {
		t.walkEvents(child, fn)
	}
	fn(Leave, id)
}
