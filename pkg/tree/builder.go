package tree

// Builder constructs a [Tree] incrementally. Open starts a node, Close ends
// the most recently opened one, and Token adds a closed leaf carrying a
// source span. Calls must be balanced; Build reports unbalanced usage.
//
// The zero value is not usable - create builders with [NewBuilder].
type Builder[V any] struct {
	nodes []node[V]
	roots []NodeID
	stack []NodeID
}

// NewBuilder returns an empty builder.
func NewBuilder[V any]() *Builder[V] {
	return &Builder[V]{}
}

// Open starts a new node holding v as a child of the currently open node
// (or as a top-level node) and returns its ID. The node stays open until a
// matching [Builder.Close].
func (b *Builder[V]) Open(v V) NodeID {
	id := b.push(v)
	b.stack = append(b.stack, id)
	return id
}

// Token adds a closed leaf node holding v with the byte range [start, end)
// into the source string, and returns its ID.
func (b *Builder[V]) Token(v V, start, end int) NodeID {
	id := b.push(v)
	b.nodes[id].span = Span{Start: start, End: end}
	b.nodes[id].hasSpan = true
	return id
}

// Close ends the most recently opened node. It returns
// [ErrCloseWithoutOpen] when no node is open.
func (b *Builder[V]) Close() error {
	if len(b.stack) == 0 {
		return ErrCloseWithoutOpen
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Build finalizes the tree. It returns [ErrUnclosedNode] when open nodes
// remain. The builder must not be reused after Build.
func (b *Builder[V]) Build() (*Tree[V], error) {
	if len(b.stack) > 0 {
		return nil, ErrUnclosedNode
	}
	return &Tree[V]{nodes: b.nodes, roots: b.roots}, nil
}

func (b *Builder[V]) push(v V) NodeID {
	id := NodeID(len(b.nodes))
	n := node[V]{value: v, parent: NoNode}
	if len(b.stack) > 0 {
		parent := b.stack[len(b.stack)-1]
		n.parent = parent
		n.depth = b.nodes[parent].depth + 1
		b.nodes = append(b.nodes, n)
		b.nodes[parent].children = append(b.nodes[parent].children, id)
		return id
	}
	b.nodes = append(b.nodes, n)
	b.roots = append(b.roots, id)
	return id
}
