// Package tree provides the ordered rooted tree that feeds the layout
// embedder.
//
// # Overview
//
// A [Tree] holds opaque values of any type and preserves sibling order. Node
// identity is a dense [NodeID] assigned in depth-first order, which
// guarantees that a parent's ID is always smaller than the IDs of all its
// descendants. Downstream code relies on this to resolve parent records in a
// single pass.
//
// # Building
//
// Trees are built with the open/close protocol familiar from syntax tree
// builders. [Builder.Open] starts an interior node, [Builder.Token] adds a
// closed leaf with a byte range into the parsed source, and [Builder.Close]
// ends the innermost open node:
//
//	b := tree.NewBuilder[string]()
//	b.Open("expr")
//	b.Token("a", 0, 1)
//	b.Token("+", 2, 3)
//	b.Token("b", 4, 5)
//	b.Close()
//	t, err := b.Build()
//
// Build fails when opens and closes are unbalanced. Multiple top-level nodes
// are representable; consumers that require a single root (such as the
// layout embedder) reject such trees themselves.
//
// # Traversal
//
// [Tree.Walk] performs a depth-first walk yielding each node's depth.
// [Tree.WalkEvents] additionally distinguishes entering a subtree from
// leaving it, giving callers a post-order fold over already-visited children.
//
// # Concurrency
//
// Trees are immutable after Build and safe for concurrent readers. Builders
// are not safe for concurrent use.
package tree
