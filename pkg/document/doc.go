// Package document loads tree descriptions from TOML files.
//
// A tree document lists its nodes as [[node]] entries. Entry order fixes
// sibling order, and parents must be defined before their children, which
// keeps documents acyclic without a separate cycle check:
//
//	source = "1 + 2"
//
//	[[node]]
//	id = "expr"
//	label = "Expr"
//
//	[[node]]
//	id = "lhs"
//	parent = "expr"
//	span = [0, 1]
//
//	[[node]]
//	id = "op"
//	parent = "expr"
//	label = "+"
//	emphasize = true
//
//	[[node]]
//	id = "rhs"
//	parent = "expr"
//	span = [4, 5]
//
// Leaf nodes may carry a span into the optional top-level source string;
// the embedder can then label them with the exact source slice.
//
// Documents with several top-level nodes parse fine; the layout embedder
// rejects them at embed time, matching its single-root requirement.
package document
