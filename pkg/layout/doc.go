// Package layout embeds the nodes of a tree into the plane so the tree can
// be drawn, e.g. as SVG.
//
// # Overview
//
// [Embed] turns a [tree.Tree] into an [Embedding]: one [Placement] per node
// carrying the node's level, horizontal center, and horizontal extent in
// logical coordinate units. The algorithm runs four strictly ordered stages:
//
//  1. A depth-first walk assigns each node its traversal ord, level, label
//     text, emphasis flag, and parent ord.
//  2. A post-order sweep computes each node's horizontal extent bottom-up:
//     the space a node occupies is the maximum of its own label width and
//     the summed extents of its children.
//  3. A top-down sweep positions each level: siblings are laid out
//     left-to-right inside their parent's children block, each centered
//     within the span it is allotted, so siblings never overlap and parents
//     end up centered over their children.
//  4. The working records are flattened into the public collection.
//
// The whole computation is O(n), synchronous, and free of shared state; two
// embeddings of the same tree produce identical output.
//
// # Label strategies
//
// How a node value becomes label text is pluggable and never baked into the
// embedder. The default uses fmt.Stringer when implemented and the fmt
// default format otherwise; [WithText] injects a custom strategy,
// [WithSource] and [WithSourceFallback] slice labels out of the parsed
// source string using the spans recorded in the tree, and [WithEmphasis]
// marks nodes for visual emphasis.
//
// # Errors
//
// A tree with more than one top-level node is a usage error, reported with
// code MULTIPLE_ROOTS before any traversal begins. A record missing during
// the extent or centering pass indicates the tree was mutated during the
// call; that is reported with code INTERNAL_ERROR rather than silently
// producing wrong coordinates. No partial embedding is ever returned.
package layout
