// Package render turns embeddings into output artifacts.
//
// All sinks consume only the [layout.Embedding] produced by the layout
// package; none of them reaches back into the tree. Three views exist:
//
//   - [RenderSVG] draws the layered view directly: labels at their computed
//     logical positions, scaled into pixels, with connecting lines. This is
//     the faithful rendition of the embedding.
//   - [ToDOT] plus [GraphvizSVG]/[GraphvizPNG] produce a node-link diagram
//     where Graphviz chooses positions; useful for quick structural checks.
//   - [RenderJSON] exports the raw placements for external tooling.
//
// SVG and DOT output is deterministic. Graphviz rasterization goes through
// github.com/goccy/go-graphviz and needs no external binaries.
package render
