// Package pkg provides the core libraries for treelay tree visualization.
//
// # Overview
//
// treelay computes planar embeddings for trees and renders them. The pkg
// directory is organized into five main areas:
//
//  1. [tree] - Generic tree structure and builder
//  2. [layout] - The embedding algorithm (positions every node)
//  3. [render] - Output sinks (SVG, DOT/Graphviz, JSON)
//  4. [document] - TOML tree documents
//  5. [pipeline] - Orchestration (load → embed → render)
//
// # Architecture
//
// The typical data flow through treelay:
//
//	TOML document or tree.Builder
//	         ↓
//	    [tree] package (tree structure)
//	         ↓
//	    [layout] package (planar embedding)
//	         ↓
//	    [render] package (visualization)
//	         ↓
//	    SVG/PNG/DOT/JSON output
//
// # Quick Start
//
// Build a tree and embed it:
//
//	b := tree.NewBuilder[string]()
//	b.Open("root")
//	b.Open("child")
//	_ = b.Close()
//	_ = b.Close()
//	t, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	emb, err := layout.Embed(t)
//	if err != nil {
//	    return err
//	}
//	svg := render.RenderSVG(emb)
//
// Or run the whole pipeline over a document:
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Run(ctx, pipeline.Options{Input: "tree.toml"})
package pkg
