package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mhofer/treelay/pkg/layout"
)

// DOTOptions configures node-link diagram generation via [ToDOT].
type DOTOptions struct {
	// Detailed includes ord and level in node labels.
	// When false, only the placement text is shown.
	Detailed bool
}

// ToDOT converts an embedding to Graphviz DOT format for an alternative
// node-link view. Node positions are left to Graphviz; the embedding only
// contributes the tree structure, labels, and emphasis. Render the result
// with [GraphvizSVG] or [GraphvizPNG].
func ToDOT(e layout.Embedding, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range e {
		label := p.Text
		if opts.Detailed {
			label = fmt.Sprintf("%s\nord: %d\nlevel: %d", p.Text, p.Ord, p.YOrder)
		}
		attrs := fmt.Sprintf("label=%q", label)
		if p.Emphasized {
			attrs += ", penwidth=2, fontname=\"bold\""
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", p.Ord, attrs)
	}

	buf.WriteString("\n")
	for _, p := range e {
		if p.Parent == layout.NoParent {
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", p.Parent, p.Ord)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphvizSVG renders a DOT graph to SVG using Graphviz.
func GraphvizSVG(dot string) ([]byte, error) {
	return renderGraphviz(dot, graphviz.SVG)
}

// GraphvizPNG renders a DOT graph to PNG using Graphviz.
func GraphvizPNG(dot string) ([]byte, error) {
	return renderGraphviz(dot, graphviz.PNG)
}

func renderGraphviz(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
