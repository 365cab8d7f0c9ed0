package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mhofer/treelay/pkg/layout"
)

func sampleEmbedding() layout.Embedding {
	return layout.Embedding{
		{Ord: 0, YOrder: 0, XCenter: 3, XExtent: 2, XExtentChildren: 6, Text: "0", Parent: layout.NoParent},
		{Ord: 1, YOrder: 1, XCenter: 2, XExtent: 2, XExtentChildren: 4, Text: "1", Parent: 0},
		{Ord: 2, YOrder: 2, XCenter: 1, XExtent: 2, XExtentChildren: 2, Text: "3", Parent: 1},
		{Ord: 3, YOrder: 2, XCenter: 3, XExtent: 2, XExtentChildren: 2, Text: "4", Parent: 1},
		{Ord: 4, YOrder: 1, XCenter: 5, XExtent: 2, XExtentChildren: 2, Text: "2", Parent: 0, Emphasized: true},
	}
}

func TestRenderSVG_Structure(t *testing.T) {
	svg := string(RenderSVG(sampleEmbedding()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output does not start with an svg element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output does not end with a closing svg tag")
	}
	if got := strings.Count(svg, "<text "); got != 5 {
		t.Errorf("found %d text elements, want 5", got)
	}
	// Four nodes have a parent, so four connecting lines.
	if got := strings.Count(svg, "<line "); got != 4 {
		t.Errorf("found %d line elements, want 4", got)
	}
	if got := strings.Count(svg, `font-weight="bold"`); got != 1 {
		t.Errorf("found %d bold labels, want 1 for the emphasized placement", got)
	}
}

func TestRenderSVG_DefaultGeometry(t *testing.T) {
	emb := layout.Embedding{
		{Ord: 0, XCenter: 1, XExtent: 2, XExtentChildren: 2, Text: "7", Parent: layout.NoParent},
	}
	svg := string(RenderSVG(emb))

	// margin 20 + center 1 * unit 10; margin 20 + levelHeight 60 / 2.
	want := `<text x="30.0" y="50.0" text-anchor="middle" font-family="monospace" font-size="14.0">7</text>`
	if !strings.Contains(svg, want) {
		t.Errorf("output missing %q:\n%s", want, svg)
	}
}

func TestRenderSVG_Options(t *testing.T) {
	emb := layout.Embedding{
		{Ord: 0, XCenter: 2, XExtent: 2, XExtentChildren: 2, Text: "a", Parent: layout.NoParent},
	}
	svg := string(RenderSVG(emb,
		WithUnit(5),
		WithLevelHeight(40),
		WithMargin(0, 0),
		WithFontSize(10),
		WithFontFamily("serif"),
	))

	want := `<text x="10.0" y="20.0" text-anchor="middle" font-family="serif" font-size="10.0">a</text>`
	if !strings.Contains(svg, want) {
		t.Errorf("output missing %q:\n%s", want, svg)
	}
}

func TestRenderSVG_EscapesLabels(t *testing.T) {
	emb := layout.Embedding{
		{Ord: 0, XCenter: 2, XExtent: 4, XExtentChildren: 4, Text: "a<b&c", Parent: layout.NoParent},
	}
	svg := string(RenderSVG(emb))

	if strings.Contains(svg, ">a<b&c<") {
		t.Error("label was not escaped")
	}
	if !strings.Contains(svg, "a&lt;b&amp;c") {
		t.Errorf("escaped label missing from output:\n%s", svg)
	}
}

func TestRenderSVG_Deterministic(t *testing.T) {
	emb := sampleEmbedding()
	if !bytes.Equal(RenderSVG(emb), RenderSVG(emb)) {
		t.Error("repeated renders of the same embedding differ")
	}
}
