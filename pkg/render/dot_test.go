package render

import (
	"strings"
	"testing"
)

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sampleEmbedding(), DOTOptions{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("output does not start with a digraph declaration")
	}
	if !strings.Contains(dot, "rankdir=TB;") {
		t.Error("output missing top-to-bottom rank direction")
	}
	for _, want := range []string{
		`n0 [label="0"];`,
		`n1 [label="1"];`,
		"n0 -> n1;",
		"n1 -> n2;",
		"n1 -> n3;",
		"n0 -> n4;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("output missing %q:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "->"); got != 4 {
		t.Errorf("found %d edges, want 4", got)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleEmbedding(), DOTOptions{Detailed: true})

	if !strings.Contains(dot, `label="0\nord: 0\nlevel: 0"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOT_Emphasis(t *testing.T) {
	dot := ToDOT(sampleEmbedding(), DOTOptions{})

	if !strings.Contains(dot, "n4 [label=\"2\", penwidth=2, fontname=\"bold\"];") {
		t.Errorf("emphasized node attributes missing:\n%s", dot)
	}
	if got := strings.Count(dot, "penwidth=2"); got != 1 {
		t.Errorf("found %d emphasized nodes, want 1", got)
	}
}

func TestToDOT_EmptyEmbedding(t *testing.T) {
	dot := ToDOT(nil, DOTOptions{})

	if !strings.Contains(dot, "digraph G {") || !strings.Contains(dot, "}") {
		t.Errorf("empty embedding should still produce a valid graph:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("empty embedding should have no edges")
	}
}
