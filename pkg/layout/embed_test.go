package layout

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/mhofer/treelay/pkg/errors"
	"github.com/mhofer/treelay/pkg/tree"
)

// buildNumbered builds the tree
//
//	0
//	├── 1
//	│   ├── 3
//	│   └── 4
//	└── 2
//
// where each node's label is its value.
func buildNumbered(t *testing.T) *tree.Tree[int] {
	t.Helper()
	b := tree.NewBuilder[int]()
	b.Open(0)
	b.Open(1)
	b.Open(3)
	_ = b.Close()
	b.Open(4)
	_ = b.Close()
	_ = b.Close()
	b.Open(2)
	_ = b.Close()
	_ = b.Close()

	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tr
}

func TestEmbed_SingleNode(t *testing.T) {
	b := tree.NewBuilder[int]()
	b.Open(7)
	_ = b.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	emb, err := Embed(tr)
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if len(emb) != 1 {
		t.Fatalf("len(emb) = %d, want 1", len(emb))
	}

	want := Placement{
		Ord:             0,
		YOrder:          0,
		XCenter:         1,
		XExtent:         2,
		XExtentChildren: 2,
		Text:            "7",
		Parent:          NoParent,
	}
	if emb[0] != want {
		t.Errorf("placement = %+v, want %+v", emb[0], want)
	}
}

func TestEmbed_FiveNodeTree(t *testing.T) {
	emb, err := Embed(buildNumbered(t))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	want := Embedding{
		{Ord: 0, YOrder: 0, XCenter: 3, XExtent: 2, XExtentChildren: 6, Text: "0", Parent: NoParent},
		{Ord: 1, YOrder: 1, XCenter: 2, XExtent: 2, XExtentChildren: 4, Text: "1", Parent: 0},
		{Ord: 2, YOrder: 2, XCenter: 1, XExtent: 2, XExtentChildren: 2, Text: "3", Parent: 1},
		{Ord: 3, YOrder: 2, XCenter: 3, XExtent: 2, XExtentChildren: 2, Text: "4", Parent: 1},
		{Ord: 4, YOrder: 1, XCenter: 5, XExtent: 2, XExtentChildren: 2, Text: "2", Parent: 0},
	}
	if !reflect.DeepEqual(emb, want) {
		t.Errorf("embedding mismatch:\n got %+v\nwant %+v", emb, want)
	}
}

func TestEmbed_EmptyTree(t *testing.T) {
	tr, err := tree.NewBuilder[int]().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	emb, err := Embed(tr)
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if len(emb) != 0 {
		t.Errorf("len(emb) = %d, want 0", len(emb))
	}
}

func TestEmbed_MultipleRoots(t *testing.T) {
	b := tree.NewBuilder[int]()
	b.Open(1)
	_ = b.Close()
	b.Open(2)
	_ = b.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	emb, err := Embed(tr)
	if err == nil {
		t.Fatal("Embed() error = nil, want multiple roots error")
	}
	if !errors.Is(err, errors.ErrCodeMultipleRoots) {
		t.Errorf("error code = %v, want ErrCodeMultipleRoots", errors.GetCode(err))
	}
	if emb != nil {
		t.Errorf("emb = %v, want nil on error", emb)
	}
}

func TestEmbed_Deterministic(t *testing.T) {
	tr := buildNumbered(t)
	first, err := Embed(tr)
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	second, err := Embed(tr)
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated embeddings of the same tree differ")
	}
}

func TestEmbed_ParentsPrecedeChildren(t *testing.T) {
	emb, err := Embed(buildWide(t))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	for _, p := range emb {
		if p.Parent == NoParent {
			continue
		}
		if p.Parent >= p.Ord {
			t.Errorf("placement %d has parent %d, want parent ord < ord", p.Ord, p.Parent)
		}
		if emb[p.Parent].YOrder != p.YOrder-1 {
			t.Errorf("placement %d at level %d has parent at level %d", p.Ord, p.YOrder, emb[p.Parent].YOrder)
		}
	}
}

// buildWide builds a tree with labels of uneven width so the overlap and
// containment checks exercise the truncating arithmetic.
func buildWide(t *testing.T) *tree.Tree[string] {
	t.Helper()
	b := tree.NewBuilder[string]()
	b.Open("expression")
	b.Open("term")
	b.Open("1234")
	_ = b.Close()
	b.Open("*")
	_ = b.Close()
	b.Open("x")
	_ = b.Close()
	_ = b.Close()
	b.Open("+")
	_ = b.Close()
	b.Open("factor")
	b.Open("y")
	_ = b.Close()
	_ = b.Close()
	_ = b.Close()

	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tr
}

func TestEmbed_SiblingsDoNotOverlap(t *testing.T) {
	emb, err := Embed(buildWide(t))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	byParent := map[int][]Placement{}
	for _, p := range emb {
		byParent[p.Parent] = append(byParent[p.Parent], p)
	}
	for parent, siblings := range byParent {
		for i := 1; i < len(siblings); i++ {
			left, right := siblings[i-1], siblings[i]
			leftEdge := left.XCenter + left.XExtentChildren/2
			rightEdge := right.XCenter - right.XExtentChildren/2
			if leftEdge > rightEdge {
				t.Errorf("children of %d overlap: %q ends at %d, %q starts at %d",
					parent, left.Text, leftEdge, right.Text, rightEdge)
			}
		}
	}
}

func TestEmbed_ChildrenCenteredUnderParent(t *testing.T) {
	emb, err := Embed(buildWide(t))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	// Reconstruct each parent's combined child extent from the output.
	childSum := map[int]int{}
	for _, p := range emb {
		if p.Parent != NoParent {
			childSum[p.Parent] += p.XExtentChildren
		}
	}
	for _, p := range emb {
		if p.Parent == NoParent {
			continue
		}
		par := emb[p.Parent]
		lo := par.XCenter - childSum[par.Ord]/2
		hi := par.XCenter + childSum[par.Ord]/2
		if p.XCenter < lo || p.XCenter > hi {
			t.Errorf("%q centered at %d, outside parent band [%d, %d]", p.Text, p.XCenter, lo, hi)
		}
	}
}

func TestEmbed_ExtentCountsCharacters(t *testing.T) {
	b := tree.NewBuilder[string]()
	b.Open("λx·λy")
	_ = b.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	emb, err := Embed(tr)
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	// Five characters plus one unit of padding, regardless of byte length.
	if emb[0].XExtent != 6 {
		t.Errorf("XExtent = %d, want 6", emb[0].XExtent)
	}
}

func TestEmbed_WithText(t *testing.T) {
	emb, err := Embed(buildNumbered(t), WithText(func(v int) string {
		return "n" + strconv.Itoa(v)
	}))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if emb[0].Text != "n0" {
		t.Errorf("root text = %q, want %q", emb[0].Text, "n0")
	}
	if emb[0].XExtent != 3 {
		t.Errorf("root XExtent = %d, want 3", emb[0].XExtent)
	}
}

type keyword string

func (k keyword) String() string { return "kw:" + string(k) }

func TestEmbed_DefaultTextUsesStringer(t *testing.T) {
	b := tree.NewBuilder[keyword]()
	b.Open("if")
	_ = b.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	emb, err := Embed(tr)
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if emb[0].Text != "kw:if" {
		t.Errorf("text = %q, want %q", emb[0].Text, "kw:if")
	}
}

func TestEmbed_WithEmphasis(t *testing.T) {
	emb, err := Embed(buildNumbered(t), WithEmphasis(func(v int) bool {
		return v%2 == 0
	}))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	for _, p := range emb {
		want := (p.Text == "0" || p.Text == "2" || p.Text == "4")
		if p.Emphasized != want {
			t.Errorf("%q emphasized = %v, want %v", p.Text, p.Emphasized, want)
		}
	}
}

// buildSpanned builds a two-level tree over the source "1 + 2" where the
// leaves carry spans and the interior node does not.
func buildSpanned(t *testing.T) *tree.Tree[string] {
	t.Helper()
	b := tree.NewBuilder[string]()
	b.Open("sum")
	b.Token("num", 0, 1)
	b.Token("op", 2, 3)
	b.Token("num", 4, 5)
	_ = b.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return tr
}

func TestEmbed_WithSource(t *testing.T) {
	emb, err := Embed(buildSpanned(t), WithSource[string]("1 + 2"))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	wantTexts := []string{"sum", "1", "+", "2"}
	for i, want := range wantTexts {
		if emb[i].Text != want {
			t.Errorf("placement %d text = %q, want %q", i, emb[i].Text, want)
		}
	}
}

func TestEmbed_WithSourceFallback(t *testing.T) {
	b := tree.NewBuilder[string]()
	b.Open("sum")
	b.Token("ignored", 0, 1)
	b.Open("nested")
	b.Token("ignored", 4, 5)
	_ = b.Close()
	_ = b.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	emb, err := Embed(tr, WithSourceFallback[string]("1 + 2"))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	wantTexts := []string{"sum", "1", "nested", "2"}
	for i, want := range wantTexts {
		if emb[i].Text != want {
			t.Errorf("placement %d text = %q, want %q", i, emb[i].Text, want)
		}
	}
}

func TestEmbed_SourceSpanOutOfRange(t *testing.T) {
	b := tree.NewBuilder[string]()
	b.Open("root")
	b.Token("orphan", 10, 20)
	_ = b.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	emb, err := Embed(tr, WithSource[string]("short"))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	// The span exceeds the source, so the node keeps its strategy label.
	if emb[1].Text != "orphan" {
		t.Errorf("text = %q, want fallback %q", emb[1].Text, "orphan")
	}
}

func TestEmbedding_WidthAndHeight(t *testing.T) {
	emb, err := Embed(buildNumbered(t))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}
	if got := emb.Width(); got != 6 {
		t.Errorf("Width() = %d, want 6", got)
	}
	if got := emb.Height(); got != 3 {
		t.Errorf("Height() = %d, want 3", got)
	}

	var empty Embedding
	if empty.Width() != 0 || empty.Height() != 0 {
		t.Errorf("empty embedding size = %dx%d, want 0x0", empty.Width(), empty.Height())
	}
}
