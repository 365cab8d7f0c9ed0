package layout_test

import (
	"fmt"

	"github.com/mhofer/treelay/pkg/layout"
	"github.com/mhofer/treelay/pkg/tree"
)

func ExampleEmbed() {
	b := tree.NewBuilder[string]()
	b.Open("0")
	b.Open("1")
	b.Open("3")
	_ = b.Close()
	b.Open("4")
	_ = b.Close()
	_ = b.Close()
	b.Open("2")
	_ = b.Close()
	_ = b.Close()
	t, _ := b.Build()

	emb, _ := layout.Embed(t)
	for _, p := range emb {
		fmt.Printf("%s: level=%d center=%d\n", p.Text, p.YOrder, p.XCenter)
	}
	// Output:
	// 0: level=0 center=3
	// 1: level=1 center=2
	// 3: level=2 center=1
	// 4: level=2 center=3
	// 2: level=1 center=5
}

func ExampleWithSourceFallback() {
	src := "1 + 2"
	b := tree.NewBuilder[string]()
	b.Open("sum")
	b.Token("num", 0, 1)
	b.Token("op", 2, 3)
	b.Token("num", 4, 5)
	_ = b.Close()
	t, _ := b.Build()

	emb, _ := layout.Embed(t, layout.WithSourceFallback[string](src))
	for _, p := range emb {
		fmt.Println(p.Text)
	}
	// Output:
	// sum
	// 1
	// +
	// 2
}
