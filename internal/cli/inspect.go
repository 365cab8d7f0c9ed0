package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mhofer/treelay/pkg/document"
	"github.com/mhofer/treelay/pkg/layout"
	"github.com/mhofer/treelay/pkg/pipeline"
)

// newInspectCmd creates the inspect command, which prints the computed
// embedding as a table instead of rendering it.
func newInspectCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the computed embedding of a tree document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse placements in an interactive view")

	return cmd
}

func runInspect(ctx context.Context, input string, interactive bool) error {
	doc, err := document.Load(input)
	if err != nil {
		return err
	}

	emb, err := pipeline.EmbedDocument(doc)
	if err != nil {
		return err
	}

	if interactive {
		return browsePlacements(input, emb)
	}

	printInfo("%s: %d nodes, %d levels, width %d units",
		input, len(emb), emb.Height(), emb.Width())
	if doc.Source != "" {
		printDetail("source: %q", doc.Source)
	}
	fmt.Println(placementTable(emb))
	return nil
}

// placementTable renders the embedding as a lipgloss table, one row per
// placement in ord order.
func placementTable(emb layout.Embedding) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleTableEdge).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if emb[row].Emphasized && col == 6 {
				return styleEmphasis.Padding(0, 1)
			}
			return styleValue.Padding(0, 1)
		}).
		Headers("ORD", "LEVEL", "CENTER", "EXTENT", "SPAN", "PARENT", "TEXT")

	for _, p := range emb {
		parent := "-"
		if p.Parent != layout.NoParent {
			parent = strconv.Itoa(p.Parent)
		}
		t.Row(
			strconv.Itoa(p.Ord),
			strconv.Itoa(p.YOrder),
			strconv.Itoa(p.XCenter),
			strconv.Itoa(p.XExtent),
			strconv.Itoa(p.XExtentChildren),
			parent,
			p.Text,
		)
	}
	return t.Render()
}
