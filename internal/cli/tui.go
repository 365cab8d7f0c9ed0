package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhofer/treelay/pkg/layout"
)

// placementModel is the bubbletea model for browsing an embedding's
// placements when inspect runs with --interactive.
type placementModel struct {
	title  string
	emb    layout.Embedding
	cursor int
	offset int
	height int
}

func newPlacementModel(title string, emb layout.Embedding) placementModel {
	return placementModel{
		title:  title,
		emb:    emb,
		height: 15,
	}
}

func (m placementModel) Init() tea.Cmd {
	return nil
}

func (m placementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.emb)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m placementModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Embedding: " + m.title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.emb) {
		end = len(m.emb)
	}

	for i := m.offset; i < end; i++ {
		p := m.emb[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-4d level %-3d center %-4d span %-4d %s",
			cursor, p.Ord, p.YOrder, p.XCenter, p.XExtentChildren, p.Text)
		if i == m.cursor {
			b.WriteString(styleEmphasis.Render(line))
		} else if p.Emphasized {
			b.WriteString(styleValue.Bold(true).Render(line))
		} else {
			b.WriteString(styleValue.Render(line))
		}
		b.WriteString("\n")
	}

	sel := m.emb[m.cursor]
	b.WriteString("\n")
	parent := "-"
	if sel.Parent != layout.NoParent {
		parent = fmt.Sprintf("%d (%s)", sel.Parent, m.emb[sel.Parent].Text)
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("extent %d  parent %s", sel.XExtent, parent)))
	b.WriteString("\n")

	return b.String()
}

// browsePlacements opens the interactive placement browser.
func browsePlacements(title string, emb layout.Embedding) error {
	if len(emb) == 0 {
		printInfo("empty embedding, nothing to browse")
		return nil
	}
	_, err := tea.NewProgram(newPlacementModel(title, emb)).Run()
	return err
}
