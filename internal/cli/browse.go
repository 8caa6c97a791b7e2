package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/treemark/treemark/pkg/manifest"
	"github.com/treemark/treemark/pkg/tree"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newBrowseCmd creates the browse command for interactive tree exploration.
func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <manifest.toml>",
		Short: "Explore the tree interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy(root)

			p := tea.NewProgram(NewTreeModel(root))
			_, err = p.Run()
			return err
		},
	}
}

// treeRow is one visible line of the browser.
type treeRow struct {
	node  *tree.Node
	depth int
}

// TreeModel is the bubbletea model for interactive tree browsing.
type TreeModel struct {
	Root      *tree.Node
	Cursor    int
	Height    int
	Offset    int
	collapsed map[*tree.Node]bool
	rows      []treeRow
}

// NewTreeModel creates a browser over the hierarchy rooted at root.
// All nodes start expanded.
func NewTreeModel(root *tree.Node) TreeModel {
	m := TreeModel{
		Root:      root,
		Height:    15,
		collapsed: make(map[*tree.Node]bool),
	}
	m.rebuild()
	return m
}

// rebuild recomputes the visible rows after a collapse state change.
func (m *TreeModel) rebuild() {
	m.rows = m.rows[:0]
	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		for ; n != nil; n = n.Sibling() {
			m.rows = append(m.rows, treeRow{node: n, depth: depth})
			if !m.collapsed[n] {
				walk(n.Child(), depth+1)
			}
		}
	}
	if m.Root != nil {
		m.rows = append(m.rows, treeRow{node: m.Root})
		if !m.collapsed[m.Root] {
			walk(m.Root.Child(), 1)
		}
	}
	if m.Cursor >= len(m.rows) {
		m.Cursor = len(m.rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			if len(m.rows) == 0 {
				break
			}
			n := m.rows[m.Cursor].node
			if n.Child() != nil {
				m.collapsed[n] = !m.collapsed[n]
				m.rebuild()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Tree"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fold/unfold  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := m.Offset; i < end; i++ {
		row := m.rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := "  "
		if row.node.Child() != nil {
			if m.collapsed[row.node] {
				marker = "+ "
			} else {
				marker = "- "
			}
		}

		line := cursor + strings.Repeat("  ", row.depth) + marker + row.node.Label()
		if row.node.HasValue() {
			line += "  " + listDimStyle.Render(row.node.Value())
		}

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows))))

	return b.String()
}
