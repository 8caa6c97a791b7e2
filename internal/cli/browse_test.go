package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treemark/treemark/pkg/tree"
)

func browseFixture(t *testing.T) *tree.Node {
	t.Helper()
	root := tree.New("Solar System")
	planets, err := tree.NewChild(root, "Planets")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tree.NewChild(planets, "Mercury"); err != nil {
		t.Fatal(err)
	}
	if _, err := tree.NewChildWithValue(planets, "Earth", "Cradle of Humanity"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { tree.Destroy(root) })
	return root
}

func TestTreeModelRows(t *testing.T) {
	m := NewTreeModel(browseFixture(t))

	if len(m.rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(m.rows))
	}
	if m.rows[0].node.Label() != "Solar System" || m.rows[0].depth != 0 {
		t.Errorf("row 0 = %s at depth %d", m.rows[0].node.Label(), m.rows[0].depth)
	}
	if m.rows[2].node.Label() != "Mercury" || m.rows[2].depth != 2 {
		t.Errorf("row 2 = %s at depth %d", m.rows[2].node.Label(), m.rows[2].depth)
	}
}

func TestTreeModelNavigation(t *testing.T) {
	m := NewTreeModel(browseFixture(t))

	down := tea.KeyMsg{Type: tea.KeyDown}
	next, _ := m.Update(down)
	m = next.(TreeModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}

	up := tea.KeyMsg{Type: tea.KeyUp}
	next, _ = m.Update(up)
	m = next.(TreeModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}

	// Cursor never moves above the first row.
	next, _ = m.Update(up)
	m = next.(TreeModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestTreeModelCollapse(t *testing.T) {
	m := NewTreeModel(browseFixture(t))

	// Move to Planets and fold it.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(TreeModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(TreeModel)

	if len(m.rows) != 2 {
		t.Fatalf("rows after fold = %d, want 2", len(m.rows))
	}

	// Unfold restores the subtree.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(TreeModel)
	if len(m.rows) != 4 {
		t.Errorf("rows after unfold = %d, want 4", len(m.rows))
	}
}

func TestTreeModelView(t *testing.T) {
	m := NewTreeModel(browseFixture(t))

	view := m.View()
	for _, want := range []string{"Solar System", "Planets", "Mercury", "Earth"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTreeModelEmpty(t *testing.T) {
	m := NewTreeModel(nil)

	if len(m.rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(m.rows))
	}
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}

	// Key handling on an empty model must not panic.
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{' '}},
		{Type: tea.KeyDown},
		{Type: tea.KeyUp},
	} {
		next, _ := m.Update(msg)
		m = next.(TreeModel)
	}
	if len(m.rows) != 0 {
		t.Errorf("rows = %d, want 0", len(m.rows))
	}
}

func TestTreeModelQuit(t *testing.T) {
	m := NewTreeModel(browseFixture(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}
