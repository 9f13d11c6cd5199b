package listview_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rvickers/renderlab/internal/tui/list"
)

func renderRow(item string, selected bool) string {
	if selected {
		return "> " + item
	}
	return "  " + item
}

func newModel(t *testing.T, n, height int) *listview.Model[string] {
	t.Helper()

	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}
	m, err := listview.New(items, 80, height, 2, renderRow)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	m := newModel(t, 100, 20)

	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 20, m.Height())
	assert.Equal(t, 80, m.Width())

	stats := m.Stats()
	assert.Equal(t, 100, stats.TotalItems)
	assert.Equal(t, 20, stats.VisibleCount)
	assert.Equal(t, 0, stats.StartIndex)
	assert.Equal(t, 22, stats.EndIndex)
}

func TestView_RendersOnlyViewport(t *testing.T) {
	m := newModel(t, 10000, 10)

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 10, "view height equals viewport, not item count")
	assert.Equal(t, "> item-0", lines[0])
	assert.Equal(t, "  item-9", lines[9])
	assert.NotContains(t, view, "item-5000")
}

func TestUpdate_CursorNavigation(t *testing.T) {
	m := newModel(t, 100, 10)

	press := func(k tea.KeyMsg) {
		updated, _ := m.Update(k)
		m = updated.(*listview.Model[string])
	}

	press(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())

	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.Selected())

	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())

	press(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected(), "cursor clamps at the top")

	press(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 10, m.Selected())

	press(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 99, m.Selected())

	press(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 99, m.Selected(), "cursor clamps at the bottom")

	press(tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.Selected())
}

func TestCursorScrollsViewport(t *testing.T) {
	m := newModel(t, 100, 10)

	// Walk the cursor past the bottom edge; the viewport follows.
	for i := 0; i < 15; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(*listview.Model[string])
	}
	assert.Equal(t, 15, m.Selected())

	view := m.View()
	assert.Contains(t, view, "> item-15")
	assert.NotContains(t, view, "item-5\n", "viewport scrolled past the top rows")

	stats := m.Stats()
	assert.Equal(t, 6, stats.ScrollOffset, "minimum scroll keeps cursor on the last row")
}

func TestWindowSizeMsg_Resizes(t *testing.T) {
	m := newModel(t, 100, 10)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = updated.(*listview.Model[string])

	assert.Equal(t, 30, m.Height())
	assert.Equal(t, 120, m.Width())
	assert.Equal(t, 30, m.Stats().VisibleCount)
}

func TestSelectedItem(t *testing.T) {
	m := newModel(t, 3, 10)

	item, ok := m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item-0", item)

	m.SetSelected(2)
	item, ok = m.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "item-2", item)
}

func TestEmptyList(t *testing.T) {
	m, err := listview.New(nil, 80, 10, 2, renderRow)
	require.NoError(t, err)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(*listview.Model[string])
	assert.Equal(t, 0, m.Selected())

	_, ok := m.SelectedItem()
	assert.False(t, ok)
}

func TestScrollToLastItemKeepsViewportFull(t *testing.T) {
	m := newModel(t, 100, 10)

	// A request to put the last row at the top of the viewport clamps so
	// the viewport stays covered instead of scrolling past the content.
	m.Renderer().ScrollToIndex(99)

	stats := m.Stats()
	assert.Equal(t, 90, stats.ScrollOffset)
	assert.Equal(t, 100, stats.EndIndex)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "  item-90", lines[0])
	assert.Equal(t, "  item-99", lines[9])
}

func TestScrollToShortListStaysAtTop(t *testing.T) {
	m := newModel(t, 5, 10)

	m.Renderer().ScrollToIndex(4)
	assert.Equal(t, 0, m.Stats().ScrollOffset, "content shorter than the viewport never scrolls")
	assert.Contains(t, m.View(), "item-4")
}
