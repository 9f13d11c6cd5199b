package listview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvickers/renderlab/internal/window"
)

// RenderFunc renders one item row. selected reports whether the row is the
// current cursor position.
type RenderFunc[T any] func(item T, selected bool) string

// KeyMap defines the navigation bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap returns arrow, paging, and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	}
}

// Model presents a windowed item list with cursor navigation.
type Model[T any] struct {
	renderer   *window.Renderer[T]
	host       *termHost
	renderFunc RenderFunc[T]

	keys     KeyMap
	selected int
	width    int
	height   int
}

// New creates a list model over items with the given viewport size in
// terminal cells and overscan buffer.
func New[T any](items []T, width, height, buffer int, renderFunc RenderFunc[T]) (*Model[T], error) {
	m := &Model[T]{
		host:       &termHost{height: height},
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
		width:      width,
		height:     height,
	}

	r, err := window.New(m.host, items, window.Config{
		ItemHeight:     1,
		Buffer:         buffer,
		ViewportHeight: height,
	}, func(item T, index int) string {
		return m.renderFunc(item, index == m.selected)
	})
	if err != nil {
		return nil, err
	}

	m.renderer = r
	m.host.onScroll = r.HandleScroll
	return m, nil
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles key navigation and viewport resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.height = msg.Height
		m.renderer.HandleResize(msg.Height)
	}
	return m, nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	if m.renderer.Len() == 0 {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.SetSelected(m.selected - 1)
	case key.Matches(msg, m.keys.Down):
		m.SetSelected(m.selected + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.SetSelected(m.selected - m.height)
	case key.Matches(msg, m.keys.PageDown):
		m.SetSelected(m.selected + m.height)
	case key.Matches(msg, m.keys.Home):
		m.SetSelected(0)
	case key.Matches(msg, m.keys.End):
		m.SetSelected(m.renderer.Len() - 1)
	}
}

// View renders the viewport rows.
func (m *Model[T]) View() string {
	return m.host.Visible(m.height)
}

// SetSelected moves the cursor, clamped to valid indices, and scrolls the
// minimum distance needed to keep it in view.
func (m *Model[T]) SetSelected(index int) {
	n := m.renderer.Len()
	if n == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		index = 0
	case index >= n:
		index = n - 1
	}
	m.selected = index

	top := m.host.offset
	switch {
	case index < top:
		m.renderer.ScrollToIndex(index)
	case index >= top+m.height:
		m.host.ScrollTo(index - m.height + 1)
	default:
		// Cursor moved within the viewport: the window is unchanged but the
		// highlighted row is stale, so force a repaint of the mounted range.
		m.renderer.HandleResize(m.height)
	}
}

// Selected returns the cursor index.
func (m *Model[T]) Selected() int {
	return m.selected
}

// SelectedItem returns the item under the cursor, or false when empty.
func (m *Model[T]) SelectedItem() (T, bool) {
	return m.renderer.Item(m.selected)
}

// Renderer exposes the underlying windowed renderer for mutation and
// instrumentation wiring.
func (m *Model[T]) Renderer() *window.Renderer[T] {
	return m.renderer
}

// Stats returns the renderer's viewport snapshot.
func (m *Model[T]) Stats() window.Stats {
	return m.renderer.Stats()
}

// Height returns the viewport height in rows.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width in columns.
func (m *Model[T]) Width() int {
	return m.width
}
