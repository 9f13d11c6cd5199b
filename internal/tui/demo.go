package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rvickers/renderlab/internal/config"
	"github.com/rvickers/renderlab/internal/items"
	"github.com/rvickers/renderlab/internal/lazy"
	"github.com/rvickers/renderlab/internal/metrics"
	"github.com/rvickers/renderlab/internal/signal"
	listview "github.com/rvickers/renderlab/internal/tui/list"
	"github.com/rvickers/renderlab/internal/viewcache"
)

// chromeRows is the number of rows used by the header, filter, and help
// lines around the list viewport.
const chromeRows = 4

// processSampleInterval is how often the stats panel refreshes resource
// usage.
const processSampleInterval = 2 * time.Second

// Default terminal dimensions before the first WindowSizeMsg arrives.
const (
	demoDefaultWidth  = 80
	demoDefaultHeight = 24
)

// filterDebounceMsg fires when the filter input has been quiet long enough
// to apply. seq guards against stale timers from earlier keystrokes.
type filterDebounceMsg struct {
	seq int
}

// processSampleMsg carries a fresh resource usage reading.
type processSampleMsg struct {
	sample metrics.ProcessSample
}

// DemoModel is the Bubble Tea model for the interactive demo.
type DemoModel struct {
	list   *listview.Model[items.Item]
	filter textinput.Model

	all       []items.Item
	query     string
	filtering bool
	filterSeq int

	collector *metrics.Collector
	observer  *lazy.Observer
	cache     *viewcache.Cache[string, string]
	lazyLoad  bool
	loadFired bool

	lastSample metrics.ProcessSample
	printer    *message.Printer

	buffer   int
	width    int
	height   int
	quitting bool
	err      error
}

// NewDemoModel builds the demo over the given dataset. When lazy loading is
// enabled, descriptions start empty and hydrate on first visibility.
func NewDemoModel(cfg *config.Config, data []items.Item) (*DemoModel, error) {
	m := &DemoModel{
		all:       data,
		collector: metrics.NewCollector(),
		observer:  lazy.NewObserver(),
		lazyLoad:  cfg.Demo.LazyLoad,
		printer:   message.NewPrinter(language.English),
		buffer:    cfg.List.Buffer,
		width:     demoDefaultWidth,
		height:    demoDefaultHeight,
	}

	cache, err := viewcache.New[string, string](cfg.Demo.CacheCapacity)
	if err != nil {
		return nil, err
	}
	m.cache = cache

	if m.lazyLoad {
		for i := range m.all {
			m.all[i] = m.all[i].WithDescription("")
			m.observer.Observe(m.all[i].ID, func(int) { m.loadFired = true })
		}
	}

	m.filter = textinput.New()
	m.filter.Placeholder = "type to filter titles"
	m.filter.Prompt = "/ "
	m.filter.CharLimit = 64

	if err := m.rebuildList(m.all); err != nil {
		return nil, err
	}
	return m, nil
}

// rebuildList replaces the list component with a fresh one over data.
func (m *DemoModel) rebuildList(data []items.Item) error {
	l, err := listview.New(data, m.width, m.listHeight(), m.buffer, m.renderRow)
	if err != nil {
		return err
	}
	l.Renderer().SetInstrumentation(m.collector.Hook())
	m.list = l
	m.hydrateVisible()
	return nil
}

func (m *DemoModel) listHeight() int {
	h := m.height - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

// renderRow formats one list row, memoizing the non-cursor variant through
// the view cache. The key derives from the item's content, so stale entries
// are never served after an update; they simply age out of the LRU.
func (m *DemoModel) renderRow(it items.Item, selected bool) string {
	key := fmt.Sprintf("%s|%s|%d|%d|%t", it.Key, it.Status, len(it.Description), m.width, selected)
	if cached, ok := m.cache.Get(key); ok {
		return cached
	}

	desc := it.Description
	if desc == "" {
		desc = "loading…"
	}

	row := fmt.Sprintf("%-12s %s %s  %s",
		it.Title,
		statusBadge(it.Status),
		it.Timestamp.Format("15:04"),
		desc,
	)
	row = truncate(row, m.width-2)
	if selected {
		row = selectedStyle.Render("> " + row)
	} else {
		row = "  " + row
	}

	m.cache.Set(key, row)
	return row
}

func statusBadge(s items.Status) string {
	switch s {
	case items.StatusActive:
		return statusActiveStyle.Render("● active   ")
	case items.StatusPending:
		return statusPendingStyle.Render("◐ pending  ")
	case items.StatusCompleted:
		return statusCompletedStyle.Render("○ completed")
	default:
		return string(s)
	}
}

func truncate(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-1]) + "…"
}

// Init starts the resource sampling tick.
func (m *DemoModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, sampleProcessCmd())
}

func sampleProcessCmd() tea.Cmd {
	return tea.Tick(processSampleInterval, func(time.Time) tea.Msg {
		sample, err := metrics.SampleProcess()
		if err != nil {
			return processSampleMsg{}
		}
		return processSampleMsg{sample: sample}
	})
}

// Update routes messages to the filter input or the list.
func (m *DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		updated, _ := m.list.Update(tea.WindowSizeMsg{Width: msg.Width, Height: m.listHeight()})
		m.list = updated.(*listview.Model[items.Item])
		m.cache.Clear()
		m.hydrateVisible()
		return m, nil

	case filterDebounceMsg:
		if msg.seq != m.filterSeq {
			return m, nil
		}
		return m, m.applyFilter(m.filter.Value())

	case processSampleMsg:
		m.lastSample = msg.sample
		return m, sampleProcessCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

//nolint:gocognit // Key dispatch is a flat switch; splitting it would obscure the bindings.
func (m *DemoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case tea.KeyEnter:
			m.filtering = false
			m.filter.Blur()
			return m, m.applyFilter(m.filter.Value())
		default:
		}

		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.filterSeq++
		seq := m.filterSeq
		debounce := tea.Tick(signal.InputDebounce, func(time.Time) tea.Msg {
			return filterDebounceMsg{seq: seq}
		})
		return m, tea.Batch(cmd, debounce)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.filtering = true
		m.filter.Focus()
		return m, nil

	case "i":
		m.insertAtCursor()
		return m, nil

	case "x":
		m.removeAtCursor()
		return m, nil

	case "u":
		m.toggleStatusAtCursor()
		return m, nil

	case "r":
		m.collector.Reset()
		return m, nil
	}

	updated, cmd := m.list.Update(msg)
	m.list = updated.(*listview.Model[items.Item])
	m.hydrateVisible()
	return m, cmd
}

// applyFilter narrows the list to items whose title contains the query.
func (m *DemoModel) applyFilter(query string) tea.Cmd {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == m.query {
		return nil
	}
	m.query = query

	filtered := m.all
	if query != "" {
		filtered = make([]items.Item, 0, len(m.all))
		for _, it := range m.all {
			if strings.Contains(strings.ToLower(it.Title), query) {
				filtered = append(filtered, it)
			}
		}
	}

	if err := m.rebuildList(filtered); err != nil {
		m.err = err
		return tea.Quit
	}
	return nil
}

func (m *DemoModel) insertAtCursor() {
	r := m.list.Renderer()
	pos := m.list.Selected()

	id := len(m.all)
	it := items.Generate(1, int64(id), time.Now())[0]
	it.ID = id
	it.Title = fmt.Sprintf("Item %d", id)
	m.all = append(m.all, it)

	r.InsertItem(it, pos)
	m.hydrateVisible()
}

func (m *DemoModel) removeAtCursor() {
	r := m.list.Renderer()
	if r.Len() == 0 {
		return
	}

	idx := m.list.Selected()
	if it, ok := r.Item(idx); ok {
		m.observer.Forget(it.ID)
	}
	r.RemoveItem(idx)
	if m.list.Selected() >= r.Len() {
		m.list.SetSelected(r.Len() - 1)
	}
	m.hydrateVisible()
}

func (m *DemoModel) toggleStatusAtCursor() {
	r := m.list.Renderer()
	idx := m.list.Selected()
	it, ok := r.Item(idx)
	if !ok {
		return
	}

	var next items.Status
	switch it.Status {
	case items.StatusActive:
		next = items.StatusPending
	case items.StatusPending:
		next = items.StatusCompleted
	default:
		next = items.StatusActive
	}
	r.UpdateItem(idx, it.WithStatus(next))
}

// hydrateVisible fires the lazy loader for every unhydrated item inside the
// rendered range and applies the loaded descriptions.
func (m *DemoModel) hydrateVisible() {
	if !m.lazyLoad {
		return
	}

	r := m.list.Renderer()
	rng := r.VisibleRange()
	for i := rng.Start; i < rng.End; i++ {
		it, ok := r.Item(i)
		if !ok || it.Description != "" {
			continue
		}

		m.loadFired = false
		m.observer.Notify(it.ID, it.ID+1)
		if m.loadFired {
			loaded := it.WithDescription(fmt.Sprintf("Loaded detail for record #%d", it.ID))
			r.UpdateItem(i, loaded)
			// Keep the master dataset in sync so clearing a filter does not
			// resurrect an unhydrated copy.
			if it.ID < len(m.all) && m.all[it.ID].ID == it.ID {
				m.all[it.ID] = loaded
			}
		}
	}
}

// View draws the header, filter, list viewport, and help line.
func (m *DemoModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("RenderLab: windowed list demo"))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(m.statsLine()))
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • / filter • i insert • x delete • u status • r reset • q quit"))
	return b.String()
}

func (m *DemoModel) statsLine() string {
	stats := m.list.Stats()
	_, lastElapsed := m.collector.LastRender()

	line := m.printer.Sprintf(
		"items %d • window [%d,%d) • visible %d • scroll %.1f%% • renders %d • last %s • cache %d/%d hit/miss",
		stats.TotalItems,
		stats.StartIndex, stats.EndIndex,
		stats.VisibleCount,
		stats.ScrollPercent,
		m.collector.Renders(),
		lastElapsed.Round(time.Microsecond),
		m.cache.Hits(), m.cache.Misses(),
	)
	if m.lastSample.RSS > 0 {
		line += " • rss " + metrics.FormatBytes(m.lastSample.RSS)
	}
	return line
}

func (m *DemoModel) filterLine() string {
	if m.filtering {
		return m.filter.View()
	}
	if m.query != "" {
		return statsStyle.Render(fmt.Sprintf("filter: %q (press / to edit)", m.query))
	}
	return statsStyle.Render("press / to filter")
}

// Err returns the error that terminated the demo, if any.
func (m *DemoModel) Err() error {
	return m.err
}

// StatsLine exposes the rendered stats header for tests and the demo
// command's exit summary.
func (m *DemoModel) StatsLine() string {
	return m.statsLine()
}

// List exposes the underlying list component.
func (m *DemoModel) List() *listview.Model[items.Item] {
	return m.list
}
