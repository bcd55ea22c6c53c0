package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Replay browser layout constants
const (
	maxReplays    = 100 // Max replays to load
	browserChrome = 8   // Title, borders and help around the table
)

// ReplayBrowser is the Bubble Tea model for picking a stored replay.
type ReplayBrowser struct {
	store    *storage.Store
	entries  []storage.ReplayEntry
	table    table.Model
	help     help.Model
	keys     KeyMap
	width    int
	height   int
	err      error
	selected *storage.ReplayEntry // Set when user picks a replay
	back     bool
	quitting bool
}

// NewReplayBrowser creates a browser over the newest replays in store.
func NewReplayBrowser(store *storage.Store, width, height int) ReplayBrowser {
	h := help.New()
	h.Width = width

	m := ReplayBrowser{
		store:  store,
		keys:   DefaultKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ReplayBrowser) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Grid", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Inputs", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-browserChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the newest replays from the store.
func (m *ReplayBrowser) load() {
	m.entries = nil
	m.err = nil
	if m.store != nil {
		m.entries, m.err = m.store.RecentReplays(maxReplays)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded replays.
func (m *ReplayBrowser) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", e.ID),
			fmt.Sprintf("%dx%d", e.GridSize, e.GridSize),
			fmt.Sprintf("%d", e.Ticks),
			fmt.Sprintf("%d", len(e.Journal.Inputs)),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the browser.
func (m ReplayBrowser) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m ReplayBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.entries) {
				e := m.entries[i]
				m.selected = &e
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m ReplayBrowser) View() string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("REPLAYS"), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(navHelp(m.keys))))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ReplayBrowser) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Replay storage is not available.")
	case m.err != nil:
		return emptyStyle.Render("Could not load replays:\n" + m.err.Error())
	case len(m.entries) == 0:
		return emptyStyle.Render("No replays recorded yet.\nFinish a game to record one!")
	}

	return m.table.View()
}

// Selected returns the replay the user picked, or nil.
func (m ReplayBrowser) Selected() *storage.ReplayEntry {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplayBrowser) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplayBrowser) IsQuitting() bool {
	return m.quitting
}
