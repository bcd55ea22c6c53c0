package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenReplays
)

// SessionModel manages the full session flow: menu -> game or replays -> menu.
// This is the top-level model used by the interactive command and SSH sessions.
type SessionModel struct {
	cfg      config.Snake
	opts     Options
	username string
	screen   sessionScreen
	menu     MenuModel
	browser  ReplayBrowser
	game     Model
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a new session model. Games started from the menu
// use cfg with a fresh seed each time unless cfg.Seed is set.
func NewSessionModel(cfg config.Snake, opts Options, username string, width, height int) SessionModel {
	opts.Embedded = true
	if opts.Logger != nil && username != "" {
		opts.Logger = opts.Logger.With("user", username)
	}

	return SessionModel{
		cfg:      cfg,
		opts:     opts,
		username: username,
		menu:     NewMenuModel(width, height),
		width:    width,
		height:   height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenReplays:
		return m.updateReplays(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuPlay:
		m.menu = NewMenuModel(m.width, m.height)
		game, err := NewModel(m.cfg, m.opts)
		if err != nil {
			m.opts.logger().Error("cannot start game", "error", err)
			return m, nil
		}
		return m.enterGame(game)

	case MenuReplays:
		m.menu = NewMenuModel(m.width, m.height)
		m.browser = NewReplayBrowser(m.opts.Store, m.width, m.height)
		m.screen = screenReplays
		return m, m.browser.Init()
	}

	return m, cmd
}

// updateReplays handles updates when browsing replays.
func (m SessionModel) updateReplays(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBrowser, cmd := m.browser.Update(msg)
	if browser, ok := newBrowser.(ReplayBrowser); ok {
		m.browser = browser
	}

	switch {
	case m.browser.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.browser.IsGoingBack():
		m.screen = screenMenu
		return m, nil

	case m.browser.Selected() != nil:
		entry := m.browser.Selected()
		game, err := NewPlaybackModel(entry.Journal, m.opts)
		if err != nil {
			m.opts.logger().Warn("cannot replay", "id", entry.ID, "error", err)
			m.screen = screenMenu
			return m, nil
		}
		return m.enterGame(game)
	}

	return m, cmd
}

// enterGame switches to game and passes it the current window size.
func (m SessionModel) enterGame(game Model) (tea.Model, tea.Cmd) {
	sized, _ := game.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	if g, ok := sized.(Model); ok {
		game = g
	}
	m.game = game
	m.screen = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Check if user left the game (back to menu)
	if m.game.BackToMenu() {
		m.screen = screenMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenReplays:
		return m.browser.View()
	}
	return m.menu.View()
}
