package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// CellWidth is the number of terminal columns per grid cell.
// Two columns make a cell roughly square in common terminal fonts.
const CellWidth = 2

// footerLines is the status line plus the help line under the board.
const footerLines = 2

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorScore.ANSI()))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGameOver.ANSI())).Bold(true)
)

// Options holds what a game model needs beyond the game config.
type Options struct {
	// Store receives the journal of every finished game. Nil disables saving.
	Store *storage.Store

	// Logger defaults to a discarding logger.
	Logger *log.Logger

	// ScreenshotDir is where Ctrl+S writes PNG frames. Empty disables it.
	ScreenshotDir string

	// KeepReplays prunes the store to this many replays after a save.
	// Zero keeps everything.
	KeepReplays int

	// Embedded models report BackToMenu instead of quitting the program.
	Embedded bool
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// RequiredSize returns the terminal size needed to show a board for cfg.
func RequiredSize(cfg config.Snake) (width, height int) {
	return cfg.GridSize * CellWidth, cfg.GridSize + footerLines
}

// Model is the Bubble Tea model for one game, played live or replayed
// from a journal. Bubble Tea delivers ticks and keys on one goroutine, so
// the game is never touched concurrently.
type Model struct {
	cfg    config.Snake
	game   *snake.Game
	player *snake.Player // Non-nil when replaying
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	opts   Options
	logger *log.Logger
	gen    uint64

	width  int
	height int

	saved      bool   // Journal stored for the current game
	status     string // Last notice shown under the board
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for a new live game.
// A zero seed is replaced by a time based one.
func NewModel(cfg config.Snake, opts Options) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := snake.New(cfg)
	if err != nil {
		return Model{}, err
	}
	return newModel(cfg, game, nil, opts), nil
}

// NewPlaybackModel creates a model that replays j tick by tick.
func NewPlaybackModel(j snake.Journal, opts Options) (Model, error) {
	player, err := snake.NewPlayer(j)
	if err != nil {
		return Model{}, err
	}
	return newModel(j.Config, player.Game(), player, opts), nil
}

func newModel(cfg config.Snake, game *snake.Game, player *snake.Player, opts Options) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		cfg:    cfg,
		game:   game,
		player: player,
		screen: core.NewScreen(cfg.GridSize, cfg.GridSize, CellWidth),
		keys:   DefaultKeyMap(),
		help:   h,
		opts:   opts,
		logger: opts.logger(),
		gen:    nextGen(),
	}
}

// Init starts the game and runs the first tick right away.
func (m Model) Init() tea.Cmd {
	m.game.Start()
	return tickNow(m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.saveJournal()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.saveJournal()
		if !m.opts.Embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionRestart:
		return m.restart()
	}

	if d, ok := directionOf(action); ok && m.player == nil {
		m.game.OnInput(d)
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next while the
// game is running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.player != nil {
		m.player.Step()
	} else {
		m.game.Tick()
	}

	if m.game.Phase() == snake.PhaseGameOver {
		m.finish()
		return m, nil
	}
	if m.player != nil && m.player.Done() {
		m.status = "end of recording"
		return m, nil
	}

	return m, tickCmd(m.cfg.Interval(), m.gen)
}

// finish logs the result and stores the journal once per game.
func (m *Model) finish() {
	if err := m.game.Err(); err != nil {
		m.logger.Warn("game ended early", "error", err, "ticks", m.game.Ticks())
	}
	if m.player != nil {
		return
	}
	m.logger.Info("game over", "score", m.game.Score(), "ticks", m.game.Ticks(), "seed", m.cfg.Seed)
	m.saveJournal()
}

// saveJournal stores the live game's journal. Games that never ticked
// and replays are not stored. Failures are logged and play continues.
func (m *Model) saveJournal() {
	if m.saved || m.player != nil || m.game.Ticks() == 0 {
		return
	}
	m.saved = true

	if m.opts.Store == nil {
		return
	}

	id, err := m.opts.Store.SaveReplay(m.game.Journal())
	if err != nil {
		m.logger.Warn("could not save replay", "error", err)
		m.status = "replay not saved"
		return
	}
	m.status = fmt.Sprintf("saved replay #%d", id)

	if m.opts.KeepReplays > 0 {
		if _, err := m.opts.Store.Prune(m.opts.KeepReplays); err != nil {
			m.logger.Warn("could not prune replays", "error", err)
		}
	}
}

// restart begins a new game after game over. A replay starts over from
// its first tick instead.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if m.player != nil {
		player, err := snake.NewPlayer(m.player.Journal())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.player = player
		m.game = player.Game()
	} else {
		if m.game.Phase() != snake.PhaseGameOver {
			return m, nil
		}
		m.cfg.Seed = time.Now().UnixNano()
		game, err := snake.New(m.cfg)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.game = game
		m.saved = false
	}

	m.gen = nextGen()
	m.status = ""
	return m, m.Init()
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		m.status = "screenshots are disabled"
		return
	}

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("snake_%s.png", timestamp))

	img := render.NewImage(m.cfg.GridSize, m.cfg.Scale)
	m.game.Render(img)
	if err := img.SavePNG(path, 0); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		m.status = "screenshot failed"
		return
	}

	m.logger.Debug("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	needW, needH := RequiredSize(m.cfg)
	if m.width > 0 && (m.width < needW || m.height < needH) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d", needW, needH, m.width, m.height,
		))
	}

	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

func (m Model) statusLine() string {
	line := fmt.Sprintf("Score %d  Tick %d", m.game.Score(), m.game.Ticks())
	if m.player != nil {
		line = fmt.Sprintf("Replay seed %d  %s/%d", m.cfg.Seed, line, m.player.Journal().Ticks)
	}
	if m.status != "" {
		return statusStyle.Render(line) + "  " + noticeStyle.Render(m.status)
	}
	return statusStyle.Render(line)
}

// Game returns the game being shown.
func (m Model) Game() *snake.Game {
	return m.game
}

// Status returns the last notice shown under the board.
func (m Model) Status() string {
	return m.status
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave an embedded game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for m on the current terminal.
func Run(m tea.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
