// Package snake implements the grid snake game: coordinates, the border
// ring, the snake body, food placement and the tick-driven controller.
// It draws through core.Canvas and has no terminal or image dependencies.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Phase is the controller state.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns all state of one game. It is not safe for concurrent use:
// ticks and input must be delivered from a single goroutine.
type Game struct {
	cfg     config.Snake
	grid    Grid
	border  *Border
	body    *Body
	spawner *Spawner
	food    Coord

	current Direction // Direction of the running tick
	pending Direction // Buffered input, applied at the next tick
	phase   Phase
	ticks   uint64
	err     error // Non-collision reason the game ended, if any

	inputs []InputEvent
}

// New sets up a game from cfg. The game starts in PhaseSetup, heading right.
// cfg.Seed drives food placement, so equal configs replay identically.
func New(cfg config.Snake) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := Grid{Size: cfg.GridSize}
	body, err := NewBody(grid, cfg.InitialLength)
	if err != nil {
		return nil, err
	}

	spawner := NewSpawner(grid, rand.New(rand.NewSource(cfg.Seed)), cfg.FoodAttempts())
	food, err := spawner.Spawn(body)
	if err != nil {
		return nil, fmt.Errorf("snake: initial food: %w", err)
	}

	return &Game{
		cfg:     cfg,
		grid:    grid,
		border:  NewBorder(grid, cfg.GridSize),
		body:    body,
		spawner: spawner,
		food:    food,
		current: Right,
		pending: Right,
		phase:   PhaseSetup,
	}, nil
}

// Start moves the game from Setup to Running. It has no effect afterwards.
func (g *Game) Start() {
	if g.phase == PhaseSetup {
		g.phase = PhaseRunning
	}
}

// OnInput buffers d for the next tick. Input is ignored unless the game is
// running, and a reversal of the current direction is rejected. The latest
// accepted input wins. Reports whether d was buffered.
func (g *Game) OnInput(d Direction) bool {
	if g.phase != PhaseRunning || !d.Valid() {
		return false
	}
	if d == g.current.Opposite() {
		return false
	}
	g.pending = d
	g.inputs = append(g.inputs, InputEvent{Tick: g.ticks, Dir: d})
	return true
}

// Tick advances the game by one step and returns the resulting phase.
// The caller schedules the next tick only while the phase is Running.
func (g *Game) Tick() Phase {
	if g.phase != PhaseRunning {
		return g.phase
	}
	g.ticks++

	g.current = g.pending
	if !g.body.Move(g.current, g.border) {
		g.phase = PhaseGameOver
		return g.phase
	}

	if g.body.Occupies(g.food) {
		food, err := g.spawner.Spawn(g.body)
		if err != nil {
			g.err = err
			g.phase = PhaseGameOver
			return g.phase
		}
		g.food = food
		g.body.Grow()
	}

	return g.phase
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns how much the snake has grown since the start.
func (g *Game) Score() int {
	return g.body.Size() - g.cfg.InitialLength
}

// Err returns why the game ended when it was not a collision, such as
// ErrBoardFull. It is nil otherwise.
func (g *Game) Err() error {
	return g.err
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Snake {
	return g.cfg
}

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
