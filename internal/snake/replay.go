package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
)

// InputEvent is an accepted direction change and the number of ticks that
// had run when it arrived.
type InputEvent struct {
	Tick uint64    `yaml:"tick"`
	Dir  Direction `yaml:"dir"`
}

// Journal is everything needed to re-run a game: its config (seed
// included), the accepted inputs and how many ticks were played.
type Journal struct {
	Config config.Snake `yaml:"config"`
	Inputs []InputEvent `yaml:"inputs"`
	Ticks  uint64       `yaml:"ticks"`
}

// Journal returns the record of this game so far.
func (g *Game) Journal() Journal {
	inputs := make([]InputEvent, len(g.inputs))
	copy(inputs, g.inputs)
	return Journal{
		Config: g.cfg,
		Inputs: inputs,
		Ticks:  g.ticks,
	}
}

// Player re-runs a journal one tick at a time, feeding each recorded
// input before the tick it was recorded against.
type Player struct {
	game    *Game
	journal Journal
	next    int
}

// NewPlayer sets up a fresh game for j and starts it.
func NewPlayer(j Journal) (*Player, error) {
	g, err := New(j.Config)
	if err != nil {
		return nil, err
	}
	g.Start()
	return &Player{game: g, journal: j}, nil
}

// Game returns the game being replayed.
func (p *Player) Game() *Game {
	return p.game
}

// Journal returns the journal being replayed.
func (p *Player) Journal() Journal {
	return p.journal
}

// Done reports whether the recorded ticks are exhausted or the game ended.
func (p *Player) Done() bool {
	return p.game.ticks >= p.journal.Ticks || p.game.phase != PhaseRunning
}

// Step applies the inputs due for the next tick and runs it.
// It reports false without ticking once the player is done.
func (p *Player) Step() bool {
	if p.Done() {
		return false
	}

	inputs := p.journal.Inputs
	for p.next < len(inputs) && inputs[p.next].Tick < p.game.ticks {
		p.next++ // out of order, cannot apply
	}
	for p.next < len(inputs) && inputs[p.next].Tick == p.game.ticks {
		p.game.OnInput(inputs[p.next].Dir)
		p.next++
	}
	p.game.Tick()
	return true
}

// Replay re-runs a journal from scratch and returns the game in its final
// state.
func Replay(j Journal) (*Game, error) {
	p, err := NewPlayer(j)
	if err != nil {
		return nil, err
	}
	for p.Step() {
	}
	return p.game, nil
}
