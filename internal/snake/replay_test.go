package snake

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func playScripted(t *testing.T, seed int64, maxTicks int) *Game {
	t.Helper()
	g := newTestGame(t, seed)
	g.Start()

	script := map[int][]Direction{
		0:  {Up},
		2:  {Left},
		4:  {Down, Left}, // last write wins
		5:  {Down},
		7:  {Right},
		9:  {Up},
		10: {Right},
		12: {Down},
		15: {Left},
	}
	for i := 0; i < maxTicks && g.Phase() == PhaseRunning; i++ {
		for _, d := range script[i] {
			g.OnInput(d)
		}
		g.Tick()
	}
	return g
}

func TestReplayReproducesGame(t *testing.T) {
	g := playScripted(t, 2024, 60)
	j := g.Journal()

	if j.Ticks != g.Ticks() {
		t.Errorf("journal ticks = %d, expected %d", j.Ticks, g.Ticks())
	}

	r, err := Replay(j)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if r.Snapshot() != g.Snapshot() {
		t.Errorf("replay diverged:\n got %+v\nwant %+v", r.Snapshot(), g.Snapshot())
	}
	if len(r.Journal().Inputs) != len(j.Inputs) {
		t.Errorf("replay recorded %d inputs, expected %d", len(r.Journal().Inputs), len(j.Inputs))
	}
}

func TestReplayStopsAtRecordedTicks(t *testing.T) {
	g := playScripted(t, 77, 3)
	if g.Phase() != PhaseRunning {
		t.Skip("scripted game ended early")
	}

	r, err := Replay(g.Journal())
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if r.Ticks() != 3 || r.Phase() != PhaseRunning {
		t.Errorf("replay at tick %d phase %v, expected tick 3 running", r.Ticks(), r.Phase())
	}
}

func TestJournalRecordsOnlyAcceptedInput(t *testing.T) {
	g := newTestGame(t, 1)
	g.Start()

	g.OnInput(Left) // reversal, rejected
	g.OnInput(Up)
	g.Tick()
	g.OnInput(Left)

	j := g.Journal()
	want := []InputEvent{{Tick: 0, Dir: Up}, {Tick: 1, Dir: Left}}
	if len(j.Inputs) != len(want) {
		t.Fatalf("Inputs = %+v, expected %+v", j.Inputs, want)
	}
	for i := range want {
		if j.Inputs[i] != want[i] {
			t.Errorf("Inputs[%d] = %+v, expected %+v", i, j.Inputs[i], want[i])
		}
	}
}

func TestJournalYAMLUsesDirectionNames(t *testing.T) {
	g := newTestGame(t, 1)
	g.Start()
	g.OnInput(Down)
	g.Tick()

	data, err := yaml.Marshal(g.Journal())
	if err != nil {
		t.Fatalf("yaml.Marshal failed: %v", err)
	}

	var j Journal
	if err := yaml.Unmarshal(data, &j); err != nil {
		t.Fatalf("yaml.Unmarshal failed: %v\n%s", err, data)
	}
	if len(j.Inputs) != 1 || j.Inputs[0].Dir != Down {
		t.Errorf("decoded inputs = %+v from\n%s", j.Inputs, data)
	}
	if j.Config != g.Config() {
		t.Errorf("decoded config = %+v, expected %+v", j.Config, g.Config())
	}
}

func TestPlayerStepsThroughJournal(t *testing.T) {
	g := playScripted(t, 2024, 60)
	j := g.Journal()

	p, err := NewPlayer(j)
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	if p.Game().Phase() != PhaseRunning {
		t.Fatalf("player game phase = %v, expected running", p.Game().Phase())
	}

	steps := 0
	for p.Step() {
		steps++
		if p.Game().Ticks() != uint64(steps) {
			t.Fatalf("after %d steps Ticks() = %d", steps, p.Game().Ticks())
		}
	}

	if uint64(steps) != j.Ticks {
		t.Errorf("stepped %d times, expected %d", steps, j.Ticks)
	}
	if !p.Done() {
		t.Error("player should be done")
	}
	if p.Step() {
		t.Error("Step() after done should report false")
	}
	if p.Game().Snapshot() != g.Snapshot() {
		t.Errorf("player diverged:\n got %+v\nwant %+v", p.Game().Snapshot(), g.Snapshot())
	}
}
