package snake

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Score   int
	Size    int
	Head    Coord
	Food    Coord
	Current Direction
	Pending Direction
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.ticks,
		Phase:   g.phase,
		Score:   g.Score(),
		Size:    g.body.Size(),
		Head:    g.body.Head(),
		Food:    g.food,
		Current: g.current,
		Pending: g.pending,
	}
}
