package game

import "slices"

// Snapshot is a read-only copy of the board state for rendering. Renderers
// re-read a fresh snapshot every tick; mutating one never touches the Game.
type Snapshot struct {
	Width, Height int
	Snake         []Cell // head first
	Obstacles     []Cell
	Food          Cell
	HasFood       bool
	PowerUp       Cell
	HasPowerUp    bool
	Score         int
	GameOver      bool
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Cell, 0, len(g.obstacles))
	for c := range g.obstacles {
		obstacles = append(obstacles, c)
	}
	// Map iteration order is random; keep snapshots comparable.
	slices.SortFunc(obstacles, func(a, b Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return Snapshot{
		Width:      g.width,
		Height:     g.height,
		Snake:      slices.Clone(g.snake),
		Obstacles:  obstacles,
		Food:       g.food,
		HasFood:    g.hasFood,
		PowerUp:    g.powerUp,
		HasPowerUp: g.hasPowerUp,
		Score:      g.score,
		GameOver:   g.gameOver,
	}
}
