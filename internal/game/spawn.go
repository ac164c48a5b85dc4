package game

// safetyCorridor is how many cells ahead of the starting head stay free of
// obstacles, across three rows, so the opening moves are always survivable.
const safetyCorridor = 6

// generateObstacles rebuilds the obstacle set from 2x2 blocks placed at
// uniformly random anchors. The target cell count is width*height*density
// rounded down; leftover cells that do not fill a whole block are dropped.
// A block whose cells touch the starting snake or the safety corridor is
// skipped outright rather than re-rolled, so the actual count may fall
// short of the target.
func (g *Game) generateObstacles() {
	targetCells := int(float64(g.width*g.height) * g.obstacleDensity)
	blocks := targetCells / 4

	invalid := make(map[Cell]struct{}, len(g.snake)+safetyCorridor*3)
	for _, c := range g.snake {
		invalid[c] = struct{}{}
	}
	head := g.snake[0]
	dx, dy := g.direction.Delta()
	for i := 1; i <= safetyCorridor; i++ {
		for off := -1; off <= 1; off++ {
			// Perpendicular row offsets around the travel axis.
			invalid[Cell{
				X: head.X + dx*i + dy*off,
				Y: head.Y + dy*i + dx*off,
			}] = struct{}{}
		}
	}

	if g.width < 2 || g.height < 2 {
		return
	}

	for b := 0; b < blocks; b++ {
		// Anchor plus the cells above and to the right form the block,
		// constrained to lie fully on the board.
		ax := g.rng.Intn(g.width - 1)
		ay := 1 + g.rng.Intn(g.height-1)
		block := [4]Cell{
			{ax, ay},
			{ax + 1, ay},
			{ax, ay - 1},
			{ax + 1, ay - 1},
		}

		rejected := false
		for _, c := range block {
			if _, bad := invalid[c]; bad {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}
		for _, c := range block {
			g.obstacles[c] = struct{}{}
		}
	}
}

// randomEmptyCell picks a uniformly random cell whose full 8-neighborhood
// (itself included) is free of snake, obstacles, food and power-up. The
// sweep stops short of the last row and column, so those cells are never
// candidates; this matches the original placement behavior and is pinned
// by tests. Returns false when no candidate exists, leaving the caller to
// retry on a later tick.
func (g *Game) randomEmptyCell() (Cell, bool) {
	occupied := g.occupiedCells()

	var candidates []Cell
	for x := 0; x < g.width-1; x++ {
		for y := 0; y < g.height-1; y++ {
			if g.neighborhoodClear(occupied, Cell{x, y}) {
				candidates = append(candidates, Cell{x, y})
			}
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[g.rng.Intn(len(candidates))], true
}

// occupiedCells collects every cell something currently sits on.
func (g *Game) occupiedCells() map[Cell]struct{} {
	occupied := make(map[Cell]struct{}, len(g.snake)+len(g.obstacles)+2)
	for _, c := range g.snake {
		occupied[c] = struct{}{}
	}
	for c := range g.obstacles {
		occupied[c] = struct{}{}
	}
	if g.hasFood {
		occupied[g.food] = struct{}{}
	}
	if g.hasPowerUp {
		occupied[g.powerUp] = struct{}{}
	}
	return occupied
}

// neighborhoodClear reports whether no occupied cell lies within Chebyshev
// distance 1 of c. Neighbors off the board count as clear.
func (g *Game) neighborhoodClear(occupied map[Cell]struct{}, c Cell) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if _, taken := occupied[Cell{c.X + dx, c.Y + dy}]; taken {
				return false
			}
		}
	}
	return true
}
