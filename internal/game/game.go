// Package game implements the snake simulation: a pure, tick-driven state
// machine with no I/O. The driving loop owns a Game, forwards direction
// intents to SetDirection and advances it with Step on a fixed cadence;
// renderers read the board through Snapshot.
package game

import (
	"math/rand"
	"slices"
	"time"
)

// Options configures a new Game. Width and Height are the board dimensions
// in cells. PowerUpChance is the per-tick probability of a power-up
// appearing, ObstacleDensity the target fraction of board cells covered by
// obstacle blocks. Rand supplies all randomness; leave nil for a
// time-seeded source, or inject a fixed seed for deterministic runs.
type Options struct {
	Width, Height   int
	Obstacles       bool
	WrapWalls       bool
	Invincible      bool
	PowerUpChance   float64
	ObstacleDensity float64
	Rand            *rand.Rand
}

// Game holds the full simulation state for one run. All fields are owned
// exclusively by the Game; external readers go through Snapshot.
type Game struct {
	width, height   int
	obstaclesOn     bool
	wrapWalls       bool
	invincible      bool
	powerUpChance   float64
	obstacleDensity float64
	rng             *rand.Rand

	snake     []Cell // head first
	obstacles map[Cell]struct{}

	food       Cell
	hasFood    bool
	powerUp    Cell
	hasPowerUp bool

	direction   Direction // committed for the current tick
	pending     Direction // intent applied at the start of the next tick
	inputLocked bool      // one accepted direction change per tick
	growth      int       // body-length increases still owed
	score       int
	gameOver    bool
}

// New creates a Game with the given options and resets it to the starting
// configuration.
func New(opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		width:           opts.Width,
		height:          opts.Height,
		obstaclesOn:     opts.Obstacles,
		wrapWalls:       opts.WrapWalls,
		invincible:      opts.Invincible,
		powerUpChance:   opts.PowerUpChance,
		obstacleDensity: opts.ObstacleDensity,
		rng:             rng,
	}
	g.Reset()
	return g
}

// Reset discards the current run and rebuilds the starting configuration:
// a length-3 snake at board center facing right, fresh obstacles when
// enabled, one food cell, no power-up, score zero.
func (g *Game) Reset() {
	cx, cy := g.width/2, g.height/2
	g.snake = []Cell{{cx, cy}, {cx - 1, cy}, {cx - 2, cy}}
	g.direction = DirRight
	g.pending = DirRight
	g.inputLocked = false
	g.growth = 0
	g.score = 0
	g.gameOver = false
	g.hasPowerUp = false

	g.obstacles = make(map[Cell]struct{})
	if g.obstaclesOn {
		g.generateObstacles()
	}
	g.food, g.hasFood = g.randomEmptyCell()
}

// SetDirection queues a direction intent for the next tick. The request is
// ignored if an intent was already accepted this tick, if it matches the
// current heading, or if it would reverse it. Input arriving faster than
// the tick rate therefore coalesces to the first valid request.
func (g *Game) SetDirection(req Direction) {
	if g.inputLocked || req == g.direction || req == g.direction.Opposite() {
		return
	}
	g.pending = req
	g.inputLocked = true
}

// Step advances the simulation one tick: commits the pending direction,
// moves the head, resolves wall/obstacle/self collisions under the active
// rule toggles, applies consumption and growth, and rolls the power-up
// spawn. Once the run has ended Step is a no-op.
func (g *Game) Step() {
	if g.gameOver {
		return
	}
	g.inputLocked = false
	g.direction = g.pending

	head := g.snake[0]
	next := head.Step(g.direction)

	// Wall resolution.
	if g.wrapWalls {
		next = g.wrap(next)
	} else if !g.inBounds(next) {
		if !g.invincible {
			g.gameOver = true
			return
		}
		bounce := head.Step(g.direction.Opposite())
		if !g.inBounds(bounce) {
			// Board too narrow to bounce; skip the tick entirely.
			return
		}
		next = bounce
		g.reverse()
	}

	// Obstacle resolution.
	if g.obstaclesOn && g.isObstacle(next) {
		if !g.invincible {
			g.gameOver = true
			return
		}
		bounce := head.Step(g.direction.Opposite())
		if g.wrapWalls {
			bounce = g.wrap(bounce)
		}
		if g.inBounds(bounce) && !g.isObstacle(bounce) {
			next = bounce
			g.reverse()
		}
		// An invalid bounce candidate leaves the head where the wall pass
		// put it, obstacle or not.
	}

	// Self collision. Invincible snakes may overlap themselves.
	if !g.invincible && slices.Contains(g.snake, next) {
		g.gameOver = true
		return
	}

	g.snake = slices.Insert(g.snake, 0, next)

	// Consumption. Food and power-up are checked independently; growth
	// stacks when both sit on the same cell.
	if g.hasFood && next == g.food {
		g.score++
		g.growth++
		g.food, g.hasFood = g.randomEmptyCell()
	}
	if g.hasPowerUp && next == g.powerUp {
		g.score += 2
		g.growth += 2
		g.hasPowerUp = false
	}

	if g.growth > 0 {
		g.growth--
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	// Food left absent by a crowded board retries once space opens up.
	if !g.hasFood {
		g.food, g.hasFood = g.randomEmptyCell()
	}

	if !g.hasPowerUp && g.rng.Float64() < g.powerUpChance {
		g.powerUp, g.hasPowerUp = g.randomEmptyCell()
	}
}

// reverse flips the committed and pending headings after a bounce.
func (g *Game) reverse() {
	opp := g.direction.Opposite()
	g.direction = opp
	g.pending = opp
}

func (g *Game) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// wrap maps a cell back onto the board modulo each dimension.
func (g *Game) wrap(c Cell) Cell {
	c.X = ((c.X % g.width) + g.width) % g.width
	c.Y = ((c.Y % g.height) + g.height) % g.height
	return c
}

func (g *Game) isObstacle(c Cell) bool {
	_, ok := g.obstacles[c]
	return ok
}
