package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGame builds a seeded game on an open 15x15 board with no
// obstacles and no power-up spawns unless the options say otherwise.
func newTestGame(t *testing.T, mod func(*Options)) *Game {
	t.Helper()
	opts := Options{
		Width:  15,
		Height: 15,
		Rand:   rand.New(rand.NewSource(1)),
	}
	if mod != nil {
		mod(&opts)
	}
	return New(opts)
}

// place rewrites the snake and heading directly, bypassing Reset, the way
// collision scenarios need exact positions.
func place(g *Game, snake []Cell, d Direction) {
	g.snake = snake
	g.direction = d
	g.pending = d
	g.inputLocked = false
}

func TestResetStartingConfiguration(t *testing.T) {
	g := newTestGame(t, nil)

	require.Len(t, g.snake, 3)
	assert.Equal(t, Cell{7, 7}, g.snake[0], "head at board center")
	assert.Equal(t, Cell{6, 7}, g.snake[1])
	assert.Equal(t, Cell{5, 7}, g.snake[2])
	assert.Equal(t, DirRight, g.direction)
	assert.Equal(t, DirRight, g.pending)
	assert.Zero(t, g.score)
	assert.Zero(t, g.growth)
	assert.False(t, g.gameOver)
	assert.False(t, g.inputLocked)
	assert.False(t, g.hasPowerUp)
	assert.True(t, g.hasFood, "one food cell is generated on reset")
}

func TestResetDiscardsRunState(t *testing.T) {
	g := newTestGame(t, nil)
	g.score = 9
	g.growth = 4
	g.gameOver = true
	g.snake = append(g.snake, Cell{0, 0})

	g.Reset()

	assert.Len(t, g.snake, 3)
	assert.Zero(t, g.score)
	assert.Zero(t, g.growth)
	assert.False(t, g.gameOver)
}

func TestStraightMovementTranslatesHead(t *testing.T) {
	g := newTestGame(t, nil)
	g.food = Cell{0, 0} // out of the snake's path
	head := g.snake[0]

	for i := 0; i < 3; i++ {
		g.Step()
	}

	assert.Equal(t, Cell{head.X + 3, head.Y}, g.snake[0])
	assert.Len(t, g.snake, 3, "length unchanged without food")
}

func TestEatingFoodGrowsByOne(t *testing.T) {
	g := newTestGame(t, nil)
	head := g.snake[0]
	g.food = Cell{head.X + 1, head.Y}
	g.hasFood = true

	g.Step()

	assert.Len(t, g.snake, 4)
	assert.Equal(t, 1, g.score)
}

func TestEatingPowerUpGrowsByTwo(t *testing.T) {
	g := newTestGame(t, nil)
	head := g.snake[0]
	g.food = Cell{0, 0}
	g.powerUp = Cell{head.X + 1, head.Y}
	g.hasPowerUp = true

	g.Step()
	assert.Equal(t, 2, g.score)
	assert.False(t, g.hasPowerUp)

	g.Step()
	assert.Len(t, g.snake, 5, "backlog of two materializes over two ticks")
}

func TestFoodAndPowerUpOnSameCellStack(t *testing.T) {
	g := newTestGame(t, nil)
	head := g.snake[0]
	target := Cell{head.X + 1, head.Y}
	g.food = target
	g.hasFood = true
	g.powerUp = target
	g.hasPowerUp = true

	g.Step()

	assert.Equal(t, 3, g.score, "both consumptions fire on one tick")
	assert.Equal(t, 2, g.growth, "3 owed, 1 already spent this tick")
}

func TestReversalNeverQueued(t *testing.T) {
	g := newTestGame(t, nil)

	g.SetDirection(DirLeft)

	assert.Equal(t, DirRight, g.pending)
	assert.False(t, g.inputLocked)
}

func TestSameDirectionRejected(t *testing.T) {
	g := newTestGame(t, nil)

	g.SetDirection(DirRight)

	assert.False(t, g.inputLocked, "a no-op request must not consume the tick's change")
}

func TestFirstDirectionChangeWins(t *testing.T) {
	g := newTestGame(t, nil)
	g.food = Cell{0, 0}

	g.SetDirection(DirDown)
	g.SetDirection(DirUp)

	assert.Equal(t, DirDown, g.pending)

	g.Step()
	assert.Equal(t, DirDown, g.direction)
	assert.False(t, g.inputLocked, "lock clears inside Step")

	// A fresh tick accepts a new change again.
	g.SetDirection(DirRight)
	assert.Equal(t, DirRight, g.pending)
}

func TestDirectionQueuesEvenAfterGameOver(t *testing.T) {
	g := newTestGame(t, nil)
	g.gameOver = true

	g.SetDirection(DirDown)

	assert.Equal(t, DirDown, g.pending)
	g.Step()
	assert.Equal(t, DirRight, g.direction, "terminal Step commits nothing")
}

func TestWrapWallsRelocateHead(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.WrapWalls = true })
	place(g, []Cell{{0, 7}, {1, 7}, {2, 7}}, DirLeft)
	g.food = Cell{7, 0}

	g.Step()

	assert.Equal(t, Cell{14, 7}, g.snake[0], "head wraps to the far column")
	assert.False(t, g.gameOver)
}

func TestLethalWallEndsRun(t *testing.T) {
	g := newTestGame(t, nil)
	place(g, []Cell{{0, 7}, {1, 7}, {2, 7}}, DirLeft)

	g.Step()

	assert.True(t, g.gameOver)
	assert.Equal(t, []Cell{{0, 7}, {1, 7}, {2, 7}}, g.snake, "no mutation after the lethal check")
}

func TestInvincibleWallBounceReverses(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.Invincible = true })
	place(g, []Cell{{0, 7}, {1, 7}, {2, 7}}, DirLeft)
	g.food = Cell{7, 0}

	g.Step()

	assert.False(t, g.gameOver)
	assert.Equal(t, Cell{1, 7}, g.snake[0], "repositioned one cell inward")
	assert.Equal(t, DirRight, g.direction)
	assert.Equal(t, DirRight, g.pending)
}

func TestNarrowBoardBounceIsNoop(t *testing.T) {
	g := newTestGame(t, func(o *Options) {
		o.Width = 1
		o.Height = 15
		o.Invincible = true
	})
	place(g, []Cell{{0, 7}}, DirRight)

	g.Step()

	assert.False(t, g.gameOver, "impossible bounce aborts the tick, not the run")
	assert.Equal(t, Cell{0, 7}, g.snake[0])
}

func TestObstacleCollisionEndsRun(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.Obstacles = true })
	place(g, []Cell{{5, 7}, {4, 7}, {3, 7}}, DirRight)
	g.obstacles = map[Cell]struct{}{{6, 7}: {}}

	g.Step()
	require.True(t, g.gameOver)
	frozen := g.Snapshot()

	g.Step()
	g.Step()
	assert.Equal(t, frozen, g.Snapshot(), "terminal state is idempotent")
}

func TestInvincibleObstacleBounce(t *testing.T) {
	g := newTestGame(t, func(o *Options) {
		o.Obstacles = true
		o.Invincible = true
	})
	place(g, []Cell{{5, 7}, {4, 7}, {3, 7}}, DirRight)
	g.obstacles = map[Cell]struct{}{{6, 7}: {}}
	g.food = Cell{0, 0}

	g.Step()

	assert.False(t, g.gameOver)
	assert.Equal(t, Cell{4, 7}, g.snake[0], "bounced onto the cell behind the head")
	assert.Equal(t, DirLeft, g.direction)
}

func TestObstacleBounceBlockedKeepsHeadOnObstacle(t *testing.T) {
	// When the bounce candidate is itself an obstacle there is no further
	// correction: the head lands on the obstacle cell and play continues.
	g := newTestGame(t, func(o *Options) {
		o.Obstacles = true
		o.Invincible = true
	})
	place(g, []Cell{{5, 7}, {4, 7}, {3, 7}}, DirRight)
	g.obstacles = map[Cell]struct{}{{6, 7}: {}, {4, 7}: {}}
	g.food = Cell{0, 0}

	g.Step()

	assert.False(t, g.gameOver)
	assert.Equal(t, Cell{6, 7}, g.snake[0])
	assert.Equal(t, DirRight, g.direction, "heading unchanged without a bounce")
}

func TestSelfCollisionEndsRun(t *testing.T) {
	g := newTestGame(t, nil)
	place(g, []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}}, DirRight)
	g.SetDirection(DirDown)

	g.Step()

	assert.True(t, g.gameOver)
}

func TestInvincibleIgnoresSelfCollision(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.Invincible = true })
	place(g, []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}}, DirRight)
	g.food = Cell{0, 0}
	g.SetDirection(DirDown)

	g.Step()

	assert.False(t, g.gameOver)
	assert.Equal(t, Cell{5, 6}, g.snake[0])
}

func TestSeededRunsAreIdentical(t *testing.T) {
	run := func() Snapshot {
		g := New(Options{
			Width: 20, Height: 20,
			Obstacles:       true,
			PowerUpChance:   0.2,
			ObstacleDensity: 0.2,
			Rand:            rand.New(rand.NewSource(42)),
		})
		moves := []Direction{DirDown, DirLeft, DirUp, DirRight, DirDown}
		for i := 0; i < 50; i++ {
			if i%10 == 3 {
				g.SetDirection(moves[(i/10)%len(moves)])
			}
			g.Step()
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, func(o *Options) {
		o.Obstacles = true
		o.ObstacleDensity = 0.2
	})

	snap := g.Snapshot()
	require.Equal(t, len(g.snake), len(snap.Snake))

	snap.Snake[0] = Cell{-1, -1}
	if len(snap.Obstacles) > 0 {
		snap.Obstacles[0] = Cell{-1, -1}
	}

	assert.NotEqual(t, Cell{-1, -1}, g.snake[0], "snapshot mutation must not reach the game")
	assert.False(t, g.isObstacle(Cell{-1, -1}))
}

func TestPowerUpSpawnRoll(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.PowerUpChance = 1.0 })
	g.food = Cell{0, 0}

	g.Step()

	assert.True(t, g.hasPowerUp, "chance 1.0 spawns on the first open tick")

	was := g.powerUp
	g.Step()
	assert.Equal(t, was, g.powerUp, "no re-roll while a power-up exists")
}
