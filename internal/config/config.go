package config

import "time"

// Defaults for the game parameters. Every value can be overridden through
// a SNAKE_* environment variable.
const (
	DefaultGridWidth       = 15
	DefaultGridHeight      = 15
	DefaultTickDelay       = 150 * time.Millisecond
	DefaultPowerUpChance   = 0.01
	DefaultObstacleDensity = 0.2

	// MinGridSize keeps spawn placement feasible: the starting snake,
	// the safety corridor and at least one food candidate must all fit.
	MinGridSize = 10
)

// Config carries the tunable game parameters plus the rule toggles the
// title screen starts from.
type Config struct {
	GridWidth       int
	GridHeight      int
	TickDelay       time.Duration
	PowerUpChance   float64
	ObstacleDensity float64

	Obstacles  bool
	WrapWalls  bool
	Invincible bool
}

// Load reads the configuration from the environment, falling back to the
// defaults above. Malformed values keep their fallback; grid dimensions
// are clamped to MinGridSize.
func Load() Config {
	cfg := Config{
		GridWidth:       GetEnvInt("SNAKE_GRID_WIDTH", DefaultGridWidth),
		GridHeight:      GetEnvInt("SNAKE_GRID_HEIGHT", DefaultGridHeight),
		TickDelay:       time.Duration(GetEnvInt("SNAKE_STEP_DELAY_MS", int(DefaultTickDelay/time.Millisecond))) * time.Millisecond,
		PowerUpChance:   GetEnvFloat("SNAKE_POWERUP_CHANCE", DefaultPowerUpChance),
		ObstacleDensity: GetEnvFloat("SNAKE_OBSTACLE_DENSITY", DefaultObstacleDensity),
		Obstacles:       GetEnvBool("SNAKE_OBSTACLES", true),
		WrapWalls:       GetEnvBool("SNAKE_WRAP_WALLS", false),
		Invincible:      GetEnvBool("SNAKE_INVINCIBLE", false),
	}

	if cfg.GridWidth < MinGridSize {
		cfg.GridWidth = MinGridSize
	}
	if cfg.GridHeight < MinGridSize {
		cfg.GridHeight = MinGridSize
	}
	if cfg.TickDelay <= 0 {
		cfg.TickDelay = DefaultTickDelay
	}
	return cfg
}
