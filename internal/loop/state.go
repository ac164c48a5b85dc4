package loop

import (
	"github.com/tomz197/sshnake/internal/config"
	"github.com/tomz197/sshnake/internal/game"
)

// Phase represents the current screen of the game loop.
type Phase int

const (
	PhaseTitle   Phase = iota // Title screen with rule toggles
	PhasePlaying              // Active gameplay, ticker advances the game
	PhasePaused               // Board visible, ticks withheld
	PhaseOver                 // Terminal state reached, restart prompt
)

// State holds everything the driver tracks across frames: the current
// phase, the rule toggles chosen on the title screen, and the engine for
// the run in progress.
type State struct {
	Phase      Phase
	Obstacles  bool
	WrapWalls  bool
	Invincible bool
	Game       *game.Game
	Running    bool

	cfg config.Config
}

// NewState creates the initial driver state with the configured rule
// defaults, sitting on the title screen.
func NewState(cfg config.Config) *State {
	return &State{
		Phase:      PhaseTitle,
		Obstacles:  cfg.Obstacles,
		WrapWalls:  cfg.WrapWalls,
		Invincible: cfg.Invincible,
		Running:    true,
		cfg:        cfg,
	}
}

// StartGame builds a fresh engine from the chosen rules and enters play.
// Called for both the first start and every restart.
func (s *State) StartGame() {
	s.Game = game.New(game.Options{
		Width:           s.cfg.GridWidth,
		Height:          s.cfg.GridHeight,
		Obstacles:       s.Obstacles,
		WrapWalls:       s.WrapWalls,
		Invincible:      s.Invincible,
		PowerUpChance:   s.cfg.PowerUpChance,
		ObstacleDensity: s.cfg.ObstacleDensity,
	})
	s.Phase = PhasePlaying
}
