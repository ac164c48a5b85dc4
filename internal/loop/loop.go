// Package loop drives the game: it owns the engine, converts key events to
// direction intents, advances the simulation on a fixed cadence and redraws
// after every tick.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/sshnake/internal/config"
	"github.com/tomz197/sshnake/internal/draw"
	"github.com/tomz197/sshnake/internal/game"
	"github.com/tomz197/sshnake/internal/input"
)

// Options configures a loop run.
type Options struct {
	// TermSizeFunc reports the terminal dimensions each frame. Nil falls
	// back to querying os.Stdout; SSH sessions supply a PTY-backed one.
	TermSizeFunc draw.TermSizeFunc
}

// Run starts the game loop on the given reader/writer pair and blocks
// until the player quits or the input stream ends.
func Run(r *bufio.Reader, w io.Writer, cfg config.Config, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	stream := input.StartStream(r)
	cw := draw.NewChunkWriter(w)
	board := draw.NewBoard(cfg.GridWidth, cfg.GridHeight)
	state := NewState(cfg)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	ticker := time.NewTicker(cfg.TickDelay)
	defer ticker.Stop()

	for state.Running {
		select {
		case ev, ok := <-stream.Events():
			if !ok {
				state.Running = false
				continue
			}
			handleEvent(state, ev)
		case <-ticker.C:
			if state.Phase == PhasePlaying {
				state.Game.Step()
				if state.Game.Snapshot().GameOver {
					state.Phase = PhaseOver
				}
			}
		}

		if err := drawFrame(state, cw, board, sizeFunc); err != nil {
			return err
		}
	}

	draw.ClearScreen(w)
	return nil
}

// handleEvent routes one key event according to the current phase.
func handleEvent(state *State, ev input.Event) {
	if ev == input.EventQuit {
		state.Running = false
		return
	}

	switch state.Phase {
	case PhaseTitle:
		switch ev {
		case input.EventToggleObstacles:
			state.Obstacles = !state.Obstacles
		case input.EventToggleWrap:
			state.WrapWalls = !state.WrapWalls
		case input.EventToggleInvincible:
			state.Invincible = !state.Invincible
		case input.EventRestart, input.EventPause:
			state.StartGame()
		}

	case PhasePlaying:
		switch ev {
		case input.EventUp:
			state.Game.SetDirection(game.DirUp)
		case input.EventDown:
			state.Game.SetDirection(game.DirDown)
		case input.EventLeft:
			state.Game.SetDirection(game.DirLeft)
		case input.EventRight:
			state.Game.SetDirection(game.DirRight)
		case input.EventPause:
			state.Phase = PhasePaused
		case input.EventRestart:
			state.StartGame()
		}

	case PhasePaused:
		switch ev {
		case input.EventPause:
			state.Phase = PhasePlaying
		case input.EventRestart:
			state.StartGame()
		}

	case PhaseOver:
		if ev == input.EventRestart || ev == input.EventPause {
			state.StartGame()
		}
	}
}

// drawFrame redraws the whole screen for the current phase.
func drawFrame(state *State, cw *draw.ChunkWriter, board *draw.Board, sizeFunc draw.TermSizeFunc) error {
	termW, termH, err := sizeFunc()
	if err != nil {
		return err
	}

	draw.ClearScreen(cw)

	if !board.Fits(termW, termH) {
		drawTooSmall(cw, termW, termH)
		return cw.Flush()
	}
	board.Layout(termW, termH)

	switch state.Phase {
	case PhaseTitle:
		drawTitleScreen(cw, state, termW, termH)
	default:
		snap := state.Game.Snapshot()
		drawHUD(cw, board, state, snap.Score)
		board.RenderBorder(cw)
		board.Render(cw, snap)
		switch state.Phase {
		case PhasePaused:
			drawOverlay(cw, board, "PAUSED - space to resume")
		case PhaseOver:
			drawOverlay(cw, board, "GAME OVER - R to restart, Q to quit")
		}
	}

	return cw.Flush()
}
