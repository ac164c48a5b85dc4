package loop

import (
	"fmt"

	"github.com/tomz197/sshnake/internal/draw"
)

// onOff renders a toggle state for the title screen.
func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "off"
}

// drawTitleScreen draws the title, rule toggles and control help.
func drawTitleScreen(cw *draw.ChunkWriter, state *State, termW, termH int) {
	centerX := termW / 2
	centerY := termH / 2

	lines := []string{
		"S N A K E",
		"",
		fmt.Sprintf("[1] Obstacle blobs: %s", onOff(state.Obstacles)),
		fmt.Sprintf("[2] Wrap walls:     %s", onOff(state.WrapWalls)),
		fmt.Sprintf("[3] Invincible:     %s", onOff(state.Invincible)),
		"",
		"Arrows / WASD / HJKL to steer",
		"SPACE pauses, R restarts, Q quits",
		"",
		"Press ENTER to start",
	}

	row := centerY - len(lines)/2
	for i, line := range lines {
		cw.WriteAt(centerX-len(line)/2, row+i, line)
	}
}

// drawHUD draws the score line above the board.
func drawHUD(cw *draw.ChunkWriter, board *draw.Board, state *State, score int) {
	col, row := board.HUDPosition()

	rules := ""
	if state.Obstacles {
		rules += " obstacles"
	}
	if state.WrapWalls {
		rules += " wrap"
	}
	if state.Invincible {
		rules += " invincible"
	}
	if rules != "" {
		rules = draw.ColorDim + " |" + rules + draw.ColorReset
	}

	cw.WriteAt(col, row, fmt.Sprintf("Score: %d%s", score, rules))
}

// drawOverlay centers a status message over the board.
func drawOverlay(cw *draw.ChunkWriter, board *draw.Board, text string) {
	col, row := board.MessagePosition(len(text))
	cw.WriteAt(col, row, text)
}

// drawTooSmall tells the player the terminal cannot hold the board.
func drawTooSmall(cw *draw.ChunkWriter, termW, termH int) {
	msg := "Terminal too small - please resize"
	col := termW/2 - len(msg)/2
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, termH/2, msg)
}
