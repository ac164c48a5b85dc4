package draw

import (
	"strings"

	"github.com/tomz197/sshnake/internal/game"
)

// cellWidth is how many terminal columns one board cell occupies. Two
// columns per cell keeps the board roughly square on common fonts.
const cellWidth = 2

// hudRows is the number of rows reserved above the board for the HUD line.
const hudRows = 2

// Board lays a game grid out on the terminal: two columns per cell,
// centered, with a box border. It draws from read-only snapshots only.
type Board struct {
	gridW, gridH int
	offsetCol    int // 0-based terminal offset of the border's top-left
	offsetRow    int
}

// NewBoard creates a layout for a gridW x gridH game board.
func NewBoard(gridW, gridH int) *Board {
	return &Board{gridW: gridW, gridH: gridH}
}

// Fits reports whether the board plus border and HUD fit in the terminal.
func (b *Board) Fits(termW, termH int) bool {
	return termW >= b.gridW*cellWidth+2 && termH >= b.gridH+2+hudRows
}

// Layout centers the board for the given terminal size.
func (b *Board) Layout(termW, termH int) {
	b.offsetCol = (termW - b.gridW*cellWidth - 2) / 2
	b.offsetRow = hudRows + (termH-hudRows-b.gridH-2)/2
	if b.offsetCol < 0 {
		b.offsetCol = 0
	}
	if b.offsetRow < hudRows {
		b.offsetRow = hudRows
	}
}

// HUDPosition returns the 1-based position of the HUD line, aligned with
// the board's left border.
func (b *Board) HUDPosition() (col, row int) {
	return b.offsetCol + 1, b.offsetRow
}

// MessagePosition returns a 1-based position centered inside the board for
// overlay text of the given length.
func (b *Board) MessagePosition(textLen int) (col, row int) {
	col = b.offsetCol + 2 + (b.gridW*cellWidth-textLen)/2
	if col < 1 {
		col = 1
	}
	row = b.offsetRow + 2 + b.gridH/2
	return col, row
}

// RenderBorder draws the box border around the playfield.
func (b *Board) RenderBorder(cw *ChunkWriter) {
	inner := strings.Repeat("─", b.gridW*cellWidth)
	cw.WriteAt(b.offsetCol+1, b.offsetRow+1, "┌"+inner+"┐")
	for row := 0; row < b.gridH; row++ {
		cw.WriteAt(b.offsetCol+1, b.offsetRow+2+row, "│")
		cw.WriteAt(b.offsetCol+2+b.gridW*cellWidth, b.offsetRow+2+row, "│")
	}
	cw.WriteAt(b.offsetCol+1, b.offsetRow+2+b.gridH, "└"+inner+"┘")
}

// Render draws the full board contents from a snapshot: obstacles, food,
// power-up, then the snake so the body overdraws anything it sits on.
func (b *Board) Render(cw *ChunkWriter, snap game.Snapshot) {
	for _, c := range snap.Obstacles {
		b.drawCell(cw, c, ColorObstacle, "██")
	}
	if snap.HasFood {
		b.drawCell(cw, snap.Food, ColorFood, "● ")
	}
	if snap.HasPowerUp {
		b.drawCell(cw, snap.PowerUp, ColorPowerUp, "2x")
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		color := ColorSnake
		if i == 0 {
			color = ColorHead
		}
		b.drawCell(cw, snap.Snake[i], color, "██")
	}
}

// drawCell writes one colored cell glyph at the cell's terminal position.
func (b *Board) drawCell(cw *ChunkWriter, c game.Cell, color, glyph string) {
	col := b.offsetCol + 2 + c.X*cellWidth
	row := b.offsetRow + 2 + c.Y
	cw.WriteColored(col, row, color, glyph)
}
