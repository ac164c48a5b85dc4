// Package draw renders the game board to an ANSI terminal.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// SGR color sequences used by the board renderer. The palette follows the
// original look: gray obstacles, red food, magenta power-up, green snake
// with a brighter head.
const (
	ColorReset    = "\033[0m"
	ColorObstacle = "\033[90m"
	ColorFood     = "\033[91m"
	ColorPowerUp  = "\033[95m"
	ColorSnake    = "\033[32m"
	ColorHead     = "\033[92m"
	ColorDim      = "\033[2m"
)

// Block characters for drawing.
const (
	BlockFull  = '█'
	BlockLight = '░'
	BlockEmpty = ' '
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}
