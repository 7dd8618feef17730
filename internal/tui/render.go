// apps/go-term/internal/tui/render.go
//
// Draws the board and keyboard.
// Layout (screen cells):
//   - board cell (row, col) at x = col*2+6, y = row*2+1
//   - keyboard rows at y = 13, 14, 15, indented 1/2/3 columns, one gap per key
//   - status line at y = 17
//
// Rendering reads a View and never touches game state.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

const (
	boardX    = 6
	boardY    = 1
	keyboardY = boardY + game.Rows*2
	statusY   = keyboardY + len(keyboardRows) + 1
)

var keyboardRows = [...]string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// View is what the renderer needs from a session.
type View struct {
	Board    game.Board
	Keyboard game.Keyboard
	Status   string
	Over     bool // hide the cursor
}

// CellPos returns the screen position of board cell (row, col).
func CellPos(row, col int) (x, y int) {
	return col*2 + boardX, row*2 + boardY
}

// KeyPos returns the screen position of keyboard key c, or ok=false.
func KeyPos(c byte) (x, y int, ok bool) {
	for r, line := range keyboardRows {
		for i := 0; i < len(line); i++ {
			if line[i] == c {
				return r + 1 + i*2, keyboardY + r, true
			}
		}
	}
	return 0, 0, false
}

// Render clears the screen and draws v.
func Render(s tcell.Screen, v View, pal Palette) {
	s.SetStyle(tcell.StyleDefault)
	s.Clear()

	for r := range v.Board.Cells {
		for c, l := range v.Board.Cells[r] {
			x, y := CellPos(r, c)
			s.SetContent(x, y, rune(l.Char), nil, pal.Style(l.State))
		}
	}

	for _, line := range keyboardRows {
		for i := 0; i < len(line); i++ {
			x, y, _ := KeyPos(line[i])
			s.SetContent(x, y, rune(line[i]), nil, pal.Style(v.Keyboard.Get(line[i])))
		}
	}

	drawText(s, boardX, statusY, v.Status, tcell.StyleDefault)

	if v.Over || v.Board.Row >= game.Rows {
		s.HideCursor()
	} else {
		s.ShowCursor(CellPos(v.Board.Row, v.Board.Col))
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
