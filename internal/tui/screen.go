package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Open puts the terminal into raw mode on the alternate screen buffer.
// Callers must Fini the returned screen on every exit path.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return s, nil
}
