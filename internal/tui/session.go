// apps/go-term/internal/tui/session.go
//
// Input loop: render, block for a key, dispatch, repeat.
//
// Key mapping:
//   - letter          → Insert
//   - Backspace       → Delete
//   - Enter           → Submit
//   - Escape, Ctrl-C  → Quit
//
// The loop is single-threaded. PollEvent is the only place it waits and it
// waits without a timeout.

package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// EventSource yields terminal events. tcell.Screen satisfies it.
type EventSource interface {
	PollEvent() tcell.Event
}

// Session drives one game on one screen.
type Session struct {
	screen  tcell.Screen
	events  EventSource
	game    *game.Game
	palette Palette
	status  string
}

// Option customizes a Session.
type Option func(*Session)

// WithEvents reads input from src instead of the screen.
func WithEvents(src EventSource) Option {
	return func(s *Session) { s.events = src }
}

// WithPalette overrides DefaultPalette.
func WithPalette(p Palette) Option {
	return func(s *Session) { s.palette = p }
}

// NewSession prepares a loop for g drawing on screen.
func NewSession(screen tcell.Screen, g *game.Game, opts ...Option) *Session {
	s := &Session{
		screen:  screen,
		events:  screen,
		game:    g,
		palette: DefaultPalette(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run plays until the game is won, lost or quit. After a win or loss it
// shows the result and waits for one more key before returning.
func (s *Session) Run() game.Outcome {
	log.Info().Str("game", s.game.ID).Msg("game started")

	for !s.game.Finished() {
		s.draw()
		ev := s.events.PollEvent()
		if ev == nil {
			// screen finalized underneath us
			s.game.Quit()
			break
		}
		s.handle(ev)
	}

	outcome := s.game.Outcome()
	log.Info().
		Str("game", s.game.ID).
		Str("outcome", outcome.String()).
		Int("guesses", len(s.game.Guesses)).
		Msg("game over")

	if outcome == game.OutcomeWon || outcome == game.OutcomeLost {
		s.status = ResultMessage(s.game)
		s.draw()
		s.waitKey()
	}
	return outcome
}

// ResultMessage describes a finished game.
func ResultMessage(g *game.Game) string {
	switch g.Outcome() {
	case game.OutcomeWon:
		return fmt.Sprintf("Solved in %d/%d! Press any key.", len(g.Guesses), game.Rows)
	case game.OutcomeLost:
		return fmt.Sprintf("The word was %s. Press any key.", g.Answer)
	}
	return ""
}

func (s *Session) draw() {
	Render(s.screen, View{
		Board:    s.game.Board,
		Keyboard: s.game.Keyboard,
		Status:   s.status,
		Over:     s.game.Finished(),
	}, s.palette)
}

func (s *Session) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		s.handleKey(ev)
	}
}

func (s *Session) handleKey(ev *tcell.EventKey) {
	s.status = ""
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.game.Quit()
	case tcell.KeyEnter, tcell.KeyLF:
		s.submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s.game.Delete()
	case tcell.KeyRune:
		s.game.Insert(ev.Rune())
	}
}

func (s *Session) submit() {
	row, _ := s.game.Cursor()
	states, err := s.game.Submit()
	switch {
	case errors.Is(err, game.ErrIncompleteGuess):
		s.status = "Not enough letters"
	case errors.Is(err, game.ErrNotInWordList):
		s.status = "Not in word list"
	}
	if err != nil {
		log.Debug().Err(err).Str("game", s.game.ID).Int("row", row).Msg("guess rejected")
		return
	}

	marks := make([]string, len(states))
	for i, st := range states {
		marks[i] = st.String()
	}
	log.Info().
		Str("game", s.game.ID).
		Int("row", row).
		Str("guess", s.game.Guesses[len(s.game.Guesses)-1]).
		Strs("marks", marks).
		Msg("guess accepted")
}

// waitKey blocks until a key press or the end of input.
func (s *Session) waitKey() {
	for {
		switch s.events.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			s.screen.Sync()
			s.draw()
		}
	}
}
