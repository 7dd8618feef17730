// apps/go-term/internal/game/game.go
//
// Game session state machine.
//
//	Editing(row,col) --Insert/Delete--> Editing(row,col±1)
//	Editing(row,5)   --Submit(valid)--> Editing(row+1,0) | Won | Lost
//	any              --Quit----------> Quit
//
// Rejected transitions return an error (Submit) or false (Insert/Delete) and
// leave the game untouched.
package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrGameFinished    = errors.New("game finished")
	ErrIncompleteGuess = errors.New("not enough letters")
	ErrNotInWordList   = errors.New("not in word list")
)

// Game holds the state of a single session. It is owned by one loop and
// is not safe for concurrent use.
type Game struct {
	ID       string     // random identifier for log correlation
	Answer   string     // the solution, uppercase
	Board    Board      // guess grid and cursor
	Keyboard Keyboard   // best-known state per letter
	Guesses  []string   // accepted guesses, in order
	dict     Dictionary // accepted words
	outcome  Outcome
}

// New starts a game for answer, validating guesses against dict.
func New(answer string, dict Dictionary) *Game {
	return &Game{
		ID:       uuid.NewString(),
		Answer:   strings.ToUpper(answer),
		Board:    NewBoard(),
		Keyboard: NewKeyboard(),
		Guesses:  []string{},
		dict:     dict,
	}
}

// Outcome reports the current lifecycle state.
func (g *Game) Outcome() Outcome { return g.outcome }

// Finished reports whether the game accepts no further edits.
func (g *Game) Finished() bool { return g.outcome != OutcomePlaying }

// Cursor returns the active row and column.
func (g *Game) Cursor() (row, col int) { return g.Board.Row, g.Board.Col }

// Insert types c into the active row.
func (g *Game) Insert(c rune) bool {
	if g.Finished() {
		return false
	}
	return g.Board.Insert(c)
}

// Delete removes the last typed letter of the active row.
func (g *Game) Delete() bool {
	if g.Finished() {
		return false
	}
	return g.Board.Delete()
}

// Submit scores the active row and advances to the next one.
//
// Validation rules:
//   - Game must not be finished.
//   - Row must have all Cols letters.
//   - Word must be in the dictionary.
//
// State transitions:
//   - All Correct → Won.
//   - Else if no rows remain → Lost.
func (g *Game) Submit() ([]State, error) {
	if g.Finished() {
		return nil, ErrGameFinished
	}
	if !g.Board.RowFull() {
		return nil, ErrIncompleteGuess
	}
	row := g.Board.Current()
	if !IsAccepted(row, g.dict) {
		return nil, ErrNotInWordList
	}

	states := Score(row, g.Answer)
	g.Keyboard.Merge(row, states)
	g.Guesses = append(g.Guesses, Word(row))
	g.Board.commit(states)

	if allCorrect(states) {
		g.outcome = OutcomeWon
	} else if g.Board.Row >= Rows {
		g.outcome = OutcomeLost
	}
	return states, nil
}

// Quit ends the session immediately. The board is left as is.
func (g *Game) Quit() {
	if g.outcome == OutcomePlaying {
		g.outcome = OutcomeQuit
	}
}
