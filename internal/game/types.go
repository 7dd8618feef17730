// apps/go-term/internal/game/types.go
//
// Core type definitions for the terminal game engine.
// Defines:
//   - State: feedback classification of a single cell or keyboard key.
//   - Outcome: coarse lifecycle of a session (playing/won/lost/quit).
//   - Dictionary: membership test used to validate guesses.

package game

const (
	Rows = 6 // guesses per game
	Cols = 5 // letters per word
)

// State represents the feedback for a single letter.
// Values are ordered by precedence: a later value always outranks an earlier one
// when merged into the keyboard.
type State uint8

const (
	StateEmpty   State = iota // blank board cell
	StatePending              // typed but not yet submitted / key never guessed
	StateAbsent               // letter not in the solution
	StatePresent              // letter in the solution, different position
	StateCorrect              // letter in the correct position
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePending:
		return "pending"
	case StateAbsent:
		return "absent"
	case StatePresent:
		return "present"
	case StateCorrect:
		return "correct"
	}
	return "unknown"
}

// Outranks reports whether s should replace other on the keyboard.
func (s State) Outranks(other State) bool { return s > other }

// Outcome is the lifecycle of a game session.
type Outcome uint8

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	}
	return "unknown"
}

// Dictionary reports whether an uppercase word is an accepted guess.
type Dictionary interface {
	Contains(word string) bool
}
