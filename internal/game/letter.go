package game

import (
	"errors"
	"fmt"
)

// BlankChar marks an unfilled board cell.
const BlankChar byte = '_'

// ErrInvalidCharacter is matched by every *InvalidCharacterError.
var ErrInvalidCharacter = errors.New("character must be an ASCII letter or the blank marker")

// InvalidCharacterError records the byte that failed Letter construction.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q: %v", e.Char, ErrInvalidCharacter)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// Letter is one board cell or keyboard key.
type Letter struct {
	Char  byte
	State State
}

// NewLetter validates c and returns a Letter holding its uppercase form.
func NewLetter(c byte, s State) (Letter, error) {
	switch {
	case c == BlankChar:
		return Letter{Char: c, State: s}, nil
	case isLetter(c):
		return Letter{Char: upper(c), State: s}, nil
	}
	return Letter{}, &InvalidCharacterError{Char: c}
}

// Blank returns an unfilled cell.
func Blank() Letter { return Letter{Char: BlankChar, State: StateEmpty} }

// IsBlank reports whether the cell has not been filled.
func (l Letter) IsBlank() bool { return l.Char == BlankChar }

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
