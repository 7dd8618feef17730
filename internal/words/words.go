// apps/go-term/internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the guessable and solution lists from newline-delimited files.
//   - Maintain a set for quick lookups (solutions∪guesses).
//   - Supply RandomAnswer, AnswerAt, Contains and Stats.
//
// Word Lists:
//   - "allowed": valid guesses.
//   - "answers": candidate solutions; always accepted as guesses too.
//
// Constraints:
//   • Words are 5 ASCII letters, case-insensitive, normalized to uppercase.
//   • Blank lines and lines starting with '#' are ignored; any other line
//     that is not a word is skipped and counted.
//   • Lists are immutable after Load.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// WordLength is the number of letters in every accepted word.
const WordLength = 5

// ErrWordListLoad is matched by every *LoadError.
var ErrWordListLoad = errors.New("word list load failed")

// LoadError reports which list could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load word list %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error { return []error{ErrWordListLoad, e.Err} }

// Lists is the loaded dictionary plus the solution candidates.
type Lists struct {
	answers    []string            // solution candidates, file order
	allowedSet map[string]struct{} // answers ∪ guesses
	skipped    int                 // malformed lines dropped during load
}

// Load reads the guessable list at allowedPath and the solution list at
// answersPath. Either file missing, unreadable, or an empty solution list
// yields a *LoadError.
func Load(allowedPath, answersPath string) (*Lists, error) {
	allowed, skippedAllowed, err := readWordFile(allowedPath)
	if err != nil {
		return nil, &LoadError{Path: allowedPath, Err: err}
	}
	answers, skippedAnswers, err := readWordFile(answersPath)
	if err != nil {
		return nil, &LoadError{Path: answersPath, Err: err}
	}
	if len(answers) == 0 {
		return nil, &LoadError{Path: answersPath, Err: errors.New("no words")}
	}
	return build(allowed, answers, skippedAllowed+skippedAnswers), nil
}

// FromWords builds Lists from in-memory words, normalizing them the same
// way Load does.
func FromWords(allowed, answers []string) *Lists {
	a, s1 := normalize(allowed)
	b, s2 := normalize(answers)
	return build(a, b, s1+s2)
}

func build(allowed, answers []string, skipped int) *Lists {
	l := &Lists{
		answers:    answers,
		allowedSet: toSet(answers),
		skipped:    skipped,
	}
	// Ensure all answers are also accepted as guesses
	for _, w := range allowed {
		l.allowedSet[w] = struct{}{}
	}
	return l
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	out, skipped := normalize(lines)
	return out, skipped, nil
}

// normalize uppercases and trims lines, keeping only valid words.
func normalize(lines []string) ([]string, int) {
	var out []string
	skipped := 0
	for _, line := range lines {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		w = strings.ToUpper(w)
		if len(w) != WordLength || !isAlpha(w) {
			skipped++
			continue
		}
		out = append(out, w)
	}
	return out, skipped
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a uniformly random solution using crypto/rand.
func (l *Lists) RandomAnswer() (string, error) {
	if len(l.answers) == 0 {
		return "", errors.New("pick answer: no answers loaded")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.answers))))
	if err != nil {
		return "", fmt.Errorf("pick answer: %w", err)
	}
	return l.answers[n.Int64()], nil
}

// AnswerAt returns the i-th solution, wrapping around the list.
// It returns "" when no answers are loaded.
func (l *Lists) AnswerAt(i int) string {
	n := len(l.answers)
	if n == 0 {
		return ""
	}
	return l.answers[((i%n)+n)%n]
}

// Len returns the number of solution candidates.
func (l *Lists) Len() int { return len(l.answers) }

// Contains reports whether w is an accepted guess (answers ∪ guesses).
func (l *Lists) Contains(w string) bool {
	_, ok := l.allowedSet[strings.ToUpper(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed, skipped lines).
func (l *Lists) Stats() (answersCount, allowedCount, skipped int) {
	return len(l.answers), len(l.allowedSet), l.skipped
}
