// apps/go-term/internal/game/engine.go
//
// Feedback engine.
// Responsibilities:
//   - Score a guess against the solution with the two-pass algorithm.
//   - Keep the on-screen keyboard's best-known state per letter.
//
// Notes:
//   - Inputs are uppercase A–Z; validation happens in Letter construction.
//   - The pool is a per-call letter count, so repeated letters in the guess
//     never earn more non-absent marks than the solution holds.
package game

// Score classifies each letter of guess against solution.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the solution letters left over (the pool).
//
// Pass 2:
//   - For each non-correct letter, left to right: Present if the pool still
//     holds that letter (decrementing it), otherwise Absent.
func Score(guess []Letter, solution string) []State {
	n := len(guess)
	res := make([]State, n)
	if len(solution) != n {
		return res
	}

	var pool [26]int

	// First pass: exact matches; everything else feeds the pool.
	for i := 0; i < n; i++ {
		if upper(guess[i].Char) == solution[i] {
			res[i] = StateCorrect
		} else if j := idx(solution[i]); j >= 0 && j < 26 {
			pool[j]++
		}
	}

	// Second pass: presents/absents for the remaining tiles.
	for i := 0; i < n; i++ {
		if res[i] == StateCorrect {
			continue
		}
		j := idx(upper(guess[i].Char))
		if j >= 0 && j < 26 && pool[j] > 0 {
			res[i] = StatePresent
			pool[j]--
		} else {
			res[i] = StateAbsent
		}
	}
	return res
}

// Keyboard maps each letter A–Z to the best state seen so far.
type Keyboard struct {
	keys [26]State
}

// NewKeyboard returns a keyboard with every key Pending.
func NewKeyboard() Keyboard {
	var k Keyboard
	for i := range k.keys {
		k.keys[i] = StatePending
	}
	return k
}

// Get returns the state of key c. Non-letters report Empty.
func (k *Keyboard) Get(c byte) State {
	j := idx(upper(c))
	if j < 0 || j >= 26 {
		return StateEmpty
	}
	return k.keys[j]
}

// Merge folds a scored guess into the keyboard. A key only moves up the
// precedence Pending < Absent < Present < Correct.
func (k *Keyboard) Merge(guess []Letter, states []State) {
	for i := 0; i < len(guess) && i < len(states); i++ {
		j := idx(upper(guess[i].Char))
		if j < 0 || j >= 26 {
			continue
		}
		if states[i].Outranks(k.keys[j]) {
			k.keys[j] = states[i]
		}
	}
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(c byte) int { return int(c) - 'A' }

// allCorrect returns true if every state is Correct.
func allCorrect(s []State) bool {
	if len(s) == 0 {
		return false
	}
	for _, x := range s {
		if x != StateCorrect {
			return false
		}
	}
	return true
}
