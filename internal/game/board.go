package game

// Board is the 6x5 grid plus the editing cursor.
// Cells in rows after Row, and cells at or after Col in row Row, are blank.
type Board struct {
	Cells [Rows][Cols]Letter
	Row   int // 0..Rows
	Col   int // 0..Cols
}

// NewBoard returns an all-blank board with the cursor at (0,0).
func NewBoard() Board {
	var b Board
	for r := range b.Cells {
		for c := range b.Cells[r] {
			b.Cells[r][c] = Blank()
		}
	}
	return b
}

// Insert writes c into the cursor cell and advances the column.
// It reports false (and changes nothing) for non-letters, a full row or a
// board with no rows left.
func (b *Board) Insert(c rune) bool {
	if b.Row >= Rows || b.Col >= Cols || c < 0 || c > 0x7f || !isLetter(byte(c)) {
		return false
	}
	l, err := NewLetter(byte(c), StatePending)
	if err != nil {
		return false
	}
	b.Cells[b.Row][b.Col] = l
	b.Col++
	return true
}

// Delete clears the cell before the cursor.
func (b *Board) Delete() bool {
	if b.Row >= Rows || b.Col == 0 {
		return false
	}
	b.Col--
	b.Cells[b.Row][b.Col] = Blank()
	return true
}

// Current returns the active row. It is nil once every row is used.
func (b *Board) Current() []Letter {
	if b.Row >= Rows {
		return nil
	}
	return b.Cells[b.Row][:]
}

// RowFull reports whether the active row has all its letters.
func (b *Board) RowFull() bool { return b.Row < Rows && b.Col == Cols }

// commit stores states into the active row and moves to the next one.
func (b *Board) commit(states []State) {
	for i := range b.Cells[b.Row] {
		b.Cells[b.Row][i].State = states[i]
	}
	b.Row++
	b.Col = 0
}
