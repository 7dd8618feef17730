package game

import "strings"

// Word joins the characters of row into an uppercase string.
func Word(row []Letter) string {
	var b strings.Builder
	b.Grow(len(row))
	for _, l := range row {
		b.WriteByte(upper(l.Char))
	}
	return b.String()
}

// IsAccepted reports whether row spells a complete word the dictionary accepts.
// Rows with blanks never pass.
func IsAccepted(row []Letter, dict Dictionary) bool {
	if len(row) != Cols || dict == nil {
		return false
	}
	for _, l := range row {
		if l.IsBlank() {
			return false
		}
	}
	return dict.Contains(Word(row))
}
