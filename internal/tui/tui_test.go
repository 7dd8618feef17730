package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

const (
	screenW = 40
	screenH = 20
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(screenW, screenH)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(t *testing.T, s tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	t.Helper()
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	require.NotEmpty(t, c.Runes, "empty cell at %d,%d", x, y)
	_, bg, _ := c.Style.Decompose()
	return c.Runes[0], bg
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

// script replays events, then reports end of input.
type script struct {
	events []tcell.Event
}

func (s *script) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *script) text(text string) *script {
	for _, r := range text {
		s.events = append(s.events, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return s
}

func (s *script) key(k tcell.Key) *script {
	s.events = append(s.events, tcell.NewEventKey(k, 0, tcell.ModNone))
	return s
}

func (s *script) guess(w string) *script { return s.text(w).key(tcell.KeyEnter) }

var dict = words.FromWords(
	[]string{"ERASE", "CRANE", "BUMPY", "ABBEY"},
	[]string{"SPEED", "EBBED"},
)

func TestPalette(t *testing.T) {
	p := DefaultPalette()
	require.Equal(t, tcell.ColorBlack, p.Background(game.StateEmpty))
	require.Equal(t, tcell.ColorBlack, p.Background(game.StatePending))
	require.Equal(t, tcell.NewRGBColor(0x33, 0x33, 0x33), p.Background(game.StateAbsent))
	require.Equal(t, tcell.NewRGBColor(0xad, 0xad, 0x07), p.Background(game.StatePresent))
	require.Equal(t, tcell.NewRGBColor(0x17, 0x60, 0x02), p.Background(game.StateCorrect))

	fg, bg, _ := p.Style(game.StateCorrect).Decompose()
	require.Equal(t, tcell.ColorWhite, fg)
	require.Equal(t, p.Correct, bg)
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()

	t.Run("overrides only given keys", func(t *testing.T) {
		p := filepath.Join(dir, "theme.yaml")
		require.NoError(t, os.WriteFile(p, []byte("correct: \"#6aaa64\"\npresent: yellow\n"), 0o644))
		pal, err := LoadPalette(p)
		require.NoError(t, err)
		require.Equal(t, tcell.NewRGBColor(0x6a, 0xaa, 0x64), pal.Correct)
		require.Equal(t, tcell.ColorYellow, pal.Present)
		require.Equal(t, DefaultPalette().Absent, pal.Absent)
	})

	t.Run("unknown color", func(t *testing.T) {
		p := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(p, []byte("absent: not-a-color\n"), 0o644))
		_, err := LoadPalette(p)
		require.ErrorContains(t, err, "not-a-color")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		p := filepath.Join(dir, "broken.yaml")
		require.NoError(t, os.WriteFile(p, []byte("correct: [\n"), 0o644))
		_, err := LoadPalette(p)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPalette(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})
}

func TestRender(t *testing.T) {
	s := newScreen(t)
	pal := DefaultPalette()
	g := game.New("SPEED", dict)
	for _, r := range "ERASE" {
		g.Insert(r)
	}
	_, err := g.Submit()
	require.NoError(t, err)
	g.Insert('s')
	g.Insert('p')

	Render(s, View{Board: g.Board, Keyboard: g.Keyboard, Status: "hello"}, pal)

	t.Run("scored row", func(t *testing.T) {
		want := []struct {
			r  rune
			bg tcell.Color
		}{
			{'E', pal.Present}, {'R', pal.Absent}, {'A', pal.Absent}, {'S', pal.Present}, {'E', pal.Present},
		}
		for col, w := range want {
			x, y := CellPos(0, col)
			r, bg := cellAt(t, s, x, y)
			require.Equal(t, w.r, r)
			require.Equal(t, w.bg, bg, "col %d", col)
		}
	})

	t.Run("active row and blanks", func(t *testing.T) {
		x, y := CellPos(1, 0)
		r, bg := cellAt(t, s, x, y)
		require.Equal(t, 'S', r)
		require.Equal(t, pal.Blank, bg)

		x, y = CellPos(1, 2)
		r, _ = cellAt(t, s, x, y)
		require.Equal(t, rune(game.BlankChar), r)

		x, y = CellPos(5, 4)
		r, _ = cellAt(t, s, x, y)
		require.Equal(t, rune(game.BlankChar), r)
	})

	t.Run("keyboard", func(t *testing.T) {
		for c, want := range map[byte]tcell.Color{
			'E': pal.Present, 'R': pal.Absent, 'S': pal.Present, 'Q': pal.Blank, 'M': pal.Blank,
		} {
			x, y, ok := KeyPos(c)
			require.True(t, ok)
			r, bg := cellAt(t, s, x, y)
			require.Equal(t, rune(c), r)
			require.Equal(t, want, bg, "key %c", c)
		}
		require.Equal(t, " Q W E R T Y U I O P", rowText(s, keyboardY)[:20])
		require.Equal(t, "  A S D F G H J K L", rowText(s, keyboardY+1)[:19])
		require.Equal(t, "   Z X C V B N M", rowText(s, keyboardY+2)[:16])
		_, _, ok := KeyPos('1')
		require.False(t, ok)
	})

	t.Run("status and cursor", func(t *testing.T) {
		require.Contains(t, rowText(s, statusY), "hello")
		x, y, visible := s.GetCursor()
		wx, wy := CellPos(1, 2)
		require.True(t, visible)
		require.Equal(t, wx, x)
		require.Equal(t, wy, y)
	})

	t.Run("cursor hidden when over", func(t *testing.T) {
		Render(s, View{Board: g.Board, Keyboard: g.Keyboard, Over: true}, pal)
		_, _, visible := s.GetCursor()
		require.False(t, visible)
	})
}

func TestSessionWin(t *testing.T) {
	s := newScreen(t)
	g := game.New("SPEED", dict)
	in := (&script{}).guess("erase").guess("speed").text("x")

	out := NewSession(s, g, WithEvents(in)).Run()
	require.Equal(t, game.OutcomeWon, out)
	require.Equal(t, []string{"ERASE", "SPEED"}, g.Guesses)
	require.Empty(t, in.events, "result screen consumed the final key")
	require.Contains(t, rowText(s, statusY), "Solved in 2/6!")
	for c := 0; c < game.Cols; c++ {
		require.Equal(t, game.StateCorrect, g.Board.Cells[1][c].State)
	}
}

func TestSessionLoss(t *testing.T) {
	s := newScreen(t)
	g := game.New("SPEED", dict)
	in := &script{}
	for i := 0; i < game.Rows; i++ {
		in.guess("CRANE")
	}
	in.text("q")

	out := NewSession(s, g, WithEvents(in)).Run()
	require.Equal(t, game.OutcomeLost, out)
	require.Len(t, g.Guesses, game.Rows)
	require.Contains(t, rowText(s, statusY), "The word was SPEED.")
}

func TestSessionQuitKeepsBoard(t *testing.T) {
	s := newScreen(t)
	g := game.New("SPEED", dict)
	in := (&script{}).text("ab").key(tcell.KeyEscape).text("cde")

	out := NewSession(s, g, WithEvents(in)).Run()
	require.Equal(t, game.OutcomeQuit, out)
	require.Len(t, in.events, 3, "nothing read after Escape")
	row, col := g.Cursor()
	require.Equal(t, 0, row)
	require.Equal(t, 2, col)
	require.Equal(t, byte('B'), g.Board.Cells[0][1].Char)
}

func TestSessionEditing(t *testing.T) {
	s := newScreen(t)
	g := game.New("SPEED", dict)
	in := &script{}
	in.text("ab1-").key(tcell.KeyBackspace2).key(tcell.KeyBackspace).key(tcell.KeyBackspace)
	in.text("crane!z").key(tcell.KeyCtrlC)

	out := NewSession(s, g, WithEvents(in)).Run()
	require.Equal(t, game.OutcomeQuit, out)
	require.Equal(t, "CRANE", game.Word(g.Board.Cells[0][:]))
	_, col := g.Cursor()
	require.Equal(t, game.Cols, col)
}

func TestSessionRejectedSubmitShowsStatus(t *testing.T) {
	tests := []struct {
		name   string
		typed  string
		status string
	}{
		{"incomplete", "CRA", "Not enough letters"},
		{"unknown word", "CRANK", "Not in word list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScreen(t)
			g := game.New("SPEED", dict)
			in := (&script{}).guess(tt.typed)

			// End of input quits, leaving the last frame on screen.
			out := NewSession(s, g, WithEvents(in)).Run()
			require.Equal(t, game.OutcomeQuit, out)
			require.Contains(t, rowText(s, statusY), tt.status)
			row, col := g.Cursor()
			require.Equal(t, 0, row)
			require.Equal(t, len(tt.typed), col)
		})
	}
}

func TestSessionStatusClearsOnNextKey(t *testing.T) {
	s := newScreen(t)
	g := game.New("SPEED", dict)
	in := (&script{}).guess("CRA").text("n")

	NewSession(s, g, WithEvents(in)).Run()
	require.NotContains(t, rowText(s, statusY), "Not enough letters")
}

func TestSessionResize(t *testing.T) {
	s := newScreen(t)
	g := game.New("SPEED", dict)
	in := &script{events: []tcell.Event{tcell.NewEventResize(screenW, screenH)}}
	in.text("s")

	require.Equal(t, game.OutcomeQuit, NewSession(s, g, WithEvents(in)).Run())
	require.Equal(t, byte('S'), g.Board.Cells[0][0].Char)
}
