package tui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Palette maps feedback states to colors. It is the only place that knows
// what a state looks like.
type Palette struct {
	Blank   tcell.Color // Empty and Pending cells/keys
	Absent  tcell.Color
	Present tcell.Color
	Correct tcell.Color
	Text    tcell.Color
}

// DefaultPalette is black / dark gray / mustard / green with white letters.
func DefaultPalette() Palette {
	return Palette{
		Blank:   tcell.ColorBlack,
		Absent:  tcell.NewRGBColor(0x33, 0x33, 0x33),
		Present: tcell.NewRGBColor(0xad, 0xad, 0x07),
		Correct: tcell.NewRGBColor(0x17, 0x60, 0x02),
		Text:    tcell.ColorWhite,
	}
}

// Background returns the fill color for s.
func (p Palette) Background(s game.State) tcell.Color {
	switch s {
	case game.StateAbsent:
		return p.Absent
	case game.StatePresent:
		return p.Present
	case game.StateCorrect:
		return p.Correct
	}
	return p.Blank
}

// Style returns the cell style for s.
func (p Palette) Style(s game.State) tcell.Style {
	return tcell.StyleDefault.Background(p.Background(s)).Foreground(p.Text)
}

// themeFile is the YAML shape of a palette override. Colors are "#rrggbb"
// or a color name tcell knows; omitted keys keep the default.
type themeFile struct {
	Blank   string `yaml:"blank"`
	Absent  string `yaml:"absent"`
	Present string `yaml:"present"`
	Correct string `yaml:"correct"`
	Text    string `yaml:"text"`
}

// LoadPalette reads a YAML theme from path on top of DefaultPalette.
func LoadPalette(path string) (Palette, error) {
	p := DefaultPalette()
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read theme: %w", err)
	}
	var tf themeFile
	if err := yaml.Unmarshal(b, &tf); err != nil {
		return p, fmt.Errorf("parse theme %s: %w", path, err)
	}

	for _, o := range []struct {
		name string
		val  string
		dst  *tcell.Color
	}{
		{"blank", tf.Blank, &p.Blank},
		{"absent", tf.Absent, &p.Absent},
		{"present", tf.Present, &p.Present},
		{"correct", tf.Correct, &p.Correct},
		{"text", tf.Text, &p.Text},
	} {
		if o.val == "" {
			continue
		}
		c := tcell.GetColor(o.val)
		if c == tcell.ColorDefault {
			return p, fmt.Errorf("theme %s: unknown color %q for %s", path, o.val, o.name)
		}
		*o.dst = c
	}
	return p, nil
}
