// apps/go-term/internal/cli/root.go
//
// Command-line entry point.
// Startup order:
//   1. config (.env + environment)
//   2. logging
//   3. word lists, answer selection (random or daily), palette
//   4. terminal screen, input loop
//   5. one-line result on the restored terminal
//
// Startup failures are fatal and reported through the printer package after
// the terminal is back to normal.

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/logging"
	"github.com/robalobadob/wordle/apps/go-term/internal/printer"
	"github.com/robalobadob/wordle/apps/go-term/internal/tui"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// rootCmd plays one game when run without arguments.
var rootCmd = newRootCmd(defaultRunner())

func newRootCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "wordle",
		Short: "Guess the hidden five-letter word in six tries",
		Long: `wordle is a terminal word-guessing game.

Type a word and press Enter. Green letters are in the right place, yellow
letters are in the word but elsewhere, gray letters are not in the word.
Backspace deletes, Escape quits.

Word lists are read from ./wordle-Ta.txt (guesses) and ./wordle-La.txt
(solutions) unless WORDS_ALLOWED_FILE / WORDS_ANSWERS_FILE say otherwise.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run()
		},
	}
}

// Execute runs the root command. Errors have already been printed.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// runner holds the side-effecting collaborators so tests can swap them.
type runner struct {
	dotenv     string
	now        func() time.Time
	openScreen func() (tcell.Screen, error)
	options    []tui.Option
}

func defaultRunner() *runner {
	return &runner{
		dotenv:     ".env",
		now:        time.Now,
		openScreen: tui.Open,
	}
}

func (r *runner) run() error {
	cfg, err := config.Load(r.dotenv)
	if err != nil {
		return printer.Error("Invalid configuration", err.Error(), []string{
			"Check the WORDS_*, LOG_* and WORDLE_* variables in your environment or .env file.",
		})
	}

	closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return printer.Error("Could not set up logging", err.Error(), []string{
			"Use LOG_LEVEL=trace|debug|info|warn|error and a writable LOG_FILE.",
		})
	}
	defer closer.Close()

	lists, err := words.Load(cfg.AllowedFile, cfg.AnswersFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to load word lists")
		return printer.Error("Could not load word lists", err.Error(), []string{
			fmt.Sprintf("Put the guess list at %s and the solution list at %s", cfg.AllowedFile, cfg.AnswersFile),
			"Point WORDS_ALLOWED_FILE and WORDS_ANSWERS_FILE at your own lists",
		})
	}
	a, g, skipped := lists.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Int("skipped", skipped).Msg("word lists loaded")

	answer, err := r.pickAnswer(cfg, lists)
	if err != nil {
		return printer.Error("Could not pick a word", err.Error(), nil)
	}

	opts := append([]tui.Option(nil), r.options...)
	if cfg.ThemeFile != "" {
		pal, err := tui.LoadPalette(cfg.ThemeFile)
		if err != nil {
			return printer.Error("Could not load theme", err.Error(), []string{
				"Unset WORDLE_THEME_FILE to use the default colors.",
			})
		}
		opts = append(opts, tui.WithPalette(pal))
	}

	gm := game.New(answer, lists)
	outcome, err := r.play(gm, opts)
	if err != nil {
		return printer.Error("Could not start the terminal", err.Error(), []string{
			"Run wordle from an interactive terminal.",
		})
	}

	switch outcome {
	case game.OutcomeWon:
		printer.Success("Solved in %d/%d", len(gm.Guesses), game.Rows)
	case game.OutcomeLost:
		printer.Warning("The word was %s", gm.Answer)
	}
	return nil
}

func (r *runner) pickAnswer(cfg config.Config, lists *words.Lists) (string, error) {
	if cfg.Daily {
		today := r.now()
		i := daily.WordIndex(today, cfg.DailySalt, lists.Len())
		log.Info().Str("date", daily.DateKey(today)).Msg("daily word selected")
		return lists.AnswerAt(i), nil
	}
	return lists.RandomAnswer()
}

// play owns the screen: it is released on every return path, panics included.
func (r *runner) play(g *game.Game, opts []tui.Option) (game.Outcome, error) {
	scr, err := r.openScreen()
	if err != nil {
		return game.OutcomePlaying, err
	}
	if scr == nil {
		return game.OutcomePlaying, errors.New("no screen")
	}
	defer func() {
		p := recover()
		scr.Fini()
		if p != nil {
			panic(p)
		}
	}()
	return tui.NewSession(scr, g, opts...).Run(), nil
}
