// apps/go-term/internal/config/config.go
//
// Runtime configuration.
// Values come from the process environment; a .env file in the working
// directory is loaded first when present. Every field has a default, so the
// game runs with no configuration at all.

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls where word lists and logs live and how the answer is picked.
type Config struct {
	AllowedFile string `env:"WORDS_ALLOWED_FILE" envDefault:"./wordle-Ta.txt"`
	AnswersFile string `env:"WORDS_ANSWERS_FILE" envDefault:"./wordle-La.txt"`
	LogLevel    string `env:"LOG_LEVEL"          envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	Daily       bool   `env:"WORDLE_DAILY"       envDefault:"false"`
	DailySalt   string `env:"WORDLE_DAILY_SALT"`
	ThemeFile   string `env:"WORDLE_THEME_FILE"`
}

// Load reads dotenvPath (if it exists) into the environment, then parses
// Config. Variables already set in the environment win over the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
