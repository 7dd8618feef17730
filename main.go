package main

import (
	"os"

	"github.com/robalobadob/wordle/apps/go-term/internal/cli"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	// Errors are printed by the printer package before they reach here.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
