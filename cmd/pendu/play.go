package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillon/pendu/internal/mode"
	"github.com/quillon/pendu/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "One quick round",
	Long: `Play a single untimed round against a random word. No lives, no
points, just you and the gallows: six mistakes and it is over.

Examples:
  pendu play
  pendu play --words ./mots.txt
  pendu play --seed 42`,
	Run: runPlay,
}

func init() {
	mode.Register(mode.Info{
		ID:      "play",
		Title:   "Quick game",
		Tagline: "one round, random word",
	}, tui.RunSolo)
}

func runPlay(cmd *cobra.Command, args []string) {
	runMode("play")
}

// runMode starts a registered mode with freshly built dependencies.
func runMode(id string) {
	deps := buildDeps()
	defer closeDeps(deps)

	if err := mode.Run(id, deps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
