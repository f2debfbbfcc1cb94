package main

import (
	"github.com/spf13/cobra"

	"github.com/quillon/pendu/internal/mode"
	"github.com/quillon/pendu/internal/platform/tui"
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Two players at one keyboard",
	Long: `Player 1 types a secret word (hidden as it is typed), then hands the
keyboard to player 2 who has six mistakes to find it.`,
	Run: runDuel,
}

func init() {
	mode.Register(mode.Info{
		ID:      "duel",
		Title:   "Duel",
		Tagline: "a friend picks the word",
	}, tui.RunDuel)
}

func runDuel(cmd *cobra.Command, args []string) {
	runMode("duel")
}
