package main

import (
	"github.com/spf13/cobra"

	"github.com/quillon/pendu/internal/mode"
	"github.com/quillon/pendu/internal/platform/tui"
)

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Play the adventure",
	Long: `Start or resume the story: 35 levels of growing difficulty, each a
timed round over a secret word. Wins grant points to spend in the shop;
losses cost a life.

In-round controls:
  a-z        - Guess a letter
  !          - Open the shop
  ?          - Show lives, points, hotbar, inventory
  1-4        - Use the item bound to that hotbar slot
  Esc        - Save and leave

Progress is saved after every round and purchase, so you can stop any
time and pick up where you left off.`,
	Run: runStory,
}

func init() {
	mode.Register(mode.Info{
		ID:      "story",
		Title:   "Story",
		Tagline: "35 levels, lives, shop, clock",
	}, tui.RunStory)
}

func runStory(cmd *cobra.Command, args []string) {
	runMode("story")
}
