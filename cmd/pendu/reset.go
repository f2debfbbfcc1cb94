package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quillon/pendu/internal/save"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the story progress",
	Long: `Delete the progress file: level, lives, points, inventory, and hotbar
all go back to their defaults. The round history is kept.

Examples:
  pendu reset
  pendu reset --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) {
	store := save.NewStore(savePath())

	if !store.Exists() {
		fmt.Println("No progress to reset.")
		return
	}

	if !flagResetYes {
		fmt.Printf("Delete %s? [y/N] ", store.Path())
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			fmt.Println("Kept.")
			return
		}
	}

	if err := store.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Progress reset.")
}
