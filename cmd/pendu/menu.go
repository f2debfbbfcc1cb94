package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillon/pendu/internal/mode"
	"github.com/quillon/pendu/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive mode picker",
	Long: `Open the menu to pick a mode with the arrow keys. Tab opens the
round history; the menu comes back when a mode ends.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	deps := buildDeps()
	defer closeDeps(deps)

	for {
		result, err := tui.RunMenu(deps.ScreenW, deps.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(deps.History, deps.ScreenW, deps.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}

		case result.ModeID != "":
			if err := mode.Run(result.ModeID, deps); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}
}
