package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillon/pendu/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the story levels",
	Long:  `Shows the whole story arc with word lengths, error allowances, and clocks.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	levels := cfg.StoryLevels()

	fmt.Println("Story levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-7s  %-6s  %s\n", "#", "Name", "Length", "Errors", "Clock")
	fmt.Printf("  %-3s  %-16s  %-7s  %-6s  %s\n", "--", "----", "------", "------", "-----")

	for i, lv := range levels {
		length := fmt.Sprintf("%d-%d", lv.MinLen, lv.MaxLen)
		if lv.MaxLen == 0 {
			length = fmt.Sprintf("%d+", lv.MinLen)
		}
		fmt.Printf("  %-3d  %-16s  %-7s  %-6d  %ds\n", i+1, lv.Name, length, lv.MaxErrors, lv.TimeLimit)
	}

	fmt.Println()
	fmt.Println("Run 'pendu story' to play.")
}
