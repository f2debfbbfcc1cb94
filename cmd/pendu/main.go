// pendu is a terminal hangman with a story mode, a shop economy, and a
// timed round clock.
//
// Usage:
//
//	pendu menu            - Interactive mode picker
//	pendu story           - Play the adventure
//	pendu play            - One quick round against a random word
//	pendu duel            - Two players at one keyboard
//	pendu levels          - List the story levels
//	pendu scores          - Browse the round history
//	pendu reset           - Wipe the story progress
//
// Global flags:
//
//	--save <path>    - Progress file (default: ~/.pendu/save.json)
//	--db <path>      - History database (default: ~/.pendu/history.db)
//	--words <path>   - Custom word list, one word per line
//	--config <path>  - Custom config YAML
//	--seed <value>   - RNG seed for reproducible words
//	--verbose        - Debug logging to stderr
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quillon/pendu/internal/config"
	"github.com/quillon/pendu/internal/history"
	"github.com/quillon/pendu/internal/mode"
	"github.com/quillon/pendu/internal/save"
	"github.com/quillon/pendu/internal/words"
)

var (
	// Global flags
	flagSavePath  string
	flagDBPath    string
	flagWordsPath string
	flagConfig    string
	flagSeed      int64
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pendu",
	Short: "Le Pendu - hangman adventures in your terminal",
	Long: `Le Pendu is a terminal hangman game. The story mode walks a 35-level
arc with lives, points, a shop, and a hotbar of items; the quick modes
offer a single round against a random word or a friend's secret one.

Available commands:
  menu     - Interactive mode picker
  story    - Play the adventure
  play     - One quick round
  duel     - Two players at one keyboard
  levels   - List the story levels
  scores   - Browse the round history
  reset    - Wipe the story progress

Examples:
  pendu menu
  pendu story
  pendu play --words ./mots.txt
  pendu scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to progress file (default: ~/.pendu/save.json)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (default: ~/.pendu/history.db)")
	rootCmd.PersistentFlags().StringVar(&flagWordsPath, "words", "", "Path to custom word list")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Debug logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(duelCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}

// newLogger builds the process logger. Quiet by default so the TUI stays
// clean; --verbose turns on debug lines.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

// savePath returns the progress file path honoring the --save flag.
func savePath() string {
	if flagSavePath != "" {
		return flagSavePath
	}
	return save.DefaultPath()
}

// buildDeps assembles everything the modes need. The history store is
// best-effort: when the database cannot open the game runs without it.
func buildDeps() mode.Deps {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = history.DefaultPath()
	}
	hist, err := history.Open(dbPath)
	if err != nil {
		logger.Warn("history database unavailable", "err", err)
		hist = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return mode.Deps{
		Config:  cfg,
		Words:   words.Load(flagWordsPath),
		Saves:   save.NewStore(savePath()),
		History: hist,
		Logger:  logger,
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}
}

// closeDeps releases what buildDeps opened.
func closeDeps(deps mode.Deps) {
	//nolint:errcheck // Best-effort close on exit
	deps.History.Close()
}
