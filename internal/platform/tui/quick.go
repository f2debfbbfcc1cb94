package tui

import (
	"fmt"
	"math/rand"

	"github.com/quillon/pendu/internal/history"
	"github.com/quillon/pendu/internal/mode"
	"github.com/quillon/pendu/internal/round"
	"github.com/quillon/pendu/internal/words"
)

// quickMaxErrors is the error allowance outside the story: one mistake per
// gallows stage.
const quickMaxErrors = 6

// RunSolo plays one untimed round against a random word. No economy, no
// progression, just the gallows.
func RunSolo(deps mode.Deps) error {
	rng := rand.New(rand.NewSource(deps.Seed))
	word := words.Choose(rng, deps.Words, words.MinWordLen, 0)

	return runQuickRound(deps, "play", "Quick game", word, rng)
}

// RunDuel lets one player pick a hidden word for the other to guess.
func RunDuel(deps mode.Deps) error {
	word, err := RunSecretEntry()
	if err != nil {
		return err
	}
	if word == "" {
		return nil
	}

	rng := rand.New(rand.NewSource(deps.Seed))
	return runQuickRound(deps, "duel", "Duel", word, rng)
}

// runQuickRound drives one economy-free round and records the result.
func runQuickRound(deps mode.Deps, modeID, title, word string, rng *rand.Rand) error {
	eng := round.New(word, quickMaxErrors, 0, round.WithRand(rng))

	aborted, err := RunRound(RoundOptions{
		Engine:    eng,
		LevelName: title,
	})
	if err != nil {
		return err
	}
	if aborted {
		return nil
	}

	rep := eng.Report()
	//nolint:errcheck // Best-effort history, the result screen still shows
	deps.History.Record(history.Entry{
		Mode:       modeID,
		LevelName:  title,
		Word:       word,
		Won:        rep.Win,
		ErrorsUsed: rep.ErrorsUsed,
	})
	deps.Logger.Debug("round finished", "mode", modeID, "won", rep.Win, "errors", rep.ErrorsUsed)

	if rep.Win {
		body := fmt.Sprintf("The word was %q, found with %d mistakes.", word, rep.ErrorsUsed)
		_, err = RunPrompt("You won!", body, "", true)
	} else {
		body := fmt.Sprintf("The word was %q.", word)
		_, err = RunPrompt("Hanged!", body, "", false)
	}
	return err
}
