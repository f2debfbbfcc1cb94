package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/quillon/pendu/internal/economy"
	"github.com/quillon/pendu/internal/mode"
	"github.com/quillon/pendu/internal/round"
	"github.com/quillon/pendu/internal/story"
	"github.com/quillon/pendu/internal/words"
)

// RunStory plays the adventure: one level after another until the player
// runs out of lives, clears the catalog, or leaves. Progress is persisted
// after every round and every shop transaction.
func RunStory(deps mode.Deps) error {
	ctrl := story.NewController(deps.Config.StoryLevels(), deps.Saves, deps.History)
	shop := economy.NewShop(deps.Config.ShopPrices(), deps.Config.MaxLives)
	rng := rand.New(rand.NewSource(deps.Seed))

	if ctrl.Resumed() {
		sv := ctrl.Save()
		body := fmt.Sprintf("Resuming at level %d of %d with %d lives and %d points.",
			ctrl.LevelIndex()+1, ctrl.Len(), sv.Lives, sv.Points)
		fresh, err := RunPrompt("Welcome back!", body, "Start over instead?", true)
		if err != nil {
			return err
		}
		if fresh {
			if err := ctrl.Reset(); err != nil {
				deps.Logger.Warn("could not reset progress", "err", err)
			}
		}
	}

	for {
		switch ctrl.Status() {
		case story.OutcomeVictory:
			body := fmt.Sprintf("All %d levels cleared, %d points amassed.\nThe Citadel opens its gates.",
				ctrl.Len(), ctrl.Save().Points)
			again, err := RunPrompt("VICTORY!", body, "Start a new adventure?", true)
			if err != nil || !again {
				return err
			}
			if err := ctrl.Reset(); err != nil {
				deps.Logger.Warn("could not reset progress", "err", err)
				return nil
			}
			continue

		case story.OutcomeDefeat:
			body := "No lives left. The adventure ends here."
			again, err := RunPrompt("GAME OVER", body, "Start over?", false)
			if err != nil || !again {
				return err
			}
			if err := ctrl.Reset(); err != nil {
				deps.Logger.Warn("could not reset progress", "err", err)
				return nil
			}
			continue
		}

		lv, ok := ctrl.Level()
		if !ok {
			continue
		}
		word := words.Choose(rng, deps.Words, lv.MinLen, lv.MaxLen)
		deps.Logger.Debug("starting round",
			"level", ctrl.LevelIndex()+1, "name", lv.Name, "len", len(word))

		eng := round.New(word, lv.MaxErrors,
			time.Duration(lv.TimeLimit)*time.Second, round.WithRand(rng))

		aborted, err := RunRound(RoundOptions{
			Engine:    eng,
			Shop:      shop,
			Save:      ctrl.Save(),
			Persist:   ctrl.Persist,
			LevelName: lv.Name,
			LevelNum:  ctrl.LevelIndex() + 1,
			Flavor:    lv.Flavor,
		})
		if err != nil {
			return err
		}
		if aborted {
			ctrl.Persist()
			return nil
		}

		rep := eng.Report()
		reward, _ := ctrl.ApplyOutcome(word, rep)
		sv := ctrl.Save()

		var cont bool
		if rep.Win {
			body := fmt.Sprintf("The word was %q.\nReward: %d points (total %d).",
				word, reward, sv.Points)
			cont, err = RunPrompt(lv.Name+" cleared!", body, "Continue?", true)
		} else {
			body := fmt.Sprintf("The word was %q.\nLives left: %d.", word, sv.Lives)
			cont, err = RunPrompt("Round lost", body, "Keep going?", false)
		}
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}
