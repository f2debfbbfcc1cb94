package story

import (
	"github.com/quillon/pendu/internal/history"
	"github.com/quillon/pendu/internal/round"
	"github.com/quillon/pendu/internal/save"
)

// Outcome is the controller's verdict after applying a round result.
type Outcome int

const (
	OutcomeContinue Outcome = iota // more levels ahead, lives remain
	OutcomeVictory                 // every level cleared
	OutcomeDefeat                  // lives exhausted
)

// Reward computes the points granted for a round win: a base of 10, one
// point per 5 seconds left on the clock, and 3 points per spared error.
func Reward(maxErrors, errorsUsed, timeLeft int) int {
	spared := maxErrors - errorsUsed
	if spared < 0 {
		spared = 0
	}
	return 10 + timeLeft/5 + 3*spared
}

// Controller walks the level catalog, applying round outcomes to the
// player's progress and persisting after every transition. Display is the
// caller's concern; the controller only owns the state transitions.
type Controller struct {
	levels  []Level
	saves   *save.Store
	hist    *history.Store // nil disables history, by contract of that package
	sv      save.Save
	resumed bool
}

// NewController loads the persisted progress and positions the adventure
// at its current level. An empty levels slice falls back to the built-in
// catalog.
func NewController(levels []Level, saves *save.Store, hist *history.Store) *Controller {
	if len(levels) == 0 {
		levels = Catalog()
	}
	return &Controller{
		levels:  levels,
		saves:   saves,
		hist:    hist,
		sv:      saves.Load(),
		resumed: saves.Exists(),
	}
}

// Save exposes the live progress for the shop and hotbar to mutate.
func (c *Controller) Save() *save.Save {
	return &c.sv
}

// Resumed reports whether this run continues an earlier session.
func (c *Controller) Resumed() bool {
	return c.resumed
}

// Len returns the catalog length.
func (c *Controller) Len() int {
	return len(c.levels)
}

// LevelIndex returns the current 0-based level index.
func (c *Controller) LevelIndex() int {
	return c.sv.LevelIdx
}

// Level returns the current level; ok is false once the catalog is done.
func (c *Controller) Level() (Level, bool) {
	if c.sv.LevelIdx < 0 || c.sv.LevelIdx >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[c.sv.LevelIdx], true
}

// Status derives the adventure verdict from the live progress. Defeat wins
// over victory only when lives ran out before the catalog did.
func (c *Controller) Status() Outcome {
	if c.sv.LevelIdx >= len(c.levels) {
		return OutcomeVictory
	}
	if c.sv.Lives <= 0 {
		return OutcomeDefeat
	}
	return OutcomeContinue
}

// ApplyOutcome folds one finished round into the progress: a win grants
// the reward and advances the level; a loss costs a life and stays put.
// The progress is persisted and the round recorded before returning.
func (c *Controller) ApplyOutcome(word string, rep round.Report) (reward int, out Outcome) {
	lv, ok := c.Level()
	if !ok {
		return 0, c.Status()
	}

	if rep.Win {
		reward = Reward(lv.MaxErrors, rep.ErrorsUsed, rep.TimeLeft)
		c.sv.Points += reward
		c.sv.LevelIdx++
	} else {
		c.sv.Lives--
	}

	c.Persist()

	//nolint:errcheck // Best-effort history, the adventure continues regardless
	c.hist.Record(history.Entry{
		Mode:       "story",
		LevelIdx:   c.levelIdxForRecord(rep.Win),
		LevelName:  lv.Name,
		Word:       word,
		Won:        rep.Win,
		ErrorsUsed: rep.ErrorsUsed,
		TimeLeft:   rep.TimeLeft,
		Reward:     reward,
	})

	return reward, c.Status()
}

// levelIdxForRecord returns the index of the level that was just played.
func (c *Controller) levelIdxForRecord(won bool) int {
	if won {
		return c.sv.LevelIdx - 1
	}
	return c.sv.LevelIdx
}

// Persist writes the live progress to disk. Failures are swallowed: the
// in-memory state stays authoritative for the session and the last good
// save file remains on disk.
func (c *Controller) Persist() {
	//nolint:errcheck // Best-effort save, see above
	c.saves.Store(c.sv)
}

// Reset wipes the persisted progress and restores defaults in memory.
func (c *Controller) Reset() error {
	if err := c.saves.Reset(); err != nil {
		return err
	}
	c.sv = save.Defaults()
	return nil
}
