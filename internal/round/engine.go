// Package round implements the single-round guessing state machine.
// The engine is pure logic: it knows nothing about terminals, rendering,
// or persistence. The clock and RNG are injected so rounds are fully
// deterministic under test.
package round

import (
	"math/rand"
	"sort"
	"time"
)

// Phase is the state of the round state machine.
type Phase int

const (
	PhaseSetup    Phase = iota // pre-round shop/hotbar configuration
	PhaseGuessing              // accepting guesses
	PhaseWon                   // every letter found
	PhaseLost                  // error allowance exhausted
	PhaseTimedOut              // wall clock expired
	PhaseSkipped               // skip item ended the round as a win
)

// String returns a short name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseGuessing:
		return "guessing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseTimedOut:
		return "timed_out"
	case PhaseSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// GuessResult describes what a single letter guess did.
type GuessResult int

const (
	GuessIgnored GuessResult = iota // round not in guessing phase
	GuessInvalid                    // not a lowercase a-z letter
	GuessRepeat                     // letter already found or missed
	GuessHit                        // letter is in the word
	GuessMiss                       // letter is not in the word
)

// vowels are the letters the vowel-reveal item uncovers.
const vowels = "aeiouy"

// Report summarizes a finished round for the story controller.
type Report struct {
	Win        bool
	ErrorsUsed int
	TimeLeft   int // whole seconds remaining, clamped to >= 0
}

// Engine runs one round over a secret word. Timing is cooperative: the
// clock is checked when an action arrives (or when Poll is called), never
// asynchronously.
type Engine struct {
	word      string
	found     map[rune]bool
	missed    map[rune]bool
	errors    int
	maxErrors int
	timeLimit time.Duration // <= 0 means untimed
	startedAt time.Time
	now       func() time.Time
	rng       *rand.Rand
	phase     Phase
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand replaces the RNG used by the hint reveal.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// New creates a round over word. A non-positive timeLimit disables the
// timer; maxErrors must be at least 1.
func New(word string, maxErrors int, timeLimit time.Duration, opts ...Option) *Engine {
	if maxErrors < 1 {
		maxErrors = 1
	}
	e := &Engine{
		word:      word,
		found:     make(map[rune]bool),
		missed:    make(map[rune]bool),
		maxErrors: maxErrors,
		timeLimit: timeLimit,
		now:       time.Now,
		phase:     PhaseSetup,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(e.now().UnixNano()))
	}
	return e
}

// Begin leaves the setup phase and starts the round clock.
func (e *Engine) Begin() {
	if e.phase != PhaseSetup {
		return
	}
	e.startedAt = e.now()
	e.phase = PhaseGuessing
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Done reports whether the round reached a terminal phase.
func (e *Engine) Done() bool {
	switch e.phase {
	case PhaseWon, PhaseLost, PhaseTimedOut, PhaseSkipped:
		return true
	}
	return false
}

// Poll checks the round clock and transitions to TimedOut when the limit
// has passed. It returns the (possibly updated) phase.
func (e *Engine) Poll() Phase {
	if e.phase == PhaseGuessing && e.timeLimit > 0 && e.now().Sub(e.startedAt) >= e.timeLimit {
		e.phase = PhaseTimedOut
	}
	return e.phase
}

// Guess submits one letter. The clock is checked before the guess is
// accepted. Invalid input and repeated letters are rejected without
// consuming an error or advancing the round.
func (e *Engine) Guess(r rune) GuessResult {
	if e.Poll() != PhaseGuessing {
		return GuessIgnored
	}
	if r < 'a' || r > 'z' {
		return GuessInvalid
	}
	if e.found[r] || e.missed[r] {
		return GuessRepeat
	}

	if containsRune(e.word, r) {
		e.found[r] = true
		e.checkWin()
		return GuessHit
	}

	e.missed[r] = true
	e.errors++
	if e.errors >= e.maxErrors {
		e.phase = PhaseLost
	}
	return GuessMiss
}

// Skip ends the round as an immediate win, bypassing error and time
// checks. Only meaningful while guessing.
func (e *Engine) Skip() {
	if e.phase == PhaseGuessing || e.phase == PhaseSetup {
		e.phase = PhaseSkipped
	}
}

// RevealVowels marks every not-yet-found vowel of the word as found and
// returns how many letters that revealed. Part of the economy.Round
// contract.
func (e *Engine) RevealVowels() int {
	if e.phase != PhaseGuessing {
		return 0
	}
	n := 0
	for _, v := range vowels {
		if containsRune(e.word, v) && !e.found[v] {
			e.found[v] = true
			n++
		}
	}
	if n > 0 {
		e.checkWin()
	}
	return n
}

// RevealRandom marks one random not-yet-found letter of the word as found.
// ok is false when every letter is already found. Part of the economy.Round
// contract.
func (e *Engine) RevealRandom() (rune, bool) {
	if e.phase != PhaseGuessing {
		return 0, false
	}
	remaining := e.remainingLetters()
	if len(remaining) == 0 {
		return 0, false
	}
	r := remaining[e.rng.Intn(len(remaining))]
	e.found[r] = true
	e.checkWin()
	return r, true
}

// remainingLetters returns the distinct word letters not yet found, sorted.
func (e *Engine) remainingLetters() []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, r := range e.word {
		if !e.found[r] && !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// checkWin transitions to Won when every letter of the word is found.
func (e *Engine) checkWin() {
	for _, r := range e.word {
		if !e.found[r] {
			return
		}
	}
	e.phase = PhaseWon
}

// Word returns the secret word.
func (e *Engine) Word() string {
	return e.word
}

// Masked returns the word with unfound letters shown as underscores,
// space-separated for readability.
func (e *Engine) Masked() string {
	out := make([]rune, 0, len(e.word)*2)
	for i, r := range e.word {
		if i > 0 {
			out = append(out, ' ')
		}
		if e.found[r] {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}

// Found returns the correctly guessed letters, sorted.
func (e *Engine) Found() []rune {
	return sortedKeys(e.found)
}

// Missed returns the incorrectly guessed letters, sorted.
func (e *Engine) Missed() []rune {
	return sortedKeys(e.missed)
}

// Errors returns the miss count so far.
func (e *Engine) Errors() int {
	return e.errors
}

// MaxErrors returns the error allowance for this round.
func (e *Engine) MaxErrors() int {
	return e.maxErrors
}

// Timed reports whether this round has a time limit.
func (e *Engine) Timed() bool {
	return e.timeLimit > 0
}

// TimeLeft returns the remaining round time, clamped to zero. Before Begin
// it returns the full limit; for untimed rounds it returns zero.
func (e *Engine) TimeLeft() time.Duration {
	if e.timeLimit <= 0 {
		return 0
	}
	if e.startedAt.IsZero() {
		return e.timeLimit
	}
	left := e.timeLimit - e.now().Sub(e.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Report summarizes the round. Win is true only for the Won and Skipped
// phases.
func (e *Engine) Report() Report {
	return Report{
		Win:        e.phase == PhaseWon || e.phase == PhaseSkipped,
		ErrorsUsed: e.errors,
		TimeLeft:   int(e.TimeLeft() / time.Second),
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

func sortedKeys(m map[rune]bool) []rune {
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
