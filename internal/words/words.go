// Package words supplies candidate secret words. It loads an optional user
// word file and always keeps an embedded fallback dictionary so a word can
// be produced under any level constraints.
package words

import (
	_ "embed"
	"math/rand"
	"os"
	"strings"
	"sync"
)

//go:embed words.txt
var embedded string

// MinWordLen is the shortest usable secret word.
const MinWordLen = 3

var (
	fallbackOnce sync.Once
	fallbackPool []string
)

// Fallback returns the embedded dictionary.
func Fallback() []string {
	fallbackOnce.Do(func() {
		fallbackPool = parse(embedded)
	})
	out := make([]string, len(fallbackPool))
	copy(out, fallbackPool)
	return out
}

// Load reads a word file (one word per line) and returns the usable words
// in it. A missing or empty file yields the embedded fallback; Load never
// returns an empty pool.
func Load(path string) []string {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if pool := parse(string(data)); len(pool) > 0 {
				return pool
			}
		}
	}
	return Fallback()
}

// Clean lowercases one entry, strips everything outside a-z, and returns
// "" when the remainder is shorter than MinWordLen.
func Clean(w string) string {
	return cleanWord(w)
}

// Sanitize keeps the a-z core of each entry and drops anything shorter
// than MinWordLen after cleaning.
func Sanitize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if clean := cleanWord(w); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// parse splits raw file content into usable words, skipping blanks and
// comment lines.
func parse(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if clean := cleanWord(line); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

// cleanWord lowercases the entry, strips everything outside a-z, and
// returns "" when the remainder is too short to play.
func cleanWord(w string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(w)) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	if b.Len() < MinWordLen {
		return ""
	}
	return b.String()
}

// Choose picks a uniform-random word from pool whose length lies in
// [minLen, maxLen]; maxLen 0 means unbounded. When no word satisfies the
// bounds the whole pool is used, and when the pool itself is empty the
// embedded fallback is. Choose never returns an empty string.
func Choose(rng *rand.Rand, pool []string, minLen, maxLen int) string {
	var candidates []string
	for _, w := range pool {
		if len(w) >= minLen && (maxLen == 0 || len(w) <= maxLen) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}
	if len(candidates) == 0 {
		candidates = Fallback()
	}
	return candidates[rng.Intn(len(candidates))]
}
