package config

import (
	_ "embed"

	"github.com/quillon/pendu/internal/economy"
	"github.com/quillon/pendu/internal/save"
	"github.com/quillon/pendu/internal/story"
)

//go:embed defaults/pendu.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when even the embedded
// YAML cannot be parsed.
func Default() Config {
	prices := make(map[string]int, len(save.ItemKinds))
	for it, p := range economy.DefaultPrices() {
		prices[string(it)] = p
	}

	catalog := story.Catalog()
	levels := make([]LevelConfig, len(catalog))
	for i, lv := range catalog {
		levels[i] = LevelConfig{
			Name:      lv.Name,
			MinLen:    lv.MinLen,
			MaxLen:    lv.MaxLen,
			MaxErrors: lv.MaxErrors,
			TimeLimit: lv.TimeLimit,
			Flavor:    lv.Flavor,
		}
	}

	return Config{
		MaxLives: economy.DefaultMaxLives,
		Prices:   prices,
		Levels:   levels,
	}
}

// DefaultYAML returns the embedded default configuration file, handy for
// writing a starter config for the user to edit.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
