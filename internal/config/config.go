// Package config provides YAML-based game configuration loading for the
// gallows games: life cap, shop prices, and the story level catalog.
package config

import (
	"github.com/quillon/pendu/internal/economy"
	"github.com/quillon/pendu/internal/story"
)

// Config is the full game configuration.
type Config struct {
	MaxLives int            `yaml:"max_lives"`
	Prices   map[string]int `yaml:"prices"`
	Levels   []LevelConfig  `yaml:"levels"`
}

// LevelConfig describes one story level in the configuration file.
type LevelConfig struct {
	Name      string `yaml:"name"`
	MinLen    int    `yaml:"min_len"`
	MaxLen    int    `yaml:"max_len"` // 0 or omitted means no upper bound
	MaxErrors int    `yaml:"max_errors"`
	TimeLimit int    `yaml:"time_limit"` // seconds
	Flavor    string `yaml:"flavor"`
}

// ShopPrices converts the configured price table to typed items. Unknown
// keys are dropped; the shop fills in defaults for missing ones.
func (c Config) ShopPrices() map[economy.Item]int {
	out := make(map[economy.Item]int, len(c.Prices))
	for name, price := range c.Prices {
		it := economy.Item(name)
		if economy.Valid(it) {
			out[it] = price
		}
	}
	return out
}

// StoryLevels converts the configured catalog to story levels, dropping
// entries that could never produce a playable round. An empty result means
// "use the built-in catalog".
func (c Config) StoryLevels() []story.Level {
	out := make([]story.Level, 0, len(c.Levels))
	for _, lc := range c.Levels {
		if lc.MinLen < 3 || lc.MaxErrors < 1 || lc.TimeLimit <= 0 {
			continue
		}
		if lc.MaxLen != 0 && lc.MaxLen < lc.MinLen {
			continue
		}
		out = append(out, story.Level{
			Name:      lc.Name,
			MinLen:    lc.MinLen,
			MaxLen:    lc.MaxLen,
			MaxErrors: lc.MaxErrors,
			TimeLimit: lc.TimeLimit,
			Flavor:    lc.Flavor,
		})
	}
	return out
}
