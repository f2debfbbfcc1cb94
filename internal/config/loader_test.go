package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/quillon/pendu/internal/economy"
)

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `
max_lives: 7
prices:
  indice: 10
  skip: 200
levels:
  - {name: Solo, min_len: 4, max_len: 8, max_errors: 6, time_limit: 90}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLives != 7 {
		t.Errorf("MaxLives = %d, want 7", cfg.MaxLives)
	}
	prices := cfg.ShopPrices()
	if prices[economy.ItemHint] != 10 {
		t.Errorf("hint price = %d, want 10", prices[economy.ItemHint])
	}
	if prices[economy.ItemSkip] != 200 {
		t.Errorf("skip price = %d, want 200", prices[economy.ItemSkip])
	}
	levels := cfg.StoryLevels()
	if len(levels) != 1 {
		t.Fatalf("len(StoryLevels()) = %d, want 1", len(levels))
	}
	if levels[0].Name != "Solo" || levels[0].TimeLimit != 90 {
		t.Errorf("unexpected level: %+v", levels[0])
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestLoadCustomPathInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_lives: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestLoadNormalizesGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.yaml")
	if err := os.WriteFile(path, []byte("max_lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if cfg.MaxLives != def.MaxLives {
		t.Errorf("MaxLives = %d, want default %d", cfg.MaxLives, def.MaxLives)
	}
	if len(cfg.Prices) == 0 {
		t.Error("Prices should fall back to defaults")
	}
	if len(cfg.StoryLevels()) != len(def.Levels) {
		t.Errorf("levels = %d, want default catalog %d", len(cfg.StoryLevels()), len(def.Levels))
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	cfg = normalize(cfg)

	def := Default()
	if cfg.MaxLives != def.MaxLives {
		t.Errorf("MaxLives = %d, want %d", cfg.MaxLives, def.MaxLives)
	}
	for name, want := range def.Prices {
		if got := cfg.Prices[name]; got != want {
			t.Errorf("price %q = %d, want %d", name, got, want)
		}
	}
	if len(cfg.Levels) != len(def.Levels) {
		t.Fatalf("len(Levels) = %d, want %d", len(cfg.Levels), len(def.Levels))
	}
	for i, lv := range cfg.Levels {
		want := def.Levels[i]
		if lv != want {
			t.Errorf("level %d = %+v, want %+v", i, lv, want)
		}
	}
}

func TestShopPricesDropsUnknownItems(t *testing.T) {
	cfg := Config{Prices: map[string]int{"indice": 5, "potion": 99}}
	prices := cfg.ShopPrices()
	if len(prices) != 1 {
		t.Errorf("len(prices) = %d, want 1", len(prices))
	}
	if prices[economy.ItemHint] != 5 {
		t.Errorf("hint price = %d, want 5", prices[economy.ItemHint])
	}
}

func TestStoryLevelsDropsUnplayable(t *testing.T) {
	cfg := Config{Levels: []LevelConfig{
		{Name: "ok", MinLen: 3, MaxLen: 5, MaxErrors: 6, TimeLimit: 60},
		{Name: "too short", MinLen: 2, MaxLen: 5, MaxErrors: 6, TimeLimit: 60},
		{Name: "inverted", MinLen: 6, MaxLen: 4, MaxErrors: 6, TimeLimit: 60},
		{Name: "no errors", MinLen: 3, MaxLen: 5, MaxErrors: 0, TimeLimit: 60},
		{Name: "no clock", MinLen: 3, MaxLen: 5, MaxErrors: 6, TimeLimit: 0},
		{Name: "unbounded", MinLen: 12, MaxLen: 0, MaxErrors: 4, TimeLimit: 55},
	}}
	levels := cfg.StoryLevels()
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, want 2", len(levels))
	}
	if levels[0].Name != "ok" || levels[1].Name != "unbounded" {
		t.Errorf("kept levels = %q, %q", levels[0].Name, levels[1].Name)
	}
}
