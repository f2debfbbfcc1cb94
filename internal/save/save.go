// Package save provides JSON-file persistence for story-mode progress.
// Loading is fail-soft: a missing or corrupt save file yields the default
// progress instead of an error, so the player always lands in a playable state.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// HotbarSlots is the number of quick-use slots on the hotbar.
const HotbarSlots = 4

// ItemKinds is the fixed consumable catalog, in wire order.
// These names are part of the save-file format and never change.
var ItemKinds = []string{"indice", "voyelles", "vie+", "skip"}

// Save is the persistent player progress for story mode.
type Save struct {
	LevelIdx  int            `json:"level_idx"`
	Lives     int            `json:"lives"`
	Points    int            `json:"points"`
	Inventory map[string]int `json:"inventory"`
	Hotbar    []string       `json:"hotbar"`
}

// Defaults returns the progress of a fresh adventure.
func Defaults() Save {
	inv := make(map[string]int, len(ItemKinds))
	for _, k := range ItemKinds {
		inv[k] = 0
	}
	return Save{
		LevelIdx:  0,
		Lives:     3,
		Points:    0,
		Inventory: inv,
		Hotbar:    make([]string, HotbarSlots),
	}
}

// validItem reports whether name is one of the fixed item kinds.
func validItem(name string) bool {
	for _, k := range ItemKinds {
		if k == name {
			return true
		}
	}
	return false
}

// rawSave mirrors Save with pointer fields so a missing field can be told
// apart from a present zero. Extra fields in the file are ignored.
type rawSave struct {
	LevelIdx  *int           `json:"level_idx"`
	Lives     *int           `json:"lives"`
	Points    *int           `json:"points"`
	Inventory map[string]int `json:"inventory"`
	Hotbar    []string       `json:"hotbar"`
}

// sanitize fills missing fields with defaults, clamps negatives, and drops
// unknown hotbar entries, so partially written or older save files still load.
func sanitize(r rawSave) Save {
	out := Defaults()
	if r.LevelIdx != nil && *r.LevelIdx > 0 {
		out.LevelIdx = *r.LevelIdx
	}
	if r.Lives != nil && *r.Lives >= 0 {
		out.Lives = *r.Lives
	}
	if r.Points != nil && *r.Points > 0 {
		out.Points = *r.Points
	}
	for _, k := range ItemKinds {
		if n, ok := r.Inventory[k]; ok && n > 0 {
			out.Inventory[k] = n
		}
	}
	if len(r.Hotbar) == HotbarSlots {
		for i, name := range r.Hotbar {
			if validItem(name) {
				out.Hotbar[i] = name
			}
		}
	}
	return out
}

// Store reads and writes the save file.
type Store struct {
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.pendu/save.json, falling back to the working
// directory when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pendu.save.json"
	}
	return filepath.Join(home, ".pendu", "save.json")
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a save file is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the persisted progress. A missing file, unreadable file, or
// malformed content all yield the defaults; parse failures are never
// surfaced to the caller.
func (s *Store) Load() Save {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Defaults()
	}
	var raw rawSave
	if err := json.Unmarshal(data, &raw); err != nil {
		return Defaults()
	}
	return sanitize(raw)
}

// Store writes the full progress to disk, replacing any previous save.
// The write goes through a temp file in the same directory plus a rename,
// so a crash mid-write leaves either the old save or a file that the next
// Load treats as corrupt and resets.
func (s *Store) Store(sv Save) error {
	data, err := json.MarshalIndent(sv, "", "  ")
	if err != nil {
		return fmt.Errorf("save: cannot encode progress: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".pendu-save-*")
	if err != nil {
		return fmt.Errorf("save: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save: cannot write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save: cannot flush progress: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save: cannot replace save file: %w", err)
	}
	return nil
}

// Reset deletes the persisted progress. Calling it when no save exists is
// a no-op, not an error.
func (s *Store) Reset() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("save: cannot delete save file: %w", err)
	}
	return nil
}
