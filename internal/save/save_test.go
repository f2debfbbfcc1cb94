package save

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Defaults()

	if d.LevelIdx != 0 {
		t.Errorf("LevelIdx = %d, want 0", d.LevelIdx)
	}
	if d.Lives != 3 {
		t.Errorf("Lives = %d, want 3", d.Lives)
	}
	if d.Points != 0 {
		t.Errorf("Points = %d, want 0", d.Points)
	}
	for _, k := range ItemKinds {
		if d.Inventory[k] != 0 {
			t.Errorf("Inventory[%s] = %d, want 0", k, d.Inventory[k])
		}
	}
	if len(d.Hotbar) != HotbarSlots {
		t.Fatalf("Hotbar has %d slots, want %d", len(d.Hotbar), HotbarSlots)
	}
	for i, slot := range d.Hotbar {
		if slot != "" {
			t.Errorf("Hotbar[%d] = %q, want empty", i, slot)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))

	got := store.Load()
	if !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Load() on missing file = %+v, want defaults", got)
	}
	if store.Exists() {
		t.Error("Exists() should be false before first Store()")
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))

	sv := Defaults()
	sv.LevelIdx = 17
	sv.Lives = 5
	sv.Points = 230
	sv.Inventory["indice"] = 2
	sv.Inventory["skip"] = 1
	sv.Hotbar[0] = "indice"
	sv.Hotbar[3] = "vie+"

	if err := store.Store(sv); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	got := store.Load()
	if !reflect.DeepEqual(got, sv) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, sv)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "garbage", content: "not json at all {{{"},
		{name: "truncated", content: `{"level_idx": 3, "liv`},
		{name: "wrong types", content: `{"level_idx": "three", "lives": []}`},
		{name: "empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			got := NewStore(path).Load()
			if !reflect.DeepEqual(got, Defaults()) {
				t.Errorf("Load() = %+v, want defaults", got)
			}
		})
	}
}

func TestLoadPartialFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s Save)
	}{
		{
			name:    "only points",
			content: `{"points": 120}`,
			check: func(t *testing.T, s Save) {
				if s.Points != 120 {
					t.Errorf("Points = %d, want 120", s.Points)
				}
				if s.Lives != 3 {
					t.Errorf("Lives = %d, want default 3", s.Lives)
				}
			},
		},
		{
			name:    "zero lives survives",
			content: `{"lives": 0, "level_idx": 12}`,
			check: func(t *testing.T, s Save) {
				if s.Lives != 0 {
					t.Errorf("Lives = %d, want 0", s.Lives)
				}
				if s.LevelIdx != 12 {
					t.Errorf("LevelIdx = %d, want 12", s.LevelIdx)
				}
			},
		},
		{
			name:    "negative values clamped",
			content: `{"lives": -2, "points": -50, "level_idx": -1}`,
			check: func(t *testing.T, s Save) {
				if s.Lives != 3 || s.Points != 0 || s.LevelIdx != 0 {
					t.Errorf("got lives=%d points=%d idx=%d, want defaults", s.Lives, s.Points, s.LevelIdx)
				}
			},
		},
		{
			name:    "unknown hotbar entries dropped",
			content: `{"hotbar": ["indice", "sword", "", "skip"]}`,
			check: func(t *testing.T, s Save) {
				want := []string{"indice", "", "", "skip"}
				if !reflect.DeepEqual(s.Hotbar, want) {
					t.Errorf("Hotbar = %v, want %v", s.Hotbar, want)
				}
			},
		},
		{
			name:    "wrong hotbar length reset",
			content: `{"hotbar": ["indice", "skip"]}`,
			check: func(t *testing.T, s Save) {
				if !reflect.DeepEqual(s.Hotbar, []string{"", "", "", ""}) {
					t.Errorf("Hotbar = %v, want empty slots", s.Hotbar)
				}
			},
		},
		{
			name:    "unknown inventory keys ignored",
			content: `{"inventory": {"indice": 2, "potion": 9}}`,
			check: func(t *testing.T, s Save) {
				if s.Inventory["indice"] != 2 {
					t.Errorf("Inventory[indice] = %d, want 2", s.Inventory["indice"])
				}
				if _, ok := s.Inventory["potion"]; ok {
					t.Error("unknown inventory key should be dropped")
				}
			},
		},
		{
			name:    "extra fields tolerated",
			content: `{"points": 5, "schema_version": 9, "nickname": "ava"}`,
			check: func(t *testing.T, s Save) {
				if s.Points != 5 {
					t.Errorf("Points = %d, want 5", s.Points)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			tt.check(t, NewStore(path).Load())
		})
	}
}

func TestResetMissingIsNoop(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))

	if err := store.Reset(); err != nil {
		t.Errorf("Reset() on missing file should be a no-op, got %v", err)
	}
}

func TestResetDeletes(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save.json"))

	if err := store.Store(Defaults()); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if !store.Exists() {
		t.Fatal("save file should exist after Store()")
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if store.Exists() {
		t.Error("save file should be gone after Reset()")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "save.json")
	store := NewStore(path)

	if err := store.Store(Defaults()); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("save file was not created in nested directory")
	}
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "save.json"))

	if err := store.Store(Defaults()); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "save.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contains %v, want only save.json", names)
	}
}
