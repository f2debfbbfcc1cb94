package economy

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/quillon/pendu/internal/round"
	"github.com/quillon/pendu/internal/save"
)

// testRound builds a live round over word with a deterministic RNG.
func testRound(t *testing.T, word string) *round.Engine {
	t.Helper()
	e := round.New(word, 8, time.Minute, round.WithRand(rand.New(rand.NewSource(1))))
	e.Begin()
	return e
}

func TestPurchase(t *testing.T) {
	tests := []struct {
		name       string
		points     int
		item       Item
		wantBought bool
		wantPoints int
		wantStock  int
	}{
		{name: "affordable hint", points: 20, item: ItemHint, wantBought: true, wantPoints: 0, wantStock: 1},
		{name: "one point short", points: 19, item: ItemHint, wantBought: false, wantPoints: 19, wantStock: 0},
		{name: "zero points", points: 0, item: ItemVowels, wantBought: false, wantPoints: 0, wantStock: 0},
		{name: "skip leaves change", points: 150, item: ItemSkip, wantBought: true, wantPoints: 30, wantStock: 1},
		{name: "extra life exact", points: 50, item: ItemExtraLife, wantBought: true, wantPoints: 0, wantStock: 1},
	}

	shop := NewShop(nil, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sv := save.Defaults()
			sv.Points = tt.points

			bought := shop.Purchase(&sv, tt.item)
			if bought != tt.wantBought {
				t.Errorf("Purchase() = %v, want %v", bought, tt.wantBought)
			}
			if sv.Points != tt.wantPoints {
				t.Errorf("points = %d, want %d", sv.Points, tt.wantPoints)
			}
			if got := sv.Inventory[string(tt.item)]; got != tt.wantStock {
				t.Errorf("stock = %d, want %d", got, tt.wantStock)
			}
		})
	}
}

func TestPurchaseUnknownItem(t *testing.T) {
	shop := NewShop(nil, 0)
	sv := save.Defaults()
	sv.Points = 1000

	if shop.Purchase(&sv, Item("sword")) {
		t.Error("Purchase() of unknown item should fail")
	}
	if sv.Points != 1000 {
		t.Errorf("points = %d, want unchanged 1000", sv.Points)
	}
}

func TestCustomPrices(t *testing.T) {
	shop := NewShop(map[Item]int{ItemHint: 5, Item("sword"): 1, ItemSkip: -3}, 0)

	if got := shop.Price(ItemHint); got != 5 {
		t.Errorf("Price(hint) = %d, want overridden 5", got)
	}
	if got := shop.Price(ItemSkip); got != 120 {
		t.Errorf("Price(skip) = %d, want default 120 (negative override ignored)", got)
	}
	if got := shop.Price(ItemVowels); got != 35 {
		t.Errorf("Price(vowels) = %d, want default 35", got)
	}
}

func TestAssignAndClearSlot(t *testing.T) {
	sv := save.Defaults()

	if err := AssignSlot(&sv, 1, ItemHint); err != nil {
		t.Fatalf("AssignSlot() failed: %v", err)
	}
	if sv.Hotbar[0] != "indice" {
		t.Errorf("Hotbar[0] = %q, want indice", sv.Hotbar[0])
	}

	// Assignment ignores stock: slot may point at an item with zero stock.
	if sv.Inventory["indice"] != 0 {
		t.Errorf("assignment must not touch inventory, got %d", sv.Inventory["indice"])
	}

	// Overwrite is unconditional.
	if err := AssignSlot(&sv, 1, ItemSkip); err != nil {
		t.Fatalf("AssignSlot() overwrite failed: %v", err)
	}
	if sv.Hotbar[0] != "skip" {
		t.Errorf("Hotbar[0] = %q, want skip", sv.Hotbar[0])
	}

	if err := ClearSlot(&sv, 1); err != nil {
		t.Fatalf("ClearSlot() failed: %v", err)
	}
	if sv.Hotbar[0] != "" {
		t.Errorf("Hotbar[0] = %q, want empty", sv.Hotbar[0])
	}

	if err := AssignSlot(&sv, 0, ItemHint); err == nil {
		t.Error("AssignSlot(0) should reject out-of-range slot")
	}
	if err := AssignSlot(&sv, 5, ItemHint); err == nil {
		t.Error("AssignSlot(5) should reject out-of-range slot")
	}
	if err := AssignSlot(&sv, 2, Item("sword")); err == nil {
		t.Error("AssignSlot() should reject unknown item")
	}
}

func TestApplyExtraLife(t *testing.T) {
	shop := NewShop(nil, 5)
	rd := testRound(t, "renard")

	sv := save.Defaults() // 3 lives
	consumed, _ := shop.Apply(ItemExtraLife, rd, &sv)
	if !consumed || sv.Lives != 4 {
		t.Errorf("Apply(extra life) consumed=%v lives=%d, want true/4", consumed, sv.Lives)
	}

	sv.Lives = 5
	consumed, msg := shop.Apply(ItemExtraLife, rd, &sv)
	if consumed || sv.Lives != 5 {
		t.Errorf("Apply(extra life) at cap consumed=%v lives=%d, want false/5", consumed, sv.Lives)
	}
	if msg == "" {
		t.Error("capped extra life should report a message")
	}
}

func TestApplyVowels(t *testing.T) {
	shop := NewShop(nil, 0)
	sv := save.Defaults()

	// "renard" holds vowels e and a; n, r, d are consonants.
	rd := testRound(t, "renard")
	consumed, msg := shop.Apply(ItemVowels, rd, &sv)
	if !consumed {
		t.Error("vowel reveal should always be consumed")
	}
	if !strings.Contains(msg, "+2") {
		t.Errorf("message %q should report 2 revealed vowels", msg)
	}
	found := string(rd.Found())
	if found != "ae" {
		t.Errorf("found letters = %q, want \"ae\"", found)
	}

	// Second use reveals nothing but is still consumed.
	consumed, _ = shop.Apply(ItemVowels, rd, &sv)
	if !consumed {
		t.Error("vowel reveal with nothing left should still be consumed")
	}
}

func TestApplyHint(t *testing.T) {
	shop := NewShop(nil, 0)
	sv := save.Defaults()
	rd := testRound(t, "bcd")

	for i := 0; i < 3; i++ {
		consumed, _ := shop.Apply(ItemHint, rd, &sv)
		if !consumed {
			t.Fatalf("hint %d should be consumed", i+1)
		}
	}
	if rd.Phase() != round.PhaseWon {
		t.Errorf("phase = %v, want won after all letters hinted", rd.Phase())
	}

	// Every letter revealed: the hint fails and is not consumed.
	rd2 := testRound(t, "aba")
	rd2.Guess('a')
	rd2.Guess('b')
	consumed, _ := shop.Apply(ItemHint, rd2, &sv)
	if consumed {
		t.Error("hint with no letters left should not be consumed")
	}
}

func TestApplySkip(t *testing.T) {
	shop := NewShop(nil, 0)
	sv := save.Defaults()
	rd := testRound(t, "renard")

	consumed, _ := shop.Apply(ItemSkip, rd, &sv)
	if !consumed {
		t.Error("skip should always be consumed")
	}
}

func TestUseSlot(t *testing.T) {
	shop := NewShop(nil, 0)

	t.Run("empty slot", func(t *testing.T) {
		sv := save.Defaults()
		rd := testRound(t, "renard")
		used, skip, _ := shop.UseSlot(&sv, 1, rd)
		if used || skip {
			t.Errorf("UseSlot(empty) = %v,%v, want false,false", used, skip)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		sv := save.Defaults()
		sv.Hotbar[0] = "indice"
		rd := testRound(t, "renard")
		used, skip, _ := shop.UseSlot(&sv, 1, rd)
		if used || skip {
			t.Errorf("UseSlot(no stock) = %v,%v, want false,false", used, skip)
		}
	})

	t.Run("vowel reveal decrements by one", func(t *testing.T) {
		sv := save.Defaults()
		sv.Hotbar[1] = "voyelles"
		sv.Inventory["voyelles"] = 2
		rd := testRound(t, "renard") // reveals 2 vowels at once
		used, skip, _ := shop.UseSlot(&sv, 2, rd)
		if !used || skip {
			t.Errorf("UseSlot(vowels) = %v,%v, want true,false", used, skip)
		}
		if sv.Inventory["voyelles"] != 1 {
			t.Errorf("stock = %d, want exactly one consumed", sv.Inventory["voyelles"])
		}
	})

	t.Run("skip signals level skip", func(t *testing.T) {
		sv := save.Defaults()
		sv.Hotbar[3] = "skip"
		sv.Inventory["skip"] = 1
		rd := testRound(t, "renard")
		used, skip, _ := shop.UseSlot(&sv, 4, rd)
		if !used || !skip {
			t.Errorf("UseSlot(skip) = %v,%v, want true,true", used, skip)
		}
		if sv.Inventory["skip"] != 0 {
			t.Errorf("skip stock = %d, want 0", sv.Inventory["skip"])
		}
	})

	t.Run("failed hint keeps stock", func(t *testing.T) {
		sv := save.Defaults()
		sv.Hotbar[0] = "indice"
		sv.Inventory["indice"] = 3
		rd := testRound(t, "ab")
		rd.Guess('a')
		rd.Guess('b') // word fully found, round already won
		used, _, _ := shop.UseSlot(&sv, 1, rd)
		if used {
			t.Error("hint on a finished word should not be used")
		}
		if sv.Inventory["indice"] != 3 {
			t.Errorf("stock = %d, want untouched 3", sv.Inventory["indice"])
		}
	})

	t.Run("slot out of range", func(t *testing.T) {
		sv := save.Defaults()
		rd := testRound(t, "renard")
		used, _, _ := shop.UseSlot(&sv, 0, rd)
		if used {
			t.Error("slot 0 should not be usable")
		}
		used, _, _ = shop.UseSlot(&sv, 5, rd)
		if used {
			t.Error("slot 5 should not be usable")
		}
	})
}
