// Package economy implements the point-based shop, the inventory, the
// four-slot hotbar, and the consumable item effects used during story rounds.
package economy

import (
	"fmt"

	"github.com/quillon/pendu/internal/save"
)

// Item identifies one of the four consumable kinds. The values double as
// the save-file wire names.
type Item string

const (
	ItemHint      Item = "indice"   // reveal one random missing letter
	ItemVowels    Item = "voyelles" // reveal every vowel of the word
	ItemExtraLife Item = "vie+"     // +1 life, capped at max lives
	ItemSkip      Item = "skip"     // win the round immediately
)

// Items returns the fixed catalog in display order.
func Items() []Item {
	items := make([]Item, len(save.ItemKinds))
	for i, k := range save.ItemKinds {
		items[i] = Item(k)
	}
	return items
}

// Valid reports whether it names a known item kind.
func Valid(it Item) bool {
	for _, k := range save.ItemKinds {
		if Item(k) == it {
			return true
		}
	}
	return false
}

// Title returns a short display name for the item.
func (it Item) Title() string {
	switch it {
	case ItemHint:
		return "Hint"
	case ItemVowels:
		return "Vowel reveal"
	case ItemExtraLife:
		return "Extra life"
	case ItemSkip:
		return "Skip level"
	default:
		return string(it)
	}
}

// DefaultPrices returns the standard shop prices.
func DefaultPrices() map[Item]int {
	return map[Item]int{
		ItemHint:      20,
		ItemVowels:    35,
		ItemExtraLife: 50,
		ItemSkip:      120,
	}
}

// DefaultMaxLives is the life cap when no configuration overrides it.
const DefaultMaxLives = 5

// Round is the view of a live round that item effects operate on.
// Implemented by round.Engine.
type Round interface {
	// RevealVowels marks every not-yet-found vowel of the secret word as
	// found and returns how many letters that revealed.
	RevealVowels() int
	// RevealRandom marks one random not-yet-found letter of the secret
	// word as found. ok is false when no letters remain to reveal.
	RevealRandom() (letter rune, ok bool)
}

// Shop sells the four item kinds at fixed prices. Prices and the life cap
// are injected at construction and never mutated.
type Shop struct {
	prices   map[Item]int
	maxLives int
}

// NewShop builds a shop from the given price table and life cap. Missing
// or non-positive entries fall back to the defaults.
func NewShop(prices map[Item]int, maxLives int) *Shop {
	table := DefaultPrices()
	for it, p := range prices {
		if Valid(it) && p > 0 {
			table[it] = p
		}
	}
	if maxLives < 1 {
		maxLives = DefaultMaxLives
	}
	return &Shop{prices: table, maxLives: maxLives}
}

// Price returns the cost of one item.
func (s *Shop) Price(it Item) int {
	return s.prices[it]
}

// MaxLives returns the life cap enforced by the extra-life item.
func (s *Shop) MaxLives() int {
	return s.maxLives
}

// Purchase buys one item for the player. It returns false without touching
// the save when points are insufficient; on success it deducts the price
// and adds the item to the inventory.
func (s *Shop) Purchase(sv *save.Save, it Item) bool {
	if !Valid(it) {
		return false
	}
	price := s.prices[it]
	if sv.Points < price {
		return false
	}
	sv.Points -= price
	sv.Inventory[string(it)]++
	return true
}

// AssignSlot binds an item kind to a hotbar slot (1-based). Assignment is
// unconditional: stock is only checked when the slot is used, so a slot may
// point at an item the player does not currently own.
func AssignSlot(sv *save.Save, slot int, it Item) error {
	if slot < 1 || slot > save.HotbarSlots {
		return fmt.Errorf("economy: slot %d out of range 1-%d", slot, save.HotbarSlots)
	}
	if !Valid(it) {
		return fmt.Errorf("economy: unknown item %q", it)
	}
	sv.Hotbar[slot-1] = string(it)
	return nil
}

// ClearSlot empties a hotbar slot (1-based).
func ClearSlot(sv *save.Save, slot int) error {
	if slot < 1 || slot > save.HotbarSlots {
		return fmt.Errorf("economy: slot %d out of range 1-%d", slot, save.HotbarSlots)
	}
	sv.Hotbar[slot-1] = ""
	return nil
}

// Apply runs one item's effect against the live round. It reports whether
// the item was actually consumed and a player-facing message. Apply never
// touches the inventory; UseSlot owns the stock bookkeeping.
func (s *Shop) Apply(it Item, rd Round, sv *save.Save) (consumed bool, msg string) {
	switch it {
	case ItemExtraLife:
		if sv.Lives >= s.maxLives {
			return false, "Lives already at maximum."
		}
		sv.Lives++
		return true, "+1 life!"

	case ItemSkip:
		return true, "Level skipped!"

	case ItemVowels:
		n := rd.RevealVowels()
		if n == 0 {
			return true, "No vowels left to reveal."
		}
		return true, fmt.Sprintf("Vowels revealed (+%d).", n)

	case ItemHint:
		letter, ok := rd.RevealRandom()
		if !ok {
			return false, "No letters left to reveal."
		}
		return true, fmt.Sprintf("Hint: %q", letter)

	default:
		return false, "Unknown item."
	}
}

// UseSlot triggers the item bound to a hotbar slot. An empty slot or an
// out-of-stock item reports a message and changes nothing. On a consumed
// effect the stock decrements by exactly one, whatever the effect did.
// skipLevel is true only for the skip item, telling the round engine to
// end the round as an immediate win.
func (s *Shop) UseSlot(sv *save.Save, slot int, rd Round) (used, skipLevel bool, msg string) {
	if slot < 1 || slot > save.HotbarSlots {
		return false, false, "No such slot."
	}
	name := sv.Hotbar[slot-1]
	if name == "" {
		return false, false, "Empty slot."
	}
	it := Item(name)
	if sv.Inventory[name] <= 0 {
		return false, false, fmt.Sprintf("No %s in stock.", it.Title())
	}

	consumed, msg := s.Apply(it, rd, sv)
	if !consumed {
		return false, false, msg
	}
	sv.Inventory[name]--
	return true, it == ItemSkip, msg
}
