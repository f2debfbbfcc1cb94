package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillon/pendu/internal/economy"
	"github.com/quillon/pendu/internal/round"
	"github.com/quillon/pendu/internal/save"
)

// overlay identifies which panel, if any, sits on top of the round screen.
type overlay int

const (
	overlayNone overlay = iota
	overlayShop
	overlayAssign
	overlayClear
	overlayStatus
)

// RoundOptions configures a round screen. Shop, Save, and Persist are nil
// in the quick modes, which disables the shop, status, and hotbar keys.
type RoundOptions struct {
	Engine    *round.Engine
	Shop      *economy.Shop
	Save      *save.Save
	Persist   func()
	LevelName string
	LevelNum  int // 1-based, 0 outside story mode
	Flavor    string
}

// RoundModel is the Bubble Tea model for playing one round.
type RoundModel struct {
	eng     *round.Engine
	shop    *economy.Shop
	sv      *save.Save
	persist func()

	levelName string
	levelNum  int
	flavor    string

	overlay overlay
	pending economy.Item // item awaiting a hotbar slot after purchase
	msg     string
	msgBad  bool

	keys     RoundKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewRoundModel creates a round screen for the given engine.
func NewRoundModel(opts RoundOptions) RoundModel {
	m := RoundModel{
		eng:       opts.Engine,
		shop:      opts.Shop,
		sv:        opts.Save,
		persist:   opts.Persist,
		levelName: opts.LevelName,
		levelNum:  opts.LevelNum,
		flavor:    opts.Flavor,
		keys:      DefaultRoundKeyMap(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
	if m.shop == nil {
		m.keys.Shop.SetEnabled(false)
		m.keys.Status.SetEnabled(false)
		m.keys.Hotbar.SetEnabled(false)
	}
	return m
}

// Init starts the round and, for timed rounds, the clock loop.
func (m RoundModel) Init() tea.Cmd {
	m.eng.Begin()
	if m.eng.Timed() {
		return tickCmd()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m RoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.eng.Poll()
		if m.eng.Done() {
			return m, tea.Quit
		}
		return m, tickCmd()
	}

	return m, nil
}

// handleKey processes keyboard input for the round.
func (m RoundModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	// The clock is checked at every action, not only on ticks.
	m.eng.Poll()
	if m.eng.Done() {
		return m, tea.Quit
	}

	switch m.overlay {
	case overlayShop:
		return m.handleShopKey(msg)
	case overlayAssign:
		return m.handleAssignKey(msg)
	case overlayClear:
		return m.handleClearKey(msg)
	case overlayStatus:
		m.overlay = overlayNone
		return m, nil
	}

	key := msg.String()
	switch {
	case key == "esc":
		m.quitting = true
		return m, tea.Quit

	case key == "!" && m.shop != nil:
		m.overlay = overlayShop
		m.msg = ""

	case key == "?" && m.shop != nil:
		m.overlay = overlayStatus

	case len(key) == 1 && key[0] >= '1' && key[0] <= '4' && m.shop != nil:
		slot := int(key[0] - '0')
		used, skipLevel, itemMsg := m.shop.UseSlot(m.sv, slot, m.eng)
		m.setMsg(itemMsg, !used)
		if used {
			if skipLevel {
				m.eng.Skip()
			}
			m.save()
		}
		if m.eng.Done() {
			return m, tea.Quit
		}

	case len(key) == 1 && key[0] >= 'a' && key[0] <= 'z':
		m.guess(rune(key[0]))
		if m.eng.Done() {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleShopKey processes keyboard input while the shop panel is open.
func (m RoundModel) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "esc" || key == "!":
		m.overlay = overlayNone

	case key == "c":
		m.overlay = overlayClear

	case len(key) == 1 && key[0] >= '1' && key[0] <= '4':
		items := economy.Items()
		it := items[key[0]-'1']
		if m.shop.Purchase(m.sv, it) {
			m.pending = it
			m.overlay = overlayAssign
			m.setMsg(fmt.Sprintf("Bought %s for %d points.", it.Title(), m.shop.Price(it)), false)
			m.save()
		} else {
			m.setMsg(fmt.Sprintf("Not enough points for %s (%d needed).", it.Title(), m.shop.Price(it)), true)
		}
	}
	return m, nil
}

// handleClearKey empties a hotbar slot.
func (m RoundModel) handleClearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "esc" || key == "0":
		m.overlay = overlayShop

	case len(key) == 1 && key[0] >= '1' && key[0] <= '4':
		slot := int(key[0] - '0')
		//nolint:errcheck // Slot digits are validated above
		economy.ClearSlot(m.sv, slot)
		m.setMsg(fmt.Sprintf("Slot %d cleared.", slot), false)
		m.save()
		m.overlay = overlayShop
	}
	return m, nil
}

// handleAssignKey picks a hotbar slot for a freshly bought item.
func (m RoundModel) handleAssignKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == "esc" || key == "0":
		m.overlay = overlayShop

	case len(key) == 1 && key[0] >= '1' && key[0] <= '4':
		slot := int(key[0] - '0')
		//nolint:errcheck // Slot is within range by construction
		economy.AssignSlot(m.sv, slot, m.pending)
		m.setMsg(fmt.Sprintf("%s bound to slot %d.", m.pending.Title(), slot), false)
		m.save()
		m.overlay = overlayShop
	}
	return m, nil
}

// guess submits one letter to the engine and sets the feedback message.
func (m *RoundModel) guess(r rune) {
	switch m.eng.Guess(r) {
	case round.GuessHit:
		m.setMsg(fmt.Sprintf("%q is in the word!", r), false)
	case round.GuessMiss:
		m.setMsg(fmt.Sprintf("No %q here.", r), true)
	case round.GuessRepeat:
		m.setMsg(fmt.Sprintf("Already tried %q.", r), true)
	case round.GuessInvalid:
		m.setMsg("Letters a-z only.", true)
	}
}

func (m *RoundModel) setMsg(s string, bad bool) {
	m.msg = s
	m.msgBad = bad
}

// save persists progress after purchases and item use.
func (m *RoundModel) save() {
	if m.persist != nil {
		m.persist()
	}
}

// Aborted reports whether the player quit mid-round.
func (m RoundModel) Aborted() bool {
	return m.quitting
}

// View renders the round screen.
func (m RoundModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Header
	if m.levelNum > 0 {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Level %d · %s", m.levelNum, m.levelName)))
	} else if m.levelName != "" {
		b.WriteString(titleStyle.Render(m.levelName))
	}
	b.WriteString("\n")
	if m.flavor != "" {
		b.WriteString(flavorStyle.Render(m.flavor))
		b.WriteString("\n")
	}
	if m.sv != nil {
		b.WriteString(infoStyle.Render(fmt.Sprintf("Lives: %d   Points: %d", m.sv.Lives, m.sv.Points)))
		b.WriteString("\n")
	}
	if m.eng.Timed() {
		left := int(m.eng.TimeLeft().Seconds())
		style := clockStyle
		if left <= 10 {
			style = clockLowStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("Time: %ds", left)))
		b.WriteString("\n")
	}

	b.WriteString(gallowsStyle.Render(Gallows(m.eng.Errors(), m.eng.MaxErrors())))
	b.WriteString("\n")

	b.WriteString("Word:  ")
	b.WriteString(wordStyle.Render(m.eng.Masked()))
	b.WriteString("\n")
	if missed := m.eng.Missed(); len(missed) > 0 {
		b.WriteString(missedStyle.Render("Missed: " + joinRunes(missed)))
		b.WriteString("\n")
	}
	if found := m.eng.Found(); len(found) > 0 {
		b.WriteString(foundStyle.Render("Found:  " + joinRunes(found)))
		b.WriteString("\n")
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf("Errors: %d/%d", m.eng.Errors(), m.eng.MaxErrors())))
	b.WriteString("\n\n")

	if m.msg != "" {
		style := goodStyle
		if m.msgBad {
			style = badStyle
		}
		b.WriteString(style.Render(m.msg))
		b.WriteString("\n")
	}

	switch m.overlay {
	case overlayShop:
		b.WriteString(m.shopView())
	case overlayAssign:
		b.WriteString(m.assignView())
	case overlayClear:
		b.WriteString(m.clearView())
	case overlayStatus:
		b.WriteString(m.statusView())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// shopView renders the shop panel.
func (m RoundModel) shopView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shop"))
	b.WriteString("\n")
	for i, it := range economy.Items() {
		owned := 0
		if m.sv.Inventory != nil {
			owned = m.sv.Inventory[string(it)]
		}
		b.WriteString(fmt.Sprintf("%d. %-12s %4d pts  (owned: %d)\n", i+1, it.Title(), m.shop.Price(it), owned))
	}
	b.WriteString(helpStyle.Render("1-4: buy  ·  c: clear a slot  ·  esc: close"))
	return overlayStyle.Render(b.String())
}

// clearView renders the slot picker for clearing a hotbar slot.
func (m RoundModel) clearView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Clear which slot?"))
	b.WriteString("\n")
	b.WriteString(m.hotbarLines())
	b.WriteString(helpStyle.Render("1-4: clear  ·  0/esc: back"))
	return overlayStyle.Render(b.String())
}

// assignView renders the slot picker shown after a purchase.
func (m RoundModel) assignView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Bind %s to which slot?", m.pending.Title())))
	b.WriteString("\n")
	b.WriteString(m.hotbarLines())
	b.WriteString(helpStyle.Render("1-4: bind  ·  0/esc: keep current binding"))
	return overlayStyle.Render(b.String())
}

// statusView renders the inventory and hotbar panel.
func (m RoundModel) statusView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Status"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Lives: %d   Points: %d\n\n", m.sv.Lives, m.sv.Points))
	b.WriteString("Hotbar:\n")
	b.WriteString(m.hotbarLines())
	b.WriteString("Inventory:\n")
	any := false
	for _, it := range economy.Items() {
		if n := m.sv.Inventory[string(it)]; n > 0 {
			b.WriteString(fmt.Sprintf("  %-12s x%d\n", it.Title(), n))
			any = true
		}
	}
	if !any {
		b.WriteString("  (empty)\n")
	}
	b.WriteString(helpStyle.Render("any key: close"))
	return overlayStyle.Render(b.String())
}

// hotbarLines renders the four hotbar slots, one per line.
func (m RoundModel) hotbarLines() string {
	var b strings.Builder
	for i := 0; i < save.HotbarSlots; i++ {
		name := m.sv.Hotbar[i]
		if name == "" {
			b.WriteString(fmt.Sprintf("  [%d] -\n", i+1))
			continue
		}
		it := economy.Item(name)
		b.WriteString(fmt.Sprintf("  [%d] %-12s (x%d)\n", i+1, it.Title(), m.sv.Inventory[name]))
	}
	return b.String()
}

// joinRunes formats a rune list as "a, b, c".
func joinRunes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// RunRound plays one round to completion. It reports whether the player
// quit mid-round instead of finishing it.
func RunRound(opts RoundOptions) (aborted bool, err error) {
	p := tea.NewProgram(NewRoundModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(RoundModel); ok {
		return m.Aborted(), nil
	}
	return false, nil
}
