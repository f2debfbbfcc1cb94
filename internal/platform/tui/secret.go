package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillon/pendu/internal/words"
)

// SecretModel asks one player to type a secret word without echoing it,
// so the guesser at the same keyboard cannot read it.
type SecretModel struct {
	input    textinput.Model
	errMsg   string
	word     string
	done     bool
	quitting bool
	width    int
}

// NewSecretModel creates the hidden word entry screen.
func NewSecretModel() SecretModel {
	ti := textinput.New()
	ti.Placeholder = "secret word"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = 32
	ti.Focus()

	return SecretModel{input: ti, width: 80}
}

// Init implements tea.Model.
func (m SecretModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the secret entry.
func (m SecretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			word := words.Clean(m.input.Value())
			if word == "" {
				m.errMsg = "The word needs at least 3 letters a-z."
				m.input.SetValue("")
				return m, nil
			}
			m.word = word
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the secret entry screen.
func (m SecretModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Player 1: choose the secret word"))
	b.WriteString("\n\n")
	b.WriteString("Type a word (letters only, accents are stripped) and press Enter.\n")
	b.WriteString("Player 2, look away!\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(badStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: confirm  ·  esc: cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Word returns the confirmed secret word, empty when cancelled.
func (m SecretModel) Word() string {
	return m.word
}

// RunSecretEntry asks for a hidden word. An empty result means the player
// cancelled.
func RunSecretEntry() (string, error) {
	p := tea.NewProgram(NewSecretModel(), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(SecretModel)
	if !ok {
		return "", nil
	}
	return m.Word(), nil
}
