package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptModel is a full-screen message with a yes/no question at the bottom.
// It doubles as a plain "press any key" screen when Question is empty.
type PromptModel struct {
	Title    string
	Body     string
	Question string
	good     bool

	answer   bool
	answered bool
	width    int
	height   int
}

// NewPrompt creates a yes/no prompt. good selects the title color.
func NewPrompt(title, body, question string, good bool) PromptModel {
	return PromptModel{
		Title:    title,
		Body:     body,
		Question: question,
		good:     good,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m PromptModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the prompt.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.Question == "" {
			m.answered = true
			return m, tea.Quit
		}
		switch msg.String() {
		case "y", "o", "enter":
			m.answer = true
			m.answered = true
			return m, tea.Quit
		case "n", "esc", "q", "ctrl+c":
			m.answer = false
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.answered {
		return ""
	}

	var b strings.Builder
	style := goodStyle
	if !m.good {
		style = badStyle
	}
	b.WriteString(style.Bold(true).Render(m.Title))
	b.WriteString("\n\n")
	if m.Body != "" {
		b.WriteString(m.Body)
		b.WriteString("\n\n")
	}
	if m.Question != "" {
		b.WriteString(infoStyle.Render(m.Question + " (y/n)"))
	} else {
		b.WriteString(helpStyle.Render("press any key"))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// Answer returns the player's choice.
func (m PromptModel) Answer() bool {
	return m.answer
}

// RunPrompt shows the prompt and returns the answer. A prompt without a
// question always returns true once dismissed.
func RunPrompt(title, body, question string, good bool) (bool, error) {
	p := tea.NewProgram(NewPrompt(title, body, question, good), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(PromptModel)
	if !ok {
		return false, nil
	}
	if m.Question == "" {
		return true, nil
	}
	return m.Answer(), nil
}
