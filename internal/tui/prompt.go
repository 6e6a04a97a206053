package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a one-shot choice list. Enter commits the cursored
// choice, esc and q dismiss the prompt.
type promptModel struct {
	question  string
	choices   []string
	idx       int
	dismissed bool
}

func newPromptModel(question string, choices []string) promptModel {
	return promptModel{question: question, choices: choices}
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.choices)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.dismissed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString("\n\n")

	for i, choice := range m.choices {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + choice + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: select │ ↑/↓: move │ esc: dismiss"))

	return promptBox.Render(b.String())
}
