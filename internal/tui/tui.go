// Package tui renders the interactive conflict prompts on the
// terminal. It is one implementation of the engine's prompt channel; a
// host editor could supply its own.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janus-tools/janus-sync/internal/logger"
)

type TUI struct {
	log *logger.Logger
}

func New(log *logger.Logger) (*TUI, error) {
	return &TUI{log: log}, nil
}

// Ask presents question with the given choices and blocks until the
// user selects one or dismisses the prompt. A dismissal returns ""
// with a nil error: the caller treats it as a denial, not a failure.
func (t *TUI) Ask(ctx context.Context, question string, choices []string) (string, error) {
	model := newPromptModel(question, choices)
	finalModel, runErr := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(promptModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.dismissed {
		t.log.Debug().Str("question", question).Msg("prompt dismissed")
		return "", nil
	}
	return result.choices[result.idx], nil
}
