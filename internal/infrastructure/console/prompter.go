// Package console provides the interactive surface of a tagging run: list
// selection, confirmation and progress prompts rendered on the terminal.
package console

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectionStatus distinguishes a confirmed selection from a user cancel
type SelectionStatus string

const (
	SelectionMade      SelectionStatus = "MADE"
	SelectionCancelled SelectionStatus = "CANCELLED"
)

// Selection is the outcome of a multi-select prompt. Cancellation is an
// ordinary value, not an error: callers branch on Status instead of
// unwinding.
type Selection struct {
	Status SelectionStatus
	Names  []string
}

// Cancelled reports whether the user dismissed the prompt without confirming
func (s Selection) Cancelled() bool {
	return s.Status == SelectionCancelled
}

// ProgressReporter receives per-item progress during a long operation
type ProgressReporter interface {
	// Update reports that item current of total is being processed
	Update(current, total int)
	// Done finishes the progress display
	Done()
}

// Prompter defines the interface for the dialogs a tagging run needs
type Prompter interface {
	// SelectFromList shows a multi-select prompt and returns the chosen
	// names, or a cancelled selection when the user dismisses the prompt
	// or confirms with nothing chosen.
	SelectFromList(title, button string, options []string) (Selection, error)
	// ConfirmContinue asks whether to continue; false means abort the run
	ConfirmContinue(message string) (bool, error)
	// StartProgress opens a progress display for total items
	StartProgress(title string, total int) ProgressReporter
}

// TerminalPrompter implements Prompter with interactive terminal dialogs
type TerminalPrompter struct {
	out io.Writer
}

// NewTerminalPrompter creates a TerminalPrompter writing to stdout
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{out: os.Stdout}
}

// SelectFromList shows the multi-select picker and blocks until the user
// confirms or cancels.
func (p *TerminalPrompter) SelectFromList(title, button string, options []string) (Selection, error) {
	final, err := tea.NewProgram(newMultiSelect(title, button, options), tea.WithOutput(p.out)).Run()
	if err != nil {
		return Selection{}, fmt.Errorf("failed to run selection prompt: %w", err)
	}
	m, ok := final.(multiSelectModel)
	if !ok {
		return Selection{}, fmt.Errorf("unexpected selection model type %T", final)
	}
	chosen := m.chosen()
	if m.cancelled || len(chosen) == 0 {
		return Selection{Status: SelectionCancelled}, nil
	}
	return Selection{Status: SelectionMade, Names: chosen}, nil
}

// ConfirmContinue shows a yes/no dialog and blocks until the user answers
func (p *TerminalPrompter) ConfirmContinue(message string) (bool, error) {
	final, err := tea.NewProgram(newConfirm(message), tea.WithOutput(p.out)).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirmation prompt: %w", err)
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected confirmation model type %T", final)
	}
	return m.confirmed, nil
}
