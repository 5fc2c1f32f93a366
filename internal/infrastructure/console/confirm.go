package console

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is the bubbletea model for a yes/no prompt.
type confirmModel struct {
	message   string
	confirmed bool
	answered  bool
}

func newConfirm(message string) confirmModel {
	return confirmModel{message: message}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.confirmed = true
		m.answered = true
		return m, tea.Quit
	case "n", "N", "esc", "q", "ctrl+c":
		m.confirmed = false
		m.answered = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm"))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("y continue · n abort run"))
	b.WriteString("\n")
	return b.String()
}
