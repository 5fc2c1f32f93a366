package console

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// multiSelectModel is the bubbletea model for a checkbox-style list prompt.
type multiSelectModel struct {
	title     string
	button    string
	options   []string
	cursor    int
	selected  map[int]struct{}
	cancelled bool
	done      bool
}

func newMultiSelect(title, button string, options []string) multiSelectModel {
	return multiSelectModel{
		title:    title,
		button:   button,
		options:  options,
		selected: make(map[int]struct{}),
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles keyboard input for the picker.
func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ":
		if _, ok := m.selected[m.cursor]; ok {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}
	case "a":
		if len(m.selected) == len(m.options) {
			m.selected = make(map[int]struct{})
		} else {
			for i := range m.options {
				m.selected[i] = struct{}{}
			}
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the list with cursor, checkboxes and a help line.
func (m multiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, option := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		checkbox := "[ ]"
		line := checkbox + " " + option
		if _, ok := m.selected[i]; ok {
			line = selectedStyle.Render("[x] " + option)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space toggle · a all · enter " + strings.ToLower(m.button) + " · esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// chosen returns the selected option names in display order.
func (m multiSelectModel) chosen() []string {
	indexes := make([]int, 0, len(m.selected))
	for i := range m.selected {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	names := make([]string, 0, len(indexes))
	for _, i := range indexes {
		names = append(names, m.options[i])
	}
	return names
}
