package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ResultMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		result := msg.Result
		m.result = &result
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Calculate):
		return m.calculate()

	case key.Matches(msg, keys.Clear):
		return m.Clear(), nil

	case key.Matches(msg, keys.Next):
		cmd := m.setFocus((m.focused + 1) % len(m.inputs))
		return m, cmd

	case key.Matches(msg, keys.Prev):
		cmd := m.setFocus((m.focused - 1 + len(m.inputs)) % len(m.inputs))
		return m, cmd
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused text input
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}
