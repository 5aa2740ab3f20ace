package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confirmState is a modal yes/no question. Declining resumes the caller
// with no side effect; nothing is sent anywhere until the user accepts.
type confirmState struct {
	message string
	accept  func(m *Model) tea.Cmd
}

func (m *Model) askConfirmation(message string, accept func(m *Model) tea.Cmd) {
	m.confirm = &confirmState{message: message, accept: accept}
}

func (m *Model) updateConfirm(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "y", "enter":
		accept := m.confirm.accept
		m.confirm = nil
		return accept(m)
	case "n", "esc":
		m.confirm = nil
	}
	return nil
}
