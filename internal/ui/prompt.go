package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptState is a one-field input modal (used for the stock set-quantity
// action). Esc discards the pending edit without any server contact.
type promptState struct {
	title  string
	input  textinput.Model
	submit func(m *Model, value string) tea.Cmd
}

func (m *Model) openPrompt(title, initial string, submit func(m *Model, value string) tea.Cmd) {
	input := textinput.New()
	input.SetValue(initial)
	input.CharLimit = 16
	input.Width = 16
	input.Focus()
	m.prompt = &promptState{title: title, input: input, submit: submit}
}

func (m *Model) updatePrompt(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.prompt = nil
			return nil
		case "enter":
			prompt := m.prompt
			m.prompt = nil
			return prompt.submit(m, prompt.input.Value())
		}
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return cmd
}
