package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Accepted completion-date inputs.
var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// orderFormState is the scheduled-order form. openedAt is captured when the
// form opens and becomes the lower bound for the completion date, exactly
// like the web form's min attribute on the datetime field.
type orderFormState struct {
	openedAt time.Time
	date     textinput.Model
	note     textinput.Model
	focus    int
}

func newOrderForm(now time.Time) *orderFormState {
	date := textinput.New()
	date.Placeholder = now.Format("2006-01-02 15:04")
	date.CharLimit = 16
	date.Width = 20
	date.Focus()

	note := textinput.New()
	note.CharLimit = 120
	note.Width = 40

	return &orderFormState{openedAt: now, date: date, note: note}
}

func (m *Model) updateOrderForm(msg tea.Msg) tea.Cmd {
	form := m.orderForm

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			// Cancel discards the pending edit; the cart is untouched and
			// the server is never contacted.
			m.orderForm = nil
			return nil
		case "tab", "shift+tab", "up", "down":
			form.focus = (form.focus + 1) % 2
			if form.focus == 0 {
				form.date.Focus()
				form.note.Blur()
			} else {
				form.date.Blur()
				form.note.Focus()
			}
			return nil
		case "enter":
			return m.submitOrderForm()
		}
	}

	var cmd tea.Cmd
	if form.focus == 0 {
		form.date, cmd = form.date.Update(msg)
	} else {
		form.note, cmd = form.note.Update(msg)
	}
	return cmd
}

// submitOrderForm validates the completion date client-side and, when it
// holds, hands the cart to the scheduled-submit service call. On validation
// failure nothing leaves the process and no state changes.
func (m *Model) submitOrderForm() tea.Cmd {
	form := m.orderForm

	completeAt, err := parseCompletionDate(form.date.Value())
	if err != nil {
		return m.pushToast("error", m.tr.T("invalidDate"))
	}

	svc := m.svc
	openedAt := form.openedAt
	note := form.note.Value()
	return func() tea.Msg {
		rcpt, err := svc.SubmitScheduled(context.Background(), completeAt, openedAt, note)
		return submitResultMsg{scheduled: true, rcpt: rcpt, err: err}
	}
}

func parseCompletionDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
