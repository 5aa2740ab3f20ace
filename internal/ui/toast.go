package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastTTL matches the web UI's 3-second toast window.
const toastTTL = 3 * time.Second

type toast struct {
	id   int
	kind string
	text string
}

// toastNotifier adapts the api.Notifier contract onto the bubbletea message
// loop. Toast may be called from command goroutines, so it feeds a channel
// that the model drains with awaitToast.
type toastNotifier chan toastMsg

func newToastNotifier() toastNotifier {
	return make(toastNotifier, 16)
}

func (n toastNotifier) Toast(kind, message string) {
	select {
	case n <- toastMsg{kind: kind, text: message}:
	default:
		// A full queue means the user already has a screen of toasts;
		// dropping the oldest news is better than blocking a request.
	}
}

// awaitToast blocks until the notifier produces a toast. Update re-issues it
// after every delivery, keeping exactly one listener alive.
func awaitToast(n toastNotifier) tea.Cmd {
	return func() tea.Msg {
		return <-n
	}
}

// pushToast appends a toast and schedules its expiry.
func (m *Model) pushToast(kind, text string) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toasts = append(m.toasts, toast{id: id, kind: kind, text: text})
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}

func (m *Model) expireToast(id int) {
	for i := range m.toasts {
		if m.toasts[i].id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}
