package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/posadmin/internal/api"
	"github.com/example/posadmin/internal/cart"
	"github.com/example/posadmin/internal/config"
	"github.com/example/posadmin/internal/i18n"
)

// Model is the whole client state: one active tab, per-tab collections, the
// cart service, and whatever transient layer (confirm, form, prompt) is
// currently capturing input. Rendering is a pure projection of this struct;
// every mutation happens in Update.
type Model struct {
	client   *api.Client
	svc      *cart.Service
	tr       *i18n.Translator
	settings *config.Store
	notifier toastNotifier

	tab    Tab
	width  int
	height int

	// seq holds the most recently issued fetch sequence per tab. A data
	// message with an older sequence is stale and gets dropped.
	seq     [tabCount]uint64
	loading [tabCount]bool
	cursor  [tabCount]int

	products  []api.Product
	stock     []api.StockItem
	sales     []api.Sale
	expenses  []api.ExpenseDocument
	suppliers []api.Supplier
	orders    []api.Order
	writeOffs []api.WriteOff

	pendingOnly bool // orders tab filter

	search     textinput.Model // POS product filter
	lineCursor int             // selected cart line on the POS tab

	confirm   *confirmState
	orderForm *orderFormState
	prompt    *promptState

	toasts   []toast
	toastSeq int
}

// NewModel wires the model; the caller owns client/service construction so
// the same notifier instance reaches both the API client and the UI.
func NewModel(client *api.Client, svc *cart.Service, tr *i18n.Translator, settings *config.Store, notifier toastNotifier) Model {
	search := textinput.New()
	search.Placeholder = tr.T("searchProducts")
	search.CharLimit = 64
	search.Width = 28

	return Model{
		client:   client,
		svc:      svc,
		tr:       tr,
		settings: settings,
		notifier: notifier,
		tab:      TabPOS,
		search:   search,
	}
}

// NewNotifier returns the toast notifier shared between the API client and
// the model.
func NewNotifier() toastNotifier {
	return newToastNotifier()
}

// Init runs on a copy of the model, so it must not touch sequence state
// itself; it emits initMsg and Update performs the first reload on the model
// it returns.
func (m Model) Init() tea.Cmd {
	return tea.Batch(awaitToast(m.notifier), func() tea.Msg { return initMsg{} })
}
