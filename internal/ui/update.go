package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/example/posadmin/internal/cart"
	"github.com/example/posadmin/internal/config"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case initMsg:
		return m, m.reload(m.tab)

	case toastMsg:
		cmd := m.pushToast(msg.kind, msg.text)
		return m, tea.Batch(cmd, awaitToast(m.notifier))

	case toastExpireMsg:
		m.expireToast(msg.id)
		return m, nil

	case productsMsg:
		if msg.seq != m.seq[msg.tab] {
			return m, nil // superseded fetch, drop it
		}
		m.loading[msg.tab] = false
		m.products = msg.items
		m.svc.Cart().SetCatalog(catalogOf(msg.items))
		m.clampCursor(msg.tab)
		return m, nil

	case stockMsg:
		if msg.seq != m.seq[TabStock] {
			return m, nil
		}
		m.loading[TabStock] = false
		m.stock = msg.items
		m.clampCursor(TabStock)
		return m, nil

	case salesMsg:
		if msg.seq != m.seq[TabSales] {
			return m, nil
		}
		m.loading[TabSales] = false
		m.sales = msg.items
		m.clampCursor(TabSales)
		return m, nil

	case expensesMsg:
		if msg.seq != m.seq[TabExpenses] {
			return m, nil
		}
		m.loading[TabExpenses] = false
		m.expenses = msg.items
		m.clampCursor(TabExpenses)
		return m, nil

	case suppliersMsg:
		if msg.seq != m.seq[TabSuppliers] {
			return m, nil
		}
		m.loading[TabSuppliers] = false
		m.suppliers = msg.items
		m.clampCursor(TabSuppliers)
		return m, nil

	case ordersMsg:
		if msg.seq != m.seq[TabOrders] {
			return m, nil
		}
		m.loading[TabOrders] = false
		m.orders = msg.items
		m.clampCursor(TabOrders)
		return m, nil

	case writeOffsMsg:
		if msg.seq != m.seq[TabWriteOffs] {
			return m, nil
		}
		m.loading[TabWriteOffs] = false
		m.writeOffs = msg.items
		m.clampCursor(TabWriteOffs)
		return m, nil

	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case actionDoneMsg:
		if msg.err != nil {
			// The client's notifier already raised the error toast; the
			// list keeps its current contents.
			return m, nil
		}
		var cmd tea.Cmd
		if msg.successText != "" {
			cmd = m.pushToast("success", msg.successText)
		}
		return m, tea.Batch(cmd, m.reload(msg.tab))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Anything else (cursor blink ticks and the like) goes to whichever
	// input currently has focus.
	if m.confirm == nil {
		switch {
		case m.orderForm != nil:
			cmd := m.updateOrderForm(msg)
			return m, cmd
		case m.prompt != nil:
			cmd := m.updatePrompt(msg)
			return m, cmd
		case m.search.Focused():
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, cart.ErrPastCompletion):
			return m, m.pushToast("error", m.tr.T("dateInPast"))
		case errors.Is(msg.err, cart.ErrSubmitInFlight), errors.Is(msg.err, cart.ErrEmptyCart):
			return m, nil
		}
		// API failures were already toasted by the client's notifier. The
		// cart (and the form, when scheduling) stays as it was for retry.
		return m, nil
	}
	if msg.scheduled {
		m.orderForm = nil
		return m, m.pushToast("success", fmt.Sprintf(m.tr.T("orderCreated"), msg.rcpt.OrderID))
	}
	return m, m.pushToast("success", fmt.Sprintf(m.tr.T("orderCompleted"), money(m.tr, msg.total)))
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal layers capture all input.
	if m.confirm != nil {
		return m, m.updateConfirm(key)
	}
	if m.orderForm != nil {
		return m, m.updateOrderForm(key)
	}
	if m.prompt != nil {
		return m, m.updatePrompt(key)
	}
	if m.search.Focused() {
		switch key.String() {
		case "esc", "enter":
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(key)
			m.cursor[TabPOS] = 0
			return m, cmd
		}
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "right":
		return m.switchTab((m.tab + 1) % tabCount)
	case "left":
		return m.switchTab((m.tab + tabCount - 1) % tabCount)
	case "r":
		return m, m.reload(m.tab)
	case "L":
		return m.toggleLanguage()
	}
	if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= int(tabCount) {
		return m.switchTab(Tab(n - 1))
	}

	switch m.tab {
	case TabPOS:
		return m.handlePOSKey(key)
	case TabOrders:
		return m.handleOrdersKey(key)
	case TabSuppliers:
		return m.handleSuppliersKey(key)
	case TabStock:
		return m.handleStockKey(key)
	default:
		m.moveCursor(key.String())
		return m, nil
	}
}

// switchTab changes the visible panel and fires its loader; the title line
// follows the active tab in View.
func (m Model) switchTab(tab Tab) (tea.Model, tea.Cmd) {
	m.tab = tab
	return m, m.reload(tab)
}

func (m Model) toggleLanguage() (tea.Model, tea.Cmd) {
	next := "ru"
	if m.tr.Locale() == "ru" {
		next = "en"
	}
	code := m.tr.SetLocale(next)
	m.search.Placeholder = m.tr.T("searchProducts")
	if err := m.settings.Save(config.Settings{Language: code}); err != nil {
		log.WithError(err).Warn("failed to persist language")
	}
	return m, nil
}

// ============================================
// POS tab
// ============================================

func (m Model) handlePOSKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.svc.Cart()
	filtered := filterProducts(m.products, m.search.Value())

	switch key.String() {
	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor[TabPOS] > 0 {
			m.cursor[TabPOS]--
		}
	case "down", "j":
		if m.cursor[TabPOS] < len(filtered)-1 {
			m.cursor[TabPOS]++
		}

	case "enter", "a":
		if m.cursor[TabPOS] >= len(filtered) {
			return m, nil
		}
		p := filtered[m.cursor[TabPOS]]
		if line, ok := c.AddLine(p.ID); ok {
			return m, m.pushToast("success", fmt.Sprintf(m.tr.T("itemAdded"), line.Name))
		}

	case "shift+up":
		if m.lineCursor > 0 {
			m.lineCursor--
		}
	case "shift+down":
		if m.lineCursor < c.Len()-1 {
			m.lineCursor++
		}

	case "+", "=":
		if id, ok := m.selectedLine(); ok {
			c.Apply(cart.AdjustQuantity{ProductID: id, Delta: 1})
		}
	case "-", "_":
		if id, ok := m.selectedLine(); ok {
			c.Apply(cart.AdjustQuantity{ProductID: id, Delta: -1})
			m.clampLineCursor()
		}
	case "x", "backspace":
		if id, ok := m.selectedLine(); ok {
			if c.Apply(cart.RemoveLine{ProductID: id}) {
				m.clampLineCursor()
				return m, m.pushToast("info", m.tr.T("itemRemoved"))
			}
		}

	case "c":
		if c.Len() == 0 || c.Status() == cart.StatusSubmitting {
			return m, nil
		}
		m.askConfirmation(m.tr.T("clearConfirm"), func(m *Model) tea.Cmd {
			if m.svc.Cart().Clear() {
				m.lineCursor = 0
				return m.pushToast("info", m.tr.T("orderCleared"))
			}
			return nil
		})

	case "s":
		// The Submitting state doubles as the disabled-control guard; the
		// engine rejects a second submission even if this check is skipped.
		if c.Len() == 0 || c.Status() == cart.StatusSubmitting {
			return m, nil
		}
		return m, m.submitImmediateCmd()

	case "o":
		if c.Len() == 0 || c.Status() == cart.StatusSubmitting {
			return m, nil
		}
		m.orderForm = newOrderForm(time.Now())
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) selectedLine() (int, bool) {
	lines := m.svc.Cart().Lines()
	if m.lineCursor >= len(lines) {
		return 0, false
	}
	return lines[m.lineCursor].ProductID, true
}

func (m *Model) clampLineCursor() {
	if n := m.svc.Cart().Len(); m.lineCursor >= n && n > 0 {
		m.lineCursor = n - 1
	} else if n == 0 {
		m.lineCursor = 0
	}
}

// ============================================
// Orders tab
// ============================================

func (m Model) handleOrdersKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "p":
		m.pendingOnly = !m.pendingOnly
		return m, m.reload(TabOrders)

	case "c":
		if order, ok := m.selectedOrder(); ok && order.Status == "pending" {
			id := order.ID
			client := m.client
			m.askConfirmation(fmt.Sprintf(m.tr.T("completeConfirm"), id), func(m *Model) tea.Cmd {
				return actionCmd(TabOrders, func(ctx context.Context) error {
					return client.CompleteOrder(ctx, id)
				})
			})
		}

	case "x":
		if order, ok := m.selectedOrder(); ok {
			id := order.ID
			client := m.client
			m.askConfirmation(fmt.Sprintf(m.tr.T("deleteConfirm"), fmt.Sprintf("#%d", id)), func(m *Model) tea.Cmd {
				return actionCmd(TabOrders, func(ctx context.Context) error {
					return client.DeleteOrder(ctx, id)
				})
			})
		}

	default:
		m.moveCursor(key.String())
	}
	return m, nil
}

func (m *Model) selectedOrder() (o struct {
	ID     int
	Status string
}, ok bool) {
	i := m.cursor[TabOrders]
	if i >= len(m.orders) {
		return o, false
	}
	o.ID = m.orders[i].ID
	o.Status = m.orders[i].Status
	return o, true
}

// ============================================
// Suppliers tab
// ============================================

func (m Model) handleSuppliersKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "x":
		i := m.cursor[TabSuppliers]
		if i >= len(m.suppliers) {
			return m, nil
		}
		name := m.suppliers[i].Name
		client := m.client
		m.askConfirmation(fmt.Sprintf(m.tr.T("deleteConfirm"), name), func(m *Model) tea.Cmd {
			return actionCmd(TabSuppliers, func(ctx context.Context) error {
				return client.DeleteSupplier(ctx, name)
			})
		})
	default:
		m.moveCursor(key.String())
	}
	return m, nil
}

// ============================================
// Stock tab
// ============================================

func (m Model) handleStockKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "s":
		i := m.cursor[TabStock]
		if i >= len(m.stock) {
			return m, nil
		}
		item := m.stock[i]
		client := m.client
		title := fmt.Sprintf("%s (%s)", item.Name, m.tr.T("quantity"))
		m.openPrompt(title, strconv.FormatFloat(item.Quantity, 'f', -1, 64), func(m *Model, value string) tea.Cmd {
			quantity, err := strconv.ParseFloat(value, 64)
			if err != nil || quantity < 0 {
				return m.pushToast("error", m.tr.T("invalidNumber"))
			}
			name := item.Name
			successText := m.tr.T("quantitySet")
			return func() tea.Msg {
				err := client.SetStockQuantity(context.Background(), name, quantity)
				return actionDoneMsg{tab: TabStock, err: err, successText: successText}
			}
		})
	default:
		m.moveCursor(key.String())
	}
	return m, nil
}

// ============================================
// Shared cursor handling
// ============================================

func (m *Model) moveCursor(key string) {
	switch key {
	case "up", "k":
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
	case "down", "j":
		if m.cursor[m.tab] < m.listLen(m.tab)-1 {
			m.cursor[m.tab]++
		}
	}
}

func (m *Model) listLen(tab Tab) int {
	switch tab {
	case TabPOS, TabProducts:
		return len(m.products)
	case TabStock:
		return len(m.stock)
	case TabSales:
		return len(m.sales)
	case TabExpenses:
		return len(m.expenses)
	case TabSuppliers:
		return len(m.suppliers)
	case TabOrders:
		return len(m.orders)
	case TabWriteOffs:
		return len(m.writeOffs)
	}
	return 0
}

func (m *Model) clampCursor(tab Tab) {
	if n := m.listLen(tab); m.cursor[tab] >= n {
		if n == 0 {
			m.cursor[tab] = 0
		} else {
			m.cursor[tab] = n - 1
		}
	}
}
