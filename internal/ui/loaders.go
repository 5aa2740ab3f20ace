package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// reload issues a fresh fetch for the tab's collection. It bumps the tab's
// sequence first, so any response still in flight from a previous fetch
// arrives with a stale sequence and is ignored.
func (m *Model) reload(tab Tab) tea.Cmd {
	m.seq[tab]++
	m.loading[tab] = true
	seq := m.seq[tab]
	c := m.client
	ctx := context.Background()

	switch tab {
	case TabPOS, TabProducts:
		return func() tea.Msg {
			return productsMsg{tab: tab, seq: seq, items: c.Products(ctx)}
		}
	case TabStock:
		return func() tea.Msg {
			return stockMsg{seq: seq, items: c.Stock(ctx)}
		}
	case TabSales:
		return func() tea.Msg {
			return salesMsg{seq: seq, items: c.Sales(ctx)}
		}
	case TabExpenses:
		return func() tea.Msg {
			return expensesMsg{seq: seq, items: c.ExpenseDocuments(ctx)}
		}
	case TabSuppliers:
		return func() tea.Msg {
			return suppliersMsg{seq: seq, items: c.Suppliers(ctx)}
		}
	case TabOrders:
		pendingOnly := m.pendingOnly
		return func() tea.Msg {
			if pendingOnly {
				return ordersMsg{seq: seq, items: c.PendingOrders(ctx)}
			}
			return ordersMsg{seq: seq, items: c.Orders(ctx)}
		}
	case TabWriteOffs:
		return func() tea.Msg {
			return writeOffsMsg{seq: seq, items: c.WriteOffs(ctx)}
		}
	}
	return nil
}

// submitImmediateCmd runs the complete-now submission off the event loop.
func (m *Model) submitImmediateCmd() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		total, rcpt, err := svc.SubmitImmediate(context.Background())
		return submitResultMsg{total: total, rcpt: rcpt, err: err}
	}
}

// actionCmd wraps a row action; a nil error triggers a reload of tab.
func actionCmd(tab Tab, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{tab: tab, err: fn(context.Background())}
	}
}
