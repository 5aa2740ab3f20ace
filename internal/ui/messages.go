package ui

import (
	"github.com/example/posadmin/internal/api"
	"github.com/example/posadmin/internal/cart"
)

// Messages produced by loader and action commands. Every data message
// carries the sequence number of the fetch that produced it; Update drops
// messages whose sequence is no longer current for the tab, so a slow old
// response can never overwrite a newer one.

// initMsg kicks off the first fetch once the program loop is running.
type initMsg struct{}

// productsMsg serves both the POS catalog and the Products tab, so it names
// the tab whose sequence it was fetched under.
type productsMsg struct {
	tab   Tab
	seq   uint64
	items []api.Product
}

type stockMsg struct {
	seq   uint64
	items []api.StockItem
}

type salesMsg struct {
	seq   uint64
	items []api.Sale
}

type expensesMsg struct {
	seq   uint64
	items []api.ExpenseDocument
}

type suppliersMsg struct {
	seq   uint64
	items []api.Supplier
}

type ordersMsg struct {
	seq   uint64
	items []api.Order
}

type writeOffsMsg struct {
	seq   uint64
	items []api.WriteOff
}

// submitResultMsg resolves an in-flight cart submission.
type submitResultMsg struct {
	scheduled bool
	total     int
	rcpt      cart.Receipt
	err       error
}

// actionDoneMsg resolves a row action (complete order, delete entity, set
// stock quantity). A nil err triggers a reload of the tab.
type actionDoneMsg struct {
	tab         Tab
	err         error
	successText string
}

// toastMsg asks for a transient notification.
type toastMsg struct {
	kind string // "success", "error", "info"
	text string
}

// toastExpireMsg removes a toast after its display window.
type toastExpireMsg struct {
	id int
}
