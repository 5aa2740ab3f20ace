package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabBar())
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(m.tr.T(m.tab.key())))
	b.WriteString("\n\n")

	switch {
	case m.confirm != nil:
		b.WriteString(m.renderConfirm())
	case m.orderForm != nil:
		b.WriteString(m.renderOrderForm())
	case m.prompt != nil:
		b.WriteString(m.renderPrompt())
	default:
		b.WriteString(m.renderBody())
	}

	if view := m.renderToasts(); view != "" {
		b.WriteString("\n")
		b.WriteString(view)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", int(t)+1, m.tr.T(t.key()))
		if t == m.tab {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderBody() string {
	if m.loading[m.tab] {
		return emptyStyle.Render(m.tr.T("loading")) + "\n"
	}

	switch m.tab {
	case TabPOS:
		filtered := filterProducts(m.products, m.search.Value())
		grid := paneStyle.Render(renderProductGrid(m.tr, filtered, m.cursor[TabPOS], m.search.View()))
		c := m.svc.Cart()
		pane := paneStyle.Render(renderCartPane(m.tr, c.Lines(), c.Status(), c.Subtotal(), m.lineCursor))
		return lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", pane)
	case TabProducts:
		return renderProducts(m.tr, m.products, m.cursor[TabProducts])
	case TabStock:
		return renderStock(m.tr, m.stock, m.cursor[TabStock])
	case TabSales:
		return renderSales(m.tr, m.sales, m.cursor[TabSales])
	case TabExpenses:
		return renderExpenses(m.tr, m.expenses, m.cursor[TabExpenses])
	case TabSuppliers:
		return renderSuppliers(m.tr, m.suppliers, m.cursor[TabSuppliers])
	case TabOrders:
		body := renderOrders(m.tr, m.orders, m.cursor[TabOrders])
		if m.pendingOnly {
			body = emptyStyle.Render("["+m.tr.T("pendingOnly")+"]") + "\n" + body
		}
		return body
	case TabWriteOffs:
		return renderWriteOffs(m.tr, m.writeOffs, m.cursor[TabWriteOffs])
	}
	return ""
}

func (m Model) renderConfirm() string {
	body := m.confirm.message + "\n\n" + helpStyle.Render("[y] "+m.tr.T("save")+"  [n] "+m.tr.T("cancel"))
	return modalStyle.Render(body) + "\n"
}

func (m Model) renderOrderForm() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.tr.T("createOrder")))
	b.WriteString("\n\n")
	b.WriteString(m.tr.T("completionDate") + ": " + m.orderForm.date.View())
	b.WriteString("\n")
	b.WriteString(m.tr.T("additionalInfo") + ": " + m.orderForm.note.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: " + m.tr.T("actions") + "  enter: " + m.tr.T("save") + "  esc: " + m.tr.T("cancel")))
	return modalStyle.Render(b.String()) + "\n"
}

func (m Model) renderPrompt() string {
	body := headerStyle.Render(m.prompt.title) + "\n\n" + m.prompt.input.View() + "\n\n" +
		helpStyle.Render("enter: " + m.tr.T("save") + "  esc: " + m.tr.T("cancel"))
	return modalStyle.Render(body) + "\n"
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range m.toasts {
		style, ok := toastStyles[t.kind]
		if !ok {
			style = toastStyles["info"]
		}
		b.WriteString(style.Render("• " + t.text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	common := "←/→ tabs  1-8 jump  r refresh  L " + m.tr.T("language") + "  q quit"
	switch m.tab {
	case TabPOS:
		return "/ " + m.tr.T("searchProducts") + "  enter add  +/- qty  x remove  s " +
			m.tr.T("completeNow") + "  o " + m.tr.T("createOrder") + "  c " + m.tr.T("clearOrder") + "  " + common
	case TabOrders:
		return "p " + m.tr.T("pendingOnly") + "  c complete  x delete  " + common
	case TabSuppliers:
		return "x delete  " + common
	case TabStock:
		return "s " + m.tr.T("quantity") + "  " + common
	}
	return common
}
