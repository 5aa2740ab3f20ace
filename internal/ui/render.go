package ui

import (
	"fmt"
	"strings"

	"github.com/example/posadmin/internal/api"
	"github.com/example/posadmin/internal/cart"
	"github.com/example/posadmin/internal/i18n"
)

// Renderers are pure: each takes a fetched collection and projects it to a
// string, so rendering the same input twice yields the same output. They
// never touch the network or retain state between calls.

func money(tr *i18n.Translator, v int) string {
	return currency + tr.Printer().Sprintf("%d", v)
}

func filterProducts(items []api.Product, term string) []api.Product {
	if term == "" {
		return items
	}
	term = strings.ToLower(term)
	filtered := make([]api.Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func catalogOf(items []api.Product) []cart.CatalogItem {
	catalog := make([]cart.CatalogItem, 0, len(items))
	for _, p := range items {
		catalog = append(catalog, cart.CatalogItem{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return catalog
}

func joinMaterials(materials []api.Material) string {
	if len(materials) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(materials))
	for _, mat := range materials {
		part := fmt.Sprintf("%s %g", mat.Name, mat.Quantity)
		if mat.Unit != "" {
			part += " " + mat.Unit
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func renderRows(header string, rows []string, cursor int, emptyText string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')
	if len(rows) == 0 {
		b.WriteString(emptyStyle.Render(emptyText))
		b.WriteByte('\n')
		return b.String()
	}
	for i, row := range rows {
		if i == cursor {
			b.WriteString(cursorStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderProducts(tr *i18n.Translator, items []api.Product, cursor int) string {
	header := fmt.Sprintf("%-24s %10s  %s", tr.T("productName"), tr.T("price"), tr.T("ingredientsList"))
	rows := make([]string, 0, len(items))
	for _, p := range items {
		rows = append(rows, fmt.Sprintf("%-24s %10s  %s", p.Name, money(tr, p.Price), joinMaterials(p.Materials)))
	}
	return renderRows(header, rows, cursor, tr.T("noData"))
}

func renderStock(tr *i18n.Translator, items []api.StockItem, cursor int) string {
	header := fmt.Sprintf("%-24s %-16s %12s %-8s", tr.T("stockItemName"), tr.T("category"), tr.T("quantity"), tr.T("unit"))
	rows := make([]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, fmt.Sprintf("%-24s %-16s %12g %-8s", it.Name, it.CategoryName, it.Quantity, it.UnitName))
	}
	return renderRows(header, rows, cursor, tr.T("noData"))
}

func renderSales(tr *i18n.Translator, items []api.Sale, cursor int) string {
	header := fmt.Sprintf("%-19s %-24s %10s %8s %9s %10s",
		tr.T("date"), tr.T("product"), tr.T("price"), tr.T("quantity"), tr.T("discount"), tr.T("total"))
	rows := make([]string, 0, len(items))
	for _, s := range items {
		total := int(float64(s.Price) * s.Quantity * (1 - float64(s.Discount)/100))
		rows = append(rows, fmt.Sprintf("%-19s %-24s %10s %8g %8d%% %10s",
			s.Date, s.ProductName, money(tr, s.Price), s.Quantity, s.Discount, money(tr, total)))
	}
	return renderRows(header, rows, cursor, tr.T("noData"))
}

func renderExpenses(tr *i18n.Translator, items []api.ExpenseDocument, cursor int) string {
	header := fmt.Sprintf("%-19s %-24s %12s %6s  %s",
		tr.T("date"), tr.T("supplier"), tr.T("total"), "#", tr.T("additionalInfo"))
	rows := make([]string, 0, len(items))
	for _, d := range items {
		rows = append(rows, fmt.Sprintf("%-19s %-24s %12.2f %6d  %s",
			d.Date, d.SupplierName, d.TotalAmount, d.ItemsCount, d.Comment))
	}
	return renderRows(header, rows, cursor, tr.T("noData"))
}

func renderSuppliers(tr *i18n.Translator, items []api.Supplier, cursor int) string {
	header := fmt.Sprintf("%-24s %-20s %-16s %-24s", tr.T("companyName"), tr.T("contactPerson"), tr.T("phone"), tr.T("email"))
	rows := make([]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, fmt.Sprintf("%-24s %-20s %-16s %-24s", s.Name, s.ContactPerson, s.Phone, s.Email))
	}
	return renderRows(header, rows, cursor, tr.T("noData"))
}

func renderOrders(tr *i18n.Translator, items []api.Order, cursor int) string {
	header := fmt.Sprintf("%5s %-19s %-19s %-10s %8s  %s",
		"#", tr.T("createdDate"), tr.T("completionDate"), tr.T("status"), tr.T("total"), tr.T("additionalInfo"))
	rows := make([]string, 0, len(items))
	for _, o := range items {
		completion := "-"
		if o.CompletionDate != nil {
			completion = *o.CompletionDate
		}
		info := ""
		if o.AdditionalInfo != nil {
			info = *o.AdditionalInfo
		}
		total := 0
		for _, it := range o.Items {
			total += int(float64(it.Price) * it.Quantity)
		}
		rows = append(rows, fmt.Sprintf("%5d %-19s %-19s %-10s %8s  %s",
			o.ID, o.CreatedDate, completion, o.Status, money(tr, total), info))
	}
	return renderRows(header, rows, cursor, tr.T("noData"))
}

func renderWriteOffs(tr *i18n.Translator, items []api.WriteOff, cursor int) string {
	header := fmt.Sprintf("%-19s %-24s %10s  %s", tr.T("date"), tr.T("product"), tr.T("quantity"), tr.T("reason"))
	rows := make([]string, 0, len(items))
	for _, w := range items {
		rows = append(rows, fmt.Sprintf("%-19s %-24s %10g  %s", w.Date, w.ItemName, w.Quantity, w.Reason))
	}
	return renderRows(header, rows, cursor, tr.T("noData"))
}

// renderProductGrid is the selectable product list on the POS tab.
func renderProductGrid(tr *i18n.Translator, items []api.Product, cursor int, searchView string) string {
	var b strings.Builder
	b.WriteString(searchView)
	b.WriteString("\n\n")
	if len(items) == 0 {
		b.WriteString(emptyStyle.Render(tr.T("noData")))
		b.WriteByte('\n')
		return b.String()
	}
	for i, p := range items {
		row := fmt.Sprintf("%-24s %10s", p.Name, money(tr, p.Price))
		if i == cursor {
			b.WriteString(cursorStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// renderCartPane draws the order builder. The empty state is visually
// distinct from the populated one, and the Submitting state replaces the
// action hints with a processing notice (the disabled controls).
func renderCartPane(tr *i18n.Translator, lines []cart.Line, status cart.Status, subtotal int, lineCursor int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(tr.T("orderItems")))
	b.WriteString("\n\n")

	if len(lines) == 0 {
		b.WriteString(emptyStyle.Render(tr.T("emptyOrder")))
		b.WriteByte('\n')
		b.WriteString(emptyStyle.Render(tr.T("emptyOrderHint")))
		b.WriteByte('\n')
		return b.String()
	}

	for i, l := range lines {
		row := fmt.Sprintf("%-20s x%-3d %10s", l.Name, l.Quantity, money(tr, l.Total()))
		if i == lineCursor {
			b.WriteString(cursorStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("%s: %s\n", tr.T("subtotal"), money(tr, subtotal)))
	b.WriteString(fmt.Sprintf("%s: %s\n", tr.T("total"), money(tr, subtotal)))

	b.WriteByte('\n')
	if status == cart.StatusSubmitting {
		b.WriteString(emptyStyle.Render(tr.T("processing")))
	} else {
		b.WriteString(helpStyle.Render(fmt.Sprintf("[s] %s  [o] %s  [c] %s",
			tr.T("completeNow"), tr.T("createOrder"), tr.T("clearOrder"))))
	}
	b.WriteByte('\n')
	return b.String()
}
