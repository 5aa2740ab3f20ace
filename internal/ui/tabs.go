package ui

// Tab identifies one view panel. Order matters: it is the on-screen order
// and the 1..n quick-switch key binding.
type Tab int

const (
	TabPOS Tab = iota
	TabProducts
	TabStock
	TabSales
	TabExpenses
	TabSuppliers
	TabOrders
	TabWriteOffs

	tabCount
)

// key returns the i18n key for the tab title.
func (t Tab) key() string {
	switch t {
	case TabPOS:
		return "pos"
	case TabProducts:
		return "products"
	case TabStock:
		return "stock"
	case TabSales:
		return "sales"
	case TabExpenses:
		return "expenses"
	case TabSuppliers:
		return "suppliers"
	case TabOrders:
		return "orders"
	case TabWriteOffs:
		return "writeoffs"
	}
	return "unknown"
}
