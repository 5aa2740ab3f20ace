package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/example/posadmin/internal/cart"
)

// completionDateFormat matches the backend's datetime parsing.
const completionDateFormat = "2006-01-02T15:04:05"

// --- Products ---

func (c *Client) Products(ctx context.Context) []Product {
	return getList[Product](ctx, c, "products")
}

func (c *Client) Product(ctx context.Context, id int) (Product, error) {
	var p Product
	err := c.get(ctx, fmt.Sprintf("products/%d", id), &p)
	return p, err
}

func (c *Client) CreateProduct(ctx context.Context, p ProductCreate) (Product, error) {
	var out Product
	err := c.mutate(ctx, http.MethodPost, "products", p, &out, nil)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, p ProductCreate) (Product, error) {
	var out Product
	err := c.mutate(ctx, http.MethodPut, fmt.Sprintf("products/%d", id), p, &out, nil)
	return out, err
}

// --- Stock ---

func (c *Client) Stock(ctx context.Context) []StockItem {
	return getList[StockItem](ctx, c, "stock")
}

func (c *Client) StockCategories(ctx context.Context) []string {
	return getList[string](ctx, c, "stock/categories")
}

func (c *Client) StockMaterials(ctx context.Context) []Ingredient {
	return getList[Ingredient](ctx, c, "stock/materials")
}

func (c *Client) SetStockQuantity(ctx context.Context, name string, quantity float64) error {
	return c.mutate(ctx, http.MethodPut, fmt.Sprintf("stock/%s/set", url.PathEscape(name)), StockSet{Quantity: quantity}, nil, nil)
}

// --- Sales ---

func (c *Client) Sales(ctx context.Context) []Sale {
	return getList[Sale](ctx, c, "sales")
}

func (c *Client) CreateSale(ctx context.Context, s SaleCreate) error {
	return c.mutate(ctx, http.MethodPost, "sales", s, nil, nil)
}

// --- Expenses ---

func (c *Client) ExpenseDocuments(ctx context.Context) []ExpenseDocument {
	return getList[ExpenseDocument](ctx, c, "expenses/documents")
}

func (c *Client) CreateExpenseDocument(ctx context.Context, d ExpenseDocumentCreate) error {
	return c.mutate(ctx, http.MethodPost, "expenses/documents", d, nil, nil)
}

func (c *Client) ExpenseCategories(ctx context.Context) []string {
	return getList[string](ctx, c, "expenses/categories")
}

func (c *Client) ExpenseTypes(ctx context.Context) []ExpenseType {
	return getList[ExpenseType](ctx, c, "expenses/types")
}

func (c *Client) CreateExpenseType(ctx context.Context, t ExpenseTypeCreate) error {
	return c.mutate(ctx, http.MethodPost, "expenses/types", t, nil, nil)
}

// --- Suppliers ---

func (c *Client) Suppliers(ctx context.Context) []Supplier {
	return getList[Supplier](ctx, c, "suppliers")
}

func (c *Client) CreateSupplier(ctx context.Context, s Supplier) (Supplier, error) {
	var out Supplier
	err := c.mutate(ctx, http.MethodPost, "suppliers", s, &out, nil)
	return out, err
}

func (c *Client) DeleteSupplier(ctx context.Context, name string) error {
	return c.mutate(ctx, http.MethodDelete, "suppliers/"+url.PathEscape(name), nil, nil, nil)
}

// --- Orders ---

func (c *Client) Orders(ctx context.Context) []Order {
	return getList[Order](ctx, c, "orders")
}

func (c *Client) PendingOrders(ctx context.Context) []Order {
	return getList[Order](ctx, c, "orders/pending")
}

func (c *Client) Order(ctx context.Context, id int) (Order, error) {
	var o Order
	err := c.get(ctx, fmt.Sprintf("orders/%d", id), &o)
	return o, err
}

func (c *Client) PlaceOrder(ctx context.Context, o OrderCreate, clientRef string) (Order, error) {
	var headers map[string]string
	if clientRef != "" {
		headers = map[string]string{"Idempotency-Key": clientRef}
	}
	var out Order
	err := c.mutate(ctx, http.MethodPost, "orders", o, &out, headers)
	return out, err
}

func (c *Client) CompleteOrder(ctx context.Context, id int) error {
	return c.mutate(ctx, http.MethodPost, fmt.Sprintf("orders/%d/complete", id), nil, nil, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("orders/%d", id), nil, nil, nil)
}

// CreateOrder implements cart.Submitter: it translates the cart's order
// snapshot into the wire payload.
func (c *Client) CreateOrder(ctx context.Context, order cart.Order) (cart.Receipt, error) {
	payload := OrderCreate{
		Items:          make([]OrderItemCreate, 0, len(order.Items)),
		CompleteNow:    order.CompleteNow,
		AdditionalInfo: order.Note,
	}
	for _, it := range order.Items {
		payload.Items = append(payload.Items, OrderItemCreate{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if !order.CompleteNow {
		payload.CompletionDate = order.CompletionDate.Format(completionDateFormat)
	}

	placed, err := c.PlaceOrder(ctx, payload, order.ClientRef)
	if err != nil {
		return cart.Receipt{}, err
	}
	return cart.Receipt{OrderID: placed.ID, Status: placed.Status}, nil
}

// --- Write-offs ---

func (c *Client) WriteOffs(ctx context.Context) []WriteOff {
	return getList[WriteOff](ctx, c, "writeoffs")
}

func (c *Client) CreateWriteOff(ctx context.Context, w WriteOffCreate) error {
	return c.mutate(ctx, http.MethodPost, "writeoffs", w, nil, nil)
}

// --- Generic ---

// Delete removes an entity by id from any resource collection.
func (c *Client) Delete(ctx context.Context, resource string, id int) error {
	return c.mutate(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", resource, id), nil, nil, nil)
}

// CatalogItems fetches products and projects them into the cart engine's
// catalog snapshot.
func (c *Client) CatalogItems(ctx context.Context) []cart.CatalogItem {
	products := c.Products(ctx)
	items := make([]cart.CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, cart.CatalogItem{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return items
}

var _ cart.Submitter = (*Client)(nil)
