package cart

import (
	"errors"
	"sync"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrSubmitInFlight = errors.New("submission already in progress")
	ErrPastCompletion = errors.New("completion date must not be in the past")
)

// Status is the lifecycle state of a Cart.
type Status int

const (
	StatusEmpty Status = iota
	StatusPopulated
	StatusSubmitting
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPopulated:
		return "populated"
	case StatusSubmitting:
		return "submitting"
	}
	return "unknown"
}

// CatalogItem is a server-sourced product snapshot. The server owns it; the
// cart only reads it when denormalizing a new line.
type CatalogItem struct {
	ID    int
	Name  string
	Price int
}

// Line is one product/quantity pairing in the cart. Name and UnitPrice are
// denormalized from the catalog at add time so the cart renders consistently
// even if the catalog is refreshed underneath it.
type Line struct {
	ProductID int
	Name      string
	UnitPrice int
	Quantity  int
}

// Total returns quantity x unit price for this line.
func (l Line) Total() int {
	return l.Quantity * l.UnitPrice
}

// Cart holds the in-progress order. Lines keep insertion order and there is
// at most one line per product; a line never exists with quantity < 1.
//
// State machine: Empty -> Populated on the first added line, Populated ->
// Empty when the last line goes away (remove, adjust to zero, clear, or
// successful submission). BeginSubmit moves Populated -> Submitting and
// every mutation is rejected until FinishSubmit resolves it. The Submitting
// guard lives here, not in the UI, so callers that bypass disabled controls
// still cannot double-submit.
//
// All methods are safe for concurrent use: the UI event loop mutates the
// cart while a submission may be resolving on another goroutine.
type Cart struct {
	mu      sync.Mutex
	catalog map[int]CatalogItem
	lines   []Line
	status  Status
	version uint64
}

func New() *Cart {
	return &Cart{catalog: make(map[int]CatalogItem)}
}

// SetCatalog replaces the catalog snapshot. Existing lines keep their
// denormalized name and price.
func (c *Cart) SetCatalog(items []CatalogItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = make(map[int]CatalogItem, len(items))
	for _, it := range items {
		c.catalog[it.ID] = it
	}
}

// Lookup returns the catalog snapshot entry for a product id.
func (c *Cart) Lookup(productID int) (CatalogItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	it, ok := c.catalog[productID]
	return it, ok
}

// AddLine adds one unit of the given product. Unknown products are a silent
// no-op. Adding a product already in the cart increments its quantity rather
// than creating a second line. The added or updated line is returned so the
// caller can surface a notification naming the item.
func (c *Cart) AddLine(productID int) (Line, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusSubmitting {
		return Line{}, false
	}
	item, ok := c.catalog[productID]
	if !ok {
		return Line{}, false
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			c.bump()
			return c.lines[i], true
		}
	}
	line := Line{
		ProductID: item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  1,
	}
	c.lines = append(c.lines, line)
	c.bump()
	return line, true
}

// RemoveLine deletes the line for productID. Absent lines are a no-op.
func (c *Cart) RemoveLine(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int) bool {
	if c.status == StatusSubmitting {
		return false
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.bump()
			return true
		}
	}
	return false
}

// AdjustQuantity adds delta (which may be negative) to the line's quantity.
// A resulting quantity of zero or below removes the line entirely; a line is
// never retained at quantity zero.
func (c *Cart) AdjustQuantity(productID, delta int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusSubmitting {
		return false
	}
	for i := range c.lines {
		if c.lines[i].ProductID != productID {
			continue
		}
		if c.lines[i].Quantity+delta <= 0 {
			return c.removeLocked(productID)
		}
		c.lines[i].Quantity += delta
		c.bump()
		return true
	}
	return false
}

// Clear empties the cart. Confirmation is the caller's responsibility; the
// engine just performs the transition.
func (c *Cart) Clear() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == StatusSubmitting || len(c.lines) == 0 {
		return false
	}
	c.lines = nil
	c.bump()
	return true
}

// Subtotal is the sum of quantity x unit price over all lines. Pure.
func (c *Cart) Subtotal() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Total()
	}
	return total
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Cart) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Version increments on every observable change. Renderers can compare it to
// skip redundant redraws.
func (c *Cart) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// BeginSubmit transitions Populated -> Submitting. It rejects an empty cart
// and a cart that is already submitting; this is the engine-level guard
// behind the disabled submit control.
func (c *Cart) BeginSubmit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.status {
	case StatusSubmitting:
		return ErrSubmitInFlight
	case StatusEmpty:
		return ErrEmptyCart
	}
	c.status = StatusSubmitting
	c.version++
	return nil
}

// FinishSubmit resolves a Submitting cart: success empties it, failure
// returns it to Populated untouched so the user can retry.
func (c *Cart) FinishSubmit(success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status != StatusSubmitting {
		return
	}
	if success {
		c.lines = nil
		c.status = StatusEmpty
	} else {
		c.status = StatusPopulated
	}
	c.version++
}

func (c *Cart) bump() {
	c.version++
	if len(c.lines) == 0 {
		c.status = StatusEmpty
	} else {
		c.status = StatusPopulated
	}
}
