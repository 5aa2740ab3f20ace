package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []CatalogItem {
	return []CatalogItem{
		{ID: 1, Name: "Espresso", Price: 150},
		{ID: 2, Name: "Latte", Price: 250},
		{ID: 3, Name: "Croissant", Price: 120},
	}
}

func newTestCart() *Cart {
	c := New()
	c.SetCatalog(testCatalog())
	return c
}

// ============================================
// AddLine Tests
// ============================================

func TestAddLine_NewProduct(t *testing.T) {
	c := newTestCart()

	line, ok := c.AddLine(1)

	require.True(t, ok)
	assert.Equal(t, "Espresso", line.Name)
	assert.Equal(t, 150, line.UnitPrice)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, StatusPopulated, c.Status())
}

func TestAddLine_UnknownProductIsNoop(t *testing.T) {
	c := newTestCart()

	_, ok := c.AddLine(999)

	assert.False(t, ok)
	assert.Equal(t, StatusEmpty, c.Status())
	assert.Empty(t, c.Lines())
}

func TestAddLine_SameProductMergesIntoOneLine(t *testing.T) {
	c := newTestCart()

	c.AddLine(1)
	line, ok := c.AddLine(1)

	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestAddLine_PreservesInsertionOrder(t *testing.T) {
	c := newTestCart()

	c.AddLine(2)
	c.AddLine(1)
	c.AddLine(2)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].ProductID)
	assert.Equal(t, 1, lines[1].ProductID)
}

// ============================================
// RemoveLine / AdjustQuantity Tests
// ============================================

func TestRemoveLine(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	c.AddLine(2)

	removed := c.RemoveLine(1)

	assert.True(t, removed)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 2, c.Lines()[0].ProductID)
}

func TestRemoveLine_AbsentIsNoop(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)

	assert.False(t, c.RemoveLine(999))
	assert.Len(t, c.Lines(), 1)
}

func TestRemoveLastLine_TransitionsToEmpty(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)

	c.RemoveLine(1)

	assert.Equal(t, StatusEmpty, c.Status())
}

func TestAdjustQuantity(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)

	c.AdjustQuantity(1, 3)

	assert.Equal(t, 4, c.Lines()[0].Quantity)
}

func TestAdjustQuantity_ToZeroRemovesLine(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	c.AddLine(1)

	// Delta equal to the full current quantity removes the line; quantity
	// never survives at zero or below.
	changed := c.AdjustQuantity(1, -2)

	assert.True(t, changed)
	assert.Empty(t, c.Lines())
	assert.Equal(t, StatusEmpty, c.Status())
}

func TestAdjustQuantity_BelowZeroRemovesLine(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)

	c.AdjustQuantity(1, -5)

	assert.Empty(t, c.Lines())
}

func TestAdjustQuantity_AbsentIsNoop(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	before := c.Version()

	assert.False(t, c.AdjustQuantity(999, 1))
	assert.Equal(t, before, c.Version())
}

// ============================================
// Clear / Subtotal Tests
// ============================================

func TestClear(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	c.AddLine(2)

	assert.True(t, c.Clear())
	assert.Empty(t, c.Lines())
	assert.Equal(t, StatusEmpty, c.Status())
}

func TestClear_EmptyCartIsNoop(t *testing.T) {
	c := newTestCart()

	assert.False(t, c.Clear())
}

func TestSubtotal(t *testing.T) {
	c := newTestCart()
	c.AddLine(1) // 150
	c.AddLine(1) // 300
	c.AddLine(3) // 420

	assert.Equal(t, 420, c.Subtotal())
}

func TestSubtotal_EmptyCartIsZero(t *testing.T) {
	c := newTestCart()

	assert.Equal(t, 0, c.Subtotal())
}

// Subtotal must always equal the sum over surviving lines, whatever the
// mutation sequence was.
func TestSubtotal_ConsistentAcrossMutationSequences(t *testing.T) {
	c := newTestCart()

	ops := []Command{
		AddLine{ProductID: 1},
		AddLine{ProductID: 2},
		AdjustQuantity{ProductID: 1, Delta: 4},
		AddLine{ProductID: 3},
		RemoveLine{ProductID: 2},
		AdjustQuantity{ProductID: 3, Delta: -1}, // removes the croissant line
		AddLine{ProductID: 1},
		AdjustQuantity{ProductID: 1, Delta: -2},
	}
	for _, op := range ops {
		c.Apply(op)
	}

	want := 0
	for _, l := range c.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, 1)
		want += l.Quantity * l.UnitPrice
	}
	assert.Equal(t, want, c.Subtotal())
	assert.Equal(t, 4*150, c.Subtotal())
}

// ============================================
// Submitting-state guard Tests
// ============================================

func TestBeginSubmit_EmptyCart(t *testing.T) {
	c := newTestCart()

	assert.ErrorIs(t, c.BeginSubmit(), ErrEmptyCart)
}

func TestBeginSubmit_AlreadySubmitting(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	require.NoError(t, c.BeginSubmit())

	assert.ErrorIs(t, c.BeginSubmit(), ErrSubmitInFlight)
}

func TestMutationsRejectedWhileSubmitting(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	require.NoError(t, c.BeginSubmit())

	_, added := c.AddLine(2)
	assert.False(t, added)
	assert.False(t, c.RemoveLine(1))
	assert.False(t, c.AdjustQuantity(1, 1))
	assert.False(t, c.Clear())
	assert.Len(t, c.Lines(), 1)
}

func TestFinishSubmit_SuccessEmptiesCart(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	require.NoError(t, c.BeginSubmit())

	c.FinishSubmit(true)

	assert.Equal(t, StatusEmpty, c.Status())
	assert.Empty(t, c.Lines())
}

func TestFinishSubmit_FailurePreservesCart(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)
	c.AddLine(2)
	require.NoError(t, c.BeginSubmit())

	c.FinishSubmit(false)

	assert.Equal(t, StatusPopulated, c.Status())
	assert.Len(t, c.Lines(), 2)
}

// ============================================
// Catalog refresh Tests
// ============================================

func TestSetCatalog_ExistingLinesKeepDenormalizedPrice(t *testing.T) {
	c := newTestCart()
	c.AddLine(1)

	c.SetCatalog([]CatalogItem{{ID: 1, Name: "Espresso", Price: 999}})

	assert.Equal(t, 150, c.Lines()[0].UnitPrice)

	// A fresh add after the refresh sees the new price via the merge path
	// only for quantity; the denormalized price stays from add time.
	c.AddLine(1)
	assert.Equal(t, 150, c.Lines()[0].UnitPrice)
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}
