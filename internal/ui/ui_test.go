package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/posadmin/internal/api"
	"github.com/example/posadmin/internal/cart"
	"github.com/example/posadmin/internal/config"
	"github.com/example/posadmin/internal/i18n"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	tr := i18n.New("en")
	svc := cart.NewService(cart.New(), nil)
	store := config.NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	return NewModel(nil, svc, tr, store, NewNotifier())
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// ============================================
// Stale fetch handling
// ============================================

func TestStaleProductsFetchIsDropped(t *testing.T) {
	m := newTestModel(t)
	m.seq[TabProducts] = 2

	fresh := []api.Product{{ID: 1, Name: "Espresso", Price: 150}}
	stale := []api.Product{{ID: 9, Name: "Old Menu", Price: 1}}

	// Current sequence lands first.
	m, _ = apply(t, m, productsMsg{tab: TabProducts, seq: 2, items: fresh})
	require.Len(t, m.products, 1)
	assert.Equal(t, "Espresso", m.products[0].Name)

	// A slow response from a superseded fetch must not overwrite it.
	m, _ = apply(t, m, productsMsg{tab: TabProducts, seq: 1, items: stale})
	require.Len(t, m.products, 1)
	assert.Equal(t, "Espresso", m.products[0].Name)
}

func TestFetchUpdatesCatalog(t *testing.T) {
	m := newTestModel(t)

	m, _ = apply(t, m, productsMsg{tab: TabPOS, seq: m.seq[TabPOS], items: []api.Product{
		{ID: 7, Name: "Latte", Price: 220},
	}})

	item, ok := m.svc.Cart().Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "Latte", item.Name)
	assert.Equal(t, 220, item.Price)
}

func TestStartupFetchSurvivesSequenceCheck(t *testing.T) {
	m := newTestModel(t)

	// The program loop delivers initMsg after Init; the reload must happen on
	// the model Update returns, or the fetch result arrives stale.
	m, cmd := apply(t, m, initMsg{})
	require.NotNil(t, cmd)
	require.Equal(t, uint64(1), m.seq[TabPOS])
	assert.True(t, m.loading[TabPOS])

	m, _ = apply(t, m, productsMsg{tab: TabPOS, seq: 1, items: []api.Product{
		{ID: 1, Name: "Espresso", Price: 150},
	}})
	require.NotEmpty(t, m.products)
	assert.False(t, m.loading[TabPOS])
}

func TestTabSwitchBumpsSequence(t *testing.T) {
	m := newTestModel(t)
	before := m.seq[TabStock]

	updated, cmd := m.Update(keyRune('3'))
	m = updated.(Model)

	assert.Equal(t, TabStock, m.tab)
	assert.Equal(t, before+1, m.seq[TabStock])
	assert.NotNil(t, cmd)
	assert.True(t, m.loading[TabStock])
}

// ============================================
// POS interactions
// ============================================

func seedCatalog(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = apply(t, m, productsMsg{tab: TabPOS, seq: m.seq[TabPOS], items: []api.Product{
		{ID: 1, Name: "Espresso", Price: 150},
		{ID: 2, Name: "Latte", Price: 220},
	}})
	return m
}

func TestAddSelectedProduct(t *testing.T) {
	m := seedCatalog(t, newTestModel(t))

	m, cmd := apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	lines := m.svc.Cart().Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Espresso", lines[0].Name)
	assert.NotNil(t, cmd, "adding an item raises a toast")
	require.Len(t, m.toasts, 1)
	assert.Equal(t, "success", m.toasts[0].kind)
}

func TestSearchFilterIsCaseInsensitive(t *testing.T) {
	products := []api.Product{
		{ID: 1, Name: "Espresso", Price: 150},
		{ID: 2, Name: "Latte", Price: 220},
	}

	filtered := filterProducts(products, "LAT")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Latte", filtered[0].Name)

	assert.Len(t, filterProducts(products, ""), 2)
	assert.Empty(t, filterProducts(products, "tea"))
}

func TestSubmitKeyIgnoredOnEmptyCart(t *testing.T) {
	m := seedCatalog(t, newTestModel(t))

	_, cmd := apply(t, m, keyRune('s'))

	assert.Nil(t, cmd, "empty cart must not start a submission")
}

// ============================================
// Confirmation layer
// ============================================

func TestConfirmDeclineIsNoOp(t *testing.T) {
	m := newTestModel(t)
	called := false
	m.askConfirmation("sure?", func(*Model) tea.Cmd {
		called = true
		return nil
	})

	m, cmd := apply(t, m, keyRune('n'))

	assert.Nil(t, m.confirm)
	assert.Nil(t, cmd)
	assert.False(t, called, "declining must not run the accept action")
}

func TestConfirmAcceptRunsAction(t *testing.T) {
	m := newTestModel(t)
	called := false
	m.askConfirmation("sure?", func(*Model) tea.Cmd {
		called = true
		return nil
	})

	m, _ = apply(t, m, keyRune('y'))

	assert.Nil(t, m.confirm)
	assert.True(t, called)
}

func TestClearAsksForConfirmation(t *testing.T) {
	m := seedCatalog(t, newTestModel(t))
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, m.svc.Cart().Len())

	m, _ = apply(t, m, keyRune('c'))
	require.NotNil(t, m.confirm)
	assert.Equal(t, 1, m.svc.Cart().Len(), "cart untouched until confirmed")

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, m.svc.Cart().Len())
}

// ============================================
// Toasts
// ============================================

func TestToastExpiry(t *testing.T) {
	m := newTestModel(t)

	cmd := m.pushToast("info", "hello")
	require.NotNil(t, cmd)
	require.Len(t, m.toasts, 1)

	m.expireToast(m.toasts[0].id)
	assert.Empty(t, m.toasts)

	// Expiring an unknown id is harmless.
	m.expireToast(42)
	assert.Empty(t, m.toasts)
}

// ============================================
// Rendering
// ============================================

func TestRenderersAreDeterministic(t *testing.T) {
	tr := i18n.New("en")
	products := []api.Product{
		{ID: 1, Name: "Espresso", Price: 150, Materials: []api.Material{{Name: "beans", Quantity: 18, Unit: "g"}}},
	}

	first := renderProducts(tr, products, 0)
	second := renderProducts(tr, products, 0)
	assert.Equal(t, first, second, "same input renders the same output")
	assert.Contains(t, first, "Espresso")
	assert.Contains(t, first, "beans 18 g")
}

func TestCartPaneStates(t *testing.T) {
	tr := i18n.New("en")

	empty := renderCartPane(tr, nil, cart.StatusEmpty, 0, 0)
	assert.Contains(t, empty, tr.T("emptyOrder"))
	assert.Contains(t, empty, tr.T("emptyOrderHint"))
	assert.NotContains(t, empty, tr.T("subtotal"))

	lines := []cart.Line{{ProductID: 1, Name: "Espresso", UnitPrice: 150, Quantity: 2}}
	populated := renderCartPane(tr, lines, cart.StatusPopulated, 300, 0)
	assert.Contains(t, populated, "x2")
	assert.Contains(t, populated, money(tr, 300))
	assert.Contains(t, populated, tr.T("completeNow"))

	submitting := renderCartPane(tr, lines, cart.StatusSubmitting, 300, 0)
	assert.Contains(t, submitting, tr.T("processing"))
	assert.NotContains(t, submitting, tr.T("completeNow"))
}

func TestMoneyUsesLocaleGrouping(t *testing.T) {
	tr := i18n.New("en")
	assert.Equal(t, "₽12,345", money(tr, 12345))
	assert.Equal(t, "₽150", money(tr, 150))
}

func TestViewShowsActiveTabTitle(t *testing.T) {
	m := seedCatalog(t, newTestModel(t))

	view := m.View()
	assert.Contains(t, view, m.tr.T("pos"))
	assert.Contains(t, view, "Espresso")
}
