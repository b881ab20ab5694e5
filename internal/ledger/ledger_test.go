package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerkeep/internal/model"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(DefaultCatalog(), filepath.Join(t.TempDir(), "transactions.csv"))
}

func mustCategory(t *testing.T, catalog Catalog, name string) model.Category {
	t.Helper()
	cat, ok := catalog.Lookup(name)
	require.True(t, ok, "category %s missing from catalog", name)
	return cat
}

func TestBalance(t *testing.T) {
	led := newTestLedger(t)
	salary := mustCategory(t, led.Catalog(), "Salary")
	groceries := mustCategory(t, led.Catalog(), "Groceries")
	transport := mustCategory(t, led.Catalog(), "Transport")

	require.InDelta(t, 0.0, led.Balance(), 0.001, "fresh ledger should balance to zero")

	require.NoError(t, led.Add(model.Transaction{Amount: 1000, Category: salary, Date: "2024-01-01"}))
	require.NoError(t, led.Add(model.Transaction{Amount: 250.50, Category: groceries, Date: "2024-01-02"}))
	require.NoError(t, led.Add(model.Transaction{Amount: 49.50, Category: transport, Date: "2024-01-03"}))

	assert.InDelta(t, 700.0, led.Balance(), 0.001)
}

func TestBalanceIndependentOfInsertionOrder(t *testing.T) {
	catalog := DefaultCatalog()
	salary := mustCategory(t, catalog, "Salary")
	groceries := mustCategory(t, catalog, "Groceries")

	forward := newTestLedger(t)
	require.NoError(t, forward.Add(model.Transaction{Amount: 100, Category: salary, Date: "2024-01-01"}))
	require.NoError(t, forward.Add(model.Transaction{Amount: 30, Category: groceries, Date: "2024-01-02"}))

	backward := newTestLedger(t)
	require.NoError(t, backward.Add(model.Transaction{Amount: 30, Category: groceries, Date: "2024-01-02"}))
	require.NoError(t, backward.Add(model.Transaction{Amount: 100, Category: salary, Date: "2024-01-01"}))

	assert.InDelta(t, forward.Balance(), backward.Balance(), 0.001)
}

func TestCategorySummary(t *testing.T) {
	led := newTestLedger(t)
	salary := mustCategory(t, led.Catalog(), "Salary")
	groceries := mustCategory(t, led.Catalog(), "Groceries")

	require.NoError(t, led.Add(model.Transaction{Amount: 100, Category: salary, Date: "2024-01-01"}))
	require.NoError(t, led.Add(model.Transaction{Amount: 25, Category: groceries, Date: "2024-01-02"}))
	require.NoError(t, led.Add(model.Transaction{Amount: 15, Category: groceries, Date: "2024-01-03"}))

	summary := led.CategorySummary()

	require.Len(t, summary, 2)
	assert.InDelta(t, 100.0, summary["Salary"], 0.001)
	assert.InDelta(t, -40.0, summary["Groceries"], 0.001)
	assert.NotContains(t, summary, "Transport", "untouched categories must be absent, not zero")
}

func TestRemove(t *testing.T) {
	led := newTestLedger(t)
	salary := mustCategory(t, led.Catalog(), "Salary")
	groceries := mustCategory(t, led.Catalog(), "Groceries")

	require.NoError(t, led.Add(model.Transaction{Amount: 100, Category: salary, Date: "2024-01-01"}))
	require.NoError(t, led.Add(model.Transaction{Amount: 25, Category: groceries, Date: "2024-01-02"}))

	require.NoError(t, led.Remove(0))

	require.Equal(t, 1, led.Len())
	assert.Equal(t, "Groceries", led.Transactions()[0].Category.Name)
}

func TestRemoveOutOfRangeIsNoOp(t *testing.T) {
	led := newTestLedger(t)
	salary := mustCategory(t, led.Catalog(), "Salary")
	require.NoError(t, led.Add(model.Transaction{Amount: 100, Category: salary, Date: "2024-01-01"}))

	for _, index := range []int{-1, 1, 42} {
		require.NoError(t, led.Remove(index))
		assert.Equal(t, 1, led.Len(), "remove(%d) must not change the sequence", index)
	}

	// The backing file must be unchanged too: a fresh load sees one row.
	fresh := New(DefaultCatalog(), led.path)
	skipped, err := fresh.Load()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, 1, fresh.Len())
}

func TestDuplicatesAllowed(t *testing.T) {
	led := newTestLedger(t)
	groceries := mustCategory(t, led.Catalog(), "Groceries")

	tx := model.Transaction{Amount: 10, Category: groceries, Date: "2024-01-02", Description: "coffee"}
	require.NoError(t, led.Add(tx))
	require.NoError(t, led.Add(tx))

	assert.Equal(t, 2, led.Len())
	assert.InDelta(t, -20.0, led.Balance(), 0.001)
}

// The full user-visible scenario: two entries, one deletion, one reload.
func TestEndToEndScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	led := New(DefaultCatalog(), path)
	salary := mustCategory(t, led.Catalog(), "Salary")
	groceries := mustCategory(t, led.Catalog(), "Groceries")

	require.NoError(t, led.Add(model.Transaction{Amount: 30000, Category: salary, Date: "2024-01-05"}))
	require.NoError(t, led.Add(model.Transaction{Amount: 5000, Category: groceries, Date: "2024-01-06", Description: "milk"}))

	assert.InDelta(t, 25000.0, led.Balance(), 0.001)
	assert.Equal(t, map[string]float64{"Salary": 30000, "Groceries": -5000}, led.CategorySummary())

	require.NoError(t, led.Remove(1))

	assert.InDelta(t, 30000.0, led.Balance(), 0.001)
	assert.Equal(t, map[string]float64{"Salary": 30000}, led.CategorySummary())

	fresh := New(DefaultCatalog(), path)
	skipped, err := fresh.Load()
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Equal(t, 1, fresh.Len())
	reloaded := fresh.Transactions()[0]
	assert.Equal(t, "Salary", reloaded.Category.Name)
	assert.InDelta(t, 30000.0, reloaded.Amount, 0.001)
}
