package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerkeep/internal/common"
	"ledgerkeep/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.Equal(t, 5, catalog.Len())

	names := make([]string, 0, catalog.Len())
	for _, cat := range catalog.Categories() {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"Salary", "Investments", "Groceries", "Transport", "Entertainment"}, names)

	salary, ok := catalog.Lookup("Salary")
	require.True(t, ok)
	assert.Equal(t, model.TypeIncome, salary.Type)

	transport, ok := catalog.Lookup("Transport")
	require.True(t, ok)
	assert.Equal(t, model.TypeExpense, transport.Type)
}

func TestNewCatalogValidation(t *testing.T) {
	tests := []struct {
		expected   error
		name       string
		categories []model.Category
	}{
		{
			name: "duplicate name",
			categories: []model.Category{
				{Name: "Rent", Type: model.TypeExpense},
				{Name: "Rent", Type: model.TypeExpense},
			},
			expected: common.ErrDuplicateCategory,
		},
		{
			name: "empty name",
			categories: []model.Category{
				{Name: "", Type: model.TypeIncome},
			},
			expected: common.ErrEmptyCategoryName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.categories)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLookupFold(t *testing.T) {
	catalog := DefaultCatalog()

	cat, ok := catalog.LookupFold("groceries")
	require.True(t, ok)
	assert.Equal(t, "Groceries", cat.Name)

	_, ok = catalog.LookupFold("Rent")
	assert.False(t, ok)
}

func TestCatalogIsImmutable(t *testing.T) {
	source := []model.Category{
		{Name: "Salary", Type: model.TypeIncome},
	}
	catalog, err := NewCatalog(source)
	require.NoError(t, err)

	// Mutating the input or the returned view must not leak into the catalog.
	source[0].Name = "Hacked"
	view := catalog.Categories()
	view[0].Name = "AlsoHacked"

	cat, ok := catalog.Lookup("Salary")
	require.True(t, ok)
	assert.Equal(t, "Salary", cat.Name)
}
