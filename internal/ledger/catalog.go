package ledger

import (
	"fmt"
	"strings"

	"ledgerkeep/internal/common"
	"ledgerkeep/internal/model"
)

// Catalog is the fixed, ordered set of categories a ledger accepts.
// It is immutable after construction; transactions reference its members
// by resolved value, not by repeated name matching.
type Catalog struct {
	byName     map[string]int
	categories []model.Category
}

// NewCatalog builds a catalog from the given categories. Names must be
// non-empty and unique within the catalog.
func NewCatalog(categories []model.Category) (Catalog, error) {
	byName := make(map[string]int, len(categories))
	for i, cat := range categories {
		if cat.Name == "" {
			return Catalog{}, fmt.Errorf("category %d: %w", i, common.ErrEmptyCategoryName)
		}
		if _, ok := byName[cat.Name]; ok {
			return Catalog{}, fmt.Errorf("category %q: %w", cat.Name, common.ErrDuplicateCategory)
		}
		byName[cat.Name] = i
	}

	owned := make([]model.Category, len(categories))
	copy(owned, categories)

	return Catalog{
		byName:     byName,
		categories: owned,
	}, nil
}

// DefaultCatalog returns the stock catalog: two income categories and
// three expense categories.
func DefaultCatalog() Catalog {
	catalog, err := NewCatalog([]model.Category{
		{Name: "Salary", Type: model.TypeIncome},
		{Name: "Investments", Type: model.TypeIncome},
		{Name: "Groceries", Type: model.TypeExpense},
		{Name: "Transport", Type: model.TypeExpense},
		{Name: "Entertainment", Type: model.TypeExpense},
	})
	if err != nil {
		// The stock catalog is a compile-time constant in all but syntax.
		panic(fmt.Sprintf("default catalog invalid: %v", err))
	}
	return catalog
}

// Lookup resolves a category by exact name.
func (c Catalog) Lookup(name string) (model.Category, bool) {
	i, ok := c.byName[name]
	if !ok {
		return model.Category{}, false
	}
	return c.categories[i], true
}

// LookupFold resolves a category by name ignoring case, returning the
// catalog's canonical entry. Intended for user input, not for file loads.
func (c Catalog) LookupFold(name string) (model.Category, bool) {
	if cat, ok := c.Lookup(name); ok {
		return cat, true
	}
	for _, cat := range c.categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, true
		}
	}
	return model.Category{}, false
}

// Categories returns the catalog members in their fixed order.
func (c Catalog) Categories() []model.Category {
	out := make([]model.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len reports the number of categories in the catalog.
func (c Catalog) Len() int {
	return len(c.categories)
}
