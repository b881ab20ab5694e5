// Package model defines the core value types shared across the ledger.
package model

import "fmt"

// TransactionType indicates whether a category records income or expense.
type TransactionType string

const (
	// TypeIncome marks categories whose transactions add to the balance.
	TypeIncome TransactionType = "income"
	// TypeExpense marks categories whose transactions subtract from the balance.
	TypeExpense TransactionType = "expense"
)

// Label returns the human-readable form written to the ledger file.
func (t TransactionType) Label() string {
	switch t {
	case TypeIncome:
		return "Income"
	case TypeExpense:
		return "Expense"
	default:
		return string(t)
	}
}

// DateLayout is the calendar date encoding used by entries and the backing file.
const DateLayout = "2006-01-02"

// Category pairs a unique name with a transaction type. Categories are
// immutable values created once, at catalog construction.
type Category struct {
	Name string
	Type TransactionType
}

func (c Category) String() string {
	return fmt.Sprintf("Category(name=%q, type=%s)", c.Name, c.Type.Label())
}

// Transaction is a single recorded operation. It is not validated at
// construction: amount sign, date format, and category membership are
// checked by the presentation layer before the store ever sees one.
type Transaction struct {
	Category    Category
	Date        string // YYYY-MM-DD
	Description string
	Amount      float64
}

func (t Transaction) String() string {
	return fmt.Sprintf("Transaction(amount=%g, category=%q, date=%q, description=%q)",
		t.Amount, t.Category.Name, t.Date, t.Description)
}

// Signed returns the transaction's contribution to the balance: positive
// for income, negative for expense.
func (t Transaction) Signed() float64 {
	if t.Category.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}
