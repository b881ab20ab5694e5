// Package ledger owns the authoritative in-memory transaction sequence,
// its category catalog, and the CSV persistence round-trip.
package ledger

import (
	"fmt"

	"ledgerkeep/internal/model"
)

// Ledger holds the ordered transaction sequence and the catalog it
// validates against. It is single-owner and call-and-return: no method
// is safe for concurrent use, and every successful mutation rewrites
// the backing file in full before returning.
type Ledger struct {
	path         string
	catalog      Catalog
	transactions []model.Transaction
}

// New constructs an empty ledger against the given backing file.
// No I/O happens here; call Load to read previously persisted state.
func New(catalog Catalog, path string) *Ledger {
	return &Ledger{
		catalog: catalog,
		path:    path,
	}
}

// Add appends a transaction and rewrites the backing file. Insertion
// order is display order; duplicates are allowed. On write failure the
// in-memory append has already happened, and the error is returned so
// the caller can surface the memory/file divergence.
func (l *Ledger) Add(t model.Transaction) error {
	l.transactions = append(l.transactions, t)
	if err := l.Save(); err != nil {
		return fmt.Errorf("failed to save ledger after add: %w", err)
	}
	return nil
}

// Remove deletes the transaction at index and rewrites the backing file.
// An out-of-range index is a no-op: nothing changes, nothing is saved,
// and no error is returned.
func (l *Ledger) Remove(index int) error {
	if index < 0 || index >= len(l.transactions) {
		return nil
	}
	l.transactions = append(l.transactions[:index], l.transactions[index+1:]...)
	if err := l.Save(); err != nil {
		return fmt.Errorf("failed to save ledger after remove: %w", err)
	}
	return nil
}

// Balance returns total income minus total expense, recomputed over the
// full sequence on every call. Entry volume is bounded by manual data
// entry, so the linear scan is deliberate.
func (l *Ledger) Balance() float64 {
	var balance float64
	for _, t := range l.transactions {
		balance += t.Signed()
	}
	return balance
}

// CategorySummary returns each referenced category's net signed total:
// income positive, expense negative. Categories with no transactions
// are absent from the result.
func (l *Ledger) CategorySummary() map[string]float64 {
	summary := make(map[string]float64)
	for _, t := range l.transactions {
		summary[t.Category.Name] += t.Signed()
	}
	return summary
}

// Transactions returns a copy of the transaction sequence in insertion order.
func (l *Ledger) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Catalog returns the ledger's category catalog.
func (l *Ledger) Catalog() Catalog {
	return l.catalog
}

// Len reports the number of recorded transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}
