package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerkeep/internal/ledger"
	"ledgerkeep/internal/model"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	led := ledger.New(ledger.DefaultCatalog(), filepath.Join(t.TempDir(), "transactions.csv"))

	salary, ok := led.Catalog().Lookup("Salary")
	require.True(t, ok)
	groceries, ok := led.Catalog().Lookup("Groceries")
	require.True(t, ok)
	require.NoError(t, led.Add(model.Transaction{Amount: 1000, Category: salary, Date: "2024-01-05"}))
	require.NoError(t, led.Add(model.Transaction{Amount: 50, Category: groceries, Date: "2024-01-06", Description: "milk"}))

	return New(led)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAddKeyOpensForm(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("a"))
	next := updated.(Model)

	assert.Equal(t, StateForm, next.state)
	assert.Equal(t, fieldAmount, next.focus)
}

func TestCancelReturnsToList(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("a"))
	updated, _ = updated.(Model).Update(keyMsg("esc"))
	next := updated.(Model)

	assert.Equal(t, StateList, next.state)
}

func TestDeleteSelectedRow(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, 2, m.led.Len())

	updated, _ := m.Update(keyMsg("d"))
	next := updated.(Model)

	assert.Equal(t, 1, next.led.Len())
	assert.Len(t, next.table.Rows(), 1)
	assert.Contains(t, next.status, "removed")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg("q"))
	next := updated.(Model)

	assert.True(t, next.quitting)
	require.NotNil(t, cmd)
}

func TestViewShowsBalance(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "950.00")
	assert.Contains(t, view, "Salary")
}

func TestFormTransactionValidation(t *testing.T) {
	m := newTestModel(t)
	m.resetForm()

	m.inputs[fieldAmount].SetValue("120.50")
	m.inputs[fieldCategory].SetValue("transport")
	m.inputs[fieldDate].SetValue("2024-02-01")
	m.inputs[fieldDescription].SetValue("metro card")

	tx, err := m.formTransaction()
	require.NoError(t, err)
	assert.Equal(t, "Transport", tx.Category.Name)
	assert.InDelta(t, 120.50, tx.Amount, 0.001)
	assert.Equal(t, "2024-02-01", tx.Date)

	m.inputs[fieldCategory].SetValue("Rent")
	_, err = m.formTransaction()
	require.Error(t, err)

	m.inputs[fieldCategory].SetValue("Transport")
	m.inputs[fieldAmount].SetValue("-3")
	_, err = m.formTransaction()
	require.Error(t, err)
}
