// Package tui provides an interactive terminal session over the ledger:
// a transaction table with a live balance, an add form, and deletion of
// the selected row. It carries no business logic of its own; every
// mutation goes through the store's public operations.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ledgerkeep/internal/cli"
	"ledgerkeep/internal/ledger"
	"ledgerkeep/internal/model"
)

// State represents the current screen of the TUI.
type State int

const (
	// StateList shows the transaction table.
	StateList State = iota
	// StateForm shows the add-transaction form.
	StateForm
)

// Form field order.
const (
	fieldAmount = iota
	fieldCategory
	fieldDate
	fieldDescription
	fieldCount
)

// Model holds the TUI state.
type Model struct {
	led      *ledger.Ledger
	status   string
	inputs   []textinput.Model
	keymap   KeyMap
	table    table.Model
	focus    int
	width    int
	height   int
	state    State
	quitting bool
}

// New creates a TUI model over an already loaded ledger.
func New(led *ledger.Ledger) Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Date", Width: 12},
		{Title: "Category", Width: 16},
		{Title: "Type", Width: 9},
		{Title: "Amount", Width: 12},
		{Title: "Description", Width: 28},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 64
	}
	inputs[fieldAmount].Placeholder = "120.50"
	inputs[fieldCategory].Placeholder = "Groceries"
	inputs[fieldDate].Placeholder = model.DateLayout
	inputs[fieldDescription].Placeholder = "optional"

	m := Model{
		led:    led,
		keymap: DefaultKeyMap(),
		table:  t,
		inputs: inputs,
		state:  StateList,
	}
	m.refreshRows()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 10 {
			m.table.SetHeight(msg.Height - 8)
		}
		return m, nil

	case tea.KeyMsg:
		if m.state == StateForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Add):
		m.state = StateForm
		m.status = ""
		m.resetForm()
		return m, m.inputs[fieldAmount].Focus()

	case key.Matches(msg, m.keymap.Delete):
		index := m.table.Cursor()
		if index < 0 || index >= m.led.Len() {
			m.status = cli.FormatWarning("nothing to delete")
			return m, nil
		}
		removed := m.led.Transactions()[index]
		if err := m.led.Remove(index); err != nil {
			m.status = cli.FormatError(err.Error())
			return m, nil
		}
		m.refreshRows()
		m.status = cli.FormatSuccess(fmt.Sprintf("removed %s %.2f", removed.Category.Name, removed.Amount))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.state = StateList
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keymap.Prev):
		return m.focusField(m.focus - 1)

	case key.Matches(msg, m.keymap.Next):
		return m.focusField(m.focus + 1)

	case key.Matches(msg, m.keymap.Submit):
		if m.focus < fieldCount-1 {
			return m.focusField(m.focus + 1)
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) focusField(index int) (tea.Model, tea.Cmd) {
	if index < 0 {
		index = fieldCount - 1
	}
	if index >= fieldCount {
		index = 0
	}
	m.inputs[m.focus].Blur()
	m.focus = index
	return m, m.inputs[m.focus].Focus()
}

// submit validates the form the same way the CLI validates its flags,
// then hands the finished transaction to the store.
func (m Model) submit() (tea.Model, tea.Cmd) {
	t, err := m.formTransaction()
	if err != nil {
		m.status = cli.FormatError(err.Error())
		return m, nil
	}

	if err := m.led.Add(t); err != nil {
		m.status = cli.FormatError(err.Error())
		return m, nil
	}

	m.state = StateList
	m.refreshRows()
	m.status = cli.FormatSuccess(fmt.Sprintf("recorded %s %.2f", t.Category.Name, t.Amount))
	return m, nil
}

func (m Model) formTransaction() (model.Transaction, error) {
	amount, err := parseAmount(m.inputs[fieldAmount].Value())
	if err != nil {
		return model.Transaction{}, err
	}

	category, ok := m.led.Catalog().LookupFold(m.inputs[fieldCategory].Value())
	if !ok {
		return model.Transaction{}, fmt.Errorf("unknown category %q", m.inputs[fieldCategory].Value())
	}

	date := m.inputs[fieldDate].Value()
	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return model.Transaction{}, fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
	}

	return model.Transaction{
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: m.inputs[fieldDescription].Value(),
	}, nil
}

func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[fieldDate].SetValue(time.Now().Format(model.DateLayout))
	m.focus = fieldAmount
}

func (m *Model) refreshRows() {
	transactions := m.led.Transactions()
	rows := make([]table.Row, 0, len(transactions))
	for i, t := range transactions {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			t.Date,
			t.Category.Name,
			t.Category.Type.Label(),
			fmt.Sprintf("%.2f", t.Signed()),
			t.Description,
		})
	}
	m.table.SetRows(rows)
}
