package tui

import (
	"fmt"
	"strconv"
	"strings"

	"ledgerkeep/internal/cli"
	"ledgerkeep/internal/common"
)

var fieldNames = [fieldCount]string{"Amount", "Category", "Date", "Description"}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(cli.FormatTitle("ledgerkeep"))
	b.WriteString("  ")
	b.WriteString(cli.SubtleStyle.Render("balance:"))
	b.WriteString(" ")
	b.WriteString(cli.FormatMoney(m.led.Balance()))
	b.WriteString("\n\n")

	switch m.state {
	case StateForm:
		b.WriteString(m.viewForm())
	default:
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(cli.SubtleStyle.Render("a add · d delete · ↑/↓ move · q quit"))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(cli.InfoStyle.Render("New transaction"))
	b.WriteString("\n\n")
	for i, input := range m.inputs {
		label := fieldNames[i]
		if i == m.focus {
			label = cli.TableHeaderStyle.Render(label)
		} else {
			label = cli.SubtleStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", label, input.View()))
	}
	b.WriteString(cli.SubtleStyle.Render("enter next/submit · tab fields · esc cancel"))

	return b.String()
}

// parseAmount validates a form amount the same way the CLI does.
func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrInvalidAmount, s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", common.ErrInvalidAmount)
	}
	return amount, nil
}
