package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ledgerkeep/internal/ledger"
)

// Run starts the interactive session over an already loaded ledger and
// blocks until the user quits.
func Run(ctx context.Context, led *ledger.Ledger) error {
	p := tea.NewProgram(New(led), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
