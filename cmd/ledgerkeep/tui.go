package main

import (
	"github.com/spf13/cobra"

	"ledgerkeep/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit the ledger interactively",
		Long: `Open an interactive session: a table of all transactions with the
running balance, an add form, and deletion of the selected row.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, err := openLedger()
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), led)
		},
	}
}
