package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ledgerkeep/internal/cli"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		Long:  `Show total income minus total expense across all recorded transactions.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			led, err := openLedger()
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", cli.FormatTitle("Balance:"), cli.FormatMoney(led.Balance())) //nolint:forbidigo // User-facing output

			return nil
		},
	}
}
