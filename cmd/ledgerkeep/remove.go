package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ledgerkeep/internal/cli"
	"ledgerkeep/internal/common"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Delete a transaction by its list index",
		Long: `Delete the transaction at the given position, as shown by 'ledgerkeep list'.
Indices are 1-based and refer to insertion order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", common.ErrInvalidIndex, args[0])
			}

			led, err := openLedger()
			if err != nil {
				return err
			}

			// The store treats out-of-range indices as a no-op; tell the
			// user instead of pretending something was deleted.
			if index < 1 || index > led.Len() {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("no transaction at index %d (ledger has %d)", index, led.Len()))) //nolint:forbidigo // User-facing output
				return nil
			}

			removed := led.Transactions()[index-1]
			if err := led.Remove(index - 1); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %s %.2f from %s", //nolint:forbidigo // User-facing output
				removed.Category.Name, removed.Amount, removed.Date)))
			fmt.Printf("Balance: %s\n", cli.FormatMoney(led.Balance())) //nolint:forbidigo // User-facing output

			return nil
		},
	}
}
