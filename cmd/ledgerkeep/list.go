package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerkeep/internal/cli"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded transactions",
		RunE: func(_ *cobra.Command, _ []string) error {
			led, err := openLedger()
			if err != nil {
				return err
			}

			transactions := led.Transactions()
			if len(transactions) == 0 {
				fmt.Println(cli.FormatInfo("No transactions yet. Use 'ledgerkeep add' to record one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("#"),
				cli.TableHeaderStyle.Render("Date"),
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Type"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Description"))

			for i, t := range transactions {
				desc := t.Description
				if desc == "" {
					desc = cli.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					i+1, t.Date, t.Category.Name, t.Category.Type.Label(),
					cli.FormatMoney(t.Signed()), desc)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			fmt.Printf("\nBalance: %s\n", cli.FormatMoney(led.Balance())) //nolint:forbidigo // User-facing output

			return nil
		},
	}
}
