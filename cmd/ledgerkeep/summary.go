package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerkeep/internal/cli"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show net totals per category",
		Long: `Show each category's net signed contribution: income categories count
positive, expense categories negative. Categories with no transactions
are omitted.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			led, err := openLedger()
			if err != nil {
				return err
			}

			summary := led.CategorySummary()
			if len(summary) == 0 {
				fmt.Println(cli.FormatInfo("No transactions yet, nothing to summarize.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Println(cli.FormatTitle("Category summary")) //nolint:forbidigo // User-facing output

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			// Catalog order keeps the report stable run to run.
			for _, cat := range led.Catalog().Categories() {
				total, ok := summary[cat.Name]
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", cat.Name, cat.Type.Label(), cli.FormatMoney(total))
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
