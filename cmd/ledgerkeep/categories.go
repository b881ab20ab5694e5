package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ledgerkeep/internal/cli"
	"ledgerkeep/internal/ledger"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category catalog",
		Long: `Display the fixed category catalog transactions may reference. The
catalog is defined once at startup; there is no add, rename, or delete.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog := ledger.DefaultCatalog()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n",
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Type"))
			for _, cat := range catalog.Categories() {
				fmt.Fprintf(w, "%s\t%s\n", cat.Name, cat.Type.Label())
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
