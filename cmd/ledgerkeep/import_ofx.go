package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"ledgerkeep/internal/cli"
	"ledgerkeep/internal/model"
	"ledgerkeep/internal/ofx"
)

func init() {
	var (
		incomeCategory  string
		expenseCategory string
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX bank statements",
		Long: `Import statement lines from OFX or QFX (Quicken) files exported from
your bank. Credits are recorded under the income category, debits under
the expense category.

Examples:
  ledgerkeep import-ofx ~/Downloads/checking_jan.qfx
  ledgerkeep import-ofx --expense-category Transport ~/Downloads/*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, err := openLedger()
			if err != nil {
				return err
			}

			income, err := resolveCategory(led.Catalog(), incomeCategory)
			if err != nil {
				return err
			}
			expense, err := resolveCategory(led.Catalog(), expenseCategory)
			if err != nil {
				return err
			}
			mapping := ofx.Mapping{Income: income, Expense: expense}

			// Expand globs and collect all files
			var files []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					if _, statErr := os.Stat(pattern); statErr == nil {
						files = append(files, pattern)
					} else {
						slog.Warn("no files found matching pattern", "pattern", pattern)
					}
				} else {
					files = append(files, matches...)
				}
			}
			if len(files) == 0 {
				return fmt.Errorf("no files found to import")
			}

			parser := ofx.NewParser()
			var imported []model.Transaction
			for _, path := range files {
				f, err := os.Open(path)
				if err != nil {
					slog.Error("failed to open file", "file", path, "error", err)
					continue
				}
				transactions, err := parser.ParseFile(ctx, f, mapping)
				_ = f.Close()
				if err != nil {
					slog.Error("failed to parse OFX file", "file", path, "error", err)
					continue
				}
				slog.Info("processed file", "file", filepath.Base(path), "transactions", len(transactions))
				imported = append(imported, transactions...)
			}

			if len(imported) == 0 {
				fmt.Println(cli.FormatWarning("no transactions found in any file")) //nolint:forbidigo // User-facing output
				return nil
			}

			if dryRun {
				for _, t := range imported {
					fmt.Printf("%s  %-14s %10.2f  %s\n", t.Date, t.Category.Name, t.Amount, t.Description) //nolint:forbidigo // User-facing output
				}
				fmt.Println(cli.FormatInfo(fmt.Sprintf("dry run: %d transaction(s) not saved", len(imported)))) //nolint:forbidigo // User-facing output
				return nil
			}

			bar := progressbar.Default(int64(len(imported)), "importing")
			for _, t := range imported {
				if err := led.Add(t); err != nil {
					return fmt.Errorf("failed to import transaction %s: %w", t, err)
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transaction(s)", len(imported)))) //nolint:forbidigo // User-facing output
			fmt.Printf("Balance: %s\n", cli.FormatMoney(led.Balance()))                              //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().StringVar(&incomeCategory, "income-category", "Salary", "catalog category for credits")
	cmd.Flags().StringVar(&expenseCategory, "expense-category", "Groceries", "catalog category for debits")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	rootCmd.AddCommand(cmd)
}
