package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ledgerkeep/internal/cli"
	"ledgerkeep/internal/model"
)

func addCmd() *cobra.Command {
	var (
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction. Whether the amount counts
toward or against your balance is decided by the category's type.

Examples:
  ledgerkeep add 30000 Salary
  ledgerkeep add 52.40 Groceries --desc "milk, bread"
  ledgerkeep add 18 Transport --date 2024-01-06`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			led, err := openLedger()
			if err != nil {
				return err
			}

			category, err := resolveCategory(led.Catalog(), args[1])
			if err != nil {
				return err
			}

			when, err := parseDate(date)
			if err != nil {
				return err
			}

			t := model.Transaction{
				Amount:      amount,
				Category:    category,
				Date:        when,
				Description: description,
			}
			if err := led.Add(t); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %.2f (%s) on %s", //nolint:forbidigo // User-facing output
				category.Name, amount, category.Type.Label(), when)))
			fmt.Printf("Balance: %s\n", cli.FormatMoney(led.Balance())) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(model.DateLayout), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "desc", "", "free-text description")

	return cmd
}
