package main

import (
	"fmt"
	"strconv"
	"time"

	"ledgerkeep/internal/cli"
	"ledgerkeep/internal/common"
	"ledgerkeep/internal/config"
	"ledgerkeep/internal/ledger"
	"ledgerkeep/internal/model"
)

// openLedger builds the store against the configured backing file and
// performs the one-time load. A missing file is the normal first-run
// state; skipped rows are surfaced to the user rather than swallowed.
func openLedger() (*ledger.Ledger, error) {
	led := ledger.New(ledger.DefaultCatalog(), config.LedgerFile())

	skipped, err := led.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	if skipped > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d row(s) could not be loaded and were skipped", skipped))) //nolint:forbidigo // User-facing output
	}

	return led, nil
}

// parseAmount validates a user-supplied amount: a parseable number,
// strictly positive.
func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", common.ErrInvalidAmount, s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive, got %g", common.ErrInvalidAmount, amount)
	}
	return amount, nil
}

// parseDate validates a user-supplied calendar date and returns it in
// the canonical YYYY-MM-DD encoding.
func parseDate(s string) (string, error) {
	parsed, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a YYYY-MM-DD date", common.ErrInvalidDate, s)
	}
	return parsed.Format(model.DateLayout), nil
}

// resolveCategory matches user input against the catalog, ignoring case,
// and returns the canonical catalog entry.
func resolveCategory(catalog ledger.Catalog, name string) (model.Category, error) {
	category, ok := catalog.LookupFold(name)
	if !ok {
		names := make([]string, 0, catalog.Len())
		for _, cat := range catalog.Categories() {
			names = append(names, cat.Name)
		}
		return model.Category{}, fmt.Errorf("%w: %q (have: %v)", common.ErrUnknownCategory, name, names)
	}
	return category, nil
}
