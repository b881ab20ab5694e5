package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"ledgerkeep/internal/model"
)

// Backing file columns, in fixed order. The Type column is redundant with
// Category and exists for human readers; loads ignore it.
var fileHeader = []string{"Amount", "Category", "Type", "Date", "Description"}

const (
	colAmount = iota
	colCategory
	colType
	colDate
	colDescription
)

// Save serializes the full transaction sequence to the backing file,
// overwriting any prior contents.
func (l *Ledger) Save() error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("failed to create ledger file %s: %w", l.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(fileHeader); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, t := range l.transactions {
		record := []string{
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			t.Category.Name,
			t.Category.Type.Label(),
			t.Date,
			t.Description,
		}
		if err := w.Write(record); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write transaction: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to flush ledger file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close ledger file: %w", err)
	}

	return nil
}

// Load replaces the in-memory sequence with the backing file's contents.
// A missing file is the expected first-run state and yields an empty
// ledger. Rows whose category name has no catalog match, or whose amount
// does not parse, are dropped; each drop is logged and counted in the
// returned skip count so the caller can surface it.
func (l *Ledger) Load() (int, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no ledger file yet, starting empty", "path", l.path)
			l.transactions = nil
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open ledger file %s: %w", l.path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Description may be missing entirely

	// Header row. An empty file loads as an empty ledger.
	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			l.transactions = nil
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	var (
		loaded  []model.Transaction
		skipped int
	)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			slog.Warn("skipping malformed row", "path", l.path, "line", parseErr.Line, "error", err)
			skipped++
			continue
		}
		if err != nil {
			return skipped, fmt.Errorf("failed to read ledger file: %w", err)
		}

		t, ok := l.parseRecord(record)
		if !ok {
			skipped++
			continue
		}
		loaded = append(loaded, t)
	}

	l.transactions = loaded
	if skipped > 0 {
		slog.Warn("dropped unloadable rows", "path", l.path, "skipped", skipped, "loaded", len(loaded))
	}

	return skipped, nil
}

// parseRecord reconstructs one transaction from a CSV row, resolving the
// stored category name against the catalog. The Type column is ignored:
// the category name alone drives reconstruction.
func (l *Ledger) parseRecord(record []string) (model.Transaction, bool) {
	if len(record) <= colDate {
		slog.Warn("skipping short row", "fields", len(record))
		return model.Transaction{}, false
	}

	amount, err := strconv.ParseFloat(record[colAmount], 64)
	if err != nil {
		slog.Warn("skipping row with unparseable amount", "amount", record[colAmount])
		return model.Transaction{}, false
	}

	category, ok := l.catalog.Lookup(record[colCategory])
	if !ok {
		slog.Warn("skipping row with unknown category", "category", record[colCategory])
		return model.Transaction{}, false
	}

	var description string
	if len(record) > colDescription {
		description = record[colDescription]
	}

	return model.Transaction{
		Amount:      amount,
		Category:    category,
		Date:        record[colDate],
		Description: description,
	}, true
}
