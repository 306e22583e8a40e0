package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/GustavoCaso/budget/internal/record"
	"github.com/GustavoCaso/budget/internal/storage"
)

// CSV exports records to CSV format
// format: Date,Kind,Category,Amount,Note
func CSV(writer io.Writer, records []record.Record) error {
	w := csv.NewWriter(writer)

	// header + all records
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"Date", "Kind", "Category", "Amount", "Note"})

	for _, r := range records {
		rows = append(rows, []string{
			r.Date,
			string(r.Kind),
			r.Category,
			record.FormatAmount(r.Amount),
			r.Note,
		})
	}

	// WriteAll flushes
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

// Copy appends every valid record of from to to, in order, and returns how
// many were copied. It stops at the first write failure.
func Copy(ctx context.Context, from, to storage.Storage) (int, error) {
	result, err := from.LoadAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = to.EnsureExists(ctx); err != nil {
		return 0, err
	}

	copied := 0
	for _, r := range result.Records {
		if err = to.Append(ctx, r); err != nil {
			return copied, err
		}
		copied++
	}

	return copied, nil
}
