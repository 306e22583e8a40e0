package sqlite

import (
	"context"
	"fmt"

	"github.com/GustavoCaso/budget/internal/record"
	"github.com/GustavoCaso/budget/internal/storage"
)

const createRecordsTable = `
CREATE TABLE IF NOT EXISTS records
(
 position INTEGER PRIMARY KEY AUTOINCREMENT,
 date TEXT NOT NULL,
 kind TEXT NOT NULL CHECK (kind IN ('IN', 'OUT')),
 category TEXT NOT NULL,
 amount TEXT NOT NULL,
 note TEXT NOT NULL
) STRICT;
`

func (s *sqliteStorage) Append(ctx context.Context, r record.Record) error {
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO records(date, kind, category, amount, note) VALUES(?, ?, ?, ?, ?)",
		r.Date,
		string(r.Kind),
		r.Category,
		record.FormatAmount(r.Amount),
		r.Note,
	)
	if err != nil {
		return &storage.WriteError{Source: s.source, Err: err}
	}

	return nil
}

func (s *sqliteStorage) LoadAll(ctx context.Context) (storage.LoadResult, error) {
	var result storage.LoadResult

	rows, err := s.db.QueryContext(ctx, "SELECT position, date, kind, category, amount, note FROM records ORDER BY position")
	if err != nil {
		return result, &storage.ReadError{Source: s.source, Err: err}
	}
	defer rows.Close()

	records := []record.Record{}
	skipped := 0

	for rows.Next() {
		var position int64
		var date, kind, category, amount, note string

		if err = rows.Scan(&position, &date, &kind, &category, &amount, &note); err != nil {
			return storage.LoadResult{}, &storage.ReadError{Source: s.source, Err: err}
		}

		r, parseErr := rowToRecord(date, kind, category, amount, note)
		if parseErr != nil {
			skipped++
			s.logger.Debug("skipping malformed row", "source", s.source, "position", position, "error", parseErr.Error())
			continue
		}

		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return storage.LoadResult{}, &storage.ReadError{Source: s.source, Err: err}
	}

	result.Records = records
	result.Skipped = skipped

	return result, nil
}

func rowToRecord(date, kind, category, amount, note string) (record.Record, error) {
	k, err := record.ParseKind(kind)
	if err != nil {
		return record.Record{}, err
	}

	a, err := record.ParseAmount(amount)
	if err != nil {
		return record.Record{}, fmt.Errorf("row amount: %w", err)
	}

	return record.Record{
		Date:     date,
		Kind:     k,
		Category: category,
		Amount:   a,
		Note:     note,
	}, nil
}
