package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/GustavoCaso/budget/internal/logger"
	"github.com/GustavoCaso/budget/internal/storage"
)

type sqliteStorage struct {
	db     *sql.DB
	source string
	logger *logger.Logger
}

// New opens the SQLite database at source. It is used as an export sink:
// the flat file stays the ledger of record.
func New(source string, logger *logger.Logger) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", source, err)
	}

	// an in-memory database lives and dies with its connection
	db.SetMaxOpenConns(1)

	return &sqliteStorage{
		db:     db,
		source: source,
		logger: logger,
	}, nil
}

func (s *sqliteStorage) EnsureExists(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createRecordsTable)
	if err != nil {
		return &storage.WriteError{Source: s.source, Err: err}
	}

	return nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
