package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/GustavoCaso/budget/internal/record"
)

var (
	ErrRead  = errors.New("unable to read ledger")
	ErrWrite = errors.New("unable to write ledger")
)

type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrRead, e.Source, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrRead, e.Err}
}

// WriteError means the append did not take effect.
type WriteError struct {
	Source string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrWrite, e.Source, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrWrite, e.Err}
}

// LoadResult holds the records that could be decoded, in stored order, and
// how many lines were dropped because they could not.
type LoadResult struct {
	Records []record.Record
	Skipped int
}

type Storage interface {
	// EnsureExists creates an empty store when there is none. Existing
	// content is never touched.
	EnsureExists(ctx context.Context) error
	Append(ctx context.Context, r record.Record) error
	// LoadAll returns every valid record. A missing store is an empty
	// result, not an error.
	LoadAll(ctx context.Context) (LoadResult, error)
	Close() error
}
