package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/GustavoCaso/budget/internal/cli/render"
	"github.com/GustavoCaso/budget/internal/logger"
	"github.com/GustavoCaso/budget/internal/record"
	"github.com/GustavoCaso/budget/internal/report"
	"github.com/GustavoCaso/budget/internal/storage"
	"github.com/GustavoCaso/budget/internal/util"
)

var ErrRejected = errors.New("record rejected")

// App is what every command runs against: the ledger, where to read input
// and where to write results.
type App struct {
	Ledger   storage.Storage
	Source   string
	Renderer *render.Renderer
	Logger   *logger.Logger
	In       io.Reader
	Out      io.Writer
	Now      func() time.Time
}

// Add validates the raw fields and appends the record. Nothing is written
// when validation fails.
func (a *App) Add(ctx context.Context, date, kind, category, amount, note string) error {
	if strings.TrimSpace(date) == "" {
		date = util.FormatDate(a.now())
	}

	r, err := record.New(date, kind, category, amount, note)
	if err != nil {
		a.Logger.Debug("record rejected", "error", err.Error())
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}

	if err = a.Ledger.Append(ctx, r); err != nil {
		a.Logger.Error("unable to append record", "source", a.Source, "error", err.Error())
		return err
	}

	a.Logger.Info("record added", "source", a.Source, "kind", r.Kind, "category", r.Category)
	fmt.Fprintln(a.Out, "Saved.")

	return nil
}

func (a *App) List(ctx context.Context) error {
	result, loadErr := a.load(ctx)

	if err := a.Renderer.Records(a.Out, result.Records, result.Skipped); err != nil {
		return fmt.Errorf("unable to render records: %w", err)
	}

	return loadErr
}

// Analyze prints the summary and, when needle is not blank, the records
// whose date contains it.
func (a *App) Analyze(ctx context.Context, needle string) error {
	result, loadErr := a.load(ctx)

	if err := a.Renderer.Summary(a.Out, a.Source, report.Summarize(result.Records)); err != nil {
		return fmt.Errorf("unable to render analysis: %w", err)
	}

	needle = strings.TrimSpace(needle)
	if needle != "" {
		fmt.Fprintln(a.Out)
		if err := a.Renderer.Matches(a.Out, needle, report.Search(result.Records, needle)); err != nil {
			return fmt.Errorf("unable to render search results: %w", err)
		}
	}

	return loadErr
}

func (a *App) Search(ctx context.Context, needle string) error {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return errors.New("you must provide a date to search for")
	}

	result, loadErr := a.load(ctx)

	if err := a.Renderer.Matches(a.Out, needle, report.Search(result.Records, needle)); err != nil {
		return fmt.Errorf("unable to render search results: %w", err)
	}

	return loadErr
}

// load treats a read failure as an empty ledger but still hands the error
// back so the caller can report it.
func (a *App) load(ctx context.Context) (storage.LoadResult, error) {
	result, err := a.Ledger.LoadAll(ctx)
	if err != nil {
		a.Logger.Error("unable to load ledger", "source", a.Source, "error", err.Error())
		return storage.LoadResult{}, err
	}

	if result.Skipped > 0 {
		a.Logger.Warn("malformed lines skipped", "source", a.Source, "count", result.Skipped)
	}

	return result, nil
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
