package exportcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GustavoCaso/budget/internal/cli"
	"github.com/GustavoCaso/budget/internal/export"
	"github.com/GustavoCaso/budget/internal/storage/sqlite"
)

type exportCommand struct {
	csvFile    string
	sqliteFile string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports the ledger to CSV or to a SQLite database"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.csvFile, "csv", "", "CSV file to write, '-' for stdout")
	fs.StringVar(&c.sqliteFile, "sqlite", "", "SQLite database to append the records to")
}

func (c *exportCommand) Run(ctx context.Context, app *cli.App) error {
	if c.csvFile == "" && c.sqliteFile == "" {
		return errors.New("you must provide a -csv or -sqlite destination")
	}

	if c.csvFile != "" {
		if err := c.exportCSV(ctx, app); err != nil {
			return err
		}
	}

	if c.sqliteFile != "" {
		if err := c.exportSQLite(ctx, app); err != nil {
			return err
		}
	}

	return nil
}

func (c *exportCommand) exportCSV(ctx context.Context, app *cli.App) error {
	result, err := app.Ledger.LoadAll(ctx)
	if err != nil {
		return err
	}

	var out io.Writer = app.Out
	if c.csvFile != "-" {
		file, err := os.Create(c.csvFile)
		if err != nil {
			return fmt.Errorf("unable to create %s: %w", c.csvFile, err)
		}
		defer file.Close()
		out = file
	}

	if err = export.CSV(out, result.Records); err != nil {
		return err
	}

	app.Logger.Info("ledger exported to CSV", "destination", c.csvFile, "records", len(result.Records))

	return nil
}

func (c *exportCommand) exportSQLite(ctx context.Context, app *cli.App) error {
	destination, err := sqlite.New(c.sqliteFile, app.Logger)
	if err != nil {
		return err
	}
	defer destination.Close()

	copied, err := export.Copy(ctx, app.Ledger, destination)
	if err != nil {
		return fmt.Errorf("export stopped after %d records: %w", copied, err)
	}

	app.Logger.Info("ledger exported to SQLite", "destination", c.sqliteFile, "records", copied)
	fmt.Fprintf(app.Out, "Total records exported: %d\n", copied)

	return nil
}
