package search

import (
	"context"
	"flag"

	"github.com/GustavoCaso/budget/internal/cli"
)

type searchCommand struct {
	date string
}

func NewCommand() cli.Command {
	return &searchCommand{}
}

func (c *searchCommand) Description() string {
	return "Search records by part of their date"
}

func (c *searchCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "text to look for in the record dates (e.g. 2025-10)")
}

func (c *searchCommand) Run(ctx context.Context, app *cli.App) error {
	return app.Search(ctx, c.date)
}
