package add

import (
	"context"
	"flag"

	"github.com/GustavoCaso/budget/internal/cli"
)

type addCommand struct {
	date     string
	kind     string
	category string
	amount   string
	note     string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Adds an income or expense record to the ledger"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "date of the record (defaults to today, e.g. 2025-10-16)")
	fs.StringVar(&c.kind, "kind", "", "IN for income, OUT for expense")
	fs.StringVar(&c.category, "category", "", "category of the record (food/transport/salary/...)")
	fs.StringVar(&c.amount, "amount", "", "amount of the record")
	fs.StringVar(&c.note, "note", "", "free-form note")
}

func (c *addCommand) Run(ctx context.Context, app *cli.App) error {
	return app.Add(ctx, c.date, c.kind, c.category, c.amount, c.note)
}
