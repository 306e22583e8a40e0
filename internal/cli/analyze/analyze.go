package analyze

import (
	"context"
	"flag"

	"github.com/GustavoCaso/budget/internal/cli"
)

type analyzeCommand struct {
	date string
}

func NewCommand() cli.Command {
	return &analyzeCommand{}
}

func (c *analyzeCommand) Description() string {
	return "Displays totals, balance, expenses by category and the largest expense"
}

func (c *analyzeCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "also list records whose date contains this text")
}

func (c *analyzeCommand) Run(ctx context.Context, app *cli.App) error {
	return app.Analyze(ctx, c.date)
}
