package list

import (
	"context"
	"flag"

	"github.com/GustavoCaso/budget/internal/cli"
)

type listCommand struct {
}

func NewCommand() cli.Command {
	return listCommand{}
}

func (c listCommand) Description() string {
	return "Lists every record in the ledger"
}

func (c listCommand) SetFlags(*flag.FlagSet) {
}

func (c listCommand) Run(ctx context.Context, app *cli.App) error {
	return app.List(ctx)
}
