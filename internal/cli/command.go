package cli

import (
	"context"
	"flag"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, app *App) error
}
