package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/GustavoCaso/budget/internal/cli"
	"github.com/GustavoCaso/budget/internal/cli/add"
	"github.com/GustavoCaso/budget/internal/cli/analyze"
	exportCmd "github.com/GustavoCaso/budget/internal/cli/export"
	"github.com/GustavoCaso/budget/internal/cli/list"
	"github.com/GustavoCaso/budget/internal/cli/render"
	"github.com/GustavoCaso/budget/internal/cli/search"
	"github.com/GustavoCaso/budget/internal/cli/shell"
	"github.com/GustavoCaso/budget/internal/config"
	"github.com/GustavoCaso/budget/internal/logger"
	"github.com/GustavoCaso/budget/internal/storage/file"
)

var configPath string

var subcommands = map[string]cli.Command{
	"add":     add.NewCommand(),
	"list":    list.NewCommand(),
	"analyze": analyze.NewCommand(),
	"search":  search.NewCommand(),
	"export":  exportCmd.NewCommand(),
	"shell":   shell.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "budget.toml", "Configuration file (.toml, .yml or .yaml)")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	// ExitOnError: Parse never returns an error
	_ = subcommandsFlagSets[commandName].Parse(os.Args[2:])

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	appLogger := logger.New(conf.Logger)
	appLogger.Debug("Using ledger", "path", conf.Store)

	renderer, err := render.New(conf.Currency)
	if err != nil {
		appLogger.Fatal("Unable to load templates", "error", err.Error())
	}

	ctx := context.Background()

	ledger := file.New(conf.Store, appLogger)
	if err = ledger.EnsureExists(ctx); err != nil {
		appLogger.Fatal("Unable to create the ledger", "path", conf.Store, "error", err.Error())
	}

	app := &cli.App{
		Ledger:   ledger,
		Source:   conf.Store,
		Renderer: renderer,
		Logger:   appLogger,
		In:       os.Stdin,
		Out:      os.Stdout,
	}

	if err = command.Run(ctx, app); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", commandName, err.Error())
		os.Exit(1)
	}
}

func printHelp() {
	printUsage()

	names := make([]string, 0, len(subcommands))
	for c := range subcommands {
		names = append(names, c)
	}
	sort.Strings(names)

	for _, c := range names {
		fmt.Printf("subcommand <%s>: %s\n", c, subcommands[c].Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: budget <subcommand> [flags]\n\n")
}
