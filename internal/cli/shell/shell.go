package shell

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GustavoCaso/budget/internal/cli"
	"github.com/GustavoCaso/budget/internal/record"
)

const menu = `
==== Personal budget ====
1. Add a record
2. Show all records
3. Analysis (income/expense/categories/date search)
0. Exit
Your choice: `

type shellCommand struct {
}

func NewCommand() cli.Command {
	return shellCommand{}
}

func (c shellCommand) Description() string {
	return "Starts the interactive menu"
}

func (c shellCommand) SetFlags(*flag.FlagSet) {
}

func (c shellCommand) Run(ctx context.Context, app *cli.App) error {
	s := &session{
		app:    app,
		reader: bufio.NewReader(app.In),
	}

	for {
		fmt.Fprint(app.Out, menu)

		line, err := s.readLine()
		if err != nil {
			return s.finish(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(app.Out, "A number is required.")
			continue
		}

		switch choice {
		case 1:
			err = s.add(ctx)
		case 2:
			err = app.List(ctx)
		case 3:
			err = s.analyze(ctx)
		case 0:
			fmt.Fprintln(app.Out, "Bye!")
			return nil
		default:
			fmt.Fprintln(app.Out, "No such option.")
			continue
		}

		if errors.Is(err, io.EOF) {
			return s.finish(err)
		}
		if err != nil {
			fmt.Fprintf(app.Out, "Error: %s\n", err)
		}
	}
}

type session struct {
	app    *cli.App
	reader *bufio.Reader
}

// readLine returns the next input line without its line ending. A last line
// without a newline is still returned; io.EOF comes on the following call.
func (s *session) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.app.Out, label)
	return s.readLine()
}

// finish ends the loop quietly when the input is exhausted.
func (s *session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.app.Out)
		return nil
	}
	return err
}

// add asks for each field and rejects a bad kind or amount as soon as it is
// entered, before anything reaches the ledger.
func (s *session) add(ctx context.Context) error {
	date, err := s.prompt("Date (e.g. 2025-10-16): ")
	if err != nil {
		return err
	}

	kind, err := s.prompt("Kind (IN=income, OUT=expense): ")
	if err != nil {
		return err
	}
	if _, err = record.ParseKind(kind); err != nil {
		fmt.Fprintln(s.app.Out, "Kind must be IN or OUT. Record discarded.")
		return nil
	}

	category, err := s.prompt("Category (food/transport/salary/...): ")
	if err != nil {
		return err
	}

	amount, err := s.prompt("Amount: ")
	if err != nil {
		return err
	}
	if _, err = record.ParseAmount(amount); err != nil {
		fmt.Fprintln(s.app.Out, "That amount looks wrong, not saving it.")
		return nil
	}

	note, err := s.prompt("Note: ")
	if err != nil {
		return err
	}

	return s.app.Add(ctx, date, kind, category, amount, note)
}

func (s *session) analyze(ctx context.Context) error {
	if err := s.app.Analyze(ctx, ""); err != nil {
		return err
	}

	needle, err := s.prompt("\nSearch by date (type part of a date or press Enter to skip): ")
	if err != nil {
		return err
	}

	if strings.TrimSpace(needle) == "" {
		return nil
	}

	return s.app.Search(ctx, needle)
}
