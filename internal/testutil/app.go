package testutil

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/GustavoCaso/budget/internal/cli"
	"github.com/GustavoCaso/budget/internal/cli/render"
	"github.com/GustavoCaso/budget/internal/storage/file"
)

// Today is the fixed clock used by SetupTestApp.
var Today = time.Date(2025, time.October, 16, 12, 0, 0, 0, time.UTC)

// SetupTestApp builds an App over a temporary ledger holding content. The
// shell reads input, and everything the App prints lands in the returned
// buffer.
func SetupTestApp(t *testing.T, content, input string) (*cli.App, *bytes.Buffer, string) {
	t.Helper()

	color.NoColor = true

	renderer, err := render.New("€")
	if err != nil {
		t.Fatalf("Failed to create renderer: %v", err)
	}

	path := TempLedger(t, content)
	out := &bytes.Buffer{}

	app := &cli.App{
		Ledger:   file.New(path, TestLogger(t)),
		Source:   path,
		Renderer: renderer,
		Logger:   TestLogger(t),
		In:       strings.NewReader(input),
		Out:      out,
		Now: func() time.Time {
			return Today
		},
	}

	return app, out, path
}
