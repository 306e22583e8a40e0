package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempLedger writes content to a ledger file inside a temporary directory
// and returns its path. An empty content still creates the file.
func TempLedger(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "budget.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create ledger file: %v", err)
	}

	return path
}

// MissingLedger returns a path inside a temporary directory where no file
// exists yet.
func MissingLedger(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "budget.txt")
}

func ReadLedger(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read ledger file: %v", err)
	}

	return string(content)
}
