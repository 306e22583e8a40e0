package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/budget/internal/record"
	"github.com/GustavoCaso/budget/internal/storage"
	"github.com/GustavoCaso/budget/internal/storage/file"
	"github.com/GustavoCaso/budget/internal/testutil"
)

func TestEnsureExists(t *testing.T) {
	ctx := context.Background()
	path := testutil.MissingLedger(t)
	s := file.New(path, testutil.TestLogger(t))

	if err := s.EnsureExists(ctx); err != nil {
		t.Fatalf("EnsureExists() unexpected error: %v", err)
	}

	if content := testutil.ReadLedger(t, path); content != "" {
		t.Errorf("Expected an empty ledger, got %q", content)
	}

	r, err := record.New("2025-10-16", "IN", "salary", "100", "")
	if err != nil {
		t.Fatalf("record.New() unexpected error: %v", err)
	}
	if err = s.Append(ctx, r); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	before := testutil.ReadLedger(t, path)

	if err = s.EnsureExists(ctx); err != nil {
		t.Fatalf("EnsureExists() unexpected error: %v", err)
	}

	if after := testutil.ReadLedger(t, path); after != before {
		t.Errorf("EnsureExists() changed the ledger: before %q, after %q", before, after)
	}
}

func TestAppend(t *testing.T) {
	ctx := context.Background()
	path := testutil.TempLedger(t, "2025-10-01;IN;salary;1000.00;existing\n")
	s := file.New(path, testutil.TestLogger(t))

	r, err := record.New("2025-10-16", "out", "food", "12.5", "bread;milk")
	if err != nil {
		t.Fatalf("record.New() unexpected error: %v", err)
	}

	if err = s.Append(ctx, r); err != nil {
		t.Fatalf("Append() unexpected error: %v", err)
	}

	want := "2025-10-01;IN;salary;1000.00;existing\n2025-10-16;OUT;food;12.50;bread;milk\n"
	if got := testutil.ReadLedger(t, path); got != want {
		t.Errorf("Ledger content = %q, want %q", got, want)
	}
}

func TestAppendWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "budget.txt")
	s := file.New(path, testutil.TestLogger(t))

	r, err := record.New("2025-10-16", "OUT", "food", "1", "")
	if err != nil {
		t.Fatalf("record.New() unexpected error: %v", err)
	}

	err = s.Append(context.Background(), r)
	if !errors.Is(err, storage.ErrWrite) {
		t.Fatalf("Append() error = %v, want ErrWrite", err)
	}

	var writeErr *storage.WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("Append() error = %T, want *storage.WriteError", err)
	}

	if writeErr.Source != path {
		t.Errorf("WriteError.Source = %q, want %q", writeErr.Source, path)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected the OS error to be wrapped, got %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantDates   []string
		wantSkipped int
	}{
		{
			name:      "empty ledger",
			content:   "",
			wantDates: []string{},
		},
		{
			name: "well formed lines keep file order",
			content: "2025-10-16;IN;salary;100.00;\n" +
				"2025-10-17;OUT;food;40.00;lunch\n" +
				"2025-10-18;OUT;rent;60.00;flat\n",
			wantDates: []string{"2025-10-16", "2025-10-17", "2025-10-18"},
		},
		{
			name: "malformed lines are dropped",
			content: "2025-10-16;IN;salary;100.00;\n" +
				"garbage\n" +
				"2025-10-17;OUT;food;forty;lunch\n" +
				"2025-10-18;MAYBE;food;1;\n" +
				"2025-10-19;OUT;rent;60.00;flat\n",
			wantDates:   []string{"2025-10-16", "2025-10-19"},
			wantSkipped: 3,
		},
		{
			name: "blank lines are ignored",
			content: "\n2025-10-16;IN;salary;100.00;\n\n\n" +
				"2025-10-17;OUT;food;40.00;lunch\n\n",
			wantDates: []string{"2025-10-16", "2025-10-17"},
		},
		{
			name:      "byte order mark on the first line",
			content:   "\xEF\xBB\xBF2025-10-16;IN;salary;100.00;\n2025-10-17;OUT;food;40.00;\n",
			wantDates: []string{"2025-10-16", "2025-10-17"},
		},
		{
			name:      "windows line endings",
			content:   "2025-10-16;IN;salary;100.00;note\r\n2025-10-17;OUT;food;40.00;\r\n",
			wantDates: []string{"2025-10-16", "2025-10-17"},
		},
		{
			name: "line longer than any read buffer",
			content: "2025-10-16;IN;salary;100.00;\n" +
				"2025-10-17;OUT;food;1.00;" + strings.Repeat("x", 2<<20) + "\n" +
				"2025-10-18;OUT;rent;60.00;flat\n",
			wantDates: []string{"2025-10-16", "2025-10-17", "2025-10-18"},
		},
		{
			name: "oversized malformed line is skipped",
			content: "2025-10-16;IN;salary;100.00;\n" +
				strings.Repeat("y", 2<<20) + "\n" +
				"2025-10-18;OUT;rent;60.00;flat\n",
			wantDates:   []string{"2025-10-16", "2025-10-18"},
			wantSkipped: 1,
		},
		{
			name:      "last line without newline",
			content:   "2025-10-16;IN;salary;100.00;\n2025-10-17;OUT;food;40.00;",
			wantDates: []string{"2025-10-16", "2025-10-17"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempLedger(t, tt.content)
			s := file.New(path, testutil.TestLogger(t))

			result, err := s.LoadAll(context.Background())
			if err != nil {
				t.Fatalf("LoadAll() unexpected error: %v", err)
			}

			if len(result.Records) != len(tt.wantDates) {
				t.Fatalf("LoadAll() returned %d records, want %d", len(result.Records), len(tt.wantDates))
			}

			for i, date := range tt.wantDates {
				if result.Records[i].Date != date {
					t.Errorf("Record %d date = %q, want %q", i, result.Records[i].Date, date)
				}
			}

			if result.Skipped != tt.wantSkipped {
				t.Errorf("LoadAll() skipped = %d, want %d", result.Skipped, tt.wantSkipped)
			}
		})
	}
}

func TestLoadAllWindowsNote(t *testing.T) {
	path := testutil.TempLedger(t, "2025-10-16;IN;salary;100.00;note\r\n")
	s := file.New(path, testutil.TestLogger(t))

	result, err := s.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll() unexpected error: %v", err)
	}

	if len(result.Records) != 1 {
		t.Fatalf("LoadAll() returned %d records, want 1", len(result.Records))
	}

	if result.Records[0].Note != "note" {
		t.Errorf("Note = %q, want %q", result.Records[0].Note, "note")
	}
}

func TestLoadAllMissingLedger(t *testing.T) {
	s := file.New(testutil.MissingLedger(t), testutil.TestLogger(t))

	result, err := s.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll() unexpected error: %v", err)
	}

	if len(result.Records) != 0 {
		t.Errorf("LoadAll() returned %d records, want 0", len(result.Records))
	}
}

func TestLoadAllReadError(t *testing.T) {
	// A directory can be opened but not scanned as a file.
	s := file.New(t.TempDir(), testutil.TestLogger(t))

	result, err := s.LoadAll(context.Background())
	if !errors.Is(err, storage.ErrRead) {
		t.Fatalf("LoadAll() error = %v, want ErrRead", err)
	}

	if len(result.Records) != 0 {
		t.Errorf("LoadAll() returned %d records, want 0", len(result.Records))
	}
}

func TestAppendThenLoad(t *testing.T) {
	ctx := context.Background()
	s := file.New(testutil.MissingLedger(t), testutil.TestLogger(t))

	if err := s.EnsureExists(ctx); err != nil {
		t.Fatalf("EnsureExists() unexpected error: %v", err)
	}

	inputs := [][]string{
		{"2025-10-16", "IN", "salary", "100", ""},
		{"2025-10-17", "OUT", "food", "40", "bread;milk"},
		{"2025-10-18", "OUT", "rent", "60.125", " flat "},
	}

	for _, in := range inputs {
		r, err := record.New(in[0], in[1], in[2], in[3], in[4])
		if err != nil {
			t.Fatalf("record.New() unexpected error: %v", err)
		}
		if err = s.Append(ctx, r); err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}
	}

	result, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() unexpected error: %v", err)
	}

	if len(result.Records) != len(inputs) {
		t.Fatalf("LoadAll() returned %d records, want %d", len(result.Records), len(inputs))
	}

	for i, in := range inputs {
		got := result.Records[i]
		if got.Note != in[4] {
			t.Errorf("Record %d note = %q, want %q", i, got.Note, in[4])
		}
		if !got.Amount.Equal(decimal.RequireFromString(in[3])) {
			t.Errorf("Record %d amount = %s, want %s", i, got.Amount, in[3])
		}
	}
}

func TestAppendLongNoteThenLoad(t *testing.T) {
	ctx := context.Background()
	s := file.New(testutil.MissingLedger(t), testutil.TestLogger(t))

	notes := []string{"first", strings.Repeat("n", 2<<20), "last"}
	for _, note := range notes {
		r, err := record.New("2025-10-16", "OUT", "food", "1", note)
		if err != nil {
			t.Fatalf("record.New() unexpected error: %v", err)
		}
		if err = s.Append(ctx, r); err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}
	}

	result, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() unexpected error: %v", err)
	}

	if len(result.Records) != len(notes) {
		t.Fatalf("LoadAll() returned %d records, want %d", len(result.Records), len(notes))
	}

	for i, note := range notes {
		if result.Records[i].Note != note {
			t.Errorf("Record %d note has length %d, want %d", i, len(result.Records[i].Note), len(note))
		}
	}
}

func TestLineBreakCannotForgeRecords(t *testing.T) {
	ctx := context.Background()
	path := testutil.TempLedger(t, "2025-10-01;IN;salary;1000.00;existing\n")
	s := file.New(path, testutil.TestLogger(t))

	_, err := record.New("2025-10-16", "OUT", "food", "5", "x\n2025-10-17;IN;salary;1000000;injected")
	if !errors.Is(err, record.ErrLineBreak) {
		t.Fatalf("record.New() error = %v, want ErrLineBreak", err)
	}

	result, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() unexpected error: %v", err)
	}

	if len(result.Records) != 1 {
		t.Errorf("LoadAll() returned %d records, want 1", len(result.Records))
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := testutil.TempLedger(t, "")
	s := file.New(path, testutil.TestLogger(t))

	r, err := record.New("2025-10-16", "IN", "salary", "100", "")
	if err != nil {
		t.Fatalf("record.New() unexpected error: %v", err)
	}

	if err = s.Append(ctx, r); !errors.Is(err, context.Canceled) {
		t.Errorf("Append() error = %v, want context.Canceled", err)
	}

	if content := testutil.ReadLedger(t, path); content != "" {
		t.Errorf("Expected ledger to stay empty, got %q", content)
	}
}
