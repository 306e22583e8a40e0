package file

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/GustavoCaso/budget/internal/logger"
	"github.com/GustavoCaso/budget/internal/record"
	"github.com/GustavoCaso/budget/internal/storage"
)

const filePerm = 0o644

// byteOrderMark is the UTF-8 BOM some editors put at the start of a file.
const byteOrderMark = "\uFEFF"

type fileStorage struct {
	path   string
	logger *logger.Logger
}

// New returns a Storage backed by the delimited text file at path. The file
// is opened per call; no handle is kept between operations.
func New(path string, logger *logger.Logger) storage.Storage {
	return &fileStorage{
		path:   path,
		logger: logger,
	}
}

func (s *fileStorage) EnsureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return &storage.WriteError{Source: s.path, Err: err}
	}

	return f.Close()
}

func (s *fileStorage) Append(ctx context.Context, r record.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return &storage.WriteError{Source: s.path, Err: err}
	}

	_, err = f.WriteString(r.Line() + "\n")
	if err != nil {
		f.Close()
		return &storage.WriteError{Source: s.path, Err: err}
	}

	if err = f.Close(); err != nil {
		return &storage.WriteError{Source: s.path, Err: err}
	}

	s.logger.Debug("record appended", "path", s.path, "kind", r.Kind, "category", r.Category)

	return nil
}

func (s *fileStorage) LoadAll(ctx context.Context) (storage.LoadResult, error) {
	var result storage.LoadResult

	if err := ctx.Err(); err != nil {
		return result, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return result, &storage.ReadError{Source: s.path, Err: err}
	}
	defer f.Close()

	records := []record.Record{}
	skipped := 0
	lineNumber := 0

	reader := bufio.NewReader(f)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return storage.LoadResult{}, &storage.ReadError{Source: s.path, Err: readErr}
		}
		if line == "" && readErr != nil {
			break
		}
		lineNumber++

		if lineNumber == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if text != "" {
			r, parseErr := record.Parse(text)
			if parseErr != nil {
				skipped++
				s.logger.Debug("skipping malformed line", "path", s.path, "line", lineNumber, "error", parseErr.Error())
			} else {
				records = append(records, r)
			}
		}

		if readErr != nil {
			break
		}
	}

	result.Records = records
	result.Skipped = skipped

	return result, nil
}

func (s *fileStorage) Close() error {
	return nil
}
