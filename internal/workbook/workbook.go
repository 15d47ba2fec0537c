// Package workbook opens xlsx compliance workbooks with excelize and exposes
// them as a core.Workbook.
package workbook

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/JonMunkholm/cumplimiento/internal/core"
	"github.com/xuri/excelize/v2"
)

// Locate returns the first candidate path that exists and is a regular file.
// When none does it returns a *core.FatalInputError listing every candidate.
func Locate(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", &core.FatalInputError{Err: errors.New("no candidate paths configured")}
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			slog.Debug("workbook candidate not usable", "path", path, "error", err)
			continue
		}
		if info.IsDir() {
			slog.Debug("workbook candidate is a directory", "path", path)
			continue
		}
		return path, nil
	}

	return "", &core.FatalInputError{
		Candidates: candidates,
		Err:        os.ErrNotExist,
	}
}

// File is an open workbook. It satisfies core.Workbook.
type File struct {
	path string
	f    *excelize.File
}

// Open opens the workbook at path. Failures are returned as a
// *core.FatalInputError since nothing can be extracted without the file.
func Open(path string) (*File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &core.FatalInputError{
			Candidates: []string{path},
			Err:        fmt.Errorf("open workbook %s: %w", path, err),
		}
	}
	return &File{path: path, f: f}, nil
}

// OpenFirst locates the first existing candidate and opens it.
func OpenFirst(candidates []string) (*File, error) {
	path, err := Locate(candidates)
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the file the workbook was opened from.
func (w *File) Path() string {
	return w.path
}

// SheetNames lists the sheets of the workbook in tab order.
func (w *File) SheetNames() []string {
	return w.f.GetSheetList()
}

// Rows returns every row of the named sheet as display strings.
// An absent sheet yields an error wrapping core.ErrSheetNotFound.
func (w *File) Rows(sheet string) ([][]string, error) {
	idx, err := w.f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("lookup sheet %q: %w", sheet, err)
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", core.ErrSheetNotFound, sheet)
	}

	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// Close releases the underlying file handle and temp files.
func (w *File) Close() error {
	return w.f.Close()
}
