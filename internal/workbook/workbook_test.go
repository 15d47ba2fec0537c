package workbook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/JonMunkholm/cumplimiento/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves an xlsx under dir with one sheet per entry of sheets.
func writeWorkbook(t *testing.T, dir string, sheets map[string][][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			r := row
			require.NoError(t, f.SetSheetRow(name, cell, &r))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))

	path := filepath.Join(dir, "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "found.xlsx")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))

	got, err := Locate([]string{filepath.Join(dir, "missing.xlsx"), dir, existing})
	require.NoError(t, err)
	assert.Equal(t, existing, got, "directories and missing paths are skipped")
}

func TestLocate_NoCandidate(t *testing.T) {
	dir := t.TempDir()
	candidates := []string{filepath.Join(dir, "a.xlsx"), filepath.Join(dir, "b.xlsx")}

	_, err := Locate(candidates)
	require.Error(t, err)

	var fe *core.FatalInputError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, candidates, fe.Candidates)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "FILE001", core.MapError(err).Code)

	_, err = Locate(nil)
	assert.True(t, core.IsFatal(err))
}

func TestOpen_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.True(t, core.IsFatal(err))
	assert.Equal(t, "FILE002", core.MapError(err).Code)
}

func TestFile_Rows(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), map[string][][]any{
		"esquema_vigente": {
			{"Reporte"},
			{"dd_nombre", "paciente_id", "esquema_vigente"},
			{"DIRIS Norte", "P1", "NO"},
			{"DIRIS Sur", "P2", "SI"},
		},
	})

	wb, err := OpenFirst([]string{filepath.Join(t.TempDir(), "nope.xlsx"), path})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, path, wb.Path())
	assert.Equal(t, []string{"esquema_vigente"}, wb.SheetNames())

	rows, err := wb.Rows("esquema_vigente")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Reporte"},
		{"dd_nombre", "paciente_id", "esquema_vigente"},
		{"DIRIS Norte", "P1", "NO"},
		{"DIRIS Sur", "P2", "SI"},
	}, rows)
}

func TestFile_RowsMissingSheet(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), map[string][][]any{
		"otra": {{"a"}},
	})

	wb, err := Open(path)
	require.NoError(t, err)
	defer wb.Close()

	_, err = wb.Rows("esquema_vigente")
	assert.ErrorIs(t, err, core.ErrSheetNotFound)
}

func TestFile_SatisfiesWorkbook(t *testing.T) {
	var _ core.Workbook = (*File)(nil)
}
