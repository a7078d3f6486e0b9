// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paysplit/internal/session"
	"github.com/pdiddy/paysplit/pkg/types"
)

// seededSession returns a session with two individuals: Jane with two
// statements and contact details, John with one.
func seededSession(t *testing.T) session.Session {
	t.Helper()
	ctx := context.Background()
	sess := session.New(filepath.Join(t.TempDir(), "Split"))
	_, err := sess.Init(ctx)
	require.NoError(t, err)

	for _, r := range []struct{ name, date string }{
		{"Jane Doe", "2024-03-04"},
		{"John Smith", "2024-03-04"},
		{"Jane Doe", "2024-04-04"},
	} {
		_, err := sess.UpsertRecord(ctx, r.name, r.date, r.name+" "+r.date+".pdf")
		require.NoError(t, err)
	}
	_, err = sess.UpdateContact(ctx, "Jane Doe", "1 Main St", "555-0100", "jane@example.com")
	require.NoError(t, err)
	return sess
}

type brokenReader struct{}

func (brokenReader) ListIndividuals(context.Context) ([]types.Individual, error) {
	return nil, errors.New("database is locked")
}

func (brokenReader) ListPayRecords(context.Context, int64) ([]types.PayRecord, error) {
	return nil, nil
}

func TestBuild(t *testing.T) {
	entries, err := Build(context.Background(), seededSession(t))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Jane Doe", entries[0].Name)
	assert.Equal(t, "1 Main St", entries[0].Address)
	require.Len(t, entries[0].Records, 2)
	assert.Equal(t, "2024-03-04", entries[0].Records[0].Date)
	assert.Equal(t, "Jane Doe 2024-04-04.pdf", entries[0].Records[1].Filename)

	assert.Equal(t, "John Smith", entries[1].Name)
	require.Len(t, entries[1].Records, 1)

	_, err = Build(context.Background(), brokenReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

func TestWriteYAML(t *testing.T) {
	sess := seededSession(t)
	path := DefaultPath(sess.OutputDir(), types.ExportYAML)
	assert.Equal(t, filepath.Join(sess.OutputDir(), "export.yaml"), path)

	n, err := Write(context.Background(), sess, types.ExportYAML, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []Entry
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Jane Doe", got[0].Name)
	assert.Equal(t, "jane@example.com", got[0].Email)
	assert.Len(t, got[0].Records, 2)
	assert.Contains(t, string(data), "phone: 555-0100")
}

func TestWriteJSON(t *testing.T) {
	sess := seededSession(t)
	path := DefaultPath(sess.OutputDir(), types.ExportJSON)

	_, err := Write(context.Background(), sess, types.ExportJSON, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "John Smith", raw[1]["name"])
	assert.Contains(t, raw[0], "records")
}

func TestWriteXLSX(t *testing.T) {
	ctx := context.Background()
	sess := seededSession(t)
	_, err := sess.UpsertRecord(ctx, "Ann Lee", "2024-05-01", "Ann Lee 2024-05-01.pdf")
	require.NoError(t, err)

	path := DefaultPath(sess.OutputDir(), types.ExportXLSX)
	n, err := Write(ctx, sess, types.ExportXLSX, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, sheetHeaders, rows[0])
	assert.Equal(t, []string{"Jane Doe", "2024-03-04", "Jane Doe 2024-03-04.pdf"}, rows[1][:3])
	assert.Equal(t, "1 Main St", rows[1][4])
	assert.Equal(t, "Jane Doe", rows[2][0])
	assert.Equal(t, "John Smith", rows[3][0])
	assert.Equal(t, "Ann Lee", rows[4][0])
}

func TestWorkbookIndividualWithoutRecords(t *testing.T) {
	data, err := workbook([]Entry{{Individual: types.Individual{ID: 1, Name: "Solo Person", Email: "solo@example.com"}}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "solo.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Solo Person", rows[1][0])
	assert.Equal(t, "solo@example.com", rows[1][6])
}

func TestWriteUnknownFormat(t *testing.T) {
	sess := seededSession(t)
	_, err := Write(context.Background(), sess, types.ExportFormat("csv"), filepath.Join(t.TempDir(), "x.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}
